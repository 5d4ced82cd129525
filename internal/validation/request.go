package validation

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/iudanet/apisign/internal/models"
)

const (
	// MinTimeoutMs минимальный таймаут отправки
	MinTimeoutMs = 1000
	// MaxTimeoutMs максимальный таймаут отправки (10 минут)
	MaxTimeoutMs = 600000
	// MaxNameLen максимальная длина имени группы или пресета
	MaxNameLen = 128
)

// ValidateURL проверяет адрес эндпоинта
// Требования: непустой, разбирается как абсолютный URL, схема http или
// https, хост непустой
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("url cannot be empty")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https")
	}

	if u.Host == "" {
		return fmt.Errorf("url host cannot be empty")
	}

	return nil
}

// ValidateTimestamp проверяет метку времени подписи
// Формат: ровно 14 цифр yyyyMMddHHmmss, разбираемых как календарная дата
func ValidateTimestamp(ts string) error {
	if ts == "" {
		return fmt.Errorf("timestamp cannot be empty")
	}

	if len(ts) != 14 {
		return fmt.Errorf("timestamp must be exactly 14 digits (yyyyMMddHHmmss)")
	}

	for i := 0; i < len(ts); i++ {
		if ts[i] < '0' || ts[i] > '9' {
			return fmt.Errorf("timestamp must contain only digits")
		}
	}

	if _, err := time.ParseInLocation(models.TimestampLayout, ts, time.Local); err != nil {
		return fmt.Errorf("timestamp is not a valid date: %w", err)
	}

	return nil
}

// ValidateTimeoutMs проверяет таймаут отправки: от 1 секунды до 10 минут
func ValidateTimeoutMs(timeoutMs int) error {
	if timeoutMs < MinTimeoutMs || timeoutMs > MaxTimeoutMs {
		return fmt.Errorf("timeout must be between %d and %d ms", MinTimeoutMs, MaxTimeoutMs)
	}
	return nil
}

// ValidateName проверяет имя группы или пресета
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if len(name) > MaxNameLen {
		return fmt.Errorf("name must not exceed %d characters", MaxNameLen)
	}

	return nil
}
