package sign

import (
	"context"
	"log/slog"
)

// Signer строит подпись запроса. Основной провайдер (hashd) опционален:
// при первой же его ошибке Signer навсегда переключается на локальный MD5,
// поэтому Sign никогда не завершается неудачей. Обе реализации дают
// побайтно одинаковый результат.
type Signer struct {
	native   Hasher
	fallback Hasher
	logger   *slog.Logger
	degraded bool
}

// NewSigner создает Signer. native может быть nil, тогда подпись всегда
// вычисляется локально.
func NewSigner(native Hasher, logger *slog.Logger) *Signer {
	return &Signer{
		native:   native,
		fallback: Local{},
		logger:   logger,
	}
}

// Detect проверяет доступность hashd и собирает Signer: с внешним
// провайдером, если демон отвечает, иначе только с локальным MD5.
// Пустой hashdURL означает, что демон не настроен.
func Detect(ctx context.Context, hashdURL string, logger *slog.Logger) *Signer {
	if hashdURL == "" {
		return NewSigner(nil, logger)
	}

	remote := NewRemote(hashdURL)
	if err := remote.Ping(ctx); err != nil {
		logger.Warn("hashd is not available, using local md5",
			"url", hashdURL,
			"error", err,
		)
		return NewSigner(nil, logger)
	}

	return NewSigner(remote, logger)
}

// Sign вычисляет подпись: MD5(timestamp + data + password) в верхнем
// регистре, где data это строка Base64 как она уходит на провод.
// Если хотя бы один компонент пуст, запрос считается неподписываемым
// и возвращается пустая строка. Правило пропуска применяется здесь,
// а не у вызывающих, чтобы любая точка отправки вела себя одинаково.
func (s *Signer) Sign(ctx context.Context, timestamp, data, password string) string {
	if timestamp == "" || data == "" || password == "" {
		return ""
	}

	input := timestamp + data + password

	if s.native != nil && !s.degraded {
		digest, err := s.native.MD5UpperHex(ctx, input)
		if err == nil {
			return digest
		}
		// Деградация необратима до перезапуска процесса
		s.degraded = true
		s.logger.Warn("native hasher failed, switching to local md5", "error", err)
	}

	digest, _ := s.fallback.MD5UpperHex(ctx, input)
	return digest
}

// Native сообщает, активен ли внешний провайдер hashd.
func (s *Signer) Native() bool {
	return s.native != nil && !s.degraded
}
