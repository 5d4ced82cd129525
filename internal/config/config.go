package config

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// DefaultTimeoutMs таймаут отправки по умолчанию.
const DefaultTimeoutMs = 30000

// Config параметры процесса apisign. Источники в порядке приоритета:
// переменные окружения (включая .env файл), затем флаги командной строки,
// затем значения по умолчанию.
type Config struct {
	DBPath    string `env:"APISIGN_DB"`         // путь к локальной базе
	HashdURL  string `env:"APISIGN_HASHD_URL"`  // адрес демона hashd, пусто = локальный MD5
	Password  string `env:"APISIGN_PASSWORD"`   // секрет подписи (только env, флага нет)
	LogLevel  string `env:"APISIGN_LOG_LEVEL"`  // debug|info|warn|error
	TimeoutMs int    `env:"APISIGN_TIMEOUT_MS"` // таймаут отправки, мс
	Version   bool   `env:"-"`                  // показать версию и выйти (только флаг)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "путь к локальной базе данных")
	flag.StringVar(&cfg.HashdURL, "hashd", cfg.HashdURL, "адрес демона hashd (пусто = локальный MD5)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "уровень логирования: debug|info|warn|error")
	flag.IntVar(&cfg.TimeoutMs, "timeout", cfg.TimeoutMs, "таймаут отправки запроса, мс")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show version and exit")

	flag.Parse()

	// Defaults
	if cfg.DBPath == "" {
		home, _ := os.UserHomeDir()
		cfg.DBPath = filepath.Join(home, ".apisign", "apisign.db")
	}
	if cfg.TimeoutMs <= 0 {
		cfg.TimeoutMs = DefaultTimeoutMs
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg
}

// Timeout возвращает таймаут отправки как time.Duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// SlogLevel транслирует строковый уровень в slog.Level. Неизвестные
// значения трактуются как info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
