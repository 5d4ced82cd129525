package config

import (
	"flag"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlagSet создает новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	// подавляем вывод парсера флагов в тестах
	flag.CommandLine.SetOutput(os.Stderr)
}

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("APISIGN_DB", "")
	t.Setenv("APISIGN_HASHD_URL", "")
	t.Setenv("APISIGN_PASSWORD", "")
	t.Setenv("APISIGN_LOG_LEVEL", "")
	t.Setenv("APISIGN_TIMEOUT_MS", "")

	resetFlagSet(t)
	cfg := NewConfig()

	require.NotEmpty(t, cfg.DBPath)
	assert.Contains(t, cfg.DBPath, ".apisign")
	assert.Empty(t, cfg.HashdURL)
	assert.Empty(t, cfg.Password)
	assert.Equal(t, DefaultTimeoutMs, cfg.TimeoutMs)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Version)
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("APISIGN_DB", "/tmp/test-apisign.db")
	t.Setenv("APISIGN_HASHD_URL", "http://127.0.0.1:7391")
	t.Setenv("APISIGN_PASSWORD", "p@ss")
	t.Setenv("APISIGN_LOG_LEVEL", "debug")
	t.Setenv("APISIGN_TIMEOUT_MS", "5000")

	resetFlagSet(t)
	cfg := NewConfig()

	assert.Equal(t, "/tmp/test-apisign.db", cfg.DBPath)
	assert.Equal(t, "http://127.0.0.1:7391", cfg.HashdURL)
	assert.Equal(t, "p@ss", cfg.Password)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5000, cfg.TimeoutMs)
}

func TestNewConfig_NegativeTimeoutFallsBack(t *testing.T) {
	t.Setenv("APISIGN_TIMEOUT_MS", "-100")

	resetFlagSet(t)
	cfg := NewConfig()

	assert.Equal(t, DefaultTimeoutMs, cfg.TimeoutMs)
}

func TestConfig_Timeout(t *testing.T) {
	cfg := &Config{TimeoutMs: 5000}
	assert.Equal(t, 5*time.Second, cfg.Timeout())
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  slog.Level
	}{
		{name: "debug", level: "debug", want: slog.LevelDebug},
		{name: "info", level: "info", want: slog.LevelInfo},
		{name: "warn", level: "warn", want: slog.LevelWarn},
		{name: "error", level: "error", want: slog.LevelError},
		{name: "unknown falls back to info", level: "trace", want: slog.LevelInfo},
		{name: "empty falls back to info", level: "", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.level}
			assert.Equal(t, tt.want, cfg.SlogLevel())
		})
	}
}
