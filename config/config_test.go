package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "SETTINGS_STORE", "DATABASE_URL", "SQLITE_PATH", "PREVIEW_BASE_URL", "BROWSER_BIN",
	"BROWSER_NO_SANDBOX", "EXPORT_TIMEOUT", "EXPORT_ATTEMPTS", "EXPORT_MAX_CONCURRENCY", "AUTH_SECRET",
	"CORS_ORIGINS", "EMAIL_PROVIDER", "EMAIL_FROM_ADDRESS", "EMAIL_FROM_NAME", "AWS_REGION",
	"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY",
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GO_ENV", "production")
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreSQLite, cfg.SettingsStore)
	assert.Equal(t, 30*time.Second, cfg.ExportTimeout)
	assert.Equal(t, 2, cfg.ExportAttempts)
	assert.Equal(t, 2, cfg.ExportMaxConcurrency)
	assert.False(t, cfg.BrowserNoSandbox)
	assert.Equal(t, "noop", cfg.EmailProvider)
	assert.Empty(t, cfg.CORSOrigins)
	assert.Equal(t, "http://127.0.0.1:8080/requisitions/preview", cfg.PreviewURL())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("SETTINGS_STORE", "Memory")
	t.Setenv("PREVIEW_BASE_URL", "http://app:9000/")
	t.Setenv("BROWSER_NO_SANDBOX", "true")
	t.Setenv("EXPORT_TIMEOUT", "45s")
	t.Setenv("EXPORT_ATTEMPTS", "3")
	t.Setenv("EXPORT_MAX_CONCURRENCY", "4")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://app.example.com ,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.SettingsStore)
	assert.True(t, cfg.BrowserNoSandbox)
	assert.Equal(t, 45*time.Second, cfg.ExportTimeout)
	assert.Equal(t, 3, cfg.ExportAttempts)
	assert.Equal(t, 4, cfg.ExportMaxConcurrency)
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, "http://app:9000/requisitions/preview", cfg.PreviewURL())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"SETTINGS_STORE", "redis"},
		{"EXPORT_TIMEOUT", "soon"},
		{"EXPORT_ATTEMPTS", "0"},
		{"EXPORT_MAX_CONCURRENCY", "many"},
		{"BROWSER_NO_SANDBOX", "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "production", "warn")
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "v", rec["k"])

	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}
