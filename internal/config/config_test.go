package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spotplan/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "https://api.notion.com/v1", cfg.Notion.BaseURL)
	assert.Equal(t, "2022-06-28", cfg.Notion.Version)
	assert.Equal(t, 10*time.Second, cfg.Notion.Timeout)
	assert.Equal(t, 1900, cfg.Planner.FieldLimit)
	assert.False(t, cfg.Psql.Enabled)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("NOTION_TOKEN", "secret")
	t.Setenv("PLANNER_FIELD_LIMIT", "1500")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "secret", cfg.Notion.Token)
	assert.Equal(t, 1500, cfg.Planner.FieldLimit)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
}

func TestLoggerLevels(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, configs.Logger{Level: in}.SlogLevel(), in)
	}
	assert.Equal(t, "text", configs.Logger{Format: "yaml"}.SlogFormat())
}

func TestLoggerHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(configs.Logger{Level: "warn", Format: "json"}.Handler(&buf))
	logger.Info("hidden")
	logger.Warn("shown", slog.String("id", "abc"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "shown", record["msg"])
	assert.Equal(t, "abc", record["id"])
}

func TestLoadRejectsInconsistentSettings(t *testing.T) {
	tests := map[string]map[string]string{
		"field limit above notion": {"PLANNER_FIELD_LIMIT": "2500"},
		"zero history":             {"PLANNER_HISTORY_LIMIT": "0"},
		"seed without database":    {"PSQL_SEED": "true"},
		"migrate without database": {"PSQL_RUN_MIGRATIONS": "true"},
	}
	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range vars {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
		})
	}

	t.Setenv("PSQL_ENABLED", "true")
	t.Setenv("PSQL_SEED", "true")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Psql.Seed)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")
	_, err := Load()
	require.Error(t, err)
}
