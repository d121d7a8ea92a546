package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "en", cfg.Weather.DefaultLanguage)
	assert.Equal(t, "https://geocoding-api.open-meteo.com/v1", cfg.Weather.Geocoding.BaseURL)
	assert.Equal(t, "https://api.open-meteo.com/v1", cfg.Weather.Forecast.BaseURL)
	assert.Equal(t, "auto", cfg.Weather.Forecast.Params["timezone"])
}

func TestLoadPlainEnvAliases(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEFAULT_LANG", "ja")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "ja", cfg.Weather.DefaultLanguage)
}

func TestLoadPrefixedEnv(t *testing.T) {
	t.Setenv("WEATHER_SERVER_PORT", "7070")
	t.Setenv("WEATHER_LOGGING_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather.yaml")
	content := []byte(`
server:
  port: 8181
  static_dir: ./public
weather:
  default_language: ko
  geocoding:
    base_url: http://localhost:9999/v1
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, "./public", cfg.Server.StaticDir)
	assert.Equal(t, "ko", cfg.Weather.DefaultLanguage)
	assert.Equal(t, "http://localhost:9999/v1", cfg.Weather.Geocoding.BaseURL)
	assert.Equal(t, "https://api.open-meteo.com/v1", cfg.Weather.Forecast.BaseURL)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidateRejectsBadLanguage(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Weather.DefaultLanguage = "english"
	assert.Error(t, cfg.Validate())

	cfg.Weather.DefaultLanguage = "EN"
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsBadPort(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())
}

func TestSetAndGetConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Environment = "test"
	SetConfig(cfg)

	assert.Same(t, cfg, GetConfig())
}
