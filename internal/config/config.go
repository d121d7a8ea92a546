package config

import (
	"fmt"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
)

var configValue atomic.Value

func GetConfig() *Config {
	return configValue.Load().(*Config)
}

func SetConfig(cfg *Config) {
	configValue.Store(cfg)
}

type Config struct {
	Version     string          `mapstructure:"version"`
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Weather     WeatherConfig   `mapstructure:"weather"`
	Logging     LoggingConfig   `mapstructure:"logging"`
	Telemetry   TelemetryConfig `mapstructure:"telemetry"`
}

type ServerConfig struct {
	Port         int    `mapstructure:"port" validate:"min=1,max=65535"`
	Host         string `mapstructure:"host"`
	ReadTimeout  int    `mapstructure:"read_timeout" validate:"min=0"`
	WriteTimeout int    `mapstructure:"write_timeout" validate:"min=0"`
	IdleTimeout  int    `mapstructure:"idle_timeout" validate:"min=0"`
	// StaticDir is served for requests that match no route. Empty disables it.
	StaticDir string `mapstructure:"static_dir"`
}

type WeatherConfig struct {
	DefaultLanguage string         `mapstructure:"default_language" validate:"required,len=2,lowercase,alpha"`
	Timeout         int            `mapstructure:"timeout" validate:"min=1"`
	Geocoding       UpstreamConfig `mapstructure:"geocoding"`
	Forecast        UpstreamConfig `mapstructure:"forecast"`
}

type UpstreamConfig struct {
	BaseURL string            `mapstructure:"base_url" validate:"required,url"`
	Params  map[string]string `mapstructure:"params"`
}

type LoggingConfig struct {
	Level      string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format     string `mapstructure:"format" validate:"oneof=json console"`
	OutputPath string `mapstructure:"output_path"`
}

type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
}

func NewDefaultConfig() *Config {
	return &Config{
		Version:     "1.0.0",
		Environment: "development",
		Server: ServerConfig{
			Port:         8080,
			Host:         "0.0.0.0",
			ReadTimeout:  30,
			WriteTimeout: 30,
			IdleTimeout:  60,
			StaticDir:    "",
		},
		Weather: WeatherConfig{
			DefaultLanguage: "en",
			Timeout:         10,
			Geocoding: UpstreamConfig{
				BaseURL: "https://geocoding-api.open-meteo.com/v1",
				Params: map[string]string{
					"format": "json",
				},
			},
			Forecast: UpstreamConfig{
				BaseURL: "https://api.open-meteo.com/v1",
				Params: map[string]string{
					"timezone": "auto",
				},
			},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			OutputPath: "",
		},
		Telemetry: TelemetryConfig{
			Enabled:     false,
			Endpoint:    "tempo:4317",
			ServiceName: "weather-reply",
		},
	}
}

// Validate checks the loaded values before any component is built from them.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
