package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all run settings, populated from environment variables.
type Config struct {
	CSVPath         string `envconfig:"WEATHER_CSV_PATH" required:"true" validate:"required"`
	SummaryMode     string `envconfig:"SUMMARY_MODE" default:"both" validate:"oneof=overview daily both"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogFormat       string `envconfig:"LOG_FORMAT" default:"json" validate:"oneof=json text"`
	MetricsTextfile string `envconfig:"METRICS_TEXTFILE"`
}

var validate = validator.New()

// Load reads configuration from environment variables, applying defaults where
// unset. Variables from a .env file in the working directory are applied first
// but never override the real environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv reads configuration from the process environment only.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
