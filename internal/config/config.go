package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	OpenAIAPIKey  string        `env:"OPENAI_API_KEY,required,notEmpty"`
	OpenAIAPIBase string        `env:"OPENAI_API_BASE"`
	OpenAIModel   string        `env:"OPENAI_MODEL"                     envDefault:"gpt-4.1-mini"`
	OpenAITimeout time.Duration `env:"OPENAI_TIMEOUT"                   envDefault:"60s"`

	FetchTimeout  time.Duration `env:"FETCH_TIMEOUT"   envDefault:"10s"`
	FetchMaxBytes int64         `env:"FETCH_MAX_BYTES" envDefault:"5242880"`

	HTTPAddr        string        `env:"HTTP_ADDR"        envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	GinMode         string        `env:"GIN_MODE"         envDefault:"release"`

	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the configuration from the given key/value set instead of
// the process environment.
func LoadFrom(environment map[string]string) (Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.OpenAITimeout <= 0 {
		return Config{}, fmt.Errorf("OPENAI_TIMEOUT must be positive, got %s", cfg.OpenAITimeout)
	}

	if cfg.FetchTimeout <= 0 {
		return Config{}, fmt.Errorf("FETCH_TIMEOUT must be positive, got %s", cfg.FetchTimeout)
	}

	if cfg.FetchMaxBytes <= 0 {
		return Config{}, fmt.Errorf("FETCH_MAX_BYTES must be positive, got %d", cfg.FetchMaxBytes)
	}

	return cfg, nil
}
