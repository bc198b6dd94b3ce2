// Package config defines environment configuration for the service.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// AppConfig holds process-wide settings read once at startup.
//
// The OpenAI API key is deliberately absent: it is resolved from the
// environment on every generation call so the key can be rotated without a
// restart. See agent.Config.LoadEnv.
type AppConfig struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"PORT" envDefault:"8000"`

	OpenAIModel       string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIMaxTokens   int           `env:"OPENAI_MAX_TOKENS" envDefault:"4000"`
	OpenAITemperature float64       `env:"OPENAI_TEMPERATURE" envDefault:"0.7"`
	OpenAITimeout     time.Duration `env:"OPENAI_TIMEOUT" envDefault:"60s"`
}

// Load parses AppConfig from the process environment.
func Load() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
