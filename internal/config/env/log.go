package env

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"fluttering_riches/internal/config"
)

type logConfig struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	LogOutput string `env:"LOG_OUTPUT" envDefault:"stdout"`
}

func NewLogConfig() (config.LogConfig, error) {
	var cfg logConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse log config: %w", err)
	}
	return &cfg, nil
}

func (cfg *logConfig) Level() string {
	return cfg.LogLevel
}

func (cfg *logConfig) Format() string {
	return cfg.LogFormat
}

func (cfg *logConfig) Output() string {
	return cfg.LogOutput
}
