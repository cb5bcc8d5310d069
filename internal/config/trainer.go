package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

const DefaultBaseURL = "http://localhost:8080"

// TrainerConfig drives cmd/trainer. Zero MaxTurns, MaxBattles and
// RequestTimeout mean "no limit".
type TrainerConfig struct {
	BaseURL        string        `yaml:"base_url"        env:"TRAINER_BASE_URL"`
	Seed           int64         `yaml:"seed"            env:"TRAINER_SEED"`
	MaxTurns       int           `yaml:"max_turns"       env:"TRAINER_MAX_TURNS"`
	MaxBattles     int           `yaml:"max_battles"     env:"TRAINER_MAX_BATTLES"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"TRAINER_REQUEST_TIMEOUT"`
	LogLevel       string        `yaml:"log_level"       env:"TRAINER_LOG_LEVEL"`
}

func DefaultTrainer() *TrainerConfig {
	return &TrainerConfig{
		BaseURL:  DefaultBaseURL,
		LogLevel: "info",
	}
}

func (c *TrainerConfig) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url: unsupported scheme %q", u.Scheme)
	}
	if c.MaxTurns < 0 || c.MaxBattles < 0 {
		return errors.New("max_turns and max_battles must not be negative")
	}
	if c.RequestTimeout < 0 {
		return errors.New("request_timeout must not be negative")
	}
	return nil
}
