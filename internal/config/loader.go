package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// loadOptionalYAML is loadYAML that treats a missing file as "keep defaults".
func loadOptionalYAML(path string, out any) error {
	err := loadYAML(path, out)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadTrainer builds the trainer configuration: defaults, then the YAML file
// at path (if path is non-empty), then TRAINER_* environment variables.
func LoadTrainer(path string) (*TrainerConfig, error) {
	cfg := DefaultTrainer()
	if path != "" {
		if err := loadYAML(path, cfg); err != nil {
			return nil, fmt.Errorf("load trainer config %s: %w", path, err)
		}
	}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadArena reads arena.yaml and classes.yaml from dir. Either file may be
// absent, and an empty dir yields the built-in defaults. ARENA_* environment
// variables are applied last.
func LoadArena(dir string) (*ArenaConfig, error) {
	cfg := DefaultArena()
	if dir != "" {
		if err := loadOptionalYAML(filepath.Join(dir, "arena.yaml"), cfg); err != nil {
			return nil, fmt.Errorf("load arena config: %w", err)
		}
		var cc ClassesConfig
		if err := loadOptionalYAML(filepath.Join(dir, "classes.yaml"), &cc); err != nil {
			return nil, fmt.Errorf("load classes config: %w", err)
		}
		if len(cc.Classes) > 0 {
			cfg.Classes = cc.Classes
		}
	}

	ov := arenaEnv{Addr: cfg.Addr, Seed: cfg.Seed, MaxTurns: cfg.MaxTurns, LogLevel: cfg.LogLevel, AI: cfg.AI, Learning: cfg.Learning}
	if err := ParseEnv(&ov); err != nil {
		return nil, err
	}
	cfg.Addr, cfg.Seed, cfg.MaxTurns, cfg.LogLevel = ov.Addr, ov.Seed, ov.MaxTurns, ov.LogLevel
	cfg.AI, cfg.Learning = ov.AI, ov.Learning

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
