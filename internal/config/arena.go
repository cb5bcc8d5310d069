package config

import (
	"errors"
	"fmt"
)

// Enemy move strategies.
const (
	AIRand          = "rand"
	AIMinMax        = "minmax"
	AIReinforcement = "reinforcement"
)

// ArenaConfig drives the stub game server. MaxTurns > 0 ends a battle as a
// draw once that many turns were resolved. AI picks the enemy strategy.
type ArenaConfig struct {
	Addr     string         `yaml:"addr"`
	Seed     int64          `yaml:"seed"`
	MaxTurns int            `yaml:"max_turns"`
	LogLevel string         `yaml:"log_level"`
	AI       string         `yaml:"ai"`
	Learning LearningConfig `yaml:"learning"`
	Classes  []ClassDef     `yaml:"-"`
}

// LearningConfig tunes the reinforcement strategy. The Q-table only lives
// in memory. With Train off the table is read but never updated.
type LearningConfig struct {
	Train        bool    `yaml:"train"         env:"ARENA_TRAIN"`
	LearningRate float64 `yaml:"learning_rate" env:"ARENA_LEARNING_RATE"`
	Discount     float64 `yaml:"discount"      env:"ARENA_DISCOUNT"`
	ExploreRate  float64 `yaml:"explore_rate"  env:"ARENA_EXPLORE_RATE"`
}

type arenaEnv struct {
	Addr     string `env:"ARENA_ADDR"`
	Seed     int64  `env:"ARENA_SEED"`
	MaxTurns int    `env:"ARENA_MAX_TURNS"`
	LogLevel string `env:"ARENA_LOG_LEVEL"`
	AI       string `env:"ARENA_AI"`
	Learning LearningConfig
}

func DefaultArena() *ArenaConfig {
	return &ArenaConfig{
		Addr:     ":8080",
		MaxTurns: 200,
		LogLevel: "info",
		AI:       AIMinMax,
		Learning: LearningConfig{
			Train:        true,
			LearningRate: 0.1,
			Discount:     0.9,
			ExploreRate:  1,
		},
		Classes: defaultClasses(),
	}
}

func (c *ArenaConfig) Validate() error {
	if c.MaxTurns < 0 {
		return errors.New("max_turns must not be negative")
	}
	switch c.AI {
	case AIRand, AIMinMax, AIReinforcement:
	default:
		return fmt.Errorf("ai: unknown strategy %q", c.AI)
	}
	for name, v := range map[string]float64{
		"learning_rate": c.Learning.LearningRate,
		"discount":      c.Learning.Discount,
		"explore_rate":  c.Learning.ExploreRate,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("learning.%s must be within [0, 1], got %v", name, v)
		}
	}
	if len(c.Classes) == 0 {
		return errors.New("no classes configured")
	}
	seen := map[string]bool{}
	for _, cd := range c.Classes {
		if cd.ID == "" {
			return errors.New("class with empty id")
		}
		if seen[cd.ID] {
			return fmt.Errorf("class %s defined twice", cd.ID)
		}
		seen[cd.ID] = true
		for _, r := range []StatRange{cd.Health, cd.Stamina, cd.Armor, cd.Strength, cd.Dexterity, cd.Intellect} {
			if !r.valid() {
				return fmt.Errorf("class %s: bad stat range %d..%d", cd.ID, r.Min, r.Max)
			}
		}
		if cd.Health.Min == 0 {
			return fmt.Errorf("class %s: health must start above zero", cd.ID)
		}
	}
	return nil
}

// Class looks up a class definition by id.
func (c *ArenaConfig) Class(id string) (ClassDef, bool) {
	for _, cd := range c.Classes {
		if cd.ID == id {
			return cd, true
		}
	}
	return ClassDef{}, false
}
