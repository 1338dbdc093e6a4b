// Package config loads the CLI configuration from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/sw965/hotelling/game/sequential/hotelling"
	"github.com/sw965/hotelling/game/sequential/hotelling/sweep"
	"gopkg.in/yaml.v3"
)

const EnvLogLevel = "HOTELLING_LOG_LEVEL"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Solver SolverConfig `yaml:"solver"`
	Sweep  SweepConfig  `yaml:"sweep"`
	Log    LogConfig    `yaml:"log"`
}

type SolverConfig struct {
	Epsilon         float64 `yaml:"epsilon" validate:"gte=0"`
	Workers         int     `yaml:"workers" validate:"gte=1"`
	SymmetryPruning bool    `yaml:"symmetry_pruning"`
}

type SweepConfig struct {
	Players     int `yaml:"players" validate:"gte=1"`
	From        int `yaml:"from" validate:"gte=2"`
	To          int `yaml:"to" validate:"gtefield=From"`
	Step        int `yaml:"step" validate:"gte=1"`
	Concurrency int `yaml:"concurrency" validate:"gte=0"`
}

type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Solver: SolverConfig{
			Epsilon:         0,
			Workers:         1,
			SymmetryPruning: true,
		},
		Sweep: SweepConfig{
			Players:     3,
			From:        20,
			To:          60,
			Step:        1,
			Concurrency: 0,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path on top of Default. An empty path loads only the defaults.
// HOTELLING_LOG_LEVEL overrides log.level.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.Log.Level = level
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ApplySolver copies the solver settings onto s.
func (c Config) ApplySolver(s *hotelling.Solver) {
	s.Epsilon = c.Solver.Epsilon
	s.Workers = c.Solver.Workers
	s.DisableSymmetryPruning = !c.Solver.SymmetryPruning
}

func (c Config) SweepConfig() sweep.Config {
	return sweep.Config{
		Players:     c.Sweep.Players,
		From:        c.Sweep.From,
		To:          c.Sweep.To,
		Step:        c.Sweep.Step,
		Concurrency: c.Sweep.Concurrency,
	}
}
