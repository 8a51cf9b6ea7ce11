package cmd

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/they4kman/minesweepah/game"
)

const envPrefix = "MINESWEEPAH_"

// Config is everything the command line can set. It is layered: defaults,
// then the YAML config file, then MINESWEEPAH_* environment variables, then
// any flags given explicitly.
type Config struct {
	Width        int           `yaml:"width" env:"WIDTH"`
	Height       int           `yaml:"height" env:"HEIGHT"`
	Mineiness    float64       `yaml:"mineiness" env:"MINEINESS"`
	Seed         int64         `yaml:"seed" env:"SEED"`
	TickInterval time.Duration `yaml:"tick_interval" env:"TICK_INTERVAL"`
	LogLevel     string        `yaml:"log_level" env:"LOG_LEVEL"`

	Director         bool          `yaml:"director" env:"DIRECTOR"`
	Strategy         Strategy      `yaml:"strategy" env:"STRATEGY"`
	DirectorInterval time.Duration `yaml:"director_interval" env:"DIRECTOR_INTERVAL"`
}

func NewConfig() Config {
	defaults := game.NewGameConfig()
	return Config{
		Width:            defaults.Width,
		Height:           defaults.Height,
		Mineiness:        defaults.Mineiness,
		TickInterval:     defaults.TickInterval,
		LogLevel:         "warning",
		Strategy:         Constraint,
		DirectorInterval: 500 * time.Millisecond,
	}
}

// LoadFile overlays the YAML file at path onto config. Keys missing from the
// file keep their current values.
func (config *Config) LoadFile(path string) error {
	in, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading config file")
	}
	if err := yaml.UnmarshalStrict(in, config); err != nil {
		return errors.Wrapf(err, "parsing config file %s", path)
	}
	return nil
}

// LoadEnv overlays MINESWEEPAH_* variables from environ onto config. A nil
// environ reads the process environment.
func (config *Config) LoadEnv(environ map[string]string) error {
	err := env.ParseWithOptions(config, env.Options{
		Prefix:      envPrefix,
		Environment: environ,
	})
	return errors.Wrap(err, "parsing environment")
}

func (config Config) GameConfig() game.GameConfig {
	gameConfig := game.NewGameConfig()
	gameConfig.Width = config.Width
	gameConfig.Height = config.Height
	gameConfig.Mineiness = config.Mineiness
	gameConfig.Seed = config.Seed
	gameConfig.TickInterval = config.TickInterval
	return gameConfig
}
