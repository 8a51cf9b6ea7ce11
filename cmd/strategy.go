package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/they4kman/minesweepah/director/constraint"
	"github.com/they4kman/minesweepah/director/random"
	"github.com/they4kman/minesweepah/game"
)

// Strategy picks which director plays under --director. It is a pflag.Value,
// and decodes from YAML and the environment by name.
type Strategy int

const (
	Constraint Strategy = iota
	Random
)

var strategies = map[string]Strategy{
	"constraint": Constraint,
	"random":     Random,
}

func (strategy *Strategy) String() string {
	for name, value := range strategies {
		if value == *strategy {
			return name
		}
	}
	return fmt.Sprint(int(*strategy))
}

func (strategy *Strategy) Set(value string) error {
	if parsed, isValid := strategies[value]; isValid {
		*strategy = parsed
		return nil
	}
	return fmt.Errorf("invalid strategy %q", value)
}

func (strategy *Strategy) Type() string {
	return "strategy"
}

func (strategy *Strategy) UnmarshalText(text []byte) error {
	return strategy.Set(string(text))
}

func (strategy *Strategy) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	return strategy.Set(name)
}

func (strategy Strategy) newDirector(interval time.Duration) game.Director {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	switch strategy {
	case Random:
		return &random.Director{Interval: interval, Rand: rng}
	default:
		return &constraint.Director{Interval: interval, Rand: rng}
	}
}
