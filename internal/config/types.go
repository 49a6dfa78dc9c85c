// Package config provides YAML-based configuration loading for the arena.
// A Config is built once at startup, validated, and then passed by value to
// every component that needs it; nothing mutates it afterwards.
package config

import "time"

// Config contains every startup parameter of a simulation run.
type Config struct {
	Arena       ArenaConfig       `yaml:"arena"`
	Entity      EntityConfig      `yaml:"entity"`
	Population  PopulationConfig  `yaml:"population"`
	Interaction InteractionConfig `yaml:"interaction"`
	Timing      TimingConfig      `yaml:"timing"`
	Seed        int64             `yaml:"seed"` // 0 = seed from current time
}

// ArenaConfig defines the bounded rectangle entities move in.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// EntityConfig defines the drawn footprint of every entity.
type EntityConfig struct {
	Size int `yaml:"size"`
}

// PopulationConfig defines how many entities of each kind are created.
type PopulationConfig struct {
	Rocks    int `yaml:"rocks"`
	Papers   int `yaml:"papers"`
	Scissors int `yaml:"scissors"`
}

// Total returns the fixed entity count N for the run.
func (p PopulationConfig) Total() int {
	return p.Rocks + p.Papers + p.Scissors
}

// Resolution selects how colliding pairs convert each other.
type Resolution string

const (
	// ResolutionAtomic computes every entity's next kind from a snapshot of
	// pre-tick kinds and applies all conversions together.
	ResolutionAtomic Resolution = "atomic"

	// ResolutionSequential applies a->b then b->a for each colliding pair in
	// slice order, each call seeing earlier mutations.
	ResolutionSequential Resolution = "sequential"
)

// InteractionConfig defines collision detection and conversion.
type InteractionConfig struct {
	Threshold  int        `yaml:"threshold"`
	Resolution Resolution `yaml:"resolution"`
}

// TimingConfig defines the fixed tick rate.
type TimingConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// FrameBudget returns the wall-clock time allotted to one tick.
func (t TimingConfig) FrameBudget() time.Duration {
	if t.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(t.TickRate)
}
