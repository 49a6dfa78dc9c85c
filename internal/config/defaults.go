package config

import (
	_ "embed"
)

//go:embed defaults/arena.yaml
var defaultArenaYAML []byte

// Default startup parameters.
const (
	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultSize      = 20
	DefaultCount     = 20
	DefaultThreshold = 50
	DefaultTickRate  = 60
)

// DefaultConfig returns the hard-coded default configuration.
// It mirrors defaults/arena.yaml and is the fallback if the embed is unusable.
func DefaultConfig() Config {
	return Config{
		Arena: ArenaConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Entity: EntityConfig{
			Size: DefaultSize,
		},
		Population: PopulationConfig{
			Rocks:    DefaultCount,
			Papers:   DefaultCount,
			Scissors: DefaultCount,
		},
		Interaction: InteractionConfig{
			Threshold:  DefaultThreshold,
			Resolution: ResolutionAtomic,
		},
		Timing: TimingConfig{
			TickRate: DefaultTickRate,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultArenaYAML
}
