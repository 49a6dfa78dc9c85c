// Package sim implements the rock-paper-scissors arena: entities, their
// motion inside a reflective rectangle, and pairwise type conversion.
// It has no notion of time, rendering or input.
package sim

import (
	"math/rand"
)

// MaxSpeed is the largest per-axis velocity magnitude. Velocities are drawn
// from {-MaxSpeed..-1, 1..MaxSpeed}; zero is never produced.
const MaxSpeed = 2

// Entity is a single simulated object.
type Entity struct {
	Kind Kind
	X, Y int // Top-left corner in arena units
	DX   int // Per-tick velocity, never 0
	DY   int
}

// NewEntity creates an entity at (x, y) with a random velocity direction.
func NewEntity(kind Kind, x, y int, rng *rand.Rand) Entity {
	return Entity{
		Kind: kind,
		X:    x,
		Y:    y,
		DX:   RandomVelocity(rng),
		DY:   RandomVelocity(rng),
	}
}

// RandomVelocity returns a magnitude in [1, MaxSpeed] with a random sign.
func RandomVelocity(rng *rand.Rand) int {
	v := rng.Intn(MaxSpeed) + 1
	if rng.Intn(2) == 0 {
		return v
	}
	return -v
}

// Move advances the entity by its velocity. An axis whose new coordinate
// leaves [0, dim) has its velocity negated; the position is not clamped, so
// the entity sits past the wall for one tick before heading back.
func (e *Entity) Move(width, height int) {
	e.X += e.DX
	e.Y += e.DY
	if e.X < 0 || e.X >= width {
		e.DX = -e.DX
	}
	if e.Y < 0 || e.Y >= height {
		e.DY = -e.DY
	}
}

// Interact converts other into e's kind if e beats it.
// Only this direction is applied; the reverse needs other.Interact(e).
// Returns true if other was converted.
func (e *Entity) Interact(other *Entity) bool {
	if !e.Kind.Beats(other.Kind) {
		return false
	}
	other.Kind = e.Kind
	return true
}
