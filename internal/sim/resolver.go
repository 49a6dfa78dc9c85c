package sim

import (
	"github.com/vovakirdan/rps-arena/internal/config"
)

// Resolver applies the conversion rule to every colliding pair in one tick.
// Implementations get the slice only for the duration of the call.
type Resolver interface {
	// Resolve converts entities in place and returns how many conversions
	// happened.
	Resolve(entities []Entity) int
}

// Collides reports whether two entities are closer than threshold.
// Distances are compared squared, so the check is symmetric and exact.
func Collides(a, b Entity, threshold int) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx+dy*dy < threshold*threshold
}

// NewResolver returns the resolver selected by cfg.
func NewResolver(cfg config.InteractionConfig) Resolver {
	if cfg.Resolution == config.ResolutionSequential {
		return &SequentialResolver{Threshold: cfg.Threshold}
	}
	return &AtomicResolver{Threshold: cfg.Threshold}
}

// SequentialResolver scans every pair i < j in slice order and, when they
// collide, lets i try to convert j and then j try to convert i. Each call
// sees the mutations of the calls before it, including earlier pairs in the
// same scan, so the outcome depends on slice order.
type SequentialResolver struct {
	Threshold int
}

// Resolve implements Resolver.
func (r *SequentialResolver) Resolve(entities []Entity) int {
	conversions := 0
	for i := range entities {
		for j := i + 1; j < len(entities); j++ {
			if !Collides(entities[i], entities[j], r.Threshold) {
				continue
			}
			if entities[i].Interact(&entities[j]) {
				conversions++
			}
			if entities[j].Interact(&entities[i]) {
				conversions++
			}
		}
	}
	return conversions
}

// AtomicResolver decides every entity's next kind from the kinds all
// entities had when the tick started, then applies the changes together.
// An entity becomes its predator's kind if it collides with at least one
// entity of that kind. With three cyclic kinds a kind has exactly one
// predator, so no tie-break between competing winners is needed.
// The result does not depend on slice order.
type AtomicResolver struct {
	Threshold int

	// scratch, reused across ticks
	before []Kind
	next   []Kind
}

// Resolve implements Resolver.
func (r *AtomicResolver) Resolve(entities []Entity) int {
	r.before = r.before[:0]
	for _, e := range entities {
		r.before = append(r.before, e.Kind)
	}
	r.next = append(r.next[:0], r.before...)

	for i := range entities {
		for j := i + 1; j < len(entities); j++ {
			if !Collides(entities[i], entities[j], r.Threshold) {
				continue
			}
			ki, kj := r.before[i], r.before[j]
			if ki.Beats(kj) {
				r.next[j] = ki
			} else if kj.Beats(ki) {
				r.next[i] = kj
			}
		}
	}

	conversions := 0
	for i := range entities {
		if entities[i].Kind != r.next[i] {
			entities[i].Kind = r.next[i]
			conversions++
		}
	}
	return conversions
}
