package sim

import (
	"math/rand"

	"github.com/vovakirdan/rps-arena/internal/config"
	"github.com/vovakirdan/rps-arena/internal/core"
)

// Arena is the bounded rectangle that owns every entity for the run.
// The entity slice keeps its order and length for the arena's lifetime;
// only entity kinds, positions and velocity signs change.
type Arena struct {
	width    int
	height   int
	entities []Entity
}

// NewArena wraps an explicit entity list. The slice is copied.
func NewArena(width, height int, entities []Entity) *Arena {
	return &Arena{
		width:    width,
		height:   height,
		entities: append([]Entity(nil), entities...),
	}
}

// Populate creates the initial population described by cfg.
// Rocks start in the left third, papers in the middle third and scissors in
// the right third of the arena, at random heights, in that slice order.
func Populate(cfg config.Config, rng *rand.Rand) *Arena {
	w, h := cfg.Arena.Width, cfg.Arena.Height
	band := w / 3

	entities := make([]Entity, 0, cfg.Population.Total())
	spawn := func(kind Kind, count, offset int) {
		for i := 0; i < count; i++ {
			x := offset + rng.Intn(band)
			y := rng.Intn(h)
			entities = append(entities, NewEntity(kind, x, y, rng))
		}
	}
	spawn(Rock, cfg.Population.Rocks, 0)
	spawn(Paper, cfg.Population.Papers, band)
	spawn(Scissors, cfg.Population.Scissors, 2*band)

	return &Arena{width: w, height: h, entities: entities}
}

// Width returns the arena width.
func (a *Arena) Width() int {
	return a.width
}

// Height returns the arena height.
func (a *Arena) Height() int {
	return a.height
}

// Bounds returns the arena rectangle anchored at the origin.
func (a *Arena) Bounds() core.Rect {
	return core.NewRect(0, 0, a.width, a.height)
}

// Len returns the fixed entity count.
func (a *Arena) Len() int {
	return len(a.entities)
}

// Step moves every entity one tick.
func (a *Arena) Step() {
	for i := range a.entities {
		a.entities[i].Move(a.width, a.height)
	}
}

// Resolve hands the entity slice to r for the interaction phase and returns
// the number of conversions it made. r must not keep the slice.
func (a *Arena) Resolve(r Resolver) int {
	return r.Resolve(a.entities)
}

// Snapshot copies the entities into dst (reusing its capacity) and returns it.
// Callers get values, so nothing they do reaches the arena.
func (a *Arena) Snapshot(dst []Entity) []Entity {
	return append(dst[:0], a.entities...)
}

// Census counts entities per kind.
func (a *Arena) Census() Census {
	return CensusOf(a.entities)
}
