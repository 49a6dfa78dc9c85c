// Package registry provides a global registry for frontend factories.
// Frontends register themselves in init() functions, allowing the CLI to
// discover and open them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rps-arena/internal/assets"
	"github.com/vovakirdan/rps-arena/internal/config"
	"github.com/vovakirdan/rps-arena/internal/engine"
)

// Display is an opened frontend: the loop's rendering surface and event
// source, plus the way the frontend drives the loop.
type Display interface {
	engine.Surface
	engine.Events

	// Drive runs the loop until it stops. Self-paced frontends call
	// loop.Run; frontends that own the frame clock call loop.Tick.
	Drive(loop *engine.Loop) error

	// Close releases the frontend's resources.
	Close() error
}

// Options are passed to a factory when a frontend is opened.
type Options struct {
	Config config.Config
	Theme  *assets.Theme
	Logger *log.Logger
}

// Factory opens a frontend. Any error is a fatal startup failure.
type Factory func(opts Options) (Display, error)

// Info contains metadata about a registered frontend.
type Info struct {
	ID    string
	Title string
}

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Typically called from a frontend's init() function.
// Panics if a frontend with the same ID is already registered.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[info.ID]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", info.ID))
	}

	factories[info.ID] = f
	titles[info.ID] = info.Title
}

// List returns information about all registered frontends, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Open creates a frontend by its ID.
// Returns an error if the ID is not registered or the frontend fails to open.
func Open(id string, opts Options) (Display, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}

	d, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: cannot open %s: %w", id, err)
	}
	return d, nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
