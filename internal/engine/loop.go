// Package engine drives the simulation at a fixed tick rate.
//
// The Loop is the only owner of the arena. Each tick it drains the event
// source, moves every entity, resolves interactions and draws a value copy
// of the entities onto the surface. Run adds the fixed-rate pacing: it
// sleeps off whatever is left of the frame budget and never catches up on
// overruns.
package engine

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rps-arena/internal/config"
	"github.com/vovakirdan/rps-arena/internal/core"
	"github.com/vovakirdan/rps-arena/internal/sim"
)

// State is the loop's lifecycle state.
type State int

const (
	Running State = iota
	Stopped
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Stats accumulates counters over a run.
type Stats struct {
	Ticks       uint64
	Overruns    uint64        // Ticks that took longer than the frame budget
	Slept       time.Duration // Total end-of-tick sleep
	Conversions uint64
}

// Loop runs the simulation.
type Loop struct {
	arena    *sim.Arena
	resolver sim.Resolver
	surface  Surface
	events   Events
	clock    Clock
	logger   *log.Logger

	budget      time.Duration
	size        int
	background  core.Color
	paced       bool
	censusEvery uint64

	state State
	stats Stats
	view  []sim.Entity
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(l *Loop) { l.clock = c }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

// WithBackground sets the colour each frame is cleared to.
func WithBackground(c core.Color) Option {
	return func(l *Loop) { l.background = c }
}

// WithResolver overrides the resolver chosen from the configuration.
func WithResolver(r sim.Resolver) Option {
	return func(l *Loop) { l.resolver = r }
}

// WithoutPacing makes Run skip the end-of-tick sleep.
func WithoutPacing() Option {
	return func(l *Loop) { l.paced = false }
}

// WithCensusInterval logs the census every n ticks at debug level; 0 disables it.
func WithCensusInterval(n uint64) Option {
	return func(l *Loop) { l.censusEvery = n }
}

// New creates a loop in the Running state.
func New(cfg config.Config, arena *sim.Arena, surface Surface, events Events, opts ...Option) *Loop {
	l := &Loop{
		arena:       arena,
		resolver:    sim.NewResolver(cfg.Interaction),
		surface:     surface,
		events:      events,
		clock:       SystemClock{},
		logger:      log.New(io.Discard),
		budget:      cfg.Timing.FrameBudget(),
		size:        cfg.Entity.Size,
		paced:       true,
		censusEvery: uint64(cfg.Timing.TickRate) * 5,
		state:       Running,
		view:        make([]sim.Entity, 0, arena.Len()),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns the current lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// Stopped reports whether a quit has been observed.
func (l *Loop) Stopped() bool {
	return l.state == Stopped
}

// Stats returns the counters so far.
func (l *Loop) Stats() Stats {
	return l.stats
}

// Census returns the current per-kind counts.
func (l *Loop) Census() sim.Census {
	return l.arena.Census()
}

// Tick runs one iteration without pacing: drain events, move, resolve,
// render. A quit seen while draining stops the loop after this tick; the
// tick itself still completes. Tick does nothing once the loop is stopped.
func (l *Loop) Tick() {
	if l.state == Stopped {
		return
	}

	if l.events.Drain() {
		l.state = Stopped
		l.logger.Debug("quit requested", "tick", l.stats.Ticks+1)
	}

	l.arena.Step()
	conversions := l.arena.Resolve(l.resolver)

	l.stats.Ticks++
	l.stats.Conversions += uint64(conversions)

	l.render(conversions)

	if l.censusEvery > 0 && l.stats.Ticks%l.censusEvery == 0 {
		c := l.arena.Census()
		l.logger.Debug("census",
			"tick", l.stats.Ticks,
			"rock", c.Count(sim.Rock),
			"paper", c.Count(sim.Paper),
			"scissors", c.Count(sim.Scissors),
		)
	}
}

// render hands the surface a value copy of the entities.
func (l *Loop) render(conversions int) {
	l.view = l.arena.Snapshot(l.view)

	l.surface.Clear(l.background)
	for _, e := range l.view {
		l.surface.DrawSprite(e.Kind, e.X, e.Y, l.size)
	}
	if sink, ok := l.surface.(StatusSink); ok {
		sink.ShowStatus(Status{
			Tick:        l.stats.Ticks,
			Census:      sim.CensusOf(l.view),
			Conversions: conversions,
		})
	}
	l.surface.Present()
}

// Run ticks until a quit is observed, sleeping off the rest of each frame
// budget. A tick that overruns the budget is followed immediately by the
// next one; no ticks are skipped or merged to catch up.
func (l *Loop) Run() Stats {
	l.logger.Info("simulation started",
		"entities", l.arena.Len(),
		"arena", l.arena.Bounds(),
		"budget", l.budget,
		"paced", l.paced,
	)

	for l.state == Running {
		start := l.clock.Now()
		l.Tick()
		l.pace(l.clock.Now().Sub(start))
	}

	l.logger.Info("simulation stopped",
		"ticks", l.stats.Ticks,
		"overruns", l.stats.Overruns,
		"census", l.arena.Census().String(),
	)
	return l.stats
}

func (l *Loop) pace(elapsed time.Duration) {
	if elapsed > l.budget {
		l.stats.Overruns++
		l.logger.Debug("tick overran budget", "tick", l.stats.Ticks, "elapsed", elapsed, "budget", l.budget)
		return
	}
	if !l.paced || elapsed == l.budget {
		return
	}
	remaining := l.budget - elapsed
	l.clock.Sleep(remaining)
	l.stats.Slept += remaining
}
