package engine

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rps-arena/internal/config"
	"github.com/vovakirdan/rps-arena/internal/core"
	"github.com/vovakirdan/rps-arena/internal/sim"
)

type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

// recordingSurface logs draw calls. Present advances the clock by work to
// simulate per-tick cost.
type recordingSurface struct {
	clock    *fakeClock
	work     time.Duration
	calls    []string
	frames   int
	sprites  [][]sim.Entity
	current  []sim.Entity
	statuses []Status
}

func (s *recordingSurface) Clear(bg core.Color) {
	s.calls = append(s.calls, "clear "+string(bg))
	s.current = nil
}

func (s *recordingSurface) DrawSprite(kind sim.Kind, x, y, size int) {
	s.calls = append(s.calls, fmt.Sprintf("draw %s %d,%d %d", kind, x, y, size))
	s.current = append(s.current, sim.Entity{Kind: kind, X: x, Y: y})
}

func (s *recordingSurface) ShowStatus(st Status) {
	s.calls = append(s.calls, "status")
	s.statuses = append(s.statuses, st)
}

func (s *recordingSurface) Present() {
	s.calls = append(s.calls, "present")
	s.frames++
	s.sprites = append(s.sprites, s.current)
	if s.clock != nil {
		s.clock.now = s.clock.now.Add(s.work)
	}
}

func newTestLoop(t *testing.T, arena *sim.Arena, events Events, work time.Duration, opts ...Option) (*Loop, *recordingSurface, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(0, 0)}
	surface := &recordingSurface{clock: clock, work: work}
	opts = append([]Option{WithClock(clock)}, opts...)
	return New(config.DefaultConfig(), arena, surface, events, opts...), surface, clock
}

func TestTickOrder(t *testing.T) {
	arena := sim.NewArena(800, 600, []sim.Entity{
		{Kind: sim.Paper, X: 100, Y: 100, DX: 1, DY: 1},
		{Kind: sim.Scissors, X: 130, Y: 100, DX: -1, DY: 1},
	})
	loop, surface, _ := newTestLoop(t, arena, TickLimit(0), 0, WithBackground("#ffffff"))

	loop.Tick()

	// Sprites are drawn after the move (positions advanced) and after
	// resolution (the paper has become scissors).
	assert.Equal(t, []string{
		"clear #ffffff",
		"draw scissors 101,101 20",
		"draw scissors 129,101 20",
		"status",
		"present",
	}, surface.calls)

	require.Len(t, surface.statuses, 1)
	assert.Equal(t, Status{Tick: 1, Census: sim.Census{0, 0, 2}, Conversions: 1}, surface.statuses[0])
	assert.Equal(t, Running, loop.State())
}

func TestQuitCompletesCurrentTick(t *testing.T) {
	arena := sim.NewArena(800, 600, []sim.Entity{{Kind: sim.Rock, X: 10, Y: 10, DX: 2, DY: 2}})
	loop, surface, _ := newTestLoop(t, arena, EventsFunc(func() bool { return true }), 0)

	loop.Tick()

	assert.Equal(t, Stopped, loop.State())
	assert.True(t, loop.Stopped())
	assert.Equal(t, 1, surface.frames, "the tick that saw the quit is still rendered")
	assert.Equal(t, []sim.Entity{{Kind: sim.Rock, X: 12, Y: 12}}, surface.sprites[0], "and still moved")

	loop.Tick()
	assert.Equal(t, 1, surface.frames, "no ticks after stopping")
	assert.Equal(t, uint64(1), loop.Stats().Ticks)
}

func TestRunSleepsRemainderOfBudget(t *testing.T) {
	arena := sim.Populate(config.DefaultConfig(), rand.New(rand.NewSource(1)))
	loop, surface, clock := newTestLoop(t, arena, TickLimit(3), 4*time.Millisecond)

	stats := loop.Run()

	budget := config.DefaultConfig().Timing.FrameBudget()
	want := budget - 4*time.Millisecond
	assert.Equal(t, []time.Duration{want, want, want}, clock.sleeps)
	assert.Equal(t, uint64(3), stats.Ticks)
	assert.Zero(t, stats.Overruns)
	assert.Equal(t, 3*want, stats.Slept)
	assert.Equal(t, 3, surface.frames)
	assert.Equal(t, time.Unix(0, 0).Add(3*budget), clock.now, "each tick lasts exactly one budget")
}

func TestRunOverrunDoesNotSleepOrSkip(t *testing.T) {
	arena := sim.Populate(config.DefaultConfig(), rand.New(rand.NewSource(1)))
	loop, surface, clock := newTestLoop(t, arena, TickLimit(4), 25*time.Millisecond)

	stats := loop.Run()

	assert.Empty(t, clock.sleeps)
	assert.Equal(t, uint64(4), stats.Ticks, "slow ticks are neither skipped nor merged")
	assert.Equal(t, uint64(4), stats.Overruns)
	assert.Equal(t, 4, surface.frames)
	assert.Equal(t, time.Unix(0, 0).Add(100*time.Millisecond), clock.now)
}

func TestRunExactlyOnBudget(t *testing.T) {
	arena := sim.NewArena(10, 10, nil)
	budget := config.DefaultConfig().Timing.FrameBudget()
	loop, _, clock := newTestLoop(t, arena, TickLimit(2), budget)

	stats := loop.Run()

	assert.Empty(t, clock.sleeps)
	assert.Zero(t, stats.Overruns)
}

func TestRunWithoutPacing(t *testing.T) {
	arena := sim.Populate(config.DefaultConfig(), rand.New(rand.NewSource(1)))
	loop, _, clock := newTestLoop(t, arena, TickLimit(10), time.Millisecond, WithoutPacing())

	stats := loop.Run()

	assert.Empty(t, clock.sleeps)
	assert.Equal(t, uint64(10), stats.Ticks)
}

func TestRunConservesPopulation(t *testing.T) {
	cfg := config.DefaultConfig()
	arena := sim.Populate(cfg, rand.New(rand.NewSource(8)))
	loop, surface, _ := newTestLoop(t, arena, TickLimit(600), 0, WithoutPacing())

	loop.Run()

	require.Len(t, surface.sprites, 600)
	for i, frame := range surface.sprites {
		require.Len(t, frame, cfg.Population.Total(), "frame %d", i)
	}
	for _, st := range surface.statuses {
		require.Equal(t, cfg.Population.Total(), st.Census.Total())
	}
	assert.Equal(t, cfg.Population.Total(), loop.Census().Total())
}

func TestRunScenarioOneConversion(t *testing.T) {
	// Zero velocities keep every entity in place; one scissors sits inside
	// the threshold of one paper.
	arena := sim.NewArena(800, 600, []sim.Entity{
		{Kind: sim.Rock, X: 0, Y: 0},
		{Kind: sim.Rock, X: 200, Y: 0},
		{Kind: sim.Paper, X: 400, Y: 0},
		{Kind: sim.Paper, X: 600, Y: 0},
		{Kind: sim.Scissors, X: 410, Y: 10},
		{Kind: sim.Scissors, X: 0, Y: 400},
	})

	for _, res := range []config.Resolution{config.ResolutionAtomic, config.ResolutionSequential} {
		t.Run(string(res), func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Interaction.Resolution = res
			a := sim.NewArena(arena.Width(), arena.Height(), arena.Snapshot(nil))
			surface := &recordingSurface{}
			loop := New(cfg, a, surface, TickLimit(1), WithClock(&fakeClock{}))

			stats := loop.Run()

			assert.Equal(t, uint64(1), stats.Conversions)
			assert.Equal(t, sim.Census{2, 1, 3}, loop.Census())
			assert.Equal(t, sim.Scissors, surface.sprites[0][2].Kind)
		})
	}
}

func TestAnyQuitDrainsEverySource(t *testing.T) {
	var drained []string
	source := func(name string, quit bool) Events {
		return EventsFunc(func() bool {
			drained = append(drained, name)
			return quit
		})
	}

	assert.True(t, AnyQuit(source("a", true), source("b", false)).Drain())
	assert.Equal(t, []string{"a", "b"}, drained, "later sources drain even after a quit")

	assert.False(t, AnyQuit(source("c", false)).Drain())
}

func TestTickLimit(t *testing.T) {
	never := TickLimit(0)
	for i := 0; i < 100; i++ {
		require.False(t, never.Drain())
	}

	limit := TickLimit(3)
	assert.False(t, limit.Drain())
	assert.False(t, limit.Drain())
	assert.True(t, limit.Drain())
	assert.True(t, limit.Drain())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "stopped", Stopped.String())
	assert.Equal(t, "unknown", State(9).String())
}
