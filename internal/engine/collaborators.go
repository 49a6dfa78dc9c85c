package engine

import (
	"time"

	"github.com/vovakirdan/rps-arena/internal/core"
	"github.com/vovakirdan/rps-arena/internal/sim"
)

// Surface is the rendering collaborator. A frame is one Clear, one
// DrawSprite per entity, then Present.
type Surface interface {
	// Clear starts a frame filled with the background colour.
	Clear(bg core.Color)

	// DrawSprite draws the sprite for kind as a size x size square whose
	// top-left corner is at (x, y) in arena units.
	DrawSprite(kind sim.Kind, x, y, size int)

	// Present shows the finished frame.
	Present()
}

// Status is per-frame information a surface may display next to the arena.
type Status struct {
	Tick        uint64
	Census      sim.Census
	Conversions int // Conversions made during this tick
}

// StatusSink is implemented by surfaces that show a status line.
// The loop calls ShowStatus after the sprites and before Present.
type StatusSink interface {
	ShowStatus(Status)
}

// Events is the event collaborator.
type Events interface {
	// Drain consumes all pending events without blocking and reports
	// whether a quit was requested.
	Drain() bool
}

// EventsFunc adapts a function to Events.
type EventsFunc func() bool

// Drain implements Events.
func (f EventsFunc) Drain() bool {
	return f()
}

// AnyQuit combines event sources. Every source is drained on each call so
// none of them backs up; the result is true if any requested a quit.
func AnyQuit(sources ...Events) Events {
	return EventsFunc(func() bool {
		quit := false
		for _, s := range sources {
			if s.Drain() {
				quit = true
			}
		}
		return quit
	})
}

// TickLimit requests a quit on the n-th drain, so a loop driven by it runs
// exactly n ticks. n == 0 never quits.
func TickLimit(n uint64) Events {
	var drained uint64
	return EventsFunc(func() bool {
		if n == 0 {
			return false
		}
		drained++
		return drained >= n
	})
}

// Clock measures tick duration and performs the end-of-tick sleep.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep implements Clock.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }
