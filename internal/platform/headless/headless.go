// Package headless is a frontend that draws nothing. Quit requests come
// from SIGINT and SIGTERM; it is used for census runs and benchmarks.
package headless

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rps-arena/internal/core"
	"github.com/vovakirdan/rps-arena/internal/engine"
	"github.com/vovakirdan/rps-arena/internal/registry"
	"github.com/vovakirdan/rps-arena/internal/sim"
)

func init() {
	registry.Register(registry.Info{
		ID:    "headless",
		Title: "Headless (no output)",
	}, func(opts registry.Options) (registry.Display, error) {
		return Open(opts), nil
	})
}

// Display counts frames instead of drawing them.
type Display struct {
	logger  *log.Logger
	signals chan os.Signal

	frames  uint64
	sprites int
	last    engine.Status
}

// Open starts listening for termination signals.
func Open(opts registry.Options) *Display {
	d := &Display{
		logger:  opts.Logger,
		signals: make(chan os.Signal, 1),
	}
	signal.Notify(d.signals, os.Interrupt, syscall.SIGTERM)
	return d
}

// Clear implements engine.Surface.
func (d *Display) Clear(core.Color) {
	d.sprites = 0
}

// DrawSprite implements engine.Surface.
func (d *Display) DrawSprite(sim.Kind, int, int, int) {
	d.sprites++
}

// ShowStatus implements engine.StatusSink.
func (d *Display) ShowStatus(st engine.Status) {
	d.last = st
}

// Present implements engine.Surface.
func (d *Display) Present() {
	d.frames++
}

// Frames returns the number of frames presented.
func (d *Display) Frames() uint64 {
	return d.frames
}

// LastSprites returns how many sprites the last frame drew.
func (d *Display) LastSprites() int {
	return d.sprites
}

// LastStatus returns the status of the last frame.
func (d *Display) LastStatus() engine.Status {
	return d.last
}

// Drain implements engine.Events.
func (d *Display) Drain() bool {
	select {
	case sig := <-d.signals:
		d.logger.Info("signal received", "signal", sig)
		return true
	default:
		return false
	}
}

// Drive runs the loop at its own pace.
func (d *Display) Drive(loop *engine.Loop) error {
	loop.Run()
	return nil
}

// Close stops signal delivery.
func (d *Display) Close() error {
	signal.Stop(d.signals)
	return nil
}
