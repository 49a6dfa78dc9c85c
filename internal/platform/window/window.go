// Package window is the desktop frontend built on Ebitengine.
//
// Ebitengine owns the frame clock here: it calls Update at the configured
// tick rate, and each Update runs exactly one loop tick. Draw replays the
// last presented frame, so redraws between ticks show the same picture.
package window

import (
	"fmt"
	_ "image/png"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/rps-arena/internal/assets"
	"github.com/vovakirdan/rps-arena/internal/config"
	"github.com/vovakirdan/rps-arena/internal/core"
	"github.com/vovakirdan/rps-arena/internal/engine"
	"github.com/vovakirdan/rps-arena/internal/registry"
	"github.com/vovakirdan/rps-arena/internal/sim"
)

// Title is the window title.
const Title = "Rock-Paper-Scissors"

func init() {
	registry.Register(registry.Info{
		ID:    "window",
		Title: "Desktop window (Ebitengine)",
	}, Open)
}

// Display is the window frontend.
type Display struct {
	cfg      config.Config
	theme    *assets.Theme
	logger   *log.Logger
	textures [sim.NumKinds]*ebiten.Image
	frames   recorder
	loop     *engine.Loop
}

// Open loads one texture per kind. A sprite image that cannot be decoded
// fails startup.
func Open(opts registry.Options) (registry.Display, error) {
	d := &Display{
		cfg:    opts.Config,
		theme:  opts.Theme,
		logger: opts.Logger,
	}

	for _, k := range sim.Kinds {
		tex, err := loadTexture(opts.Theme.Sprite(k), opts.Config.Entity.Size)
		if err != nil {
			return nil, err
		}
		d.textures[k] = tex
	}

	return d, nil
}

func loadTexture(s assets.Sprite, size int) (*ebiten.Image, error) {
	if s.Image != "" {
		img, _, err := ebitenutil.NewImageFromFile(s.Image)
		if err != nil {
			return nil, fmt.Errorf("window: cannot load %s sprite: %w", s.Kind, err)
		}
		return img, nil
	}

	img := ebiten.NewImage(size, size)
	img.Fill(s.RGBA)
	return img, nil
}

// Clear implements engine.Surface.
func (d *Display) Clear(core.Color) {
	d.frames.clear(d.theme.BackgroundRGBA)
}

// DrawSprite implements engine.Surface.
func (d *Display) DrawSprite(kind sim.Kind, x, y, size int) {
	d.frames.add(kind, x, y, size)
}

// ShowStatus implements engine.StatusSink.
func (d *Display) ShowStatus(st engine.Status) {
	d.frames.setStatus(st)
}

// Present implements engine.Surface.
func (d *Display) Present() {
	d.frames.present()
}

// Drain implements engine.Events. Closing the window, Q and Escape all
// request a quit.
func (d *Display) Drain() bool {
	return ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// Drive opens the window and runs the game until the loop stops.
func (d *Display) Drive(loop *engine.Loop) error {
	d.loop = loop

	ebiten.SetWindowSize(d.cfg.Arena.Width, d.cfg.Arena.Height)
	ebiten.SetWindowTitle(Title)
	ebiten.SetTPS(d.cfg.Timing.TickRate)
	ebiten.SetWindowClosingHandled(true)

	d.logger.Info("window opened", "width", d.cfg.Arena.Width, "height", d.cfg.Arena.Height, "tps", d.cfg.Timing.TickRate)
	if err := ebiten.RunGame(d); err != nil {
		return fmt.Errorf("window: %w", err)
	}

	stats := loop.Stats()
	d.logger.Info("simulation stopped", "ticks", stats.Ticks, "conversions", stats.Conversions)
	return nil
}

// Update implements ebiten.Game.
func (d *Display) Update() error {
	if d.loop.Stopped() {
		return ebiten.Termination
	}
	d.loop.Tick()
	return nil
}

// Draw implements ebiten.Game.
func (d *Display) Draw(screen *ebiten.Image) {
	f := &d.frames.presented
	screen.Fill(f.background)

	for _, p := range f.sprites {
		tex := d.textures[p.kind]
		b := tex.Bounds()

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(p.size)/float64(b.Dx()), float64(p.size)/float64(b.Dy()))
		op.GeoM.Translate(float64(p.x), float64(p.y))
		screen.DrawImage(tex, op)
	}

	ebitenutil.DebugPrint(screen, f.status)
}

// Layout implements ebiten.Game. The logical screen is the arena; the
// window scales it.
func (d *Display) Layout(_, _ int) (int, int) {
	return d.cfg.Arena.Width, d.cfg.Arena.Height
}

// Close releases the textures.
func (d *Display) Close() error {
	for _, tex := range d.textures {
		if tex != nil {
			tex.Deallocate()
		}
	}
	return nil
}

var _ ebiten.Game = (*Display)(nil)
