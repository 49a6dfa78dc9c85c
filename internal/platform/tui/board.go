package tui

import (
	"fmt"

	"github.com/vovakirdan/rps-arena/internal/assets"
	"github.com/vovakirdan/rps-arena/internal/core"
	"github.com/vovakirdan/rps-arena/internal/engine"
	"github.com/vovakirdan/rps-arena/internal/sim"
)

// Minimum terminal size that still fits the border, one row of cells and
// the status line.
const (
	MinWidth  = 3
	MinHeight = 4
)

// Board paints frames into a character buffer. The arena is scaled to fit
// inside a border; the last row is the status line.
type Board struct {
	screen   *core.Screen
	renderer *Renderer
	theme    *assets.Theme
	arenaW   int
	arenaH   int
	help     string
}

// NewBoard creates a board for a width x height terminal showing an arena
// of arenaW x arenaH units.
func NewBoard(width, height, arenaW, arenaH int, theme *assets.Theme, help string) *Board {
	return &Board{
		screen:   core.NewScreen(max(width, MinWidth), max(height, MinHeight)),
		renderer: NewRenderer(theme.Background),
		theme:    theme,
		arenaW:   arenaW,
		arenaH:   arenaH,
		help:     help,
	}
}

// Screen exposes the buffer for inspection.
func (b *Board) Screen() *core.Screen {
	return b.screen
}

// Resize changes the terminal size.
func (b *Board) Resize(width, height int) {
	b.screen.Resize(max(width, MinWidth), max(height, MinHeight))
}

// field is the area inside the border.
func (b *Board) field() core.Rect {
	return core.NewRect(1, 1, b.screen.Width()-2, b.screen.Height()-3)
}

// Clear starts a new frame.
func (b *Board) Clear(bg core.Color) {
	b.renderer.SetBackground(bg)
	b.screen.Clear()
	b.screen.DrawBox(core.NewRect(0, 0, b.screen.Width(), b.screen.Height()-1), core.ColorGray)
}

// DrawSprite fills the scaled footprint of an entity with its glyph.
// Cells outside the field are clipped, so entities that stepped past the
// edge this tick stay inside the border.
func (b *Board) DrawSprite(kind sim.Kind, x, y, size int) {
	f := b.field()
	sprite := b.theme.Sprite(kind)
	cell := core.Cell{Rune: sprite.Glyph, Color: sprite.Color}

	fp := core.NewRect(
		f.X+core.Scale(x, b.arenaW, f.W),
		f.Y+core.Scale(y, b.arenaH, f.H),
		max(1, core.Scale(size, b.arenaW, f.W)),
		max(1, core.Scale(size, b.arenaH, f.H)),
	)
	if !fp.Intersects(f) {
		return
	}

	x0, x1 := core.Clamp(fp.X, f.X, f.Right()), core.Clamp(fp.Right(), f.X, f.Right())
	y0, y1 := core.Clamp(fp.Y, f.Y, f.Bottom()), core.Clamp(fp.Bottom(), f.Y, f.Bottom())
	b.screen.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), cell)
}

// ShowStatus writes the census and tick counter on the last row.
func (b *Board) ShowStatus(st engine.Status) {
	y := b.screen.Height() - 1
	x := 1
	for _, k := range sim.Kinds {
		sprite := b.theme.Sprite(k)
		text := fmt.Sprintf("%c %d  ", sprite.Glyph, st.Census.Count(k))
		b.screen.DrawText(x, y, text, sprite.Color)
		x += len([]rune(text))
	}
	b.screen.DrawText(x, y, fmt.Sprintf("tick %d  %s", st.Tick, b.help), core.ColorGray)
}

// Frame renders the buffer to a styled string.
func (b *Board) Frame() string {
	return b.renderer.Render(b.screen)
}
