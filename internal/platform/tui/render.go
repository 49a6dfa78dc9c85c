package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rps-arena/internal/core"
)

// Renderer converts Screen buffers to styled strings. Styles are built once
// per (foreground, background) pair and cached.
type Renderer struct {
	background core.Color
	styles     map[core.Color]lipgloss.Style
}

// NewRenderer creates a renderer that paints every cell over bg.
// An empty bg keeps the terminal's own background.
func NewRenderer(bg core.Color) *Renderer {
	return &Renderer{
		background: bg,
		styles:     make(map[core.Color]lipgloss.Style),
	}
}

// SetBackground changes the background colour for subsequent renders.
func (r *Renderer) SetBackground(bg core.Color) {
	if bg == r.background {
		return
	}
	r.background = bg
	clear(r.styles)
}

func (r *Renderer) style(fg core.Color) lipgloss.Style {
	if style, ok := r.styles[fg]; ok {
		return style
	}
	style := lipgloss.NewStyle()
	if fg != core.ColorDefault {
		style = style.Foreground(lipgloss.Color(fg))
	}
	if r.background != core.ColorDefault {
		style = style.Background(lipgloss.Color(r.background))
	}
	r.styles[fg] = style
	return style
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
