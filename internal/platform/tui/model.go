package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rps-arena/internal/core"
)

// Model is the Bubble Tea model for the terminal frontend. It only shows
// frames produced by the loop and forwards quit and resize requests back.
type Model struct {
	keys     KeyMap
	quit     chan<- struct{}
	resize   chan size
	view     string
	quitting bool
}

// NewModel creates a model that signals quit and resize requests on the
// given channels. Sends never block; a pending request is enough.
func NewModel(keys KeyMap, quit chan<- struct{}, resize chan size) Model {
	return Model{
		keys:   keys,
		quit:   quit,
		resize: resize,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.MapKey(msg) == core.ActionQuit {
			m.quitting = true
			signal(m.quit, struct{}{})
		}

	case tea.WindowSizeMsg:
		replace(m.resize, size{w: msg.Width, h: msg.Height})

	case frameMsg:
		m.view = string(msg)

	case loopDoneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View returns the most recent frame.
func (m Model) View() string {
	return m.view
}

// Quitting reports whether a quit was requested.
func (m Model) Quitting() bool {
	return m.quitting
}

// signal performs a non-blocking send.
func signal[T any](ch chan<- T, v T) {
	select {
	case ch <- v:
	default:
	}
}

// replace puts v on a one-slot channel, dropping a value the receiver has
// not picked up yet so only the latest survives.
func replace(ch chan size, v size) {
	select {
	case <-ch:
	default:
	}
	signal[size](ch, v)
}
