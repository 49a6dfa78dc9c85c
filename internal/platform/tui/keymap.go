package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rps-arena/internal/core"
)

// KeyMap holds the terminal key bindings.
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to an action.
func (km KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	if key.Matches(msg, km.Quit) {
		return core.ActionQuit
	}
	return core.ActionNone
}

// Help is the short hint shown on the status line.
func (km KeyMap) Help() string {
	h := km.Quit.Help()
	return h.Key + " " + h.Desc
}
