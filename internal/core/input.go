package core

// Action represents a semantic user intent, abstracted from physical keys
// or window events. The simulation only reacts to ActionQuit.
type Action int

const (
	ActionNone Action = iota
	ActionQuit        // Q, Ctrl+C, Esc, window close
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
