// Package tui is the terminal frontend. A Bubble Tea program owns the
// terminal on the main goroutine while the engine loop runs on its own
// goroutine; the two exchange rendered frames, resize requests and quit
// requests over channels and program messages.
package tui

// frameMsg carries a fully rendered frame from the loop to the program.
type frameMsg string

// loopDoneMsg tells the program that the loop has stopped.
type loopDoneMsg struct{}

// size is a terminal size in cells.
type size struct {
	w, h int
}
