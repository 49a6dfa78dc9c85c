package tui

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/rps-arena/internal/core"
	"github.com/vovakirdan/rps-arena/internal/engine"
	"github.com/vovakirdan/rps-arena/internal/registry"
	"github.com/vovakirdan/rps-arena/internal/sim"
)

// Default terminal size when the real one cannot be read.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ErrNotTerminal is returned when stdout is not a terminal.
var ErrNotTerminal = errors.New("tui: stdout is not a terminal")

func init() {
	registry.Register(registry.Info{
		ID:    "terminal",
		Title: "Terminal (Bubble Tea)",
	}, Open)
}

// Display is the terminal frontend.
type Display struct {
	board   *Board
	program *tea.Program
	logger  *log.Logger

	quit   chan struct{}
	resize chan size
}

// Open acquires the terminal.
func Open(opts registry.Options) (registry.Display, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	width, height, err := term.GetSize(fd)
	if err != nil {
		width, height = DefaultWidth, DefaultHeight
	}

	keys := DefaultKeyMap()
	d := &Display{
		board:  NewBoard(width, height, opts.Config.Arena.Width, opts.Config.Arena.Height, opts.Theme, keys.Help()),
		logger: opts.Logger,
		quit:   make(chan struct{}, 1),
		resize: make(chan size, 1),
	}
	d.program = tea.NewProgram(
		NewModel(keys, d.quit, d.resize),
		tea.WithAltScreen(),
	)

	d.logger.Debug("terminal opened", "width", width, "height", height)
	return d, nil
}

// Clear implements engine.Surface. Pending resizes are applied here, on the
// loop goroutine that owns the board.
func (d *Display) Clear(bg core.Color) {
	select {
	case s := <-d.resize:
		d.board.Resize(s.w, s.h)
	default:
	}
	d.board.Clear(bg)
}

// DrawSprite implements engine.Surface.
func (d *Display) DrawSprite(kind sim.Kind, x, y, size int) {
	d.board.DrawSprite(kind, x, y, size)
}

// ShowStatus implements engine.StatusSink.
func (d *Display) ShowStatus(st engine.Status) {
	d.board.ShowStatus(st)
}

// Present implements engine.Surface. Send blocks until the program accepts
// the frame and returns at once if the program has exited.
func (d *Display) Present() {
	d.program.Send(frameMsg(d.board.Frame()))
}

// Drain implements engine.Events.
func (d *Display) Drain() bool {
	select {
	case <-d.quit:
		return true
	default:
		return false
	}
}

// Drive runs the loop on its own goroutine while the program owns the
// terminal on this one. It returns once both have finished.
func (d *Display) Drive(loop *engine.Loop) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		loop.Run()
		d.program.Send(loopDoneMsg{})
	}()

	_, err := d.program.Run()
	// The program is gone; stop the loop if it is still running without a
	// terminal.
	signal[struct{}](d.quit, struct{}{})
	<-done

	if errors.Is(err, tea.ErrInterrupted) || errors.Is(err, tea.ErrProgramKilled) {
		d.logger.Debug("terminal program stopped", "err", err)
		return nil
	}
	return err
}

// Close implements registry.Display.
func (d *Display) Close() error {
	return nil
}
