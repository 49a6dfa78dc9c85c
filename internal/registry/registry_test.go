package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rps-arena/internal/config"
	"github.com/vovakirdan/rps-arena/internal/core"
	"github.com/vovakirdan/rps-arena/internal/engine"
	"github.com/vovakirdan/rps-arena/internal/sim"
)

type stubDisplay struct {
	opts   Options
	closed bool
}

func (d *stubDisplay) Clear(core.Color)                  {}
func (d *stubDisplay) DrawSprite(sim.Kind, int, int, int) {}
func (d *stubDisplay) Present()                          {}
func (d *stubDisplay) Drain() bool                       { return true }
func (d *stubDisplay) Drive(l *engine.Loop) error        { l.Run(); return nil }
func (d *stubDisplay) Close() error                      { d.closed = true; return nil }

func TestRegisterAndOpen(t *testing.T) {
	Register(Info{ID: "zz-stub", Title: "Stub"}, func(opts Options) (Display, error) {
		return &stubDisplay{opts: opts}, nil
	})

	assert.True(t, Exists("zz-stub"))
	assert.Contains(t, List(), Info{ID: "zz-stub", Title: "Stub"})

	d, err := Open("zz-stub", Options{Config: config.DefaultConfig()})
	require.NoError(t, err)
	assert.Equal(t, 800, d.(*stubDisplay).opts.Config.Arena.Width)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	factory := func(Options) (Display, error) { return &stubDisplay{}, nil }
	Register(Info{ID: "zz-dup"}, factory)

	assert.Panics(t, func() { Register(Info{ID: "zz-dup"}, factory) })
}

func TestOpenErrors(t *testing.T) {
	_, err := Open("does-not-exist", Options{})
	assert.ErrorContains(t, err, "unknown frontend")

	boom := errors.New("no display")
	Register(Info{ID: "zz-broken"}, func(Options) (Display, error) { return nil, boom })

	_, err = Open("zz-broken", Options{})
	assert.ErrorIs(t, err, boom)
}

func TestListIsSorted(t *testing.T) {
	factory := func(Options) (Display, error) { return &stubDisplay{}, nil }
	Register(Info{ID: "zz-b"}, factory)
	Register(Info{ID: "zz-a"}, factory)

	list := List()
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}
}
