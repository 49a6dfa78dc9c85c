package window

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/rps-arena/internal/engine"
	"github.com/vovakirdan/rps-arena/internal/sim"
)

// placement is one sprite in a frame.
type placement struct {
	kind sim.Kind
	x, y int
	size int
}

// frame is a display list built by the loop in Update and replayed by Draw.
type frame struct {
	background color.RGBA
	sprites    []placement
	status     string
}

// recorder collects the frame under construction and keeps the last
// presented one.
type recorder struct {
	building  frame
	presented frame
	count     uint64
}

func (r *recorder) clear(bg color.RGBA) {
	r.building.background = bg
	r.building.sprites = r.building.sprites[:0]
	r.building.status = ""
}

func (r *recorder) add(kind sim.Kind, x, y, size int) {
	r.building.sprites = append(r.building.sprites, placement{kind: kind, x: x, y: y, size: size})
}

func (r *recorder) setStatus(st engine.Status) {
	r.building.status = statusText(st)
}

// present swaps the buffers so the slices are reused.
func (r *recorder) present() {
	r.building, r.presented = r.presented, r.building
	r.count++
}

func statusText(st engine.Status) string {
	return fmt.Sprintf("rock %d  paper %d  scissors %d  tick %d",
		st.Census.Count(sim.Rock), st.Census.Count(sim.Paper), st.Census.Count(sim.Scissors), st.Tick)
}
