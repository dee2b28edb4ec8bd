// Package term draws a running coral sim into a terminal with tcell.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"mad-coral/internal/core"
	"mad-coral/internal/render"
	"mad-coral/internal/sims/gallery"
)

// upperHalf paints the top sample in the foreground and the bottom sample in
// the background, so each terminal row shows two grid rows.
const upperHalf = '▀'

// maxCatchUp bounds how many ticks a single frame may simulate.
const maxCatchUp = 512

// Viewer renders a sim onto a tcell screen, one status line at the bottom.
type Viewer struct {
	screen  tcell.Screen
	sim     *gallery.Sim
	timer   *core.FixedStep
	palette *render.Palette

	seed         int64
	paused       bool
	showDrifters bool
}

// NewViewer binds sim to an initialised screen, stepping at tps ticks per
// second.
func NewViewer(screen tcell.Screen, sim *gallery.Sim, tps int, showDrifters bool) *Viewer {
	return &Viewer{
		screen:       screen,
		sim:          sim,
		timer:        core.NewFixedStep(tps),
		palette:      render.NewPalette(),
		seed:         sim.Engine().Config().Seed,
		showDrifters: showDrifters,
	}
}

// Run draws at frame rate until ctx is done or the user quits. The caller
// owns the screen and must Fini it afterwards, which also stops event polling.
func (v *Viewer) Run(ctx context.Context, frame time.Duration) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go pump(v.screen, events, done)

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !v.Handle(ev) {
				return nil
			}
			v.Draw()
		case now := <-ticker.C:
			v.Advance(now)
			v.Draw()
		}
	}
}

// pump forwards screen events until the screen is finalised or done closes.
func pump(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// Advance steps the sim by however many ticks are due at now.
func (v *Viewer) Advance(now time.Time) {
	due := v.timer.Due(now, maxCatchUp)
	if v.paused {
		return
	}
	for i := 0; i < due && !v.sim.Done(); i++ {
		v.sim.Step()
	}
}

// Handle applies a key binding and reports whether the viewer should keep
// running.
func (v *Viewer) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.paused = !v.paused
			case 'n':
				v.sim.Step()
			case 'd':
				v.showDrifters = !v.showDrifters
			case 'r':
				v.sim.Reset(v.seed)
			case 's':
				v.seed = time.Now().UnixNano()
				v.sim.Reset(v.seed)
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// Draw renders the current grid and the status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	if w <= 0 || h <= 1 {
		v.screen.Show()
		return
	}
	snap := v.sim.Engine().Snapshot(v.showDrifters)
	view := newSampler(snap.Rows, snap.Cols, w, 2*(h-1))
	for y := 0; y < h-1; y++ {
		for x := 0; x < w; x++ {
			top, okTop := view.sample(snap.Cells(), x, 2*y)
			bottom, okBottom := view.sample(snap.Cells(), x, 2*y+1)
			if !okTop {
				continue
			}
			style := tcell.StyleDefault.Foreground(v.color(top))
			if okBottom {
				style = style.Background(v.color(bottom))
			}
			v.screen.SetContent(x, y, upperHalf, nil, style)
		}
	}
	v.drawStatus(w, h-1)
	v.screen.Show()
}

func (v *Viewer) color(c core.Cell) tcell.Color {
	rgba := v.palette.Color(c)
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

func (v *Viewer) drawStatus(w, y int) {
	line := v.Status()
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		v.screen.SetContent(x, y, r, nil, style)
	}
}

// Status is the text of the bottom line.
func (v *Viewer) Status() string {
	state := "running"
	switch {
	case v.sim.Done():
		state = "complete"
	case v.paused:
		state = "paused"
	}
	drifters := "off"
	if v.showDrifters {
		drifters = "on"
	}
	eng := v.sim.Engine()
	return fmt.Sprintf(" %s  tick %d  corals %d  %s  drifters %s  [space] pause [n] step [d] drifters [r] reset [s] reseed [q] quit",
		v.sim.Name(), eng.Tick(), eng.CoralCount(), state, drifters)
}

// sampler maps screen pixels onto grid blocks when the grid is larger than the
// screen. A block shows its first coral cell, else its first drifter.
type sampler struct {
	rows, cols int
	bw, bh     int
}

func newSampler(rows, cols, w, h int) sampler {
	return sampler{rows: rows, cols: cols, bw: ceilDiv(cols, w), bh: ceilDiv(rows, h)}
}

func (s sampler) sample(cells []core.Cell, x, y int) (core.Cell, bool) {
	r0, c0 := y*s.bh, x*s.bw
	if r0 >= s.rows || c0 >= s.cols {
		return core.Cell{}, false
	}
	var drifter core.Cell
	for r := r0; r < min(r0+s.bh, s.rows); r++ {
		for c := c0; c < min(c0+s.bw, s.cols); c++ {
			cell := cells[r*s.cols+c]
			switch cell.Kind {
			case core.KindCoral:
				return cell, true
			case core.KindDrifting:
				drifter = cell
			}
		}
	}
	return drifter, true
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 1
	}
	return max((a+b-1)/b, 1)
}
