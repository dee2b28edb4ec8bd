//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"mad-coral/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type coralCounter interface {
	Parameters() core.ParameterSnapshot
}

// Overlay draws the status bar and owns the drifter visibility toggle.
type Overlay struct {
	sim          core.Sim
	showDrifters bool
	showStatus   bool
	pixel        *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, showDrifters bool) *Overlay {
	o := &Overlay{sim: sim, showDrifters: showDrifters, showStatus: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay key bindings: D toggles drifters, T the status bar.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.showDrifters = !o.showDrifters
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		o.showStatus = !o.showStatus
	}
}

// ShowDrifters reports whether drifting particles should be painted.
func (o *Overlay) ShowDrifters() bool { return o.showDrifters }

// Draw renders the status bar onto the top-left of the screen.
func (o *Overlay) Draw(screen *ebiten.Image, paused bool) {
	if !o.showStatus {
		return
	}
	line := o.status(paused)
	face := basicfont.Face7x13
	bounds := text.BoundString(face, line)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx()+2*barPadding), float64(barHeight))
	op.ColorM.Scale(0, 0, 0, 0.6)
	screen.DrawImage(o.pixel, op)
	text.Draw(screen, line, face, barPadding, barHeight-barPadding, color.RGBA{R: 235, G: 235, B: 240, A: 255})
}

func (o *Overlay) status(paused bool) string {
	line := fmt.Sprintf("%s  tick %d", o.sim.Name(), o.sim.Tick())
	if provider, ok := o.sim.(coralCounter); ok {
		if p, ok := provider.Parameters().Lookup("corals"); ok {
			line += "  corals " + p.Value
		}
	}
	switch {
	case o.sim.Done():
		line += "  complete"
	case paused:
		line += "  paused"
	}
	if o.showDrifters {
		line += "  [drifters]"
	}
	return line
}

const (
	barPadding = 4
	barHeight  = 20
)
