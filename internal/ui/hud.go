//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"mad-coral/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBG     = color.RGBA{R: 10, G: 14, B: 40, A: 255}
	headingFG   = color.RGBA{R: 200, G: 210, B: 235, A: 255}
	labelFG     = color.RGBA{R: 220, G: 224, B: 235, A: 255}
	dimFG       = color.RGBA{R: 140, G: 146, B: 170, A: 255}
	buttonBG    = color.RGBA{R: 40, G: 52, B: 96, A: 255}
	buttonOffBG = color.RGBA{R: 24, G: 28, B: 52, A: 255}
)

// HUD is the side panel: the adjustable growth parameters with -/+ buttons,
// followed by every other parameter the sim reports. Adjustments take effect
// when the sim is next reset.
type HUD struct {
	sim   core.Sim
	width int

	provider core.ParameterProvider
	ints     core.IntParameterSetter
	floats   core.FloatParameterSetter

	controls []controlState
	groups   []core.ParameterGroup
	offsetX  int

	panel *ebiten.Image
	pixel *ebiten.Image
}

// NewHUD builds a panel of the given pixel width for sim. A non-positive
// width disables the panel.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0)}
	h.provider, _ = sim.(core.ParameterProvider)
	h.ints, _ = sim.(core.IntParameterSetter)
	h.floats, _ = sim.(core.FloatParameterSetter)
	if p, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = newControls(p.ParameterControls())
	}
	for i := range h.controls {
		top := controlsTop + i*rowHeight
		y := top + (rowHeight-buttonSize)/2
		plus := image.Rect(h.width-padding-buttonSize, y, h.width-padding, y+buttonSize)
		h.controls[i].top = top
		h.controls[i].plus = plus
		h.controls[i].minus = plus.Sub(image.Pt(buttonSize+buttonGap, 0))
	}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Update refreshes parameter values and handles button clicks. offsetX is
// where the panel starts on screen.
func (h *HUD) Update(offsetX int) {
	if h == nil || h.provider == nil {
		return
	}
	h.offsetX = offsetX
	snap := h.provider.Parameters()
	for i := range h.controls {
		h.controls[i].refresh(snap)
	}
	h.groups = readOnly(snap, h.controls)

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	pt := image.Pt(mx-h.offsetX, my)
	for i := range h.controls {
		c := &h.controls[i]
		switch {
		case pt.In(c.minus):
			c.adjust(-1, h.ints, h.floats)
			return
		case pt.In(c.plus):
			c.adjust(1, h.ints, h.floats)
			return
		}
	}
}

// Draw paints the panel at offsetX, matching the scaled grid height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.sim.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBG)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.sim.Name(), face, padding, padding+baseline, headingFG)
	text.Draw(h.panel, "R applies changes", face, padding, padding+baseline+lineHeight, dimFG)

	for i := range h.controls {
		h.drawControl(&h.controls[i])
	}

	y := controlsTop + len(h.controls)*rowHeight + lineHeight
	for _, g := range h.groups {
		text.Draw(h.panel, g.Name, face, padding, y, headingFG)
		y += lineHeight
		for _, p := range g.Params {
			text.Draw(h.panel, p.Label, face, padding, y, dimFG)
			h.drawRight(p.Value, h.width-padding, y, labelFG)
			y += lineHeight
		}
		y += lineHeight / 2
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControl(c *controlState) {
	y := c.top + rowBaseline
	fg := labelFG
	if !c.known {
		fg = dimFG
	}
	text.Draw(h.panel, c.ctrl.Label, basicfont.Face7x13, padding, y, fg)
	h.drawRight(c.text, c.minus.Min.X-buttonGap, y, fg)

	_, canDown := c.target(-1)
	_, canUp := c.target(1)
	h.drawButton(c.minus, "-", canDown)
	h.drawButton(c.plus, "+", canUp)
}

func (h *HUD) drawRight(s string, right, y int, fg color.Color) {
	face := basicfont.Face7x13
	text.Draw(h.panel, s, face, right-text.BoundString(face, s).Dx(), y, fg)
}

func (h *HUD) drawButton(r image.Rectangle, label string, enabled bool) {
	bg, fg := buttonBG, labelFG
	if !enabled {
		bg, fg = buttonOffBG, dimFG
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	text.Draw(h.panel, label, face, r.Min.X+(r.Dx()-b.Dx())/2, r.Min.Y+(r.Dy()+b.Dy())/2, fg)
}

const (
	padding     = 12
	baseline    = 14
	lineHeight  = 16
	rowHeight   = 32
	rowBaseline = 20
	buttonSize  = 22
	buttonGap   = 6
	controlsTop = padding + baseline + 2*lineHeight
)
