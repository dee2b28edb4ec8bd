package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"mad-coral/internal/core"
)

var (
	// Background is the deep-water color behind empty cells.
	Background = color.RGBA{R: 0x00, G: 0x00, B: 0x88, A: 0xff}
	// DrifterColor marks in-flight particles when they are shown.
	DrifterColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

const fullScale = 100

// CoralColor converts a rooted cell's hue/saturation/brightness to RGB.
// Brightness above full scale renders as full brightness.
func CoralColor(c core.Cell) color.RGBA {
	s := float64(clampScale(c.Saturation)) / fullScale
	v := float64(clampScale(c.Brightness)) / fullScale
	r, g, b := colorful.Hsv(float64(c.Hue), s, v).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func clampScale(v int) int {
	if v < 0 {
		return 0
	}
	if v > fullScale {
		return fullScale
	}
	return v
}

// Palette memoizes cell colors. A Palette is not safe for concurrent use.
type Palette struct {
	memo map[core.Cell]color.RGBA
}

// NewPalette returns an empty palette.
func NewPalette() *Palette {
	return &Palette{memo: make(map[core.Cell]color.RGBA)}
}

// Color returns the display color of c.
func (p *Palette) Color(c core.Cell) color.RGBA {
	switch c.Kind {
	case core.KindDrifting:
		return DrifterColor
	case core.KindCoral:
		key := core.Cell{Kind: core.KindCoral, Hue: c.Hue, Saturation: clampScale(c.Saturation), Brightness: clampScale(c.Brightness)}
		if col, ok := p.memo[key]; ok {
			return col
		}
		col := CoralColor(key)
		p.memo[key] = col
		return col
	default:
		return Background
	}
}
