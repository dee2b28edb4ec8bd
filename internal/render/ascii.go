package render

import (
	"strings"

	"mad-coral/internal/core"
)

// ASCII renders v as text: '#' for coral, '.' for drifters, ' ' otherwise.
func ASCII(v CellView) string {
	size := v.Size()
	cells := v.Cells()
	var b strings.Builder
	b.Grow((size.W + 1) * size.H)
	for row := 0; row < size.H; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for _, c := range cells[row*size.W : (row+1)*size.W] {
			b.WriteByte(Glyph(c))
		}
	}
	return b.String()
}

// Glyph returns the text symbol of a single cell.
func Glyph(c core.Cell) byte {
	switch c.Kind {
	case core.KindCoral:
		return '#'
	case core.KindDrifting:
		return '.'
	default:
		return ' '
	}
}
