package render

import (
	"image"

	"mad-coral/internal/core"
)

// CellView is a read-only grid of cells in row-major order.
type CellView interface {
	Size() core.Size
	Cells() []core.Cell
}

// FillRGBA converts cells into RGBA pixels in buf, which must hold at least
// 4*len(cells) bytes.
func FillRGBA(buf []byte, cells []core.Cell, pal *Palette) {
	if pal == nil {
		pal = NewPalette()
	}
	for i, c := range cells {
		col := pal.Color(c)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Image renders v one pixel per cell.
func Image(v CellView) *image.RGBA {
	size := v.Size()
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	FillRGBA(img.Pix, v.Cells(), nil)
	return img
}
