package render

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"

	"mad-coral/internal/core"
)

type testView struct {
	size  core.Size
	cells []core.Cell
}

func (v testView) Size() core.Size    { return v.size }
func (v testView) Cells() []core.Cell { return v.cells }

func sampleView() testView {
	coral := core.Cell{Kind: core.KindCoral, Hue: 0, Saturation: 100, Brightness: 100}
	return testView{
		size: core.Size{W: 3, H: 2},
		cells: []core.Cell{
			{}, {Kind: core.KindDrifting}, {},
			coral, coral, {},
		},
	}
}

func TestCoralColor(t *testing.T) {
	red := CoralColor(core.Cell{Kind: core.KindCoral, Hue: 0, Saturation: 100, Brightness: 100})
	if red != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("expected pure red, got %+v", red)
	}
	dark := CoralColor(core.Cell{Kind: core.KindCoral, Hue: 200, Saturation: 100, Brightness: 0})
	if dark != (color.RGBA{A: 255}) {
		t.Fatalf("zero brightness must be black, got %+v", dark)
	}
	over := CoralColor(core.Cell{Kind: core.KindCoral, Hue: 120, Saturation: 100, Brightness: 250})
	full := CoralColor(core.Cell{Kind: core.KindCoral, Hue: 120, Saturation: 100, Brightness: 100})
	if over != full || full != (color.RGBA{G: 255, A: 255}) {
		t.Fatalf("brightness must saturate at full scale: %+v vs %+v", over, full)
	}
}

func TestPaletteKinds(t *testing.T) {
	pal := NewPalette()
	if pal.Color(core.Cell{}) != Background {
		t.Fatal("empty cells use the background")
	}
	if pal.Color(core.Cell{Kind: core.KindDrifting}) != DrifterColor {
		t.Fatal("drifters are white")
	}
	c := core.Cell{Kind: core.KindCoral, Hue: 60, Saturation: 100, Brightness: 140}
	if pal.Color(c) != pal.Color(c) || pal.Color(c) != CoralColor(c) {
		t.Fatal("palette must agree with CoralColor")
	}
}

func TestImageAndASCII(t *testing.T) {
	v := sampleView()
	img := Image(v)
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("unexpected bounds %v", b)
	}
	if got := img.RGBAAt(0, 0); got != Background {
		t.Fatalf("pixel (0,0) = %+v", got)
	}
	if got := img.RGBAAt(1, 0); got != DrifterColor {
		t.Fatalf("pixel (1,0) = %+v", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("pixel (0,1) = %+v", got)
	}

	if got, want := ASCII(v), " . \n## "; got != want {
		t.Fatalf("ASCII = %q, want %q", got, want)
	}
}

func TestSavePNGScalesAndCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames", FramePath("coral", 3))
	if err := SavePNG(path, Image(sampleView()), 4); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	img, err := imgio.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
		t.Fatalf("expected 12x8 image, got %v", b)
	}
	r, g, b, _ := img.At(6, 2).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Fatalf("upscaled drifter pixel lost: %d %d %d", r>>8, g>>8, b>>8)
	}
}

func TestFrameNames(t *testing.T) {
	if got := FramePath("out/step-", 12); got != "out/step-12.png" {
		t.Fatalf("FramePath = %q", got)
	}
	if got := AnimationFramePath("frames", 42); got != filepath.Join("frames", "frame-0000000042.png") {
		t.Fatalf("AnimationFramePath = %q", got)
	}
}
