package coral

import (
	"math"
	"testing"

	pcore "mad-coral/pkg/core"
)

func TestChildHueWrapsWithinHueDiff(t *testing.T) {
	cfg := smallConfig()
	cfg.HueDiff = 4
	m := NewColorModel(cfg, pcore.NewRNG(8))
	for _, hue := range []int{0, 1, 180, 358, 359} {
		for i := 0; i < 200; i++ {
			child := m.Child(Color{Hue: hue, Saturation: 100})
			if child.Hue < 0 || child.Hue >= HueRange {
				t.Fatalf("hue %d escaped the hue circle", child.Hue)
			}
			if d := HueDistance(child.Hue, hue); d > cfg.HueDiff {
				t.Fatalf("hue %d -> %d drifts %d", hue, child.Hue, d)
			}
		}
	}
}

func TestZeroHueDiffCopiesHue(t *testing.T) {
	cfg := smallConfig()
	cfg.HueDiff = 0
	m := NewColorModel(cfg, pcore.NewRNG(8))
	for i := 0; i < 50; i++ {
		if got := m.Child(Color{Hue: 123}).Hue; got != 123 {
			t.Fatalf("expected hue 123, got %d", got)
		}
	}
}

func TestBrightnessGainAboveOne(t *testing.T) {
	cfg := smallConfig()
	cfg.Rows = 100
	cfg.PBrightness = 2.5
	m := NewColorModel(cfg, pcore.NewRNG(13))
	twos, threes := 0, 0
	for i := 0; i < 2000; i++ {
		switch gain := m.Child(Color{Brightness: 10}).Brightness - 10; gain {
		case 2:
			twos++
		case 3:
			threes++
		default:
			t.Fatalf("rate 2.5 produced gain %d", gain)
		}
	}
	if twos == 0 || threes == 0 {
		t.Fatalf("expected both outcomes, got %d twos and %d threes", twos, threes)
	}
}

func TestBrightnessSaturatesAtCap(t *testing.T) {
	cfg := smallConfig()
	cfg.Rows = 3
	for _, p := range []float64{1e17, 1e30} {
		cfg.PBrightness = p
		m := NewColorModel(cfg, pcore.NewRNG(13))
		c := Color{}
		for i := 0; i < 3; i++ {
			c = m.Child(c)
			if c.Brightness < 0 || c.Brightness > BrightnessCap {
				t.Fatalf("p_brightness %g: brightness %d after %d steps", p, c.Brightness, i+1)
			}
		}
		if c.Brightness != BrightnessCap {
			t.Fatalf("p_brightness %g: expected saturation at %d, got %d", p, BrightnessCap, c.Brightness)
		}
	}

	cfg.PBrightness = 3
	m := NewColorModel(cfg, pcore.NewRNG(13))
	if got := m.Child(Color{Brightness: BrightnessCap - 1}).Brightness; got != BrightnessCap {
		t.Fatalf("expected the sum to saturate, got %d", got)
	}
}

func TestBrightnessProbabilityBelowOne(t *testing.T) {
	cfg := smallConfig()
	cfg.Rows = 100
	cfg.PBrightness = 0.3
	m := NewColorModel(cfg, pcore.NewRNG(13))
	brighter := 0
	const n = 20000
	for i := 0; i < n; i++ {
		if m.Child(Color{}).Brightness == 1 {
			brighter++
		}
	}
	if frac := float64(brighter) / n; frac < 0.27 || frac > 0.33 {
		t.Fatalf("brightening fraction %.3f, expected about 0.3", frac)
	}
	if got := BrightnessRate(0.8, 500); math.Abs(got-0.16) > 1e-12 {
		t.Fatalf("unexpected rate %v", got)
	}
}

func TestSeedColors(t *testing.T) {
	cfg := smallConfig()
	cfg.Saturation = 80
	cfg.SeedBrightness = 20
	m := NewColorModel(cfg, pcore.NewRNG(1))
	for i := 0; i < 500; i++ {
		c := m.Seed()
		if c.Hue < 0 || c.Hue >= HueRange || c.Saturation != 80 || c.Brightness != 20 {
			t.Fatalf("unexpected seed color %+v", c)
		}
	}

	cfg.NonBlueSeeds = true
	// A seed takes exactly one draw from the band.
	rng := pcore.NewRNG(21)
	want := WrapHue(rng.Between(nonBlueHueMin, nonBlueHueMax))
	if got := NewColorModel(cfg, pcore.NewRNG(21)).Seed().Hue; got != want {
		t.Fatalf("expected seed hue %d, got %d", want, got)
	}
	m = NewColorModel(cfg, pcore.NewRNG(1))
	for i := 0; i < 500; i++ {
		if hue := m.Seed().Hue; hue >= 200 && hue < 300 {
			t.Fatalf("non-blue seed drew hue %d", hue)
		}
	}
}

func TestHueDistance(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{0, 0, 0},
		{359, 1, 2},
		{1, 359, 2},
		{10, 190, 180},
		{90, 100, 10},
	}
	for _, c := range cases {
		if got := HueDistance(c.a, c.b); got != c.want {
			t.Fatalf("HueDistance(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
	if WrapHue(-1) != 359 || WrapHue(720) != 0 {
		t.Fatal("WrapHue must map onto [0,360)")
	}
}
