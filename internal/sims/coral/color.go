package coral

import (
	"math"

	pcore "mad-coral/pkg/core"
)

const (
	// HueRange is the size of the hue circle in degrees.
	HueRange = 360
	// MaxBrightness is full brightness. Stored brightness may exceed it;
	// renderers saturate.
	MaxBrightness = 100
	// MaxSaturation is full saturation.
	MaxSaturation = 100
	// BrightnessCap bounds stored brightness so that long chains with a
	// large gain saturate instead of overflowing.
	BrightnessCap = math.MaxInt32

	nonBlueHueMin = -60
	nonBlueHueMax = 199
)

// Color is the permanent color of a rooted cell.
type Color struct {
	Hue        int
	Saturation int
	Brightness int
}

// ColorModel derives the color of newly rooted cells.
type ColorModel struct {
	hueDiff        int
	rate           float64
	saturation     int
	seedBrightness int
	nonBlue        bool
	rng            *pcore.RNG
}

// NewColorModel builds the color model for cfg, drawing from rng.
func NewColorModel(cfg Config, rng *pcore.RNG) *ColorModel {
	return &ColorModel{
		hueDiff:        cfg.HueDiff,
		rate:           BrightnessRate(cfg.PBrightness, cfg.Rows),
		saturation:     cfg.Saturation,
		seedBrightness: cfg.SeedBrightness,
		nonBlue:        cfg.NonBlueSeeds,
		rng:            rng,
	}
}

// BrightnessRate converts p_brightness into the expected brightness gain per
// parent-to-child step, so that a path spanning every row gains
// p_brightness * MaxBrightness on average.
func BrightnessRate(p float64, rows int) float64 {
	if rows <= 0 {
		return 0
	}
	return p * MaxBrightness / float64(rows)
}

// Seed returns the color of a cell that starts a new coral.
func (m *ColorModel) Seed() Color {
	var hue int
	if m.nonBlue {
		hue = WrapHue(m.rng.Between(nonBlueHueMin, nonBlueHueMax))
	} else {
		hue = m.rng.IntN(HueRange)
	}
	return Color{Hue: hue, Saturation: m.saturation, Brightness: m.seedBrightness}
}

// Child returns the color of a cell rooting next to parent.
func (m *ColorModel) Child(parent Color) Color {
	hue := parent.Hue
	if m.hueDiff > 0 {
		hue = WrapHue(hue + m.rng.Between(-m.hueDiff, m.hueDiff))
	}
	return Color{Hue: hue, Saturation: m.saturation, Brightness: addBrightness(parent.Brightness, m.brightnessGain())}
}

func addBrightness(b, gain int) int {
	b = max(b, 0)
	if b >= BrightnessCap || gain >= BrightnessCap-b {
		return BrightnessCap
	}
	return b + gain
}

// brightnessGain applies floor(rate) guaranteed increments plus one more with
// probability rate-floor(rate).
func (m *ColorModel) brightnessGain() int {
	if m.rate <= 0 {
		return 0
	}
	if m.rate >= BrightnessCap {
		return BrightnessCap
	}
	whole, frac := math.Modf(m.rate)
	gain := int(whole)
	if frac > 0 && m.rng.Chance(frac) {
		gain++
	}
	return gain
}

// WrapHue maps any integer hue onto [0, HueRange).
func WrapHue(h int) int {
	return (h%HueRange + HueRange) % HueRange
}

// HueDistance returns the shortest distance between two hues on the circle.
func HueDistance(a, b int) int {
	d := WrapHue(a - b)
	if d > HueRange/2 {
		d = HueRange - d
	}
	return d
}
