package gallery

import (
	"mad-coral/internal/sims/coral"
)

// Gallery dimensions for the small option showcases and the large pieces.
const (
	SmallRows = 250
	SmallCols = 600
	LargeRows = 500
	LargeCols = 1200
)

// Preset is a named starting configuration.
type Preset struct {
	Name      string
	Rows      int
	Cols      int
	Overrides map[string]string
}

var presets = []Preset{
	{Name: "bright", Rows: SmallRows, Cols: SmallCols, Overrides: map[string]string{"p_brightness": "100"}},
	{Name: "dark", Rows: SmallRows, Cols: SmallCols, Overrides: map[string]string{"p_brightness": "0.1"}},
	{Name: "uniform", Rows: SmallRows, Cols: SmallCols, Overrides: map[string]string{"hue_diff": "0"}},
	{Name: "crazy_colours", Rows: SmallRows, Cols: SmallCols, Overrides: map[string]string{"hue_diff": "15"}},
	{Name: "sparse", Rows: SmallRows, Cols: SmallCols, Overrides: map[string]string{"down_bias": "0"}},
	{Name: "dense", Rows: SmallRows, Cols: SmallCols, Overrides: map[string]string{"down_bias": "1"}},
	{Name: "left", Rows: SmallRows, Cols: SmallCols, Overrides: map[string]string{"right_bias": "-1"}},
	{Name: "right", Rows: SmallRows, Cols: SmallCols, Overrides: map[string]string{"right_bias": "1"}},
	{Name: "coral", Rows: LargeRows, Cols: LargeCols},
	{Name: "seaweed", Rows: LargeRows, Cols: LargeCols, Overrides: map[string]string{
		"hue_diff": "1", "p_brightness": "1", "down_bias": "0.1", "right_bias": "-0.05",
	}},
	{Name: "classic", Rows: LargeRows, Cols: LargeCols, Overrides: map[string]string{
		"hue_diff": "1", "p_brightness": "1", "down_bias": "0.15", "right_bias": "-0.05",
	}},
}

// Presets returns every built-in preset, small showcases first.
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

// Lookup finds a preset by name.
func Lookup(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Large reports whether the preset uses the large gallery dimensions.
func (p Preset) Large() bool { return p.Rows == LargeRows && p.Cols == LargeCols }

// Config resolves the preset, then overrides, into a validated config.
func (p Preset) Config(overrides map[string]string) (coral.Config, error) {
	return p.ConfigFrom(coral.DefaultConfig(), overrides)
}

// ConfigFrom is Config starting from base instead of the package defaults.
// The preset's dimensions and overrides are applied on top of base.
func (p Preset) ConfigFrom(base coral.Config, overrides map[string]string) (coral.Config, error) {
	cfg := base
	if p.Rows > 0 {
		cfg.Rows = p.Rows
	}
	if p.Cols > 0 {
		cfg.Cols = p.Cols
	}
	cfg, err := cfg.With(p.Overrides)
	if err != nil {
		return cfg, err
	}
	cfg, err = cfg.With(overrides)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}
