package gallery

import (
	"math"
	"strconv"

	"mad-coral/internal/core"
)

// Parameters reports the pending configuration together with run counters.
func (s *Sim) Parameters() core.ParameterSnapshot {
	cfg := s.pending
	eng := s.eng
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("rows", "Rows", cfg.Rows),
				intParam("cols", "Columns", cfg.Cols),
				int64Param("seed", "Seed", s.seed),
			},
		},
		{
			Name: "Drift",
			Params: []core.Parameter{
				floatParam("down_bias", "Down bias", cfg.DownBias),
				floatParam("right_bias", "Right bias", cfg.RightBias),
				stringParam("walk", "Walk", string(cfg.Walk)),
				stringParam("edges", "Edges", string(cfg.Edges)),
				stringParam("neighborhood", "Neighborhood", string(cfg.Neighborhood)),
			},
		},
		{
			Name: "Color",
			Params: []core.Parameter{
				intParam("hue_diff", "Hue diff", cfg.HueDiff),
				floatParam("p_brightness", "Brightness gain", cfg.PBrightness),
				intParam("saturation", "Saturation", cfg.Saturation),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("tick", "Tick", eng.Tick()),
				intParam("corals", "Coral cells", eng.CoralCount()),
				intParam("seeds", "Corals seeded", eng.Seeds()),
				stringParam("status", "Status", eng.Status().String()),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters. Changes apply on the
// next reset.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "down_bias", Label: "Down bias", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "right_bias", Label: "Right bias", Type: core.ParamTypeFloat, Step: 0.05, Min: -1, Max: 1, HasMin: true, HasMax: true},
		{Key: "hue_diff", Label: "Hue diff", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 180, HasMin: true, HasMax: true},
		{Key: "p_brightness", Label: "Brightness gain", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, HasMin: true},
	}
}

// SetIntParameter updates an integer parameter for the next reset.
func (s *Sim) SetIntParameter(key string, value int) bool {
	switch key {
	case "hue_diff":
		if value < 0 {
			return false
		}
		s.pending.HueDiff = value
		return true
	}
	return false
}

// SetFloatParameter updates a float parameter for the next reset. Values are
// clamped to the parameter's domain.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	switch key {
	case "down_bias":
		s.pending.DownBias = clampFloat(value, 0, 1)
	case "right_bias":
		s.pending.RightBias = clampFloat(value, -1, 1)
	case "p_brightness":
		s.pending.PBrightness = math.Max(value, 0)
	default:
		return false
	}
	return true
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
