package ui

import (
	"image"
	"math"
	"strconv"

	"mad-coral/internal/core"
)

// controlState tracks one adjustable parameter and where its buttons sit.
type controlState struct {
	ctrl  core.ParameterControl
	value float64
	text  string
	known bool

	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

func newControls(ctrls []core.ParameterControl) []controlState {
	out := make([]controlState, len(ctrls))
	for i, c := range ctrls {
		out[i] = controlState{ctrl: c, text: "--"}
	}
	return out
}

// refresh reads the control's current value from snap.
func (s *controlState) refresh(snap core.ParameterSnapshot) {
	s.known, s.text = false, "--"
	p, ok := snap.Lookup(s.ctrl.Key)
	if !ok {
		return
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return
	}
	s.value, s.known = v, true
	s.text = formatValue(s.ctrl, v)
}

func (s *controlState) step() float64 {
	switch s.ctrl.Type {
	case core.ParamTypeInt:
		return math.Max(math.Round(s.ctrl.Step), 1)
	default:
		if s.ctrl.Step <= 0 {
			return 0.05
		}
		return s.ctrl.Step
	}
}

// target is the value one step in direction dir, clamped to the control's
// bounds. ok is false when the step would not change anything.
func (s *controlState) target(dir int) (float64, bool) {
	if !s.known || dir == 0 {
		return s.value, false
	}
	v := s.value + float64(dir)*s.step()
	if s.ctrl.HasMin {
		v = math.Max(v, s.ctrl.Min)
	}
	if s.ctrl.HasMax {
		v = math.Min(v, s.ctrl.Max)
	}
	if s.ctrl.Type == core.ParamTypeInt {
		v = math.Round(v)
	}
	return v, math.Abs(v-s.value) > 1e-9
}

// adjust moves the control one step through the matching setter and reports
// whether the sim accepted the value.
func (s *controlState) adjust(dir int, ints core.IntParameterSetter, floats core.FloatParameterSetter) bool {
	v, ok := s.target(dir)
	if !ok {
		return false
	}
	switch s.ctrl.Type {
	case core.ParamTypeInt:
		ok = ints != nil && ints.SetIntParameter(s.ctrl.Key, int(v))
	case core.ParamTypeFloat:
		ok = floats != nil && floats.SetFloatParameter(s.ctrl.Key, v)
	default:
		ok = false
	}
	if ok {
		s.value, s.text = v, formatValue(s.ctrl, v)
	}
	return ok
}

func formatValue(ctrl core.ParameterControl, v float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(v)))
	}
	precision := 1
	switch step := ctrl.Step; {
	case step > 0 && step < 0.001:
		precision = 4
	case step > 0 && step < 0.01:
		precision = 3
	case step <= 0 || step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// readOnly returns the snapshot groups without the parameters that already
// have a control, dropping groups left empty.
func readOnly(snap core.ParameterSnapshot, ctrls []controlState) []core.ParameterGroup {
	controlled := make(map[string]bool, len(ctrls))
	for _, c := range ctrls {
		controlled[c.ctrl.Key] = true
	}
	var out []core.ParameterGroup
	for _, g := range snap.Groups {
		kept := core.ParameterGroup{Name: g.Name}
		for _, p := range g.Params {
			if !controlled[p.Key] {
				kept.Params = append(kept.Params, p)
			}
		}
		if len(kept.Params) > 0 {
			out = append(out, kept)
		}
	}
	return out
}
