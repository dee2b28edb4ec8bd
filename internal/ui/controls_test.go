package ui

import (
	"testing"

	"mad-coral/internal/core"
)

type recordingSetter struct {
	ints   map[string]int
	floats map[string]float64
	reject bool
}

func (r *recordingSetter) SetIntParameter(key string, v int) bool {
	if r.reject {
		return false
	}
	r.ints[key] = v
	return true
}

func (r *recordingSetter) SetFloatParameter(key string, v float64) bool {
	if r.reject {
		return false
	}
	r.floats[key] = v
	return true
}

func snapshot(params ...core.Parameter) core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{Name: "Growth", Params: params}}}
}

func TestControlTargetClamps(t *testing.T) {
	c := newControls([]core.ParameterControl{
		{Key: "down_bias", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	})[0]
	c.refresh(snapshot(core.Parameter{Key: "down_bias", Type: core.ParamTypeFloat, Value: "0.98"}))
	if !c.known || c.text != "0.98" {
		t.Fatalf("unexpected state %+v", c)
	}
	if v, ok := c.target(1); !ok || v != 1 {
		t.Fatalf("expected clamp to 1, got %v %v", v, ok)
	}
	c.value = 1
	if _, ok := c.target(1); ok {
		t.Fatalf("step past the maximum should be disabled")
	}
	if v, ok := c.target(-1); !ok || v != 0.95 {
		t.Fatalf("expected 0.95, got %v %v", v, ok)
	}
}

func TestControlAdjustUsesSetters(t *testing.T) {
	set := &recordingSetter{ints: map[string]int{}, floats: map[string]float64{}}
	cs := newControls([]core.ParameterControl{
		{Key: "hue_diff", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true},
		{Key: "p_brightness", Type: core.ParamTypeFloat, Step: 0.1},
	})
	snap := snapshot(
		core.Parameter{Key: "hue_diff", Type: core.ParamTypeInt, Value: "0"},
		core.Parameter{Key: "p_brightness", Type: core.ParamTypeFloat, Value: "0.8"},
	)
	for i := range cs {
		cs[i].refresh(snap)
	}

	if cs[0].adjust(-1, set, set) {
		t.Fatalf("hue_diff should not go below its minimum")
	}
	if !cs[0].adjust(1, set, set) || set.ints["hue_diff"] != 1 || cs[0].text != "1" {
		t.Fatalf("hue_diff step not applied: %v %+v", set.ints, cs[0])
	}
	if !cs[1].adjust(1, set, set) || cs[1].text != "0.9" {
		t.Fatalf("p_brightness step not applied: %v %+v", set.floats, cs[1])
	}

	set.reject = true
	if cs[1].adjust(1, set, set) || cs[1].text != "0.9" {
		t.Fatalf("rejected value must leave the control unchanged: %+v", cs[1])
	}
	if cs[1].adjust(1, nil, nil) {
		t.Fatalf("adjust without a setter should fail")
	}
}

func TestControlUnknownValue(t *testing.T) {
	c := newControls([]core.ParameterControl{{Key: "right_bias", Type: core.ParamTypeFloat}})[0]
	c.refresh(snapshot(core.Parameter{Key: "right_bias", Value: "n/a"}))
	if c.known || c.text != "--" {
		t.Fatalf("unparsable value should read as unknown: %+v", c)
	}
	if _, ok := c.target(1); ok {
		t.Fatalf("unknown value should not be adjustable")
	}
}

func TestReadOnlySkipsControlledKeys(t *testing.T) {
	cs := newControls([]core.ParameterControl{{Key: "hue_diff"}, {Key: "down_bias"}})
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Color", Params: []core.Parameter{{Key: "hue_diff"}, {Key: "saturation"}}},
		{Name: "Drift", Params: []core.Parameter{{Key: "down_bias"}}},
		{Name: "Run", Params: []core.Parameter{{Key: "tick"}, {Key: "corals"}}},
	}}
	got := readOnly(snap, cs)
	if len(got) != 2 || got[0].Name != "Color" || got[1].Name != "Run" {
		t.Fatalf("unexpected groups %+v", got)
	}
	if len(got[0].Params) != 1 || got[0].Params[0].Key != "saturation" {
		t.Fatalf("controlled parameter leaked: %+v", got[0].Params)
	}
}
