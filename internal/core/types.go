package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract viewers use to drive a growth simulation.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Done() bool
	Tick() int
}

// RGBAPainter is implemented by sims that can render themselves into a
// W*H*4 RGBA buffer.
type RGBAPainter interface {
	PaintRGBA(buf []byte, showDrifters bool)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered simulations in lexical order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
