package gallery

import (
	"log"

	"mad-coral/internal/core"
	"mad-coral/internal/render"
	"mad-coral/internal/sims/coral"
)

// Sim adapts a coral engine to the viewer-facing core.Sim contract.
type Sim struct {
	name    string
	cfg     coral.Config
	pending coral.Config
	seed    int64
	eng     *coral.Engine
	palette *render.Palette
}

// NewSim builds a Sim running cfg.
func NewSim(name string, cfg coral.Config) (*Sim, error) {
	eng, err := coral.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Sim{name: name, cfg: cfg, pending: cfg, seed: cfg.Seed, eng: eng, palette: render.NewPalette()}, nil
}

// Name returns the preset identifier.
func (s *Sim) Name() string { return s.name }

// Size reports the grid dimensions with W as columns.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Cols, H: s.cfg.Rows} }

// Engine exposes the underlying engine.
func (s *Sim) Engine() *coral.Engine { return s.eng }

// Reset restarts growth from seed, applying any parameters changed through
// the HUD since the last reset. A zero seed keeps the current one.
func (s *Sim) Reset(seed int64) {
	if seed != 0 {
		s.seed = seed
	}
	if s.pending != s.cfg {
		cfg := s.pending
		cfg.Seed = s.seed
		eng, err := coral.New(cfg)
		if err != nil {
			log.Printf("%s: keeping previous parameters: %v", s.name, err)
			s.pending = s.cfg
		} else {
			s.cfg, s.pending, s.eng = cfg, cfg, eng
			return
		}
	}
	if err := s.eng.Reset(s.seed); err != nil {
		log.Panicf("%s: reset: %+v", s.name, err)
	}
}

// Step advances one tick. Invariant violations are programming errors and
// abort with the engine's diagnostic context.
func (s *Sim) Step() {
	if _, err := s.eng.Step(); err != nil {
		log.Panicf("%s: %+v", s.name, err)
	}
}

// Done reports whether the coral reached the top row.
func (s *Sim) Done() bool { return s.eng.Status() == coral.Complete }

// Tick returns the ticks simulated since the last reset.
func (s *Sim) Tick() int { return s.eng.Tick() }

// PaintRGBA renders the current grid into buf.
func (s *Sim) PaintRGBA(buf []byte, showDrifters bool) {
	render.FillRGBA(buf, s.eng.Snapshot(showDrifters).Cells(), s.palette)
}

func init() {
	for _, p := range presets {
		p := p
		core.Register(p.Name, func(cfg map[string]string) (core.Sim, error) {
			c, err := p.Config(cfg)
			if err != nil {
				return nil, err
			}
			return NewSim(p.Name, c)
		})
	}
}
