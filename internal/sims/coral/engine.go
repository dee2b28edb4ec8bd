package coral

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"mad-coral/internal/core"
	pcore "mad-coral/pkg/core"
)

// Status reports whether a run has finished.
type Status int

const (
	Running Status = iota
	Complete
)

func (s Status) String() string {
	if s == Complete {
		return "complete"
	}
	return "running"
}

// Attachment describes one drifter turning into a rooted cell.
type Attachment struct {
	Tick    int
	Drifter int
	At      Pos
	// Parent is the neighbour the color was inherited from; zero and ignored
	// when Inherited is false.
	Parent    Pos
	Inherited bool
	Color     Color
}

// Monitor is invoked by Run every Every ticks with a snapshot of the grid.
// A non-nil error from OnTick stops the run.
type Monitor struct {
	Every        int
	ShowDrifters bool
	OnTick       func(tick int, snap *Snapshot) error
}

// poolSize is the number of drifters kept in flight. It affects speed, not
// the shape of the result.
func poolSize(cols int) int { return cols }

// Engine runs biased diffusion-limited aggregation on a fixed grid.
type Engine struct {
	mu sync.RWMutex

	cfg    Config
	grid   *core.CellGrid
	rng    *pcore.RNG
	drift  *Drift
	detect *Detector
	colors *ColorModel

	drifters []Pos
	tick     int
	seeds    int
	complete bool
	err      error

	observer func(Attachment)
}

// New validates cfg and returns an engine seeded with cfg.Seed.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg, grid: core.NewCellGrid(cfg.Rows, cfg.Cols)}
	if err := e.reset(cfg.Seed); err != nil {
		return nil, err
	}
	return e, nil
}

// Reset discards all state and restarts from seed. A zero seed reuses the
// configured one.
func (e *Engine) Reset(seed int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reset(seed)
}

func (e *Engine) reset(seed int64) error {
	if seed == 0 {
		seed = e.cfg.Seed
	}
	e.grid.Clear()
	e.rng = pcore.NewRNG(seed)
	e.drift = NewDrift(e.cfg, e.rng)
	e.detect = NewDetector(e.cfg, e.grid, e.rng)
	e.colors = NewColorModel(e.cfg, e.rng)
	e.tick, e.seeds, e.complete, e.err = 0, 0, false, nil

	e.drifters = make([]Pos, poolSize(e.cfg.Cols))
	for i := range e.drifters {
		if err := e.spawn(i); err != nil {
			return err
		}
	}
	return nil
}

// Observe registers fn to be called for every attachment, in processing
// order, while the tick is in progress. fn must not call back into the engine.
func (e *Engine) Observe(fn func(Attachment)) {
	e.mu.Lock()
	e.observer = fn
	e.mu.Unlock()
}

// Step advances every drifter by one tick. Once the run is complete further
// calls do nothing. An invariant violation aborts the run; the returned error
// carries the tick, drifter and position and is returned again by later calls.
func (e *Engine) Step() (Status, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.err != nil {
		return e.status(), e.err
	}
	if e.complete {
		return Complete, nil
	}
	e.tick++
	for i := range e.drifters {
		pos := e.drifters[i]
		if err := e.advance(i); err != nil {
			e.err = errors.Wrapf(err, "tick %d, drifter %d at (%d,%d)", e.tick, i, pos.Row, pos.Col)
			return e.status(), e.err
		}
	}
	return e.status(), nil
}

func (e *Engine) advance(i int) error {
	cur := e.drifters[i]
	if e.grid.IsCoral(cur.Row, cur.Col) {
		// Rooted over by an earlier drifter this tick.
		if err := e.grid.Leave(cur.Row, cur.Col); err != nil {
			return err
		}
		return e.spawn(i)
	}

	cand := e.drift.Next(cur)
	out := e.detect.Resolve(cur, cand)
	if !out.Attached {
		if err := e.grid.Leave(cur.Row, cur.Col); err != nil {
			return err
		}
		if err := e.grid.Enter(cand.Row, cand.Col); err != nil {
			return err
		}
		e.drifters[i] = cand
		return nil
	}

	color := e.colors.Seed()
	if out.Inherits {
		parent, err := e.grid.At(out.Parent.Row, out.Parent.Col)
		if err != nil {
			return err
		}
		if parent.Kind != core.KindCoral {
			return errors.Wrapf(core.ErrInvalidMutation, "parent (%d,%d) is %s", out.Parent.Row, out.Parent.Col, parent.Kind)
		}
		color = e.colors.Child(Color{Hue: parent.Hue, Saturation: parent.Saturation, Brightness: parent.Brightness})
	} else {
		e.seeds++
	}
	if err := e.grid.Root(out.At.Row, out.At.Col, color.Hue, color.Saturation, color.Brightness); err != nil {
		return err
	}
	if err := e.grid.Leave(cur.Row, cur.Col); err != nil {
		return err
	}
	if out.At.Row == 0 {
		e.complete = true
	}
	if e.observer != nil {
		e.observer(Attachment{
			Tick:      e.tick,
			Drifter:   i,
			At:        out.At,
			Parent:    out.Parent,
			Inherited: out.Inherits,
			Color:     color,
		})
	}
	return e.spawn(i)
}

func (e *Engine) spawn(i int) error {
	p := Pos{Row: 0, Col: e.rng.IntN(e.cfg.Cols)}
	e.drifters[i] = p
	return e.grid.Enter(p.Row, p.Col)
}

func (e *Engine) status() Status {
	if e.complete {
		return Complete
	}
	return Running
}

// Run steps until the run completes, ctx is done, a monitor fails or an
// invariant breaks. Cancellation is observed between ticks only, so a
// cancelled engine can be resumed by calling Run or Step again. Running a
// completed engine returns at once without invoking monitors.
func (e *Engine) Run(ctx context.Context, monitors ...Monitor) (Status, error) {
	e.mu.RLock()
	status, err := e.status(), e.err
	e.mu.RUnlock()
	if err != nil || status == Complete {
		return status, err
	}
	for {
		if err := ctx.Err(); err != nil {
			return e.Status(), err
		}
		status, err := e.Step()
		if err != nil {
			return status, err
		}
		tick := e.Tick()
		for _, m := range monitors {
			if m.OnTick == nil || m.Every <= 0 {
				continue
			}
			if tick%m.Every != 0 {
				continue
			}
			if err := m.OnTick(tick, e.Snapshot(m.ShowDrifters)); err != nil {
				return status, errors.Wrapf(err, "monitor at tick %d", tick)
			}
		}
		if status == Complete {
			return status, nil
		}
	}
}

// Snapshot copies the visible grid state. It is safe to call from other
// goroutines while the engine is stepping.
func (e *Engine) Snapshot(showDrifters bool) *Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return &Snapshot{
		Rows:         e.cfg.Rows,
		Cols:         e.cfg.Cols,
		Tick:         e.tick,
		Complete:     e.complete,
		ShowDrifters: showDrifters,
		Corals:       e.grid.CoralCount(),
		cells:        e.grid.Materialize(nil, showDrifters),
	}
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Status reports whether the run has completed.
func (e *Engine) Status() Status {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.status()
}

// Tick returns the number of ticks simulated since the last reset.
func (e *Engine) Tick() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tick
}

// CoralCount returns the number of rooted cells.
func (e *Engine) CoralCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.grid.CoralCount()
}

// Seeds returns how many corals were started on the bottom row.
func (e *Engine) Seeds() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.seeds
}

// Drifters returns a copy of the in-flight particle positions in processing
// order.
func (e *Engine) Drifters() []Pos {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]Pos(nil), e.drifters...)
}
