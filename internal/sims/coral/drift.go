package coral

import pcore "mad-coral/pkg/core"

// Pos is a grid position. Drifters are plain Pos values.
type Pos struct {
	Row, Col int
}

// Drift proposes the next position of a drifting particle. It never touches
// the grid.
type Drift struct {
	rows, cols int
	down       float64
	right      float64
	walk       Walk
	edges      Edges
	rng        *pcore.RNG
}

// NewDrift builds the stepper for cfg, drawing from rng.
func NewDrift(cfg Config, rng *pcore.RNG) *Drift {
	return &Drift{
		rows:  cfg.Rows,
		cols:  cfg.Cols,
		down:  cfg.DownBias,
		right: cfg.RightBias,
		walk:  cfg.Walk,
		edges: cfg.Edges,
		rng:   rng,
	}
}

// Next returns the candidate position one tick after p. Rows are clamped to
// [0, rows-1]; columns follow the configured edge policy.
func (d *Drift) Next(p Pos) Pos {
	if d.walk == WalkOrthogonal {
		return d.orthogonal(p)
	}
	dy := d.rng.Sign(d.down)
	dx := d.rng.Sign(d.right)
	return Pos{Row: d.clampRow(p.Row + dy), Col: d.column(p.Col + dx)}
}

func (d *Drift) orthogonal(p Pos) Pos {
	if p.Row < d.rows-1 && d.rng.Chance(0.25+0.75*d.down) {
		return Pos{Row: p.Row + 1, Col: p.Col}
	}
	// Upward moves take a fixed share of the remaining probability.
	if p.Row > 0 && d.rng.Chance(1.0/3) {
		return Pos{Row: p.Row - 1, Col: p.Col}
	}
	return Pos{Row: p.Row, Col: d.column(p.Col + d.rng.Sign(d.right))}
}

func (d *Drift) clampRow(row int) int {
	if row < 0 {
		return 0
	}
	if row > d.rows-1 {
		return d.rows - 1
	}
	return row
}

func (d *Drift) column(col int) int {
	switch d.edges {
	case EdgesReflect:
		if col < 0 {
			col = -col
		} else if col >= d.cols {
			col = 2*(d.cols-1) - col
		}
		return clampInt(col, 0, d.cols-1)
	case EdgesClamp:
		return clampInt(col, 0, d.cols-1)
	default:
		return (col%d.cols + d.cols) % d.cols
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
