package coral

import (
	"slices"

	"mad-coral/internal/core"
	pcore "mad-coral/pkg/core"
)

var (
	mooreOffsets = []Pos{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	vonNeumannOffsets = []Pos{
		{-1, 0},
		{0, -1}, {0, 1},
		{1, 0},
	}
)

// Outcome is the result of resolving one drifter move.
type Outcome struct {
	// Attached is set when the drifter roots at At instead of moving.
	Attached bool
	At       Pos
	// Parent is the rooted cell the new color derives from. It is only
	// meaningful when Inherits is set; otherwise the cell seeds a new coral.
	Parent   Pos
	Inherits bool
}

// Detector decides whether a drifter roots or keeps drifting.
type Detector struct {
	grid    *core.CellGrid
	offsets []Pos
	wrap    bool
	rng     *pcore.RNG
	buf     []Pos
}

// NewDetector builds the attachment detector for cfg over grid.
func NewDetector(cfg Config, grid *core.CellGrid, rng *pcore.RNG) *Detector {
	offsets := mooreOffsets
	if cfg.Neighborhood == NeighborhoodVonNeumann {
		offsets = vonNeumannOffsets
	}
	return &Detector{
		grid:    grid,
		offsets: offsets,
		wrap:    cfg.Edges == EdgesWrap,
		rng:     rng,
		buf:     make([]Pos, 0, len(mooreOffsets)),
	}
}

// Resolve decides the fate of a drifter at cur whose stepper proposed cand.
//
// A candidate that is already rooted blocks the move and the drifter roots
// where it stands. A candidate on the bottom row always roots as a fresh coral.
// A candidate touching rooted cells roots there, inheriting from one of them
// picked uniformly at random. Anything else is a plain move.
func (d *Detector) Resolve(cur, cand Pos) Outcome {
	bottom := d.grid.Rows - 1
	if d.grid.IsCoral(cand.Row, cand.Col) {
		out := Outcome{Attached: true, At: cur}
		if cur.Row == bottom {
			return out
		}
		out.Parent, out.Inherits = d.pickParent(cur)
		if !out.Inherits {
			out.Parent, out.Inherits = cand, true
		}
		return out
	}
	if cand.Row == bottom {
		return Outcome{Attached: true, At: cand}
	}
	if parent, ok := d.pickParent(cand); ok {
		return Outcome{Attached: true, At: cand, Parent: parent, Inherits: true}
	}
	return Outcome{At: cand}
}

func (d *Detector) pickParent(p Pos) (Pos, bool) {
	d.buf = d.CoralNeighbors(p, d.buf[:0])
	if len(d.buf) == 0 {
		return Pos{}, false
	}
	return d.buf[d.rng.IntN(len(d.buf))], true
}

// CoralNeighbors appends the rooted neighbours of p to dst in a fixed scan
// order and returns the extended slice.
func (d *Detector) CoralNeighbors(p Pos, dst []Pos) []Pos {
	start := len(dst)
	for _, off := range d.offsets {
		r, c := p.Row+off.Row, p.Col+off.Col
		if r < 0 || r >= d.grid.Rows {
			continue
		}
		if c < 0 || c >= d.grid.Cols {
			if !d.wrap {
				continue
			}
			c = d.grid.WrapCol(c)
		}
		n := Pos{Row: r, Col: c}
		// Narrow cylinders fold several offsets onto the same cell.
		if n == p || slices.Contains(dst[start:], n) {
			continue
		}
		if d.grid.IsCoral(r, c) {
			dst = append(dst, n)
		}
	}
	return dst
}
