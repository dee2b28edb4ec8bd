package coral

import (
	"iter"

	"mad-coral/internal/core"
)

// Snapshot is an immutable copy of the grid taken between ticks.
type Snapshot struct {
	Rows, Cols int
	Tick       int
	Complete   bool
	// ShowDrifters records whether drifting cells are reported as such or
	// folded into Empty.
	ShowDrifters bool
	Corals       int

	cells []core.Cell
}

// At returns the state of (row, col); out-of-range positions read as Empty.
func (s *Snapshot) At(row, col int) core.Cell {
	if row < 0 || row >= s.Rows || col < 0 || col >= s.Cols {
		return core.Cell{}
	}
	return s.cells[row*s.Cols+col]
}

// All iterates over every cell in row-major order.
func (s *Snapshot) All() iter.Seq2[Pos, core.Cell] {
	return func(yield func(Pos, core.Cell) bool) {
		for i, c := range s.cells {
			if !yield(Pos{Row: i / s.Cols, Col: i % s.Cols}, c) {
				return
			}
		}
	}
}

// Cells exposes the row-major cell slice. Callers must not modify it.
func (s *Snapshot) Cells() []core.Cell { return s.cells }

// Size returns the snapshot dimensions with W as columns and H as rows.
func (s *Snapshot) Size() core.Size { return core.Size{W: s.Cols, H: s.Rows} }
