package core

import "github.com/pkg/errors"

var (
	// ErrOutOfBounds reports a coordinate outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrInvalidMutation reports an attempt to overwrite a rooted cell.
	ErrInvalidMutation = errors.New("cell already rooted")
)

// Kind tags the state held by a grid cell.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindDrifting
	KindCoral
)

func (k Kind) String() string {
	switch k {
	case KindDrifting:
		return "drifting"
	case KindCoral:
		return "coral"
	default:
		return "empty"
	}
}

// Cell is the tagged state of one grid position. Hue, Saturation and
// Brightness are only meaningful when Kind is KindCoral.
type Cell struct {
	Kind       Kind
	Hue        int
	Saturation int
	Brightness int
}

// CellGrid stores a rows x cols grid of cells in row-major order. Coral cells
// are write-once; drifter occupancy is tracked as a per-cell count so that
// several in-flight particles may pass through the same position.
type CellGrid struct {
	Rows, Cols int
	coral      []Cell
	occupied   []uint32
	coralCount int
}

// NewCellGrid allocates an empty grid with the given dimensions.
func NewCellGrid(rows, cols int) *CellGrid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	total := rows * cols
	return &CellGrid{Rows: rows, Cols: cols, coral: make([]Cell, total), occupied: make([]uint32, total)}
}

// Index returns the linear slice index for (row, col).
func (g *CellGrid) Index(row, col int) int { return row*g.Cols + col }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *CellGrid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// WrapCol applies cylindrical wrapping to a column index.
func (g *CellGrid) WrapCol(col int) int {
	return (col%g.Cols + g.Cols) % g.Cols
}

// At returns the state of the cell at (row, col).
func (g *CellGrid) At(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Cell{}, errors.Wrapf(ErrOutOfBounds, "at (%d,%d) in %dx%d grid", row, col, g.Rows, g.Cols)
	}
	idx := g.Index(row, col)
	if g.coral[idx].Kind == KindCoral {
		return g.coral[idx], nil
	}
	if g.occupied[idx] > 0 {
		return Cell{Kind: KindDrifting}, nil
	}
	return Cell{}, nil
}

// IsCoral reports whether (row, col) is an in-bounds rooted cell.
func (g *CellGrid) IsCoral(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.coral[g.Index(row, col)].Kind == KindCoral
}

// Root permanently turns (row, col) into a coral cell with the given color.
func (g *CellGrid) Root(row, col, hue, saturation, brightness int) error {
	if !g.InBounds(row, col) {
		return errors.Wrapf(ErrOutOfBounds, "root (%d,%d) in %dx%d grid", row, col, g.Rows, g.Cols)
	}
	idx := g.Index(row, col)
	if g.coral[idx].Kind == KindCoral {
		return errors.Wrapf(ErrInvalidMutation, "root (%d,%d)", row, col)
	}
	g.coral[idx] = Cell{Kind: KindCoral, Hue: hue, Saturation: saturation, Brightness: brightness}
	g.coralCount++
	return nil
}

// Enter records a drifter arriving at (row, col).
func (g *CellGrid) Enter(row, col int) error {
	if !g.InBounds(row, col) {
		return errors.Wrapf(ErrOutOfBounds, "enter (%d,%d) in %dx%d grid", row, col, g.Rows, g.Cols)
	}
	g.occupied[g.Index(row, col)]++
	return nil
}

// Leave records a drifter vacating (row, col). Leaving a cell no drifter
// occupies is an ErrInvalidMutation.
func (g *CellGrid) Leave(row, col int) error {
	if !g.InBounds(row, col) {
		return errors.Wrapf(ErrOutOfBounds, "leave (%d,%d) in %dx%d grid", row, col, g.Rows, g.Cols)
	}
	idx := g.Index(row, col)
	if g.occupied[idx] == 0 {
		return errors.Wrapf(ErrInvalidMutation, "leave (%d,%d) with no drifter", row, col)
	}
	g.occupied[idx]--
	return nil
}

// CoralCount returns the number of rooted cells.
func (g *CellGrid) CoralCount() int { return g.coralCount }

// Materialize writes the visible state of every cell into dst (reallocated
// when too small) and returns it. Drifting cells are reported as Empty unless
// showDrifters is set.
func (g *CellGrid) Materialize(dst []Cell, showDrifters bool) []Cell {
	total := g.Rows * g.Cols
	if cap(dst) < total {
		dst = make([]Cell, total)
	}
	dst = dst[:total]
	for i := range dst {
		switch {
		case g.coral[i].Kind == KindCoral:
			dst[i] = g.coral[i]
		case showDrifters && g.occupied[i] > 0:
			dst[i] = Cell{Kind: KindDrifting}
		default:
			dst[i] = Cell{}
		}
	}
	return dst
}

// Clear empties every cell.
func (g *CellGrid) Clear() {
	for i := range g.coral {
		g.coral[i] = Cell{}
		g.occupied[i] = 0
	}
	g.coralCount = 0
}
