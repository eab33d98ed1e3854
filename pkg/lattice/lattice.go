package lattice

import (
	"sort"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidDimension reports a non-positive width or height.
	ErrInvalidDimension = errors.New("lattice: dimension must be positive")
	// ErrDuplicateCell reports a coordinate listed more than once in a seed.
	ErrDuplicateCell = errors.New("lattice: duplicate cell")
)

// Dimension is the logical extent used for rendering. It never clips cells.
type Dimension struct {
	Width  int
	Height int
}

// Cell is an integer lattice coordinate.
type Cell struct {
	X, Y int
}

// CellSet is a sparse set of live coordinates.
type CellSet map[Cell]struct{}

// Grid is an immutable generation: a dimension plus the live cells.
type Grid struct {
	Dim   Dimension
	cells CellSet
}

// New validates the inputs and builds a Grid.
func New(dim Dimension, cells ...Cell) (Grid, error) {
	if dim.Width <= 0 || dim.Height <= 0 {
		return Grid{}, errors.Wrapf(ErrInvalidDimension, "got %dx%d", dim.Width, dim.Height)
	}
	set := make(CellSet, len(cells))
	for _, c := range cells {
		if _, dup := set[c]; dup {
			return Grid{}, errors.Wrapf(ErrDuplicateCell, "(%d,%d)", c.X, c.Y)
		}
		set[c] = struct{}{}
	}
	return Grid{Dim: dim, cells: set}, nil
}

// MustNew is New for literal seeds; it panics on invalid input.
func MustNew(dim Dimension, cells ...Cell) Grid {
	g, err := New(dim, cells...)
	if err != nil {
		panic(err)
	}
	return g
}

// Alive reports whether c is in the live set.
func (g Grid) Alive(c Cell) bool {
	_, ok := g.cells[c]
	return ok
}

// Len returns the population.
func (g Grid) Len() int { return len(g.cells) }

// Each calls fn for every live cell in unspecified order.
func (g Grid) Each(fn func(Cell)) {
	for c := range g.cells {
		fn(c)
	}
}

// Cells returns the live cells sorted row-major (by Y, then X).
func (g Grid) Cells() []Cell {
	out := make([]Cell, 0, len(g.cells))
	for c := range g.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Equal reports whether both grids share a dimension and a live set.
func (g Grid) Equal(o Grid) bool {
	if g.Dim != o.Dim || len(g.cells) != len(o.cells) {
		return false
	}
	for c := range g.cells {
		if _, ok := o.cells[c]; !ok {
			return false
		}
	}
	return true
}

// Bounds returns the inclusive bounding box of the live set. ok is false
// when the grid is empty.
func (g Grid) Bounds() (lo, hi Cell, ok bool) {
	for c := range g.cells {
		if !ok {
			lo, hi, ok = c, c, true
			continue
		}
		if c.X < lo.X {
			lo.X = c.X
		}
		if c.Y < lo.Y {
			lo.Y = c.Y
		}
		if c.X > hi.X {
			hi.X = c.X
		}
		if c.Y > hi.Y {
			hi.Y = c.Y
		}
	}
	return lo, hi, ok
}
