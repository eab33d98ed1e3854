package lattice

// offsets lists the Moore neighborhood, row by row.
var offsets = [8]Cell{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbours partitions the Moore neighborhood of a cell.
type Neighbours struct {
	Alive []Cell
	Dead  []Cell
}

// NeighboursOf splits the eight cells around c into live and dead ones.
// The lattice is unbounded, so any coordinate is valid.
func NeighboursOf(g Grid, c Cell) Neighbours {
	var n Neighbours
	for _, o := range offsets {
		p := Cell{X: c.X + o.X, Y: c.Y + o.Y}
		if g.Alive(p) {
			n.Alive = append(n.Alive, p)
			continue
		}
		n.Dead = append(n.Dead, p)
	}
	return n
}

// Step returns the next generation of g. Only live cells and their dead
// neighbours are visited, and the input is never modified.
func Step(g Grid) Grid {
	next := make(CellSet, len(g.cells))
	births := make(map[Cell]int, len(g.cells)*2)

	for c := range g.cells {
		n := NeighboursOf(g, c)
		if k := len(n.Alive); k == 2 || k == 3 {
			next[c] = struct{}{}
		}
		for _, d := range n.Dead {
			births[d]++
		}
	}
	for c, k := range births {
		if k == 3 {
			next[c] = struct{}{}
		}
	}
	return Grid{Dim: g.Dim, cells: next}
}

// Run applies Step n times. Non-positive n returns g unchanged.
func Run(g Grid, n int) Grid {
	for i := 0; i < n; i++ {
		g = Step(g)
	}
	return g
}
