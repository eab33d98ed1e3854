package life

import (
	"strconv"

	"lattice-life/internal/core"
	"lattice-life/pkg/lattice"
)

// Life runs Conway's Game of Life on an unbounded lattice.
type Life struct {
	seed lattice.Grid
	cur  lattice.Grid
	gen  int
}

// New returns a Life simulation starting from seed.
func New(seed lattice.Grid) *Life {
	return &Life{seed: seed, cur: seed}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Dimension returns the declared lattice dimension.
func (l *Life) Dimension() lattice.Dimension { return l.cur.Dim }

// Lattice returns the current generation.
func (l *Life) Lattice() lattice.Grid { return l.cur }

// Generation returns how many steps have run since the last reset.
func (l *Life) Generation() int { return l.gen }

// Reset restores the seed lattice.
func (l *Life) Reset() {
	l.cur = l.seed
	l.gen = 0
}

// Step supersedes the current lattice with the next generation.
func (l *Life) Step() {
	l.cur = lattice.Step(l.cur)
	l.gen++
}

// Parameters reports the run state for the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	extent := "-"
	if lo, hi, ok := l.cur.Bounds(); ok {
		extent = strconv.Itoa(hi.X-lo.X+1) + "x" + strconv.Itoa(hi.Y-lo.Y+1)
	}
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Run",
				Params: []core.Parameter{
					{Key: "gen", Label: "Generation", Value: strconv.Itoa(l.gen)},
					{Key: "pop", Label: "Population", Value: strconv.Itoa(l.cur.Len())},
					{Key: "extent", Label: "Extent", Value: extent},
				},
			},
		},
	}
}

func init() {
	core.Register("life", func(seed lattice.Grid) core.Sim {
		return New(seed)
	})
}
