package core

import (
	"sort"

	"lattice-life/pkg/lattice"
)

// Sim is the contract the driving loop needs from a simulation.
type Sim interface {
	Name() string
	Dimension() lattice.Dimension
	Reset()
	Step()
	Lattice() lattice.Grid
	Generation() int
}

// Factory constructs a Sim starting from the provided seed lattice.
type Factory func(seed lattice.Grid) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := sims[name]
	return f, ok
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	out := make([]string, 0, len(sims))
	for name := range sims {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
