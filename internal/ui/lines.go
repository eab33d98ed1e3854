package ui

import (
	"strings"

	"lattice-life/internal/core"
)

// Lines flattens a parameter snapshot into the rows shown on the HUD.
func Lines(title string, snap core.ParameterSnapshot) []string {
	var out []string
	if title != "" {
		out = append(out, title)
	}
	for _, group := range snap.Groups {
		for _, p := range group.Params {
			out = append(out, p.Label+": "+p.Value)
		}
	}
	return out
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Status"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}
