package ui

import (
	"fmt"
	"strings"

	"lifegrid/internal/core"
)

// Line is one row of the stats panel. Header rows carry only a label.
type Line struct {
	Label  string
	Value  string
	Header bool
}

// Lines flattens a parameter snapshot into panel rows: a header per group
// followed by its label/value pairs.
func Lines(snap core.ParameterSnapshot) []Line {
	var lines []Line
	for _, g := range snap.Groups {
		if len(g.Params) == 0 {
			continue
		}
		lines = append(lines, Line{Label: g.Name, Header: true})
		for _, p := range g.Params {
			lines = append(lines, Line{Label: p.Label, Value: p.Value})
		}
	}
	return lines
}

// Title builds the panel heading for a sim.
func Title(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Life"
	}
	name := sim.Name()
	return fmt.Sprintf("Life: %s", strings.ToUpper(name[:1])+name[1:])
}

// StatusLine renders a snapshot as a single line for terminals.
func StatusLine(snap core.ParameterSnapshot) string {
	var parts []string
	for _, l := range Lines(snap) {
		if l.Header {
			continue
		}
		parts = append(parts, l.Label+": "+l.Value)
	}
	return strings.Join(parts, " | ")
}
