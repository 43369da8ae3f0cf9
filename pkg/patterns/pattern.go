// Package patterns holds a catalog of well-known Game of Life shapes and
// stamps them onto anything that accepts cell writes.
package patterns

import "sort"

// Offset is a cell position relative to a pattern origin.
type Offset struct {
	DX, DY int
}

// Pattern is an immutable, named set of live cell offsets.
type Pattern struct {
	name    string
	offsets []Offset
}

func newPattern(name string, cells ...[2]int) Pattern {
	offsets := make([]Offset, len(cells))
	for i, c := range cells {
		offsets[i] = Offset{DX: c[0], DY: c[1]}
	}
	return Pattern{name: name, offsets: offsets}
}

// Name returns the catalog name.
func (p Pattern) Name() string { return p.name }

// Len returns the number of live cells.
func (p Pattern) Len() int { return len(p.offsets) }

// Offsets returns a copy of the pattern's cells in definition order.
func (p Pattern) Offsets() []Offset {
	return append([]Offset(nil), p.offsets...)
}

// Bounds returns the width and height of the pattern's bounding box measured
// from the origin.
func (p Pattern) Bounds() (w, h int) {
	for _, o := range p.offsets {
		w = max(w, o.DX+1)
		h = max(h, o.DY+1)
	}
	return w, h
}

var (
	// Blinker is a period 2 oscillator.
	Blinker = newPattern("blinker",
		[2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0},
	)

	// Glider travels one cell diagonally down and right every 4 generations.
	Glider = newPattern("glider",
		[2]int{1, 0},
		[2]int{2, 1},
		[2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2},
	)

	// LWSS is the lightweight spaceship, period 4.
	LWSS = newPattern("lwss",
		[2]int{0, 0}, [2]int{3, 0},
		[2]int{4, 1},
		[2]int{0, 2}, [2]int{4, 2},
		[2]int{1, 3}, [2]int{2, 3}, [2]int{3, 3}, [2]int{4, 3},
	)

	// Pulsar is a period 3 oscillator on a 13x13 footprint.
	Pulsar = newPattern("pulsar",
		[2]int{2, 0}, [2]int{3, 0}, [2]int{4, 0}, [2]int{8, 0}, [2]int{9, 0}, [2]int{10, 0},
		[2]int{0, 2}, [2]int{5, 2}, [2]int{7, 2}, [2]int{12, 2},
		[2]int{0, 3}, [2]int{5, 3}, [2]int{7, 3}, [2]int{12, 3},
		[2]int{0, 4}, [2]int{5, 4}, [2]int{7, 4}, [2]int{12, 4},
		[2]int{2, 5}, [2]int{3, 5}, [2]int{4, 5}, [2]int{8, 5}, [2]int{9, 5}, [2]int{10, 5},
		[2]int{2, 7}, [2]int{3, 7}, [2]int{4, 7}, [2]int{8, 7}, [2]int{9, 7}, [2]int{10, 7},
		[2]int{0, 8}, [2]int{5, 8}, [2]int{7, 8}, [2]int{12, 8},
		[2]int{0, 9}, [2]int{5, 9}, [2]int{7, 9}, [2]int{12, 9},
		[2]int{0, 10}, [2]int{5, 10}, [2]int{7, 10}, [2]int{12, 10},
		[2]int{2, 12}, [2]int{3, 12}, [2]int{4, 12}, [2]int{8, 12}, [2]int{9, 12}, [2]int{10, 12},
	)
)

var catalog = map[string]Pattern{
	Blinker.name: Blinker,
	Glider.name:  Glider,
	LWSS.name:    LWSS,
	Pulsar.name:  Pulsar,
}

// Lookup finds a catalog pattern by name.
func Lookup(name string) (Pattern, bool) {
	p, ok := catalog[name]
	return p, ok
}

// Names lists the catalog in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Setter is the write side of a grid.
type Setter interface {
	Set(x, y int, alive bool)
}

// Stamp marks every cell of p alive relative to (x, y). Existing live cells
// are left alone; cells landing outside the grid are dropped by the grid.
func Stamp(g Setter, p Pattern, x, y int) {
	for _, o := range p.offsets {
		g.Set(x+o.DX, y+o.DY, true)
	}
}
