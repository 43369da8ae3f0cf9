package life

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidSize is returned by New when either dimension is not positive.
var ErrInvalidSize = errors.New("life: grid dimensions must be positive")

// Grid implements Conway's Game of Life on a bounded, non-wrapping board.
// Cells outside the board are permanently dead.
//
// A Grid is not safe for concurrent use.
type Grid struct {
	w, h int
	cur  []bool
	nxt  []bool
	gen  uint64
}

// New returns a grid of the given dimensions with every cell dead.
func New(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "got %dx%d", w, h)
	}
	return &Grid{w: w, h: h, cur: make([]bool, w*h), nxt: make([]bool, w*h)}, nil
}

// MustNew is like New but panics on invalid dimensions.
func MustNew(w, h int) *Grid {
	g, err := New(w, h)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Generation reports how many steps have completed.
func (g *Grid) Generation() uint64 { return g.gen }

func (g *Grid) index(x, y int) (int, bool) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return 0, false
	}
	return y*g.w + x, true
}

// Get reports whether the cell at (x, y) is alive. Coordinates outside the
// grid are always dead.
func (g *Grid) Get(x, y int) bool {
	i, ok := g.index(x, y)
	return ok && g.cur[i]
}

// Set updates the cell at (x, y). Writes outside the grid are dropped.
func (g *Grid) Set(x, y int, alive bool) {
	if i, ok := g.index(x, y); ok {
		g.cur[i] = alive
	}
}

// Step advances the grid by one generation.
func (g *Grid) Step() {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			g.nxt[y*g.w+x] = Rule(g.Get(x, y), g.neighbors(x, y))
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.gen++
}

func (g *Grid) neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Get(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.cur {
		if alive {
			n++
		}
	}
	return n
}

// Snapshot copies the current generation into dst as row-major 0/1 bytes and
// returns it. dst is reallocated when it is too small.
func (g *Grid) Snapshot(dst []uint8) []uint8 {
	if cap(dst) < len(g.cur) {
		dst = make([]uint8, len(g.cur))
	}
	dst = dst[:len(g.cur)]
	for i, alive := range g.cur {
		dst[i] = 0
		if alive {
			dst[i] = 1
		}
	}
	return dst
}

// String renders the grid with '#' for live and '.' for dead cells.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.w + 1) * g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.Get(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
