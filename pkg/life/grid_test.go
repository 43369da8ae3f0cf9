package life

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestNewRejectsNonPositiveSize(t *testing.T) {
	for _, sz := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -7}, {0, 0}} {
		g, err := New(sz[0], sz[1])
		if err == nil {
			t.Fatalf("New(%d, %d) returned %v, want error", sz[0], sz[1], g)
		}
		if !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("New(%d, %d) error = %v, want ErrInvalidSize", sz[0], sz[1], err)
		}
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustNew(0, 1) did not panic")
		}
	}()
	MustNew(0, 1)
}

func TestNewStartsDead(t *testing.T) {
	g := MustNew(7, 4)
	if g.Width() != 7 || g.Height() != 4 {
		t.Fatalf("size = %dx%d, want 7x4", g.Width(), g.Height())
	}
	if n := g.Population(); n != 0 {
		t.Fatalf("population = %d, want 0", n)
	}
	if g.Generation() != 0 {
		t.Fatalf("generation = %d, want 0", g.Generation())
	}
}

func TestBoundarySafety(t *testing.T) {
	const w, h = 6, 5
	g := MustNew(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(x, y, true)
		}
	}
	before := g.Snapshot(nil)

	outside := [][2]int{{-1, 0}, {0, -1}, {w, 0}, {0, h}, {w, h}, {-1, -1}, {100, 2}, {2, -100}}
	for _, c := range outside {
		if g.Get(c[0], c[1]) {
			t.Fatalf("Get(%d,%d) outside grid = true", c[0], c[1])
		}
		g.Set(c[0], c[1], false)
	}

	if diff := cmp.Diff(before, g.Snapshot(nil)); diff != "" {
		t.Fatalf("out of bounds Set changed the grid (-want +got):\n%s", diff)
	}
}

func TestRuleTruthTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := Rule(true, n); got != wantAlive {
			t.Errorf("Rule(alive, %d) = %v, want %v", n, got, wantAlive)
		}
		wantBorn := n == 3
		if got := Rule(false, n); got != wantBorn {
			t.Errorf("Rule(dead, %d) = %v, want %v", n, got, wantBorn)
		}
	}
}

func TestIsolatedCellDies(t *testing.T) {
	g := MustNew(5, 5)
	g.Set(2, 2, true)
	g.Step()
	if g.Population() != 0 {
		t.Fatalf("lone cell survived:\n%s", g)
	}

	g = MustNew(5, 5)
	g.Set(2, 2, true)
	g.Set(3, 2, true)
	g.Step()
	if g.Population() != 0 {
		t.Fatalf("pair survived:\n%s", g)
	}
}

func TestOvercrowdedCellDies(t *testing.T) {
	g := MustNew(5, 5)
	// plus shape: the center has four neighbors
	g.Set(2, 2, true)
	g.Set(1, 2, true)
	g.Set(3, 2, true)
	g.Set(2, 1, true)
	g.Set(2, 3, true)
	g.Step()
	if g.Get(2, 2) {
		t.Fatalf("center with 4 neighbors survived:\n%s", g)
	}
}

func TestBirthAndSurvival(t *testing.T) {
	// block is a still life: every cell has three neighbors
	g := MustNew(4, 4)
	g.Set(1, 1, true)
	g.Set(2, 1, true)
	g.Set(1, 2, true)
	g.Step()
	if !g.Get(2, 2) {
		t.Fatalf("dead cell with 3 neighbors was not born:\n%s", g)
	}
	for _, c := range [][2]int{{1, 1}, {2, 1}, {1, 2}} {
		if !g.Get(c[0], c[1]) {
			t.Fatalf("cell (%d,%d) with 2 neighbors died:\n%s", c[0], c[1], g)
		}
	}
	before := g.String()
	g.Step()
	if g.String() != before {
		t.Fatalf("block changed:\n%s\nwant\n%s", g, before)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := MustNew(5, 5)
	g.Set(2, 1, true)
	g.Set(2, 2, true)
	g.Set(2, 3, true)

	g.Step()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if g.Get(x, y) != expects[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, g.Get(x, y), expects[[2]int{x, y}])
			}
		}
	}

	g.Step()

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if g.Get(x, y) != expects[[2]int{x, y}] {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, g.Get(x, y), expects[[2]int{x, y}])
			}
		}
	}
	if g.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", g.Generation())
	}
}

func TestBlinkerAgainstEdge(t *testing.T) {
	// vertical blinker in the corner column loses its off-grid phase cell
	g := MustNew(4, 4)
	g.Set(0, 0, true)
	g.Set(0, 1, true)
	g.Set(0, 2, true)
	g.Step()
	want := "....\n##..\n....\n....\n"
	if got := g.String(); got != want {
		t.Fatalf("got\n%swant\n%s", got, want)
	}
}

func TestEmptyGridStaysDead(t *testing.T) {
	g := MustNew(20, 20)
	for i := 0; i < 50; i++ {
		g.Step()
		if g.Population() != 0 {
			t.Fatalf("empty grid grew cells at generation %d", g.Generation())
		}
	}
}

// reference computes the next generation from a plain 2D copy so Step can be
// checked without sharing any code with it.
func reference(cells []uint8, w, h int) []uint8 {
	out := make([]uint8, len(cells))
	at := func(x, y int) int {
		if x < 0 || y < 0 || x >= w || y >= h {
			return 0
		}
		return int(cells[y*w+x])
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := at(x-1, y-1) + at(x, y-1) + at(x+1, y-1) +
				at(x-1, y) + at(x+1, y) +
				at(x-1, y+1) + at(x, y+1) + at(x+1, y+1)
			alive := cells[y*w+x] == 1
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				out[y*w+x] = 1
			}
		}
	}
	return out
}

func TestStepMatchesReference(t *testing.T) {
	const w, h = 31, 17
	rng := rand.New(rand.NewPCG(7, 0))
	g := MustNew(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(x, y, rng.IntN(3) == 0)
		}
	}

	want := g.Snapshot(nil)
	for i := 0; i < 25; i++ {
		want = reference(want, w, h)
		g.Step()
		if diff := cmp.Diff(want, g.Snapshot(nil)); diff != "" {
			t.Fatalf("generation %d differs from reference (-want +got):\n%s", g.Generation(), diff)
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := MustNew(3, 3)
	g.Set(1, 1, true)
	snap := g.Snapshot(nil)
	snap[0] = 1
	if g.Get(0, 0) {
		t.Fatal("writing to a snapshot changed the grid")
	}

	buf := make([]uint8, 0, 64)
	snap = g.Snapshot(buf)
	if len(snap) != 9 || &snap[0] != &buf[:1][0] {
		t.Fatalf("Snapshot did not reuse a large enough buffer (len=%d)", len(snap))
	}
}
