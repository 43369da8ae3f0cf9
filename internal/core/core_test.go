package core

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepPacing(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := NewFixedStep(10)
	fs.now = clock.now

	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("interval = %v, want 100ms", fs.Interval())
	}
	if !fs.ShouldStep() {
		t.Fatal("first poll should step")
	}
	clock.advance(60 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped after 60ms at 10/s")
	}
	clock.advance(40 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not step after a full interval")
	}

	// a long stall grants one step now and at most one queued step
	clock.advance(time.Second)
	steps := 0
	for i := 0; i < 5; i++ {
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps != 2 {
		t.Fatalf("stall produced %d steps, want 2", steps)
	}
}

func TestFixedStepDefaultRate(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("interval = %v, want 1/60s", fs.Interval())
	}
	fs.SetRate(4)
	if fs.Interval() != 250*time.Millisecond {
		t.Fatalf("interval after SetRate(4) = %v, want 250ms", fs.Interval())
	}
}

type stubSim struct{ name string }

func (s stubSim) Name() string   { return s.name }
func (s stubSim) Size() Size     { return Size{W: 1, H: 1} }
func (s stubSim) Step()          {}
func (s stubSim) Cells() []uint8 { return []uint8{0} }

func TestRegistry(t *testing.T) {
	Register("stub-test", func(_ context.Context, cfg map[string]string) (Sim, error) {
		if cfg["fail"] != "" {
			return nil, errors.New("boom")
		}
		return stubSim{name: "stub-test"}, nil
	})
	Register("", func(context.Context, map[string]string) (Sim, error) { return nil, nil })

	found := false
	for _, name := range Scenarios() {
		if name == "" {
			t.Fatal("empty name was registered")
		}
		if name == "stub-test" {
			found = true
		}
	}
	if !found {
		t.Fatal("registered scenario missing from Scenarios()")
	}

	sim, err := Build(context.Background(), "stub-test", nil)
	if err != nil || sim.Name() != "stub-test" {
		t.Fatalf("Build = %v, %v", sim, err)
	}
	if _, err := Build(context.Background(), "stub-test", map[string]string{"fail": "1"}); err == nil {
		t.Fatal("factory error was swallowed")
	}
	if _, err := Build(context.Background(), "missing", nil); !errors.Is(err, ErrUnknownScenario) {
		t.Fatalf("Build(missing) error = %v, want ErrUnknownScenario", err)
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Grid", Params: []Parameter{IntParam("w", "Width", 140)}},
		{Name: "Setup", Params: []Parameter{FloatParam("density", "Density", 0.25), StringParam("layout", "Layout", "a.hcl")}},
	}}
	if p, ok := snap.Lookup("w"); !ok || p.Value != "140" || p.Type != ParamTypeInt {
		t.Fatalf("Lookup(w) = %+v, %v", p, ok)
	}
	if p, ok := snap.Lookup("density"); !ok || p.Value != "0.25" {
		t.Fatalf("Lookup(density) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("nope"); ok {
		t.Fatal("Lookup found a missing key")
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 100; i++ {
		if a.IntN(1000) != b.IntN(1000) || a.Chance(0.5) != b.Chance(0.5) {
			t.Fatalf("RNGs with the same seed diverged at draw %d", i)
		}
	}
	if NewRNG(1).IntN(0) != 0 {
		t.Fatal("IntN(0) should be 0")
	}
}
