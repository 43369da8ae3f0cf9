// Package scenario builds ready-to-run worlds: a grid plus the one-time setup
// that seeds it. Each scenario registers itself with core under its name.
package scenario

import (
	"context"

	"github.com/pkg/errors"

	"lifegrid/internal/core"
	"lifegrid/internal/ctxlog"
	"lifegrid/internal/layoutfile"
	"lifegrid/pkg/patterns"
)

// ErrNoLayout is returned by the file scenario when no layout path is set.
var ErrNoLayout = errors.New("file scenario needs a layout path")

// Showcase is the classic arrangement: pulsar rows top and bottom with rows of
// blinkers, gliders and lightweight spaceships between them. It is designed
// for a 140x85 board; placements past the edges are clipped.
func Showcase() patterns.Layout {
	return patterns.Concat(
		patterns.Row("pulsar", 6, 3, 22, 3),
		patterns.Row("blinker", 8, 10, 15, 30),
		patterns.Row("glider", 6, 15, 18, 35),
		patterns.Row("lwss", 5, 12, 22, 40),
		patterns.Row("blinker", 7, 8, 17, 45),
		patterns.Row("glider", 3, 18, 32, 50),
		patterns.Row("lwss", 3, 34, 32, 50),
		patterns.Row("blinker", 8, 6, 16, 55),
		patterns.Row("pulsar", 5, 8, 25, 67),
	)
}

// Fleet tiles gliders every 10 cells across a w x h board. They all travel
// the same way, so they never collide until they reach the far edges.
func Fleet(w, h int) patterns.Layout {
	var l patterns.Layout
	for y := 1; y+3 <= h; y += 10 {
		for x := 1; x+3 <= w; x += 10 {
			l = append(l, patterns.Placement{Pattern: "glider", X: x, Y: y})
		}
	}
	return l
}

func (w *World) apply(ctx context.Context, l patterns.Layout) error {
	if err := l.Apply(w.grid); err != nil {
		return err
	}
	w.placed = len(l)
	ctxlog.FromContext(ctx).Debug("Stamped layout.",
		"scenario", w.name, "placements", w.placed, "population", w.grid.Population())
	return nil
}

// NewShowcase builds the showcase scenario.
func NewShowcase(ctx context.Context, cfg Config) (*World, error) {
	w, err := newWorld("showcase", cfg)
	if err != nil {
		return nil, err
	}
	if err := w.apply(ctx, Showcase()); err != nil {
		return nil, err
	}
	return w, nil
}

// NewGliders builds a board covered by a glider fleet.
func NewGliders(ctx context.Context, cfg Config) (*World, error) {
	w, err := newWorld("gliders", cfg)
	if err != nil {
		return nil, err
	}
	if err := w.apply(ctx, Fleet(cfg.Width, cfg.Height)); err != nil {
		return nil, err
	}
	return w, nil
}

// NewSoup fills the board at random with the configured density. The same
// seed always produces the same board.
func NewSoup(ctx context.Context, cfg Config) (*World, error) {
	w, err := newWorld("soup", cfg)
	if err != nil {
		return nil, err
	}
	rng := core.NewRNG(cfg.Seed)
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			if rng.Chance(cfg.Density) {
				w.grid.Set(x, y, true)
			}
		}
	}
	ctxlog.FromContext(ctx).Debug("Seeded soup.",
		"seed", cfg.Seed, "density", cfg.Density, "population", w.grid.Population())
	return w, nil
}

// NewFromFile builds a world from an HCL layout file. A grid block in the file
// overrides the configured size.
func NewFromFile(ctx context.Context, cfg Config) (*World, error) {
	if cfg.Layout == "" {
		return nil, ErrNoLayout
	}
	f, err := layoutfile.Load(ctx, cfg.Layout)
	if err != nil {
		return nil, err
	}
	cfg.Width, cfg.Height = f.Size(cfg.Width, cfg.Height)
	w, err := newWorld("file", cfg)
	if err != nil {
		return nil, err
	}
	if err := w.apply(ctx, f.Layout()); err != nil {
		return nil, err
	}
	return w, nil
}

func register(name string, build func(context.Context, Config) (*World, error)) {
	core.Register(name, func(ctx context.Context, cfg map[string]string) (core.Sim, error) {
		w, err := build(ctx, FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return w, nil
	})
}

func init() {
	register("showcase", NewShowcase)
	register("gliders", NewGliders)
	register("soup", NewSoup)
	register("file", NewFromFile)
}
