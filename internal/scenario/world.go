package scenario

import (
	"lifegrid/internal/core"
	"lifegrid/pkg/life"
)

// World is a Game of Life grid together with the scenario that seeded it.
type World struct {
	name   string
	cfg    Config
	grid   *life.Grid
	cells  []uint8
	placed int
}

func newWorld(name string, cfg Config) (*World, error) {
	g, err := life.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &World{name: name, cfg: cfg, grid: g}, nil
}

// Name returns the scenario identifier.
func (w *World) Name() string { return w.name }

// Size returns the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.Width(), H: w.grid.Height()} }

// Step advances the simulation by one generation.
func (w *World) Step() { w.grid.Step() }

// Cells copies the current generation into a buffer owned by the World.
func (w *World) Cells() []uint8 {
	w.cells = w.grid.Snapshot(w.cells)
	return w.cells
}

// Get reports whether a cell is alive.
func (w *World) Get(x, y int) bool { return w.grid.Get(x, y) }

// Generation reports how many steps have completed.
func (w *World) Generation() uint64 { return w.grid.Generation() }

// Population counts the live cells.
func (w *World) Population() int { return w.grid.Population() }

// Placements reports how many patterns were stamped during setup.
func (w *World) Placements() int { return w.placed }

// Parameters describes the world for HUDs and status lines.
func (w *World) Parameters() core.ParameterSnapshot {
	setup := []core.Parameter{
		core.StringParam("scenario", "Scenario", w.name),
		core.IntParam("placements", "Placements", int64(w.placed)),
	}
	switch w.name {
	case "soup":
		setup = append(setup,
			core.IntParam("seed", "Seed", w.cfg.Seed),
			core.FloatParam("density", "Density", w.cfg.Density),
		)
	case "file":
		setup = append(setup, core.StringParam("layout", "Layout", w.cfg.Layout))
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", int64(w.grid.Width())),
				core.IntParam("h", "Height", int64(w.grid.Height())),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", int64(w.grid.Generation())),
				core.IntParam("population", "Population", int64(w.grid.Population())),
			},
		},
		{Name: "Setup", Params: setup},
	}}
}
