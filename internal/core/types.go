package core

import (
	"context"
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknownScenario is returned by Build for names missing from the registry.
var ErrUnknownScenario = errors.New("unknown scenario")

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is what the presenters drive: one Step per frame, then a read of the
// current cells.
type Sim interface {
	Name() string
	Size() Size
	Step()
	// Cells returns the current generation as row-major 0/1 bytes. The slice
	// is owned by the Sim and only valid until the next Step.
	Cells() []uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(ctx context.Context, cfg map[string]string) (Sim, error)

var scenarios = map[string]Factory{}

// Register adds a scenario factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	scenarios[name] = f
}

// Scenarios lists the registered scenario names in sorted order.
func Scenarios() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build looks up a scenario and constructs it.
func Build(ctx context.Context, name string, cfg map[string]string) (Sim, error) {
	f, ok := scenarios[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownScenario, "%q", name)
	}
	sim, err := f(ctx, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "build scenario %q", name)
	}
	return sim, nil
}
