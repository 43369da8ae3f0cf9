// Package survey runs many independent scenarios side by side and reports how
// their populations evolve. Each world is stepped by exactly one goroutine.
package survey

import (
	"context"
	"maps"
	"sort"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"lifegrid/internal/core"
	"lifegrid/internal/ctxlog"
)

// Job is one scenario build.
type Job struct {
	Scenario string
	Seed     int64
	Options  map[string]string
}

// Result is the outcome of stepping one job.
type Result struct {
	Job
	Initial    int
	Final      int
	Peak       int
	Generation int
	Elapsed    time.Duration
}

// Plan expands scenarios into jobs. Only the soup scenario depends on the
// seed, so it gets one job per seed and the others run once.
func Plan(scenarios []string, seeds []int64, base map[string]string) []Job {
	var jobs []Job
	for _, name := range scenarios {
		if name != "soup" {
			jobs = append(jobs, Job{Scenario: name, Options: maps.Clone(base)})
			continue
		}
		for _, seed := range seeds {
			opts := maps.Clone(base)
			if opts == nil {
				opts = map[string]string{}
			}
			opts["seed"] = strconv.FormatInt(seed, 10)
			jobs = append(jobs, Job{Scenario: name, Seed: seed, Options: opts})
		}
	}
	return jobs
}

// Run builds every job and steps it steps times using at most workers
// goroutines. Results come back sorted by scenario then seed. The first build
// error cancels the remaining jobs.
func Run(ctx context.Context, jobs []Job, steps, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = 1
	}
	logger := ctxlog.FromContext(ctx)
	results := make([]Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, job := range jobs {
		g.Go(func() error {
			res, err := runJob(ctx, job, steps)
			if err != nil {
				return errors.Wrapf(err, "job %d (%s seed %d)", i, job.Scenario, job.Seed)
			}
			logger.Debug("Job finished.", "scenario", job.Scenario, "seed", job.Seed,
				"final", res.Final, "elapsed", res.Elapsed)
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Scenario != results[j].Scenario {
			return results[i].Scenario < results[j].Scenario
		}
		return results[i].Seed < results[j].Seed
	})
	return results, nil
}

func runJob(ctx context.Context, job Job, steps int) (Result, error) {
	start := time.Now()
	sim, err := core.Build(ctx, job.Scenario, job.Options)
	if err != nil {
		return Result{}, err
	}
	res := Result{Job: job, Initial: population(sim.Cells())}
	res.Peak = res.Initial
	for res.Generation < steps {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		sim.Step()
		res.Generation++
		res.Peak = max(res.Peak, population(sim.Cells()))
	}
	res.Final = population(sim.Cells())
	res.Elapsed = time.Since(start)
	return res, nil
}

func population(cells []uint8) int {
	n := 0
	for _, c := range cells {
		n += int(c)
	}
	return n
}
