package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/ctxlog"
	_ "lifegrid/internal/scenario"
	"lifegrid/internal/survey"
)

func main() {
	steps := flag.Int("steps", 500, "generations to simulate per job")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seeds := flag.Int("seeds", 8, "soup seeds to try, counting up from -seed")
	seed := flag.Int64("seed", 1, "first soup seed")
	names := flag.String("scenarios", strings.Join(core.Scenarios(), ","), "comma separated scenarios to run")
	width := flag.Int("w", 140, "grid width in cells")
	height := flag.Int("h", 85, "grid height in cells")
	density := flag.Float64("density", 0.25, "live cell density for soup")
	layout := flag.String("layout", "", "HCL layout file for the file scenario")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	logger := ctxlog.New(os.Stderr, *verbose)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = ctxlog.WithLogger(ctx, logger)

	base := map[string]string{
		"w":       strconv.Itoa(*width),
		"h":       strconv.Itoa(*height),
		"density": strconv.FormatFloat(*density, 'f', -1, 64),
	}
	var scenarios []string
	for _, name := range strings.Split(*names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if name == "file" {
			if *layout == "" {
				logger.Debug("Skipping file scenario without -layout.")
				continue
			}
			base["layout"] = *layout
		}
		scenarios = append(scenarios, name)
	}
	seedList := make([]int64, 0, max(*seeds, 0))
	for i := 0; i < *seeds; i++ {
		seedList = append(seedList, *seed+int64(i))
	}

	jobs := survey.Plan(scenarios, seedList, base)
	fmt.Printf("Surveying %d jobs (%d workers, %d steps)\n", len(jobs), *workers, *steps)

	start := time.Now()
	results, err := survey.Run(ctx, jobs, *steps, *workers)
	if err != nil {
		logger.Error("Survey failed.", "error", err)
		os.Exit(1)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "scenario\tseed\tinitial\tpeak\tfinal\telapsed\t")
	for _, res := range results {
		seedCol := "-"
		if res.Scenario == "soup" {
			seedCol = strconv.FormatInt(res.Seed, 10)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\t\n",
			res.Scenario, seedCol, res.Initial, res.Peak, res.Final, res.Elapsed.Round(time.Millisecond))
	}
	tw.Flush()
	fmt.Printf("\nDone in %s\n", time.Since(start).Round(time.Millisecond))
}
