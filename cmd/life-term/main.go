package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
	"lifegrid/internal/ctxlog"
	"lifegrid/internal/scenario"
	"lifegrid/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := ctxlog.New(os.Stderr, cfg.Verbose)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = ctxlog.WithLogger(ctx, logger)

	if err := run(ctx, cfg); err != nil {
		logger.Error("Terminal run failed.", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *app.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	sim, err := core.Build(ctx, cfg.ScenarioName(), cfg.Options())
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "open terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init terminal")
	}
	presenter := term.New(screen, sim)
	presenter.Hold = true
	err = presenter.Run(ctx, cfg.Rate, cfg.Generations)
	screen.Fini()
	if err != nil {
		return err
	}

	logger := ctxlog.FromContext(ctx)
	if world, ok := sim.(*scenario.World); ok {
		logger.Info("Stopped.", "scenario", world.Name(),
			"generation", world.Generation(), "population", world.Population())
	}
	return nil
}
