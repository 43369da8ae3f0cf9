//go:build ebiten

package main

import (
	"context"
	"flag"
	"os"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
	"lifegrid/internal/ctxlog"
	_ "lifegrid/internal/scenario"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := ctxlog.New(os.Stderr, cfg.Verbose)
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration.", "error", err)
		os.Exit(2)
	}
	ctx := ctxlog.WithLogger(context.Background(), logger)

	sim, err := core.Build(ctx, cfg.ScenarioName(), cfg.Options())
	if err != nil {
		logger.Error("Failed to build scenario.", "error", err)
		os.Exit(1)
	}

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle(ui.Title(sim))
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(size.W*cfg.Scale+max(cfg.HUDWidth, 0), size.H*cfg.Scale)

	logger.Info("Starting.", "scenario", sim.Name(), "width", size.W, "height", size.H, "rate", cfg.Rate)
	if err := loopErr(ebiten.RunGame(game)); err != nil {
		logger.Error("Game loop failed.", "error", err)
		os.Exit(1)
	}
}

// loopErr drops the termination error ebiten returns when the game quits on
// purpose.
func loopErr(err error) error {
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
