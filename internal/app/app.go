//go:build ebiten

package app

import (
	"image/color"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale       int
	hudWidth    int
	generations int
	stepped     int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:         sim,
		painter:     render.NewGridPainter(size.W, size.H),
		hud:         ui.NewHUD(sim, cfg.HUDWidth),
		pacer:       core.NewFixedStep(cfg.Rate),
		onColor:     color.White,
		offColor:    color.Black,
		scale:       cfg.Scale,
		hudWidth:    max(cfg.HUDWidth, 0),
		generations: cfg.Generations,
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.generations > 0 && g.stepped >= g.generations {
		return ebiten.Termination
	}
	if g.pacer.ShouldStep() {
		g.sim.Step()
		g.stepped++
	}
	g.hud.Update()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
