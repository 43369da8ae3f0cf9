//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the stats panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string
	lines      []Line
}

// NewHUD constructs a HUD for the provided simulation and panel width. A
// non-positive width disables the panel.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: Title(sim)}
}

// Update refreshes the cached rows from the simulation.
func (h *HUD) Update() {
	if h == nil || h.width <= 0 {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.lines = nil
		return
	}
	h.lines = Lines(provider.Parameters())
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)
	h.drawLines()
	text.Draw(h.panel, "q / esc to quit", basicfont.Face7x13, panelPadding, height-panelPadding, mutedColor)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawLines() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, titleColor)
	if len(h.lines) == 0 {
		text.Draw(h.panel, "No stats", face, panelPadding, headerY+lineHeight, mutedColor)
		return
	}

	y := headerY + lineHeight
	for _, l := range h.lines {
		if l.Header {
			y += groupGap
			text.Draw(h.panel, l.Label, face, panelPadding, y, groupColor)
			y += lineHeight
			continue
		}
		text.Draw(h.panel, l.Label, face, panelPadding, y, textColor)
		valueWidth := text.BoundString(face, l.Value).Dx()
		text.Draw(h.panel, l.Value, face, h.width-panelPadding-valueWidth, y, textColor)
		y += lineHeight
	}
}

var (
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	groupColor = color.RGBA{R: 140, G: 180, B: 220, A: 255}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 18
	groupGap       = 8
	headerBaseline = 18
)
