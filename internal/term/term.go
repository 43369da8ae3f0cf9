// Package term presents a simulation in a terminal using tcell.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifegrid/internal/core"
	"lifegrid/internal/ui"
)

const (
	liveRune = '█'
	deadRune = ' '
)

// Presenter draws one cell as two terminal columns so cells look square,
// with a status line under the grid.
type Presenter struct {
	screen tcell.Screen
	sim    core.Sim

	// Hold keeps the final frame on screen after a generation limit is
	// reached until the user quits or the context ends.
	Hold bool
	done bool

	cellStyle   tcell.Style
	statusStyle tcell.Style
}

// New builds a presenter for an initialized screen.
func New(screen tcell.Screen, sim core.Sim) *Presenter {
	return &Presenter{
		screen:      screen,
		sim:         sim,
		cellStyle:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
		statusStyle: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver),
	}
}

// Draw renders the current generation. Cells that do not fit the screen are
// cut off.
func (p *Presenter) Draw() {
	p.screen.Clear()
	size := p.sim.Size()
	cells := p.sim.Cells()
	sw, sh := p.screen.Size()

	rows := min(size.H, sh-1)
	cols := min(size.W, sw/2)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r := deadRune
			if cells[y*size.W+x] != 0 {
				r = liveRune
			}
			p.screen.SetContent(2*x, y, r, nil, p.cellStyle)
			p.screen.SetContent(2*x+1, y, r, nil, p.cellStyle)
		}
	}
	if rows >= 0 {
		p.drawStatus(rows, sw)
	}
	p.screen.Show()
}

func (p *Presenter) drawStatus(row, width int) {
	status := ui.Title(p.sim)
	if p.done {
		status += " | done"
	}
	if provider, ok := p.sim.(core.ParameterProvider); ok {
		status += " | " + ui.StatusLine(provider.Parameters())
	}
	status += " | q to quit"
	x := 0
	for _, r := range status {
		if x >= width {
			break
		}
		p.screen.SetContent(x, row, r, nil, p.statusStyle)
		x++
	}
}

// Run steps the simulation rate times per second and redraws after every
// step until the user quits, ctx is done, or generations steps have run
// (0 means no limit). With Hold set, reaching the limit stops stepping but
// keeps the final frame up until the user quits.
func (p *Presenter) Run(ctx context.Context, rate, generations int) error {
	if rate <= 0 {
		rate = 10
	}
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go p.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()
	ticks := ticker.C

	p.Draw()
	stepped := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
			case *tcell.EventResize:
				p.screen.Sync()
				p.Draw()
			}
		case <-ticks:
			p.sim.Step()
			stepped++
			if generations > 0 && stepped >= generations {
				if !p.Hold {
					p.Draw()
					return nil
				}
				p.done = true
				ticks = nil
			}
			p.Draw()
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
