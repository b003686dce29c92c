package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/automoto/celestial-crucible/components"
	"github.com/automoto/celestial-crucible/logging"
	"github.com/automoto/celestial-crucible/shared/leveldata"
	"github.com/automoto/celestial-crucible/sim"
	"github.com/gdamore/tcell/v2"
)

// cellMeters is the world size of one terminal cell. Cells are about twice
// as tall as they are wide, so a row covers twice the depth.
const cellMeters = 0.5

var (
	styleSand     = tcell.StyleDefault.Foreground(tcell.ColorTan)
	styleLedge    = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleWater    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleSolid    = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleCoin     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleCrucible = tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)
	styleFireball = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleActor    = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// runTUI runs in real time and draws a top-down view centred on the actor.
// q or Esc stops early.
func runTUI(r *run) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	// The screen owns the terminal until the run ends.
	logging.SetOutput(io.Discard)
	defer logging.SetOutput(os.Stderr)

	quit := make(chan struct{})
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					close(quit)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	ticker := time.NewTicker(time.Duration(sim.FixedDelta() * float64(time.Second)))
	defer ticker.Stop()
	for !r.done() {
		select {
		case <-quit:
			return nil
		case <-ticker.C:
		}
		if err := r.step(); err != nil {
			return err
		}
		drawFrame(screen, r)
	}
	return nil
}

func drawFrame(screen tcell.Screen, r *run) {
	screen.Clear()
	w, h := screen.Size()
	st := sim.StateOf(r.actor)
	level := r.sim.Level

	// Cell (col, row) to world (x, z); +Z is up the screen.
	toWorld := func(col, row int) (float64, float64) {
		x := st.X + float64(col-w/2)*cellMeters
		z := st.Z - float64(row-h/2)*cellMeters*2
		return x, z
	}
	toCell := func(x, z float64) (int, int) {
		col := w/2 + int(math.Round((x-st.X)/cellMeters))
		row := h/2 - int(math.Round((z-st.Z)/(cellMeters*2)))
		return col, row
	}

	for row := 1; row < h; row++ {
		for col := 0; col < w; col++ {
			x, z := toWorld(col, row)
			if ch, style, ok := terrainAt(level, x, z); ok {
				screen.SetContent(col, row, ch, nil, style)
			}
		}
	}

	for e := range components.Pickup.Iter(r.sim.World) {
		p := components.Pickup.Get(e)
		col, row := toCell(p.Position.X(), p.Position.Z())
		if p.Kind == components.PickupCrucible {
			screen.SetContent(col, row, '*', nil, styleCrucible)
		} else {
			screen.SetContent(col, row, 'o', nil, styleCoin)
		}
	}
	for e := range components.Projectile.Iter(r.sim.World) {
		p := components.Projectile.Get(e)
		if p.Body == nil {
			continue
		}
		pos := p.Body.Position()
		col, row := toCell(pos.X, pos.Y)
		screen.SetContent(col, row, '•', nil, styleFireball)
	}
	screen.SetContent(w/2, h/2, facingRune(st.Yaw), nil, styleActor)

	status := fmt.Sprintf(" t=%5.1fs %s pos=%s speed=%4.1f stamina=%3.0f%% coins=%d crucibles=%d/%d  [q]uit",
		r.sim.Elapsed(), st.Mode, formatPos(st), st.Speed, st.Stamina*100,
		r.sim.Tracker.Coins(), r.sim.Tracker.Crucibles(), r.sim.Tracker.MaxCrucibles())
	for i, ch := range []rune(status) {
		screen.SetContent(i, 0, ch, nil, styleStatus)
	}
	screen.Show()
}

// terrainAt picks the glyph for the ground at (x, z).
func terrainAt(level *leveldata.LevelData, x, z float64) (rune, tcell.Style, bool) {
	if level == nil || x < 0 || z < 0 || x >= level.Width || z >= level.Depth {
		return 0, tcell.StyleDefault, false
	}
	for _, s := range level.Solids {
		if s.Contains(x, z) {
			return '#', styleSolid, true
		}
	}
	if _, ok := level.WaterAt(x, z); ok {
		return '~', styleWater, true
	}
	for _, le := range level.Ledges {
		if le.Contains(x, z) {
			return '=', styleLedge, true
		}
	}
	return '.', styleSand, true
}

// facingRune is an arrow for the yaw as seen from above.
func facingRune(yaw float64) rune {
	arrows := []rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}
	i := int(math.Round(yaw/(math.Pi/4))) % 8
	if i < 0 {
		i += 8
	}
	return arrows[i]
}

func formatPos(st sim.ActorState) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", st.X, st.Y, st.Z)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
