package lanes

import (
	"fmt"

	"github.com/vovakirdan/carsamedia/internal/core"
)

// Layout rows reserved around the playfield.
const (
	hudRows    = 1
	footerRows = 1
	dashPeriod = 4 // Rows per lane dash cycle
)

// field maps simulation coordinates to screen cells.
type field struct {
	x, y   int // Top-left of the playfield
	w, h   int
	laneW  int
	scaleY float64 // Rows per simulation unit
}

func (g *Game) layout(dst *core.Screen) field {
	lanes := g.cfg.Lanes.Count
	w := dst.Width()
	h := dst.Height() - hudRows - footerRows
	laneW := core.Max(w/lanes, 1)
	roadW := laneW * lanes
	return field{
		x:      (w - roadW) / 2,
		y:      hudRows,
		w:      roadW,
		h:      core.Max(h, 1),
		laneW:  laneW,
		scaleY: float64(core.Max(h, 1)) / g.cfg.Field.Height,
	}
}

// row converts a simulation y to a screen row.
func (f field) row(y float64) int {
	return f.y + int(y*f.scaleY)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}
	f := g.layout(dst)
	state := g.engine.state

	g.drawRoad(dst, f)

	for _, o := range state.Obstacles {
		g.drawCar(dst, f, o.Lane, o.Y, core.ColorBrightRed, CarTail)
	}
	g.drawCar(dst, f, state.PlayerLane, g.cfg.PlayerY(), core.ColorBrightCyan, CarNose)

	// Draw HUD
	scoreText := fmt.Sprintf(" Score: %d ", state.Score)
	dst.DrawTextColor(2, 0, scoreText, core.ColorBrightWhite)
	speedText := fmt.Sprintf(" Spd: %.1f ", g.engine.Speed())
	dst.DrawTextColor(dst.Width()-len(speedText)-2, 0, speedText, core.ColorGray)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if state.GameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", state.Score))
	}
}

// drawRoad renders the shoulders and the scrolling lane dividers.
func (g *Game) drawRoad(dst *core.Screen, f field) {
	dst.DrawVLine(f.x, f.y, f.h, ShoulderLine, core.ColorWhite)
	dst.DrawVLine(f.x+f.w-1, f.y, f.h, ShoulderLine, core.ColorWhite)

	offset := int(g.distance*f.scaleY) % dashPeriod
	for lane := 1; lane < g.cfg.Lanes.Count; lane++ {
		x := f.x + lane*f.laneW
		for dy := 0; dy < f.h; dy++ {
			if (dy+dashPeriod-offset)%dashPeriod < dashPeriod/2 {
				dst.SetCell(x, f.y+dy, LaneDash, core.ColorGray)
			}
		}
	}
}

// drawCar renders a car centered on simulation height y in the given lane.
// Parts above or below the playfield are clipped.
func (g *Game) drawCar(dst *core.Screen, f field, lane int, y float64, c core.Color, nose rune) {
	carW := core.Clamp(int(float64(f.laneW)*0.5), 1, core.Max(f.laneW-2, 1))
	carH := core.Max(int(g.cfg.Entity.Height*f.scaleY+0.5), 2)

	left := f.x + lane*f.laneW + (f.laneW-carW)/2
	top := f.row(y - g.cfg.HalfHeight())

	for dy := 0; dy < carH; dy++ {
		row := top + dy
		if row < f.y || row >= f.y+f.h {
			continue
		}
		for dx := 0; dx < carW; dx++ {
			r := CarBody
			if dx == carW/2 && ((nose == CarNose && dy == 0) || (nose == CarTail && dy == carH-1)) {
				r = nose
			}
			dst.SetCell(left+dx, row, r, c)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
