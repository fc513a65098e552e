package tetris

import (
	"fmt"

	"github.com/vovakirdan/chaos-arcade/internal/core"
)

// Layout constants
const (
	cellW  = 2  // Each grid cell is drawn two characters wide
	hudW   = 22 // Width reserved for the score panel
	hudGap = 2
)

// Render draws the board, the active piece with its landing preview, and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	boardW := snap.Width*cellW + 2
	boardH := snap.Height + 2
	totalW := boardW + hudGap + hudW

	if dst.Width() < boardW || dst.Height() < boardH {
		dst.DrawMessage("TERMINAL TOO SMALL", fmt.Sprintf("need %dx%d", boardW, boardH))
		return
	}

	ox := (dst.Width() - totalW) / 2
	if ox < 0 {
		ox = 0
	}
	oy := (dst.Height() - boardH) / 2

	dst.DrawBox(core.NewRect(ox, oy, boardW, boardH), core.ColorGray)

	for y, row := range snap.Grid {
		for x, c := range row {
			if c == Empty {
				drawCell(dst, ox, oy, x, y, " ·", core.ColorGray)
			} else {
				drawCell(dst, ox, oy, x, y, "██", c.Color())
			}
		}
	}

	if !snap.Over {
		for _, p := range snap.Ghost {
			drawCell(dst, ox, oy, p.X, p.Y, "░░", core.ColorGray)
		}
		color := snap.Piece.Cell().Color()
		for _, p := range snap.Cells {
			drawCell(dst, ox, oy, p.X, p.Y, "██", color)
		}
	}

	g.drawHUD(dst, snap, ox+boardW+hudGap, oy)

	if snap.Paused {
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
	if snap.Over {
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

func drawCell(dst *core.Screen, ox, oy, x, y int, glyph string, c core.Color) {
	dst.DrawTextColor(ox+1+x*cellW, oy+1+y, glyph, c)
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot, x, y int) {
	if x+hudW > dst.Width() {
		// No room beside the board; overlay the score on the top border.
		dst.DrawText(x-hudGap-snap.Width*cellW, y, fmt.Sprintf(" %d ", snap.Score))
		return
	}

	status := "Playing"
	switch {
	case snap.Over:
		status = "Game Over"
	case snap.Paused:
		status = "Paused"
	}

	dst.DrawTextColor(x, y+1, g.Title(), core.ColorBrightWhite)
	dst.DrawText(x, y+3, fmt.Sprintf("Score  %d", snap.Score))
	dst.DrawText(x, y+4, fmt.Sprintf("Lines  %d", snap.Lines))
	dst.DrawText(x, y+5, fmt.Sprintf("Status %s", status))

	controls := []string{
		"←/→  move",
		"↓    drop",
		"↑    rotate",
		"spc  hard drop",
		"p    pause",
		"r    restart",
	}
	for i, line := range controls {
		dst.DrawTextColor(x, y+7+i, line, core.ColorGray)
	}
}
