package flappy

import (
	"fmt"

	"github.com/vovakirdan/chaos-arcade/internal/core"
)

// Visual characters for rendering
const (
	BirdChar      = '▶'
	BirdTailChar  = '●'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

// viewport maps world units onto the screen rows between the HUD line and
// the ground line.
type viewport struct {
	sx, sy float64
	rows   int
}

func newViewport(dst *core.Screen, fieldW, fieldH float64) viewport {
	rows := dst.Height() - 2
	if rows < 1 {
		rows = 1
	}
	return viewport{
		sx:   float64(dst.Width()) / fieldW,
		sy:   float64(rows) / fieldH,
		rows: rows,
	}
}

func (v viewport) col(x float64) int { return int(x * v.sx) }

// row returns the screen row for world y, clamped to the field.
func (v viewport) row(y float64) int {
	return 1 + core.Clamp(int(y*v.sy), 0, v.rows-1)
}

// Render draws the pipes, the bird, the ground and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()
	v := newViewport(dst, g.cfg.Field.Width, g.cfg.Field.Height)

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorGreen)

	for _, p := range snap.Pipes {
		g.drawPipe(dst, v, p)
	}

	bx, by := v.col(g.cfg.Bird.X), v.row(snap.Bird.Y)
	dst.SetColor(bx-1, by, BirdTailChar, core.ColorYellow)
	dst.SetColor(bx, by, BirdChar, core.ColorBrightYellow)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score))

	switch {
	case snap.Paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	case snap.Over:
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press SPACE to fly again", snap.Score))
	case !snap.Running:
		dst.DrawMessage(g.Title(), "Press SPACE to flap")
	}
}

// drawPipe renders the solid sections above and below a pipe's gap.
func (g *Game) drawPipe(dst *core.Screen, v viewport, p Pipe) {
	x0 := v.col(p.X)
	x1 := v.col(p.X + g.cfg.Pipes.Width)
	if x1 <= x0 {
		x1 = x0 + 1
	}

	gapTop := int(p.GapY * v.sy)
	gapBottom := int((p.GapY + g.cfg.Pipes.Gap) * v.sy)

	for y := 0; y < v.rows; y++ {
		ch := PipeChar
		switch {
		case y == gapTop-1:
			ch = PipeCapTop
		case y == gapBottom:
			ch = PipeCapBottom
		case y >= gapTop && y < gapBottom:
			continue
		}
		for x := x0; x < x1; x++ {
			dst.SetColor(x, 1+y, ch, core.ColorGreen)
		}
	}
}
