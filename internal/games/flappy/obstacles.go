package flappy

import (
	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
)

// Pipe is a vertical obstacle pair. The passable gap spans
// [GapY, GapY+gap] in world units; everything above and below is solid.
type Pipe struct {
	X      float64 // Left edge
	GapY   float64 // Top of the gap
	Passed bool    // Set once the bird has cleared the trailing edge
}

// PipeManager owns the fixed-size pool of pipes: scrolling, recycling,
// pass detection and collision.
type PipeManager struct {
	pipes []Pipe
	rng   core.Rand
	cfg   config.FlappyConfig
}

// NewPipeManager creates an empty pool. Call Reset to lay out the first pipes.
func NewPipeManager(cfg config.FlappyConfig, rng core.Rand) *PipeManager {
	return &PipeManager{
		pipes: make([]Pipe, 0, len(cfg.Pipes.Initial)),
		rng:   rng,
		cfg:   cfg,
	}
}

// Reset replaces the pool with the initial staggered layout.
func (pm *PipeManager) Reset() {
	pm.pipes = pm.pipes[:0]
	for _, offset := range pm.cfg.Pipes.Initial {
		pm.pipes = append(pm.pipes, pm.newPipe(pm.cfg.Field.Width+offset))
	}
}

// Clear removes every pipe.
func (pm *PipeManager) Clear() {
	pm.pipes = pm.pipes[:0]
}

// newPipe creates a pipe at x with a random gap kept Margin away from
// the top and bottom of the field.
func (pm *PipeManager) newPipe(x float64) Pipe {
	p := pm.cfg.Pipes
	span := pm.cfg.Field.Height - 2*p.Margin - p.Gap
	return Pipe{
		X:    x,
		GapY: p.Margin + pm.rng.Float64()*span,
	}
}

// Scroll moves every pipe left by dx.
func (pm *PipeManager) Scroll(dx float64) {
	for i := range pm.pipes {
		pm.pipes[i].X -= dx
	}
}

// Recycle retires the leading pipe once it is entirely off the left edge
// and appends a fresh one past the right edge. The pool size never changes.
func (pm *PipeManager) Recycle() bool {
	if len(pm.pipes) == 0 || pm.pipes[0].X+pm.cfg.Pipes.Width >= 0 {
		return false
	}
	copy(pm.pipes, pm.pipes[1:])
	pm.pipes[len(pm.pipes)-1] = pm.newPipe(pm.cfg.Field.Width + pm.cfg.Pipes.SpawnOffset)
	return true
}

// MarkPassed flags every pipe whose trailing edge is left of birdX and
// returns how many were newly passed.
func (pm *PipeManager) MarkPassed(birdX float64) int {
	passed := 0
	for i := range pm.pipes {
		if !pm.pipes[i].Passed && pm.pipes[i].X+pm.cfg.Pipes.Width < birdX {
			pm.pipes[i].Passed = true
			passed++
		}
	}
	return passed
}

// CheckCollision reports whether the box overlaps a pipe horizontally
// without fitting inside its gap.
func (pm *PipeManager) CheckCollision(b core.Box) bool {
	for _, p := range pm.pipes {
		if !b.OverlapsX(p.X, p.X+pm.cfg.Pipes.Width) {
			continue
		}
		if !b.WithinY(p.GapY, p.GapY+pm.cfg.Pipes.Gap) {
			return true
		}
	}
	return false
}

// Pipes returns a copy of the pool, leading pipe first.
func (pm *PipeManager) Pipes() []Pipe {
	return append([]Pipe(nil), pm.pipes...)
}

// Len returns the pool size.
func (pm *PipeManager) Len() int {
	return len(pm.pipes)
}
