// Package flappy implements a Flappy Bird-style side-scroller.
// The bird falls under gravity at a fixed column while pairs of pipes scroll
// toward it; flapping sets an upward velocity.
package flappy

import (
	"fmt"
	"time"

	"github.com/vovakirdan/chaos-arcade/internal/config"
	"github.com/vovakirdan/chaos-arcade/internal/core"
	"github.com/vovakirdan/chaos-arcade/internal/registry"
)

// Achievement messages.
const (
	MsgFive        = "5 points in Flappy Liz. Coordination: acceptable."
	MsgTen         = "10 points! You have clearly given up on a productive life."
	MsgOutOfBounds = "Liz found the ground. Gravity always wins."
	MsgCollision   = "An honorable collision in Flappy Liz."
)

// thresholdMessage returns the achievement text for reaching score.
func thresholdMessage(score int) string {
	switch score {
	case 5:
		return MsgFive
	case 10:
		return MsgTen
	default:
		return fmt.Sprintf("%d points in Flappy Liz.", score)
	}
}

// Bird is the player's point mass. Y is the center of its hitbox.
type Bird struct {
	Y   float64
	Vel float64 // Positive is downward
}

// Game holds the side-scroller state. Before the first flap the game is
// idle: the bird sits at mid-field and there are no pipes.
// Not safe for concurrent use.
type Game struct {
	cfg    config.FlappyConfig
	notify core.Notifier

	bird    Bird
	pipes   *PipeManager
	score   int
	running bool
	over    bool // A run has ended and no new one has started
	paused  bool
	ticks   uint64
}

// New creates an idle game. A nil notifier discards achievements.
func New(cfg config.FlappyConfig, rng core.Rand, n core.Notifier) *Game {
	g := &Game{
		cfg:    cfg,
		notify: core.OrDiscard(n),
		pipes:  NewPipeManager(cfg, rng),
	}
	g.Reset()
	return g
}

func init() {
	registry.Register("flappy", "Flappy Liz", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadFlappy(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		if opts.FrameRate > 0 {
			cfg.Timing.FrameRate = opts.FrameRate
		}
		return New(cfg, core.NewRand(opts.Seed), opts.Notifier), nil
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Liz"
}

// TickInterval returns the frame period.
func (g *Game) TickInterval() time.Duration {
	return g.cfg.Timing.FrameInterval()
}

// Reset returns to the idle state.
func (g *Game) Reset() {
	g.bird = Bird{Y: g.midY()}
	g.pipes.Clear()
	g.score = 0
	g.running = false
	g.over = false
	g.paused = false
	g.ticks = 0
}

// Start begins a new run: the bird at mid-field at rest, score zero and the
// initial pipe layout.
func (g *Game) Start() {
	g.bird = Bird{Y: g.midY()}
	g.pipes.Reset()
	g.score = 0
	g.running = true
	g.over = false
	g.paused = false
	g.ticks = 0
}

// Flap starts a run when stopped; otherwise it replaces the current
// velocity with the jump impulse.
func (g *Game) Flap() {
	if !g.running {
		g.Start()
		return
	}
	g.bird.Vel = g.cfg.Physics.JumpImpulse
}

// Tick advances one frame. Pipes scroll, recycle and score before the bird
// moves, so a collision in the same frame still ends the run after the
// point was awarded.
func (g *Game) Tick() {
	if !g.running || g.paused {
		return
	}
	g.ticks++

	g.bird.Vel += g.cfg.Physics.Gravity

	g.pipes.Scroll(g.cfg.Physics.ScrollSpeed)
	g.pipes.Recycle()

	for n := g.pipes.MarkPassed(g.cfg.Bird.X); n > 0; n-- {
		g.score++
		if g.isThreshold(g.score) {
			g.notify.Notify(thresholdMessage(g.score))
		}
	}

	g.bird.Y += g.bird.Vel
	if g.bird.Y < 0 || g.bird.Y > g.cfg.Field.Height {
		g.stop(MsgOutOfBounds)
		return
	}

	if g.pipes.CheckCollision(g.birdBox()) {
		g.stop(MsgCollision)
	}
}

func (g *Game) stop(msg string) {
	g.running = false
	g.over = true
	g.bird.Y = g.midY()
	g.notify.Notify(msg)
}

func (g *Game) isThreshold(score int) bool {
	for _, t := range g.cfg.Achievements.Thresholds {
		if t == score {
			return true
		}
	}
	return false
}

func (g *Game) birdBox() core.Box {
	return core.NewBox(g.cfg.Bird.X, g.bird.Y, g.cfg.Bird.HalfWidth, g.cfg.Bird.HalfHeight)
}

func (g *Game) midY() float64 {
	return g.cfg.Field.Height / 2
}

// Apply maps a platform action onto the game.
func (g *Game) Apply(a core.Action) {
	switch a {
	case core.ActionJump, core.ActionUp, core.ActionConfirm:
		if !g.paused {
			g.Flap()
		}
	case core.ActionRestart:
		g.Start()
	case core.ActionPause:
		if g.running {
			g.paused = !g.paused
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Running:  g.running && !g.paused,
		GameOver: g.over,
		Paused:   g.paused,
	}
}

// Running reports whether a run is in progress.
func (g *Game) Running() bool {
	return g.running
}
