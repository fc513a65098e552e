// Package config provides YAML-based game configuration loading
// for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// TetrisConfig contains all configuration for the falling-block puzzle.
type TetrisConfig struct {
	Board   TetrisBoard   `yaml:"board"`
	Timing  TetrisTiming  `yaml:"timing"`
	Scoring TetrisScoring `yaml:"scoring"`
}

// TetrisBoard defines the grid size and spawn position.
type TetrisBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	SpawnX int `yaml:"spawn_x"`
}

// TetrisTiming defines the gravity clock.
type TetrisTiming struct {
	TickIntervalMS int `yaml:"tick_interval_ms"`
}

// TickInterval returns the gravity period as a duration.
func (t TetrisTiming) TickInterval() time.Duration {
	return time.Duration(t.TickIntervalMS) * time.Millisecond
}

// TetrisScoring defines points awarded for cleared rows.
type TetrisScoring struct {
	PointsPerLine int `yaml:"points_per_line"`
}

// FlappyConfig contains all configuration for the side-scroller.
// Physics values are per tick; the frame loop runs at Timing.FrameRate.
type FlappyConfig struct {
	Field        FlappyField        `yaml:"field"`
	Physics      FlappyPhysics      `yaml:"physics"`
	Bird         FlappyBird         `yaml:"bird"`
	Pipes        FlappyPipes        `yaml:"pipes"`
	Timing       FlappyTiming       `yaml:"timing"`
	Achievements FlappyAchievements `yaml:"achievements"`
}

// FlappyField defines the world size in world units.
type FlappyField struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyPhysics defines physics parameters.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	ScrollSpeed float64 `yaml:"scroll_speed"`
}

// FlappyBird defines the bird's fixed column and hitbox.
type FlappyBird struct {
	X          float64 `yaml:"x"`
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
}

// FlappyPipes defines obstacle geometry and the initial pool layout.
type FlappyPipes struct {
	Width       float64   `yaml:"width"`
	Gap         float64   `yaml:"gap"`
	Margin      float64   `yaml:"margin"`
	SpawnOffset float64   `yaml:"spawn_offset"` // Distance past the right edge where new pipes appear
	Initial     []float64 `yaml:"initial"`      // Offsets past the right edge of the starting pool
}

// FlappyTiming defines the frame clock.
type FlappyTiming struct {
	FrameRate int `yaml:"frame_rate"`
}

// FrameInterval returns the frame period for the configured rate.
func (t FlappyTiming) FrameInterval() time.Duration {
	return time.Second / time.Duration(t.FrameRate)
}

// FlappyAchievements lists the scores that raise an achievement.
type FlappyAchievements struct {
	Thresholds []int `yaml:"thresholds"`
}

// Validate checks that the puzzle configuration describes a playable board.
func (c TetrisConfig) Validate() error {
	switch {
	case c.Board.Width < 4 || c.Board.Height < 4:
		return fmt.Errorf("%w: tetris board %dx%d is too small", ErrInvalid, c.Board.Width, c.Board.Height)
	case c.Board.SpawnX < 0 || c.Board.SpawnX+4 > c.Board.Width:
		return fmt.Errorf("%w: tetris spawn_x %d does not fit a width of %d", ErrInvalid, c.Board.SpawnX, c.Board.Width)
	case c.Timing.TickIntervalMS <= 0:
		return fmt.Errorf("%w: tetris tick_interval_ms must be positive", ErrInvalid)
	case c.Scoring.PointsPerLine < 0:
		return fmt.Errorf("%w: tetris points_per_line must not be negative", ErrInvalid)
	}
	return nil
}

// Validate checks that the side-scroller configuration is playable.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: flappy field must have positive size", ErrInvalid)
	case c.Pipes.Width <= 0 || c.Pipes.Gap <= 0:
		return fmt.Errorf("%w: flappy pipes need positive width and gap", ErrInvalid)
	case c.Pipes.Gap+2*c.Pipes.Margin > c.Field.Height:
		return fmt.Errorf("%w: flappy gap %.0f with margin %.0f does not fit height %.0f",
			ErrInvalid, c.Pipes.Gap, c.Pipes.Margin, c.Field.Height)
	case 2*c.Bird.HalfHeight >= c.Pipes.Gap:
		return fmt.Errorf("%w: flappy bird is taller than the gap", ErrInvalid)
	case len(c.Pipes.Initial) == 0:
		return fmt.Errorf("%w: flappy needs at least one initial pipe", ErrInvalid)
	case c.Physics.ScrollSpeed <= 0:
		return fmt.Errorf("%w: flappy scroll_speed must be positive", ErrInvalid)
	case c.Timing.FrameRate <= 0:
		return fmt.Errorf("%w: flappy frame_rate must be positive", ErrInvalid)
	}
	return nil
}
