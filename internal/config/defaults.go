package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultTetrisConfig returns the built-in puzzle configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Width:  10,
			Height: 18,
			SpawnX: 3,
		},
		Timing: TetrisTiming{
			TickIntervalMS: 700,
		},
		Scoring: TetrisScoring{
			PointsPerLine: 100,
		},
	}
}

// DefaultFlappyConfig returns the built-in side-scroller configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Field: FlappyField{
			Width:  320,
			Height: 220,
		},
		Physics: FlappyPhysics{
			Gravity:     0.25,
			JumpImpulse: -4,
			ScrollSpeed: 2,
		},
		Bird: FlappyBird{
			X:          60,
			HalfWidth:  18,
			HalfHeight: 12,
		},
		Pipes: FlappyPipes{
			Width:       40,
			Gap:         70,
			Margin:      40,
			SpawnOffset: 40,
			Initial:     []float64{40, 160},
		},
		Timing: FlappyTiming{
			FrameRate: 60,
		},
		Achievements: FlappyAchievements{
			Thresholds: []int{5, 10},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris":
		return defaultTetrisYAML
	case "flappy":
		return defaultFlappyYAML
	default:
		return nil
	}
}
