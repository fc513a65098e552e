package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	var tetris TetrisConfig
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML("tetris"), &tetris))
	assert.Equal(t, DefaultTetrisConfig(), tetris)

	var flappy FlappyConfig
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML("flappy"), &flappy))
	assert.Equal(t, DefaultFlappyConfig(), flappy)

	assert.Nil(t, GetDefaultYAML("pong"))
}

func TestDefaultsValidate(t *testing.T) {
	assert.NoError(t, DefaultTetrisConfig().Validate())
	assert.NoError(t, DefaultFlappyConfig().Validate())
}

func TestTetrisValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TetrisConfig)
	}{
		{"tiny board", func(c *TetrisConfig) { c.Board.Width = 3 }},
		{"spawn past right edge", func(c *TetrisConfig) { c.Board.SpawnX = 7 }},
		{"negative spawn", func(c *TetrisConfig) { c.Board.SpawnX = -1 }},
		{"zero interval", func(c *TetrisConfig) { c.Timing.TickIntervalMS = 0 }},
		{"negative points", func(c *TetrisConfig) { c.Scoring.PointsPerLine = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestFlappyValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
	}{
		{"zero field", func(c *FlappyConfig) { c.Field.Height = 0 }},
		{"gap does not fit", func(c *FlappyConfig) { c.Pipes.Gap = 200 }},
		{"bird taller than gap", func(c *FlappyConfig) { c.Bird.HalfHeight = 40 }},
		{"no initial pipes", func(c *FlappyConfig) { c.Pipes.Initial = nil }},
		{"no scroll", func(c *FlappyConfig) { c.Physics.ScrollSpeed = 0 }},
		{"zero frame rate", func(c *FlappyConfig) { c.Timing.FrameRate = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestTimingDurations(t *testing.T) {
	assert.Equal(t, "700ms", DefaultTetrisConfig().Timing.TickInterval().String())
	assert.Equal(t, int64(16666666), DefaultFlappyConfig().Timing.FrameInterval().Nanoseconds())
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  height: 22\n"), 0o600))

	cfg, err := LoadTetris(path)
	require.NoError(t, err)

	assert.Equal(t, 22, cfg.Board.Height)
	assert.Equal(t, 10, cfg.Board.Width, "unset keys keep their defaults")
	assert.Equal(t, 700, cfg.Timing.TickIntervalMS)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := LoadFlappy(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("field: [not, a, map"), 0o600))
	_, err = LoadFlappy(bad)
	assert.Error(t, err)

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("timing:\n  frame_rate: 0\n"), 0o600))
	_, err = LoadFlappy(invalid)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := LoadFlappy("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFlappyConfig(), cfg)
}

func TestLoadSkipsBrokenLocalConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "tetris.yaml"), []byte("board:\n  width: 2\n"), 0o600))

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTetrisConfig(), cfg)
}

func TestLoadPrefersLocalConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "tetris.yaml"), []byte("scoring:\n  points_per_line: 40\n"), 0o600))

	cfg, err := LoadTetris("")
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Scoring.PointsPerLine)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
