package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/chaos-arcade/internal/registry"
)

func TestSimulate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	logger := log.New(io.Discard)

	for _, id := range []string{"tetris", "flappy"} {
		t.Run(id, func(t *testing.T) {
			res, game, err := simulate(id, 3000, 11, logger)
			require.NoError(t, err)

			assert.Equal(t, 3000, res.Ticks)
			assert.Equal(t, id, game.ID())
			assert.GreaterOrEqual(t, res.BestScore, res.FinalScore)
		})
	}
}

func TestSimulateUnknownGame(t *testing.T) {
	_, _, err := simulate("pong", 10, 1, log.New(io.Discard))
	assert.ErrorIs(t, err, registry.ErrUnknownGame)
}

func TestPrintGames(t *testing.T) {
	var buf bytes.Buffer
	printGames(&buf)

	out := buf.String()
	assert.Contains(t, out, "Chaos Tetris")
	assert.Contains(t, out, "Flappy Liz")
}
