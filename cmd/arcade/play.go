package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/chaos-arcade/internal/core"
	"github.com/vovakirdan/chaos-arcade/internal/platform/tui"
	"github.com/vovakirdan/chaos-arcade/internal/registry"
)

var (
	flagConfig string
	flagChaos  bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  ←/→ or h/l   - Move (tetris)
  ↑ or k       - Rotate (tetris) / Flap (flappy)
  ↓ or j       - Soft drop (tetris)
  Space        - Hard drop (tetris) / Flap (flappy)
  P            - Pause
  R            - Restart
  Esc, Q       - Quit

Examples:
  arcade play tetris
  arcade play flappy --fps 30
  arcade play flappy --config ./my-flappy.yaml
  arcade play tetris --chaos`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagChaos, "chaos", false, "Start with the chaos theme")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}

	logger, err := setupLogging(true)
	if err != nil {
		return err
	}

	return tui.Play(gameID, tui.Options{
		Runtime:    runtimeConfig(),
		ConfigPath: flagConfig,
		Context:    cmd.Context(),
		Logger:     logger,
		Chaos:      flagChaos,
	})
}

// runtimeConfig builds the runtime config from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
