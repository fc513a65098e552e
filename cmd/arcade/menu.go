package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/chaos-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Esc in a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  C            - Toggle chaos mode (or enter the secret code)
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --log-file arcade.log --debug`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(cmd *cobra.Command, _ []string) error {
	logger, err := setupLogging(true)
	if err != nil {
		return err
	}

	return tui.RunMenu(tui.Options{
		Runtime:    runtimeConfig(),
		ConfigPath: flagConfig,
		Context:    cmd.Context(),
		Logger:     logger,
	})
}
