// arcade is a terminal arcade with a falling-block puzzle and a flappy
// side-scroller.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade sim <game>        - Run a game headless with random input
//
// Global flags:
//
//	--fps <rate>        - Frame rate for per-frame games (default: game config)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-file <path>   - Write logs to a file
//	--debug             - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/chaos-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/chaos-arcade/internal/games/tetris"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogFile string
	flagDebug   bool

	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Chaos Arcade - falling blocks and flapping birds in your terminal",
	Long: `Chaos Arcade is a terminal arcade with two games:

  tetris   - Chaos Tetris, a falling-block puzzle
  flappy   - Flappy Liz, a physics side-scroller

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  sim      - Run a game headless with random input

Examples:
  arcade list
  arcade play tetris
  arcade menu --log-file arcade.log --debug
  arcade serve --ssh :2222
  arcade sim flappy --ticks 5000 --seed 7`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate for per-frame games (0 = game config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// setupLogging installs the default logger. Commands that own the terminal
// pass ownsTerminal so logs never go to the screen: without --log-file they
// are discarded.
func setupLogging(ownsTerminal bool) (*log.Logger, error) {
	var w io.Writer = os.Stderr
	if ownsTerminal {
		w = io.Discard
	}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		w = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)
	return logger, nil
}
