package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kinetic-arcade/internal/platform/tui"
	"github.com/vovakirdan/kinetic-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  A/D, Left/Right - Move (runner)
  Space/W/Up      - Jump (runner)
  Mouse click     - Pop a chicken / kick a disc
  P               - Pause
  H               - Toggle hitboxes
  R               - Restart (after game over)
  B/Esc           - Back
  Ctrl+S          - Save a text screenshot
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play runner
  arcade play runner --difficulty easy
  arcade play clicker --difficulty fixed
  arcade play flock --config ./my-flock.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	preset, err := parsePreset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)

	_, runErr := tui.Run(game, runtimeConfig(), tui.Options{
		ConfigPath: flagConfig,
		Preset:     preset,
		Scores:     scoresFor(store, gameID),
		Logger:     logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game crashed", "game", gameID, "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		logFile.Close()
		os.Exit(1)
	}
}
