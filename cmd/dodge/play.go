package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vimkim/dodge/internal/config"
	"github.com/vimkim/dodge/internal/core"
	"github.com/vimkim/dodge/internal/game"
	"github.com/vimkim/dodge/internal/platform/tui"
	"github.com/vimkim/dodge/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game sized to the current terminal.

Controls:
  Left/H     - Move left
  Right/L    - Move right
  P          - Pause
  R          - Restart (after game over)
  Q/Esc      - Quit

Examples:
  dodge play
  dodge play --seed 42
  dodge play --config ./my-dodge.yaml`,
	Run: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load config early for the tick cadence; the game loads the same file
	// itself on Reset for the gameplay parameters.
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	game.SetConfigPath(flagConfig)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: time.Duration(cfg.Tick.IntervalMS) * time.Millisecond,
		Seed:         flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	finalState, runErr := tui.Run(game.New(), store, runtime)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	fmt.Printf("Game Over! Final Score: %d\n", finalState.Score)
}
