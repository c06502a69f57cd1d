package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/palopsee/internal/app"
	"github.com/vovakirdan/palopsee/internal/platform/tui"
	"github.com/vovakirdan/palopsee/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start Palopsee in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a run you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Esc/Q        - Quit

Examples:
  palopsee menu
  palopsee menu --fps 30
  palopsee menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	s := app.Open(sessionOptions())
	defer s.Close()

	cfg := terminalConfig()

	// Sprites are shared by every run; load them once.
	loaded := false

	for {
		menuResult, err := tui.RunMenu(s.HighScorer(), cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			if s.Store == nil {
				continue
			}
			goBack, sbErr := tui.RunScoreboard(s.Store, menuResult.GameID, menuResult.Title, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		game, err := registry.Create(gameID, s.Services(gameID))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		opts := tui.GameOptions{Config: cfg}
		if !loaded {
			opts.Load = s.Load
			loaded = true
		}

		backToMenu, err := tui.Run(game, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		if !backToMenu {
			break
		}
	}
}
