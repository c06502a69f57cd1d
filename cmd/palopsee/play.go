package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/palopsee/internal/app"
	"github.com/vovakirdan/palopsee/internal/core"
	"github.com/vovakirdan/palopsee/internal/platform/tui"
	"github.com/vovakirdan/palopsee/internal/registry"
	"github.com/vovakirdan/palopsee/internal/runner"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the runner",
	Long: `Start a run in the current terminal.

Controls:
  Space/Up/W - Jump (also starts and restarts the run)
  Enter      - Start / restart
  P          - Pause
  R          - Restart (after game over)
  Esc        - Quit (when not running)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slow start, gentle speed-up
  normal - Default pacing
  hard   - Fast start, steep speed-up
  fixed  - No speed progression

Examples:
  palopsee play
  palopsee play --difficulty easy
  palopsee play --config ./my-runner.yaml
  palopsee play --assets ./sprites --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// terminalConfig builds a runtime config sized to stdout.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(_ *cobra.Command, _ []string) {
	s := app.Open(sessionOptions())
	defer s.Close()

	game, err := registry.Create(runner.ID, s.Services(runner.ID))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if _, err := tui.Run(game, tui.GameOptions{
		Config: terminalConfig(),
		Load:   s.Load,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if state := game.State(); state.Score > 0 {
		fmt.Printf("Score: %d  Best: %d\n", state.Score, state.HighScore)
	}
}
