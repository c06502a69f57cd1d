// palopsee-desktop runs the endless runner in a native window.
//
// Usage:
//
//	palopsee-desktop [flags]
//
// Flags:
//
//	--width, --height     - Window size in pixels (default: 800x400)
//	--seed <value>        - RNG seed for reproducible gameplay
//	--db <path>           - Database path (default: ~/.palopsee/scores.db)
//	--config <path>       - Custom runner config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--assets <dir>        - Directory with sprite images
//	--log <path>          - Log file (default: ~/.palopsee/palopsee.log)
//	--mute                - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/palopsee/internal/app"
	"github.com/vovakirdan/palopsee/internal/config"
	"github.com/vovakirdan/palopsee/internal/platform/desktop"
	"github.com/vovakirdan/palopsee/internal/registry"
	"github.com/vovakirdan/palopsee/internal/runner"
)

var (
	flagWidth  int
	flagHeight int
	flagSeed   int64
	opts       app.Options
)

var rootCmd = &cobra.Command{
	Use:   "palopsee-desktop",
	Short: "Palopsee in a desktop window",
	Long: `Play Palopsee in a resizable window.

Controls:
  Space/Up/W/Enter - Jump (also starts and restarts the run)
  P                - Pause
  R                - Restart (after game over)
  Esc/Q            - Quit`,
	Args: cobra.NoArgs,
	Run:  run,
}

func init() {
	flags := rootCmd.Flags()
	flags.IntVar(&flagWidth, "width", 800, "Window width in pixels")
	flags.IntVar(&flagHeight, "height", 400, "Window height in pixels")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&opts.DBPath, "db", "~/"+config.AppDir+"/scores.db", "Path to scores database")
	flags.StringVar(&opts.ConfigPath, "config", "", "Path to custom runner config YAML")
	flags.StringVar(&opts.Difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.StringVar(&opts.AssetsDir, "assets", "", "Directory with sprite images (overrides config)")
	flags.StringVar(&opts.LogPath, "log", "", "Log file path (default ~/"+config.AppDir+"/palopsee.log)")
	flags.BoolVar(&opts.Mute, "mute", false, "Disable sound")
}

func run(_ *cobra.Command, _ []string) {
	s := app.Open(opts)
	defer s.Close()

	game, err := registry.Create(runner.ID, s.Services(runner.ID))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if err := desktop.Run(game, desktop.Options{
		Width:  flagWidth,
		Height: flagHeight,
		Seed:   flagSeed,
		Load:   s.Load,
	}); err != nil {
		s.Logger.Error("desktop run failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
