// palopsee is a side-scrolling endless runner for the terminal.
//
// Usage:
//
//	palopsee                 - Play (same as 'palopsee play')
//	palopsee play            - Play the runner
//	palopsee menu            - Title menu with scoreboard
//	palopsee serve           - Start SSH server for remote play
//	palopsee scores          - Show the local leaderboard
//	palopsee sprites         - Print sprite opacity masks
//	palopsee config          - Print the effective configuration
//	palopsee list            - List registered games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.palopsee/scores.db)
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
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagAssets     string
	flagLogPath    string
	flagMute       bool
)

// sessionOptions collects the global flags.
func sessionOptions() app.Options {
	return app.Options{
		DBPath:     flagDBPath,
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		AssetsDir:  flagAssets,
		LogPath:    flagLogPath,
		Mute:       flagMute,
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "palopsee",
	Short: "Palopsee - an endless runner in your terminal",
	Long: `Palopsee is a side-scrolling endless runner. Jump over asteroids,
keep clear of alien ships and grab power-ups for a few seconds of
invincibility. The world speeds up as your score grows.

Available commands:
  play     - Start a run (default)
  menu     - Title menu with scoreboard
  serve    - Start SSH server for remote play
  scores   - View the local leaderboard
  sprites  - Print sprite opacity masks
  config   - Print the effective configuration
  list     - Show registered games

Examples:
  palopsee
  palopsee play --difficulty hard
  palopsee serve --ssh :2222
  palopsee scores`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", "~/"+config.AppDir+"/scores.db", "Path to scores database")
	flags.StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.StringVar(&flagAssets, "assets", "", "Directory with sprite images (overrides config)")
	flags.StringVar(&flagLogPath, "log", "", "Log file path (default ~/"+config.AppDir+"/palopsee.log)")
	flags.BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(spritesCmd)
	rootCmd.AddCommand(configCmd)
}
