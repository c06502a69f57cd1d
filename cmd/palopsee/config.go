package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/palopsee/internal/app"
	"github.com/vovakirdan/palopsee/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective runner configuration",
	Long: `Print the runner configuration as YAML after applying --config and
--difficulty. Save the output to ~/.palopsee/configs/runner.yaml to
make it the default.

Examples:
  palopsee config
  palopsee config --difficulty hard
  palopsee config --defaults > ~/.palopsee/configs/runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default config")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefaults {
		os.Stdout.Write(config.DefaultRunnerYAML())
		return
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "config"})
	cfg := app.LoadConfig(sessionOptions(), logger)

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
