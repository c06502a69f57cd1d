package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/palopsee/internal/app"
	"github.com/vovakirdan/palopsee/internal/assets"
	"github.com/vovakirdan/palopsee/internal/sprite"
)

var flagShowMasks bool

var spritesCmd = &cobra.Command{
	Use:   "sprites",
	Short: "Inspect sprite images and their collision masks",
	Long: `Load the sprites the runner uses and print their sizes. With --masks
each opacity mask is drawn with '#' for solid pixels.

Examples:
  palopsee sprites
  palopsee sprites --masks
  palopsee sprites --assets ./sprites --masks`,
	Args: cobra.NoArgs,
	Run:  runSprites,
}

func init() {
	spritesCmd.Flags().BoolVar(&flagShowMasks, "masks", false, "Print each opacity mask")
}

func runSprites(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "sprites"})
	opts := sessionOptions()
	cfg := app.LoadConfig(opts, logger)

	names := sprite.BuiltinNames()
	provider := assets.NewProvider(names, uint8(cfg.Sprites.AlphaThreshold), logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dir := opts.AssetsDir
	if dir == "" {
		dir = cfg.Sprites.Dir
	}
	if err := provider.LoadDir(ctx, dir, names); err != nil {
		logger.Warn("some sprites failed to load", "error", err)
	}

	fmt.Printf("  %-10s  %-8s  %-9s  %s\n", "Name", "State", "Size", "Solid")
	fmt.Printf("  %-10s  %-8s  %-9s  %s\n", "----", "-----", "----", "-----")

	for _, name := range names {
		s, err := provider.Lookup(name)
		if err != nil {
			fmt.Printf("  %-10s  %v\n", name, err)
			continue
		}
		solid := "-"
		if s.HasMask() {
			solid = fmt.Sprintf("%d", s.Mask.Count())
		}
		fmt.Printf("  %-10s  %-8s  %-9s  %s\n", name, s.State, fmt.Sprintf("%dx%d", s.Width, s.Height), solid)
	}

	if !flagShowMasks {
		return
	}
	for _, name := range names {
		s, err := provider.Lookup(name)
		if err != nil || !s.HasMask() {
			continue
		}
		fmt.Printf("\n%s:\n%s", name, s.Mask.String())
	}
}
