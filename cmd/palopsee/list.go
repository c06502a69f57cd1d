package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/palopsee/internal/registry"
	"github.com/vovakirdan/palopsee/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered games with their best scores",
	Long:  `Shows the games built into this binary and the best score recorded for each.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Scores are optional here.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		store = nil
	} else {
		defer store.Close()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tTitle\tBest")
	fmt.Fprintln(w, "  --\t-----\t----")
	for _, g := range games {
		best := "-"
		if store != nil {
			if high, err := store.HighScore(g.ID); err == nil && high > 0 {
				best = fmt.Sprintf("%d", high)
			}
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", g.ID, g.Title, best)
	}
	w.Flush()
}
