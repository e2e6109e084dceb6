package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/going-mental/internal/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalog",
	Long: `Shows every level in play order with its mission and background.
With --seed, the obstacle counts match what that seed generates.`,
	Run: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	exitOnError(err)

	seed := resolveSeed()
	catalog, err := level.FromConfig(cfg, seed)
	exitOnError(err)

	// Calculate column widths
	maxNameLen := len("Level")
	for _, name := range catalog.Names() {
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}

	fmt.Printf("Levels (seed %d):\n\n", seed)
	fmt.Printf("  %-3s  %-*s  %-7s  %-9s  %s\n", "#", maxNameLen, "Level", "Color", "Obstacles", "Mission")
	fmt.Printf("  %-3s  %-*s  %-7s  %-9s  %s\n", "-", maxNameLen, "-----", "-----", "---------", "-------")

	for i := range catalog.Len() {
		l := catalog.At(i)
		fmt.Printf("  %-3d  %-*s  %-7s  %-9d  %s\n",
			i+1, maxNameLen, l.Name, l.Background.Hex(), len(l.Obstacles()), l.Mission)
	}

	fmt.Println()
	fmt.Println("Run 'mental play' to start.")
}
