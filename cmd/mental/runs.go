package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/going-mental/internal/platform/tui"
	"github.com/vovakirdan/going-mental/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show the run history",
	Long: `Display recorded runs, newest first, with aggregated stats.

Examples:
  mental runs
  mental runs --plain --limit 5
  mental runs --db ./runs.db`,
	Run: runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text table instead of the interactive board")
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
}

func runRuns(_ *cobra.Command, _ []string) {
	exitOnError(showRuns())
}

func showRuns() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if !flagPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunRunsBoard(store, cfg.TickRate, width, height)
	}

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Run History")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'mental play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-12s  %-8s  %-6s  %-20s  %-8s  %-11s  %s\n", "Player", "Via", "Levels", "Reached", "Ticks", "Exit", "Date")
	fmt.Printf("  %-12s  %-8s  %-6s  %-20s  %-8s  %-11s  %s\n", "------", "---", "------", "-------", "-----", "----", "----")
	for _, r := range runs {
		fmt.Printf("  %-12s  %-8s  %-6s  %-20s  %-8d  %-11s  %s\n",
			r.Player, r.Frontend, fmt.Sprintf("%d/%d", r.LevelsDone, r.LevelCount),
			r.LastLevel, r.Ticks, r.ExitReason, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Finished: %d  Avg levels: %.1f\n", stats.Runs, stats.Finished, stats.AvgLevels)
	if best, err := store.BestRun(); err == nil && best != nil {
		fmt.Printf("Best: %s, %d/%d levels in %d ticks\n", best.Player, best.LevelsDone, best.LevelCount, best.Ticks)
	}
	return nil
}
