// mental is a small arcade game: walk a stick figure through eight themed
// levels, complete each mission and go completely mental.
//
// Usage:
//
//	mental [play]           - Play in the terminal (default)
//	mental window           - Play in a desktop window
//	mental levels           - List the level catalog
//	mental runs             - Show the run history
//	mental serve            - Start SSH server for remote play
//
// Global flags:
//
//	--config <path> - Game config YAML (default: search ~/.mental/configs, ./configs)
//	--fps <rate>    - Override the tick rate (default: from config, 60)
//	--seed <value>  - Set RNG seed for reproducible obstacle layouts
//	--db <path>     - Set database path (default: ~/.mental/runs.db)
//	--log <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/going-mental/internal/config"
	"github.com/vovakirdan/going-mental/internal/storage"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mental",
	Short: "Going Mental - a tiny arcade game for terminals and windows",
	Long: `Going Mental walks a stick figure through eight themed levels.
Every level has a mission; press Space to complete it and move on.
Finish the last one and you have gone completely mental.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  levels   - List the level catalog
  runs     - Show the run history
  serve    - Start SSH server for remote play

Examples:
  mental
  mental window --seed 42
  mental levels
  mental runs --plain
  mental serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the game config and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg, nil
}

// resolveSeed returns the --seed value or a time-based one.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newLogger creates the command logger. Logs go to --log when given and to
// fallback otherwise. The returned func closes the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}

	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// openStore opens the run history. A failure is logged and play goes on
// without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		return nil
	}
	return store
}

// exitOnError prints err and exits with status 1.
func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
