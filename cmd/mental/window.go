package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/going-mental/internal/audio"
	"github.com/vovakirdan/going-mental/internal/game"
	"github.com/vovakirdan/going-mental/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and play with real key presses and releases.

Controls:
  WASD/Arrows  - Move
  Space        - Complete the mission, next level
  Close window - Quit

Examples:
  mental window
  mental window --seed 42 --verbose`,
	Run: runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runWindow(_ *cobra.Command, _ []string) {
	exitOnError(playWindow())
}

func playWindow() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("mental", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	var sounds game.Sounds = game.NopSounds{}
	if !flagMute {
		bank := audio.New(cfg.Audio, logger)
		defer bank.Close()
		sounds = bank
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	seed := resolveSeed()
	session, err := game.Start(cfg, seed, sounds, logger)
	if err != nil {
		return err
	}
	logger.Info("starting run", "seed", seed, "levels", len(cfg.Levels))

	return window.Run(session, window.Options{
		Title:    cfg.Display.Title,
		TickRate: cfg.TickRate,
		Seed:     seed,
		Store:    store,
		Logger:   logger,
	})
}
