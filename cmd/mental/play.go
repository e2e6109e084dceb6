package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/going-mental/internal/audio"
	"github.com/vovakirdan/going-mental/internal/game"
	"github.com/vovakirdan/going-mental/internal/platform/tui"
	"github.com/vovakirdan/going-mental/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play in the terminal. Each character cell shows two pixels of the
800x600 playfield, so a bigger terminal gives a sharper picture.

Controls:
  WASD/Arrows  - Move
  Space        - Complete the mission, next level
  Q/Esc/Ctrl+C - Quit
  Ctrl+S       - Save a text screenshot to ~/.mental/screenshots

Terminals do not report key releases: a movement key keeps moving for a few
ticks after its last repeat (input.hold_ticks in the config).

Examples:
  mental play
  mental play --seed 42 --log mental.log
  mental play --config ./my-game.yaml --mute`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) {
	exitOnError(play())
}

func play() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns stdout, so logs only go to --log.
	logger, closeLog, err := newLogger("mental", io.Discard)
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

	// Get terminal size, Bubble Tea corrects it on the first resize message
	cols, rows := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cols, rows = w, h
	}

	return tui.Run(session, tui.Options{
		TickRate:  cfg.TickRate,
		HoldTicks: cfg.Input.HoldTicks,
		Cols:      cols,
		Rows:      rows,
		Seed:      seed,
		Player:    storage.LocalPlayer,
		Frontend:  storage.FrontendTerminal,
		Store:     store,
		Logger:    logger,
	})
}
