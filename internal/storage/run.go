package storage

import "github.com/vovakirdan/going-mental/internal/game"

// Frontend names stored with each run.
const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
	FrontendSSH      = "ssh"
)

// LocalPlayer is recorded for runs not tied to an SSH user.
const LocalPlayer = "local"

// NewRun converts a session summary to a history record.
func NewRun(sum game.RunSummary, player, frontend string, seed int64) Run {
	return Run{
		Player:     player,
		Frontend:   frontend,
		Seed:       seed,
		LevelsDone: sum.LevelsDone,
		LevelCount: sum.LevelCount,
		LastLevel:  sum.LastLevel,
		Ticks:      sum.Ticks,
		Finished:   sum.Finished,
		ExitReason: sum.Exit.String(),
	}
}
