// Package game runs the level progression state machine:
// Playing(i) -> EndScreen -> Terminated.
package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/going-mental/internal/actor"
	"github.com/vovakirdan/going-mental/internal/config"
	"github.com/vovakirdan/going-mental/internal/core"
	"github.com/vovakirdan/going-mental/internal/level"
)

// Screen text.
const (
	PromptText     = "MISSION COMPLETE! Press SPACE for next level."
	EndTitle       = "GAME COMPLETED!"
	EndTagline     = "You've gone completely mental!"
	EndInstruction = "Press any key to quit"

	promptBottomOffset = 50
)

// Session owns everything one run needs. Frontends call Step then Render
// once per tick.
type Session struct {
	cfg     config.Config
	catalog *level.Catalog
	player  *actor.Actor
	sounds  Sounds
	logger  *log.Logger

	phase    Phase
	index    int
	exit     ExitReason
	ticks    int
	endTicks int // Ticks spent on the end screen
}

// NewSession starts a run on the first level of catalog.
// A nil sounds or logger is replaced by a silent one.
func NewSession(cfg config.Config, catalog *level.Catalog, player *actor.Actor, sounds Sounds, logger *log.Logger) *Session {
	if sounds == nil {
		sounds = NopSounds{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		cfg:     cfg,
		catalog: catalog,
		player:  player,
		sounds:  sounds,
		logger:  logger,
		phase:   PhasePlaying,
	}
}

// Step advances the session by one tick.
func (s *Session) Step(in core.InputFrame) StepResult {
	var advanced bool

	switch s.phase {
	case PhasePlaying:
		s.ticks++
		if quitRequested(in) {
			s.terminate(ExitQuit)
			break
		}
		if in.JustPressed(core.ActionAdvance) {
			advanced = s.advance()
		}
		s.moveActor(in)

	case PhaseEndScreen:
		s.ticks++
		s.endTicks++
		switch {
		case quitRequested(in):
			s.terminate(ExitQuitAtEnd)
		case in.Released && s.endTicks > s.cfg.EndScreen.GraceTicks:
			s.terminate(ExitDismissed)
		}

	case PhaseTerminated:
	}

	return StepResult{State: s.State(), Advanced: advanced}
}

// advance completes the current level and moves on.
// Returns false if the level was already complete.
func (s *Session) advance() bool {
	current := s.catalog.At(s.index)
	if !current.Complete() {
		return false
	}
	s.sounds.Play(CueMissionComplete)

	if s.index >= s.catalog.LastIndex() {
		s.phase = PhaseEndScreen
		s.endTicks = 0
		s.logger.Info("game completed", "levels", s.catalog.Len(), "ticks", s.ticks)
		return true
	}

	s.sounds.Play(CueLevelChange)
	s.index++
	s.player.Recenter()
	s.logger.Info("level advanced",
		"from", current.Name,
		"to", s.catalog.At(s.index).Name,
		"index", s.index,
	)
	return true
}

// moveActor applies held movement and undoes it on an obstacle hit.
func (s *Session) moveActor(in core.InputFrame) {
	s.player.Update(in)
	if s.catalog.At(s.index).Collides(s.player.Bounds()) {
		s.player.PushBack(in)
	}
}

func (s *Session) terminate(reason ExitReason) {
	s.phase = PhaseTerminated
	s.exit = reason
	s.logger.Debug("session terminated", "exit", reason, "ticks", s.ticks)
}

func quitRequested(in core.InputFrame) bool {
	return in.JustPressed(core.ActionQuit) || in.IsHeld(core.ActionQuit)
}

// Done reports whether the session has terminated.
func (s *Session) Done() bool {
	return s.phase == PhaseTerminated
}

// Level returns the level currently played (the last one after the run ends).
func (s *Session) Level() *level.Level {
	return s.catalog.At(s.index)
}

// Player returns the actor.
func (s *Session) Player() *actor.Actor {
	return s.player
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	return State{
		Phase:      s.phase,
		LevelIndex: s.index,
		LevelName:  s.catalog.At(s.index).Name,
		LevelCount: s.catalog.Len(),
		Completed:  s.catalog.CompletedCount(),
		Exit:       s.exit,
		Ticks:      s.ticks,
	}
}

// Summary describes the run for the history store.
func (s *Session) Summary() RunSummary {
	return RunSummary{
		LevelsDone: s.catalog.CompletedCount(),
		LevelCount: s.catalog.Len(),
		LastLevel:  s.catalog.At(s.index).Name,
		Ticks:      s.ticks,
		Finished:   s.exit == ExitQuitAtEnd || s.exit == ExitDismissed || s.phase == PhaseEndScreen,
		Exit:       s.exit,
	}
}

// Size returns the logical display size.
func (s *Session) Size() (w, h int) {
	return s.cfg.Display.Width, s.cfg.Display.Height
}
