package game

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/going-mental/internal/actor"
	"github.com/vovakirdan/going-mental/internal/config"
	"github.com/vovakirdan/going-mental/internal/level"
)

// Start builds the catalog and the actor described by cfg and opens a session.
func Start(cfg config.Config, seed int64, sounds Sounds, logger *log.Logger) (*Session, error) {
	catalog, err := level.FromConfig(cfg, seed)
	if err != nil {
		return nil, fmt.Errorf("game: cannot build levels: %w", err)
	}
	player := actor.New(cfg.Actor, cfg.Display.Width, cfg.Display.Height)
	return NewSession(cfg, catalog, player, sounds, logger), nil
}
