// Package window plays the game in a desktop window with Ebiten.
package window

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/going-mental/internal/game"
	"github.com/vovakirdan/going-mental/internal/storage"
)

// Options configures the window frontend.
type Options struct {
	Title    string
	TickRate int
	Seed     int64
	Store    *storage.Store // Nil disables the run history
	Logger   *log.Logger
}

// Game adapts a game.Session to ebiten.Game.
type Game struct {
	session *game.Session
	surface *Surface
	keys    func() keyState
}

// NewGame wraps session for Ebiten.
func NewGame(session *game.Session) (*Game, error) {
	w, h := session.Size()
	surface, err := NewSurface(w, h)
	if err != nil {
		return nil, err
	}
	return &Game{
		session: session,
		surface: surface,
		keys:    liveKeys,
	}, nil
}

// Update runs one simulation tick.
func (g *Game) Update() error {
	g.session.Step(buildFrame(g.keys()))
	if g.session.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the session onto the frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Bind(screen)
	g.session.Render(g.surface)
}

// Layout keeps the logical display size regardless of the window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.session.Size()
}

// Run opens the window and blocks until the session ends.
func Run(session *game.Session, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g, err := NewGame(session)
	if err != nil {
		return err
	}

	w, h := session.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(opts.TickRate)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}

	sum := session.Summary()
	logger.Info("run finished", "levels", sum.LevelsDone, "exit", sum.Exit, "ticks", sum.Ticks)
	if opts.Store != nil {
		run := storage.NewRun(sum, storage.LocalPlayer, storage.FrontendWindow, opts.Seed)
		if _, err := opts.Store.SaveRun(run); err != nil {
			logger.Warn("could not save run", "error", err)
		}
	}
	return nil
}
