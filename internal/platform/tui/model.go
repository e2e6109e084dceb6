package tui

import (
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/going-mental/internal/game"
	"github.com/vovakirdan/going-mental/internal/storage"
)

// Options configures a terminal game.
type Options struct {
	TickRate  int
	HoldTicks int
	Cols      int // Initial grid size, replaced on the first resize
	Rows      int
	Seed      int64
	Player    string
	Frontend  string
	Renderer  *lipgloss.Renderer // Nil uses the process renderer
	Store     *storage.Store     // Nil disables the run history
	Logger    *log.Logger
}

// Model is the Bubble Tea model driving one game session.
type Model struct {
	session  *game.Session
	canvas   *Canvas
	input    *Input
	opts     Options
	logger   *log.Logger
	quitting bool
	saved    *bool // Shared across model copies
}

// NewModel creates a Bubble Tea model for session.
func NewModel(session *game.Session, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Cols <= 0 || opts.Rows <= 0 {
		opts.Cols, opts.Rows = 80, 24
	}
	if opts.Player == "" {
		opts.Player = storage.LocalPlayer
	}
	if opts.Frontend == "" {
		opts.Frontend = storage.FrontendTerminal
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w, h := session.Size()
	canvas := NewCanvas(w, h, opts.Cols, opts.Rows)
	if opts.Renderer != nil {
		canvas.SetRenderer(opts.Renderer)
	}

	return Model{
		session: session,
		canvas:  canvas,
		input:   NewInput(opts.HoldTicks),
		opts:    opts,
		logger:  logger,
		saved:   new(bool),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues keyboard input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	m.input.Key(msg)
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.session.Step(m.input.Frame())

	if m.session.Done() {
		m.record()
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.opts.TickRate)
}

// record stores the run summary once.
func (m Model) record() {
	if *m.saved {
		return
	}
	*m.saved = true

	sum := m.session.Summary()
	m.logger.Info("run finished",
		"player", m.opts.Player,
		"levels", sum.LevelsDone,
		"exit", sum.Exit,
		"ticks", sum.Ticks,
	)
	if m.opts.Store == nil {
		return
	}
	run := storage.NewRun(sum, m.opts.Player, m.opts.Frontend, m.opts.Seed)
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot saves the text overlay of the current frame to a file.
func (m Model) saveScreenshot() {
	m.session.Render(m.canvas)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".mental", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	path := filepath.Join(dir, "mental_"+time.Now().Format("20060102_150405")+".txt")
	if err := os.WriteFile(path, []byte(m.canvas.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// Session returns the driven session.
func (m Model) Session() *game.Session {
	return m.session
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.canvas)
	return m.canvas.Render()
}

// Run starts the Bubble Tea program and blocks until the session ends.
func Run(session *game.Session, opts Options) error {
	model := NewModel(session, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
