package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/going-mental/internal/core"
	"github.com/vovakirdan/going-mental/internal/storage"
)

// Runs board layout constants
const (
	minWidthForSidebar = 100 // Minimum width to show the stats sidebar
	sidebarWidth       = 24  // Width of the stats sidebar
	maxRuns            = 100 // Max runs to load
)

// runFilter selects which runs the board lists.
type runFilter int

const (
	filterAll runFilter = iota
	filterFinished
	filterAbandoned
)

var filterTitles = [...]string{"All runs", "Finished", "Abandoned"}

func (f runFilter) keep(r storage.Run) bool {
	switch f {
	case filterFinished:
		return r.Finished
	case filterAbandoned:
		return !r.Finished
	}
	return true
}

// RunsKeyMap defines the key bindings for the runs board.
type RunsKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFilter, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextFilter, k.PrevFilter, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextFilter: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next filter"),
		),
		PrevFilter: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev filter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for the run history board.
type RunsModel struct {
	runs        []storage.Run // Everything loaded from the store
	visible     []storage.Run // Runs passing the filter
	stats       *storage.Stats
	filter      runFilter
	tickRate    int
	table       table.Model
	help        help.Model
	keys        RunsKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewRunsModel creates the board from already loaded history.
func NewRunsModel(runs []storage.Run, stats *storage.Stats, tickRate, width, height int) RunsModel {
	if tickRate <= 0 {
		tickRate = 60
	}
	h := help.New()
	h.ShowAll = false

	m := RunsModel{
		runs:        runs,
		stats:       stats,
		tickRate:    tickRate,
		keys:        DefaultRunsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.applyFilter()
	return m
}

// LoadRunsModel reads the history from store.
func LoadRunsModel(store *storage.Store, tickRate, width, height int) (RunsModel, error) {
	runs, err := store.RecentRuns(maxRuns)
	if err != nil {
		return RunsModel{}, err
	}
	stats, err := store.GetStats()
	if err != nil {
		return RunsModel{}, err
	}
	return NewRunsModel(runs, stats, tickRate, width, height), nil
}

// createTable creates a new table with appropriate columns.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 12},
		{Title: "Via", Width: 8},
		{Title: "Levels", Width: 7},
		{Title: "Reached", Width: 20},
		{Title: "Time", Width: 8},
		{Title: "Exit", Width: 12},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-8, 1)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// applyFilter recomputes the visible runs and the table rows.
func (m *RunsModel) applyFilter() {
	m.visible = make([]storage.Run, 0, len(m.runs))
	for _, r := range m.runs {
		if m.filter.keep(r) {
			m.visible = append(m.visible, r)
		}
	}

	rows := make([]table.Row, len(m.visible))
	for i, r := range m.visible {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			r.Player,
			r.Frontend,
			fmt.Sprintf("%d/%d", r.LevelsDone, r.LevelCount),
			r.LastLevel,
			m.duration(r.Ticks),
			r.ExitReason,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// duration formats a tick count as wall time.
func (m RunsModel) duration(ticks int) string {
	d := time.Duration(ticks) * time.Second / time.Duration(m.tickRate)
	return d.Round(100 * time.Millisecond).String()
}

// Init initializes the board.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the board.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextFilter):
			m.filter = (m.filter + 1) % runFilter(len(filterTitles))
			m.applyFilter()
			return m, nil

		case key.Matches(msg, m.keys.PrevFilter):
			m.filter = (m.filter + runFilter(len(filterTitles)) - 1) % runFilter(len(filterTitles))
			m.applyFilter()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.applyFilter()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table for scrolling
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the board.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("RUN HISTORY - %s", filterTitles[m.filter])
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the aggregated statistics.
func (m RunsModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Stats\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	if m.stats == nil {
		sb.WriteString("n/a\n")
		return sidebarStyle.Render(sb.String())
	}

	fmt.Fprintf(&sb, "Runs:      %d\n", m.stats.Runs)
	fmt.Fprintf(&sb, "Finished:  %d\n", m.stats.Finished)
	fmt.Fprintf(&sb, "Avg lvls:  %.1f\n", m.stats.AvgLevels)
	if m.stats.BestTicks > 0 {
		fmt.Fprintf(&sb, "Best:      %s\n", m.duration(m.stats.BestTicks))
	}
	if !m.stats.LastPlayed.IsZero() {
		fmt.Fprintf(&sb, "Last:      %s\n", m.stats.LastPlayed.Format("Jan 02"))
	}
	return sidebarStyle.Render(sb.String())
}

// renderTableContent renders the table or empty message.
func (m RunsModel) renderTableContent() string {
	if len(m.visible) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nGo mental first!")
	}

	return m.table.View()
}

// Visible returns the runs passing the current filter.
func (m RunsModel) Visible() []storage.Run {
	return m.visible
}

// RunRunsBoard shows the run history until the user quits.
func RunRunsBoard(store *storage.Store, tickRate, width, height int) error {
	model, err := LoadRunsModel(store, tickRate, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}

// centerText pads text so it is centered in width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
