package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-raycaster/internal/registry"
	"github.com/vovakirdan/tui-raycaster/internal/storage"
)

// Bench board layout constants
const (
	minWidthForSidebar = 90 // Minimum width to show scene list sidebar
	sidebarWidth       = 20 // Width of scene list sidebar
	maxRuns            = 100
)

// BenchKeyMap defines the key bindings for the bench board.
type BenchKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Back      key.Binding
	Quit      key.Binding
	NextScene key.Binding
	PrevScene key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BenchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextScene, k.PrevScene, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k BenchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextScene, k.PrevScene},
		{k.Back, k.Quit},
	}
}

// DefaultBenchKeyMap returns default key bindings.
func DefaultBenchKeyMap() BenchKeyMap {
	return BenchKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev scene"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next scene"),
		),
		NextScene: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next scene"),
		),
		PrevScene: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev scene"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BenchBoardModel shows recorded benchmark runs per scene, fastest first.
type BenchBoardModel struct {
	scenes      []registry.GameInfo
	cursor      int
	store       *storage.Store
	runs        []storage.BenchRun
	table       table.Model
	help        help.Model
	keys        BenchKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewBenchBoardModel creates a new bench board model. store may be nil.
func NewBenchBoardModel(store *storage.Store, width, height int) BenchBoardModel {
	h := help.New()
	h.ShowAll = false

	m := BenchBoardModel{
		scenes:      registry.List(),
		store:       store,
		keys:        DefaultBenchKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()

	if len(m.scenes) > 0 {
		m.loadRuns(m.scenes[0].ID)
	}
	return m
}

func (m *BenchBoardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Workers", Width: 8},
		{Title: "Size", Width: 10},
		{Title: "Frames", Width: 7},
		{Title: "Avg ms", Width: 8},
		{Title: "FPS", Width: 7},
		{Title: "Date", Width: 13},
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

func (m *BenchBoardModel) loadRuns(sceneID string) {
	m.runs = nil
	if m.store != nil {
		runs, err := m.store.BenchRuns(sceneID, maxRuns)
		if err == nil {
			m.runs = runs
		}
	}
	m.table.SetRows(benchRows(m.runs))
	m.table.GotoTop()
}

// benchRows formats runs as table rows.
func benchRows(runs []storage.BenchRun) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Workers),
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			fmt.Sprintf("%d", r.Frames),
			fmt.Sprintf("%.2f", float64(r.AvgFrame.Microseconds())/1000),
			fmt.Sprintf("%.1f", r.FPS()),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the bench board model.
func (m BenchBoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the bench board.
func (m BenchBoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextScene), key.Matches(msg, m.keys.Right):
			if len(m.scenes) > 0 {
				m.cursor = (m.cursor + 1) % len(m.scenes)
				m.loadRuns(m.scenes[m.cursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevScene), key.Matches(msg, m.keys.Left):
			if len(m.scenes) > 0 {
				m.cursor = (m.cursor - 1 + len(m.scenes)) % len(m.scenes)
				m.loadRuns(m.scenes[m.cursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.table.SetRows(benchRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the bench board.
func (m BenchBoardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "BENCH RUNS"
	if scene, ok := m.Scene(); ok {
		title = fmt.Sprintf("BENCH RUNS - %s", scene.Title)
	}
	b.WriteString(centerText(menuTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if m.showSidebar {
		var side strings.Builder
		side.WriteString("Scenes\n")
		side.WriteString(strings.Repeat("-", sidebarWidth-4))
		side.WriteString("\n")
		for i, s := range m.scenes {
			line := "  " + truncate(s.Title, sidebarWidth-6)
			if i == m.cursor {
				line = menuCursorStyle.Render("> " + truncate(s.Title, sidebarWidth-6))
			}
			side.WriteString(line)
			side.WriteString("\n")
		}
		sidebar := box.Width(sidebarWidth).Render(side.String())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", box.Render(m.tableContent())))
	} else {
		if scene, ok := m.Scene(); ok {
			b.WriteString(centerText(fmt.Sprintf("< %s >", scene.Title), m.width))
			b.WriteString("\n\n")
		}
		b.WriteString(box.Render(m.tableContent()))
	}

	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m BenchBoardModel) tableContent() string {
	if len(m.runs) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("No runs recorded yet.\nRun `raycaster bench` to add one.")
	}
	return m.table.View()
}

// Scene returns the scene currently shown.
func (m BenchBoardModel) Scene() (registry.GameInfo, bool) {
	if len(m.scenes) == 0 {
		return registry.GameInfo{}, false
	}
	return m.scenes[m.cursor], true
}

// Runs returns the runs currently shown, fastest first.
func (m BenchBoardModel) Runs() []storage.BenchRun {
	return m.runs
}

// IsGoingBack returns true if user wants to go back to menu.
func (m BenchBoardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m BenchBoardModel) IsQuitting() bool {
	return m.quitting
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "."
}

// RunBenchBoard runs the bench board screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunBenchBoard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewBenchBoardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(BenchBoardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
