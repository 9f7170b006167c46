package tui

import (
	"fmt"
	"io"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/registry"
	"github.com/vovakirdan/tui-raycaster/internal/storage"
)

// Terminals report key presses but not releases, so a movement key stays
// held for a short window after each press; key repeat refreshes it.
const holdFraction = 15 // 1/15 s

// statusTicks is how long a transient message stays in the status bar.
const statusTicks = 90

// Model is the Bubble Tea model for exploring a scene.
type Model struct {
	game          registry.Game
	frame         *core.Frame
	store         *storage.Store
	logger        *log.Logger
	config        core.RuntimeConfig
	keys          *KeyMapper
	inputFrame    core.InputFrame
	held          map[core.Action]int
	gameState     core.GameState
	screenshotDir string

	cols, rows int
	message    string
	messageTTL int
	fps        float64
	lastTick   time.Time
	err        error
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given session.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return Model{
		game:          game,
		frame:         core.NewFrame(cfg.ScreenW, cfg.ScreenH),
		store:         store,
		logger:        logger,
		config:        cfg,
		keys:          NewKeyMapper(),
		inputFrame:    core.NewInputFrame(),
		held:          make(map[core.Action]int),
		screenshotDir: DefaultScreenshotDir(),
		cols:          cfg.ScreenW,
		rows:          cfg.ScreenH/2 + statusRows,
	}
}

// Init starts the tick loop. The session must already be Reset.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
	case IsMovement(action):
		delete(m.held, opposite(action))
		m.held[action] = max(1, m.config.TickRate/holdFraction)
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize adapts the frame to the terminal. The camera is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.cols, m.rows = msg.Width, msg.Height
	w, h := FrameSize(msg.Width, msg.Height)
	m.config.ScreenW = w
	m.config.ScreenH = h
	m.frame.Resize(w, h)
	return m, nil
}

// handleTick applies held input, steps the session and renders the frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for a, n := range m.held {
		m.inputFrame.Set(a)
		if n <= 1 {
			delete(m.held, a)
		} else {
			m.held[a] = n - 1
		}
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Bookmark {
		m.saveBookmark()
	}

	if err := m.game.Render(m.frame); err != nil {
		m.logger.Error("render failed", "scene", m.game.ID(), "err", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	if !m.lastTick.IsZero() {
		if dt := now.Sub(m.lastTick); dt > 0 {
			// Exponential moving average keeps the readout steady.
			m.fps = 0.9*m.fps + 0.1*float64(time.Second)/float64(dt)
		}
	}
	m.lastTick = now

	if m.messageTTL > 0 {
		m.messageTTL--
		if m.messageTTL == 0 {
			m.message = ""
		}
	}

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) notify(format string, args ...any) {
	m.message = fmt.Sprintf(format, args...)
	m.messageTTL = statusTicks
}

// saveBookmark stores the current camera for the scene.
func (m *Model) saveBookmark() {
	if m.store == nil {
		m.notify("bookmarks need a database")
		return
	}

	cam := m.game.Camera()
	id, err := m.store.SaveBookmark(storage.Bookmark{
		SceneID: m.game.ID(),
		Pos:     cam.Pos,
		Dir:     cam.Dir,
		Plane:   cam.Plane,
	})
	if err != nil {
		m.logger.Warn("bookmark not saved", "scene", m.game.ID(), "err", err)
		m.notify("bookmark failed: %v", err)
		return
	}
	m.logger.Info("bookmark saved", "scene", m.game.ID(), "id", id, "pos", cam.Pos)
	m.notify("bookmark #%d saved", id)
}

// saveScreenshot writes the current frame as a PNG.
func (m *Model) saveScreenshot() {
	path, err := SaveScreenshot(m.screenshotDir, m.game.ID(), m.frame)
	if err != nil {
		m.logger.Warn("screenshot not saved", "err", err)
		m.notify("screenshot failed: %v", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.notify("saved %s", path)
}

// statusText summarizes the session for the status bar.
func (m Model) statusText() string {
	if m.message != "" {
		return " " + m.message
	}
	heading := math.Atan2(m.gameState.Heading.Y, m.gameState.Heading.X) * 180 / math.Pi
	return fmt.Sprintf(" %s  pos %.2f,%.2f  heading %4.0f°  %3.0f fps  wasd move  tab map  m mark  p pause  q quit",
		m.game.Title(), m.gameState.Position.X, m.gameState.Position.Y, heading, m.fps)
}

// View presents the last rendered frame with the status bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderFrame(m.frame) + "\n" + renderStatus(m.statusText(), m.gameState.Paused, m.cols)
}

// Err returns the error that stopped the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for an already Reset session.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
