// Package window presents a session in a desktop window using ebiten.
// ebiten scales the logical frame to the window, so the raycaster renders
// at the configured resolution regardless of window size.
package window

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/platform/tui"
	"github.com/vovakirdan/tui-raycaster/internal/registry"
	"github.com/vovakirdan/tui-raycaster/internal/storage"
)

// held keys are sampled every tick; toggles fire once per press.
var (
	heldKeys = map[core.Action][]ebiten.Key{
		core.ActionForward:   {ebiten.KeyW, ebiten.KeyUp},
		core.ActionBackward:  {ebiten.KeyS, ebiten.KeyDown},
		core.ActionTurnLeft:  {ebiten.KeyA, ebiten.KeyLeft},
		core.ActionTurnRight: {ebiten.KeyD, ebiten.KeyRight},
	}
	toggleKeys = map[core.Action][]ebiten.Key{
		core.ActionPause:    {ebiten.KeyP, ebiten.KeySpace},
		core.ActionMinimap:  {ebiten.KeyTab},
		core.ActionBookmark: {ebiten.KeyM},
		core.ActionQuit:     {ebiten.KeyQ, ebiten.KeyEscape},
	}
)

// Game adapts a session to ebiten.Game.
type Game struct {
	session registry.Game
	store   *storage.Store
	logger  *log.Logger
	config  core.RuntimeConfig

	frame  *core.Frame
	pixels []byte
	screen *ebiten.Image
	input  core.InputFrame
	state  core.GameState
	status string
}

// New wraps an already Reset session. store and logger may be nil.
func New(session registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		session: session,
		store:   store,
		logger:  logger,
		config:  cfg,
		frame:   core.NewFrame(cfg.ScreenW, cfg.ScreenH),
		pixels:  make([]byte, 4*cfg.ScreenW*cfg.ScreenH),
		input:   core.NewInputFrame(),
	}
}

func anyPressed(keys []ebiten.Key, pressed func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}

// Update reads the keyboard, steps the session and renders the next frame.
func (g *Game) Update() error {
	g.input.Clear()
	for a, keys := range heldKeys {
		if anyPressed(keys, ebiten.IsKeyPressed) {
			g.input.Set(a)
		}
	}
	for a, keys := range toggleKeys {
		if anyPressed(keys, inpututil.IsKeyJustPressed) {
			g.input.Set(a)
		}
	}

	if g.input.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	result := g.session.Step(g.input)
	g.state = result.State
	if result.Bookmark {
		g.saveBookmark()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.saveScreenshot()
	}

	if err := g.session.Render(g.frame); err != nil {
		g.logger.Error("render failed", "scene", g.session.ID(), "err", err)
		return err
	}
	return nil
}

// Draw uploads the last rendered frame.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.screen == nil {
		g.screen = ebiten.NewImage(g.frame.Width(), g.frame.Height())
	}
	g.frame.CopyTo(g.pixels)
	g.screen.WritePixels(g.pixels)
	screen.DrawImage(g.screen, nil)

	text := fmt.Sprintf("%s  %.0f fps", g.session.Title(), ebiten.ActualFPS())
	if g.state.Paused {
		text += "  PAUSED"
	}
	if g.status != "" {
		text += "  " + g.status
	}
	ebitenutil.DebugPrintAt(screen, text, 4, 4)
}

// Layout keeps the logical resolution fixed.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.frame.Width(), g.frame.Height()
}

func (g *Game) saveBookmark() {
	if g.store == nil {
		g.status = "bookmarks need a database"
		return
	}
	cam := g.session.Camera()
	id, err := g.store.SaveBookmark(storage.Bookmark{
		SceneID: g.session.ID(),
		Pos:     cam.Pos,
		Dir:     cam.Dir,
		Plane:   cam.Plane,
	})
	if err != nil {
		g.logger.Warn("bookmark not saved", "scene", g.session.ID(), "err", err)
		g.status = "bookmark failed"
		return
	}
	g.logger.Info("bookmark saved", "scene", g.session.ID(), "id", id, "pos", cam.Pos)
	g.status = fmt.Sprintf("bookmark #%d saved", id)
}

func (g *Game) saveScreenshot() {
	path, err := tui.SaveScreenshot(tui.DefaultScreenshotDir(), g.session.ID(), g.frame)
	if err != nil {
		g.logger.Warn("screenshot not saved", "err", err)
		g.status = "screenshot failed"
		return
	}
	g.logger.Info("screenshot saved", "path", path)
	g.status = "saved " + path
}

// Run opens a window sized to the frame and blocks until it is closed.
func Run(session registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	g := New(session, store, logger, cfg)

	ebiten.SetWindowSize(cfg.ScreenW, cfg.ScreenH)
	ebiten.SetWindowTitle("raycaster - " + session.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
