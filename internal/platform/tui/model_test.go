package tui

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/registry"
	_ "github.com/vovakirdan/tui-raycaster/internal/scenes"
	"github.com/vovakirdan/tui-raycaster/internal/storage"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 32, ScreenH: 24, TickRate: 60, Workers: 2}
}

func newClassic(t *testing.T, cfg core.RuntimeConfig) registry.Game {
	t.Helper()
	g, err := registry.Create("classic")
	if err != nil {
		t.Fatalf("Create(classic): %v", err)
	}
	g.Reset(cfg)
	return g
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelForwardKey(t *testing.T) {
	cfg := testConfig()
	g := newClassic(t, cfg)
	start := g.Camera().Pos

	m := NewModel(g, nil, nil, cfg)
	m = update(t, m, runes("w"))
	m = update(t, m, TickMsg(time.Now()))

	pos := g.Camera().Pos
	if math.Abs(pos.X-(start.X-0.1)) > 1e-6 || pos.Y != start.Y {
		t.Errorf("position after one forward tick = %+v, want x %.2f", pos, start.X-0.1)
	}
	if m.gameState.Tick != 1 {
		t.Errorf("tick = %d, want 1", m.gameState.Tick)
	}
}

func TestModelHeldKeyExpires(t *testing.T) {
	cfg := testConfig()
	g := newClassic(t, cfg)

	m := NewModel(g, nil, nil, cfg)
	m = update(t, m, runes("a"))

	hold := cfg.TickRate / holdFraction
	for i := 0; i < hold+3; i++ {
		m = update(t, m, TickMsg(time.Now()))
	}
	if len(m.held) != 0 {
		t.Errorf("held keys = %v, want none", m.held)
	}

	want := g.Camera().Dir
	m = update(t, m, TickMsg(time.Now()))
	if got := g.Camera().Dir; got != want {
		t.Errorf("camera kept turning after release: %+v -> %+v", want, got)
	}
}

func TestModelOppositeKeyCancels(t *testing.T) {
	cfg := testConfig()
	g := newClassic(t, cfg)

	m := NewModel(g, nil, nil, cfg)
	m = update(t, m, runes("w"))
	m = update(t, m, runes("s"))

	if _, ok := m.held[core.ActionForward]; ok {
		t.Error("backward should release forward")
	}
	if _, ok := m.held[core.ActionBackward]; !ok {
		t.Error("backward should be held")
	}
}

func TestModelPauseAndQuit(t *testing.T) {
	cfg := testConfig()
	g := newClassic(t, cfg)
	start := g.Camera()

	m := NewModel(g, nil, nil, cfg)
	m = update(t, m, runes("p"))
	m = update(t, m, TickMsg(time.Now()))
	if !m.gameState.Paused {
		t.Fatal("session should be paused")
	}

	m = update(t, m, runes("w"))
	m = update(t, m, TickMsg(time.Now()))
	if g.Camera() != start {
		t.Error("camera moved while paused")
	}

	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelResizeKeepsCamera(t *testing.T) {
	cfg := testConfig()
	g := newClassic(t, cfg)
	start := g.Camera()

	m := NewModel(g, nil, nil, cfg)
	m = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 21})

	if m.frame.Width() != 50 || m.frame.Height() != 40 {
		t.Errorf("frame = %dx%d, want 50x40", m.frame.Width(), m.frame.Height())
	}
	if g.Camera() != start {
		t.Error("resize moved the camera")
	}

	m = update(t, m, TickMsg(time.Now()))
	if m.View() == "" {
		t.Error("view should not be empty")
	}
}

func TestModelBookmark(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	cfg := testConfig()
	g := newClassic(t, cfg)

	m := NewModel(g, store, nil, cfg)
	m = update(t, m, runes("m"))
	m = update(t, m, TickMsg(time.Now()))

	b, err := store.LatestBookmark("classic")
	if err != nil {
		t.Fatalf("LatestBookmark: %v", err)
	}
	if b == nil {
		t.Fatal("bookmark not saved")
	}
	cam := g.Camera()
	if b.Pos != cam.Pos || b.Dir != cam.Dir || b.Plane != cam.Plane {
		t.Errorf("bookmark = %+v, camera = %+v", b, cam)
	}
	if m.message == "" {
		t.Error("bookmark should be announced in the status bar")
	}
}

func TestModelBookmarkWithoutStore(t *testing.T) {
	cfg := testConfig()
	g := newClassic(t, cfg)

	m := NewModel(g, nil, nil, cfg)
	m = update(t, m, runes("m"))
	m = update(t, m, TickMsg(time.Now()))

	if m.message == "" {
		t.Error("missing database should be reported")
	}
}

func TestWritePNG(t *testing.T) {
	f := core.NewFrame(4, 3)
	f.Fill(core.Blue)
	f.Set(1, 2, core.Red)

	path := filepath.Join(t.TempDir(), "shot.png")
	if err := WritePNG(path, f); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Fatalf("bounds = %v, want 4x3", b)
	}
	if got := core.FromColor(img.At(1, 2)); got != core.Red {
		t.Errorf("pixel (1,2) = %+v, want red", got)
	}
	if got := core.FromColor(img.At(0, 0)); got != core.Blue {
		t.Errorf("pixel (0,0) = %+v, want blue", got)
	}
}

func TestSaveScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	path, err := SaveScreenshot(dir, "classic", core.NewFrame(2, 2))
	if err != nil {
		t.Fatalf("SaveScreenshot: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("path %s not in %s", path, dir)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("screenshot missing: %v", err)
	}
}
