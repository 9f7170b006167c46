// Package explore implements a walk-through session over a scene: it owns
// the camera, applies per-tick input and renders the view.
package explore

import (
	"time"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/raycast"
)

// maxMoveSpeed caps scaled movement at slow tick rates so a single step
// stays below one cell.
const maxMoveSpeed = 0.9

// Game is one exploration session. It is not safe for concurrent use; the
// platform calls Step and Render from a single loop.
type Game struct {
	scene    *raycast.Scene
	renderer *raycast.Renderer
	motion   raycast.Motion

	cam     raycast.Camera
	tick    uint64
	paused  bool
	minimap bool
}

// New creates a session for a validated scene. Call Reset before use.
func New(s *raycast.Scene) *Game {
	return &Game{
		scene:  s,
		cam:    s.Start,
		motion: s.Motion,
	}
}

// ID returns the scene identifier.
func (g *Game) ID() string {
	return g.scene.ID
}

// Title returns the scene title.
func (g *Game) Title() string {
	return g.scene.Title
}

// Scene returns the scene being explored.
func (g *Game) Scene() *raycast.Scene {
	return g.scene
}

// Reset puts the camera at the start state and adapts the per-tick speeds
// to the tick rate.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cam = g.scene.Start
	g.tick = 0
	g.paused = false
	g.minimap = false
	g.renderer = g.scene.Renderer(cfg.Workers)
	g.motion = motionFor(g.scene.Motion, cfg.TickRate)
}

func motionFor(m raycast.Motion, tickRate int) raycast.Motion {
	if tickRate <= 0 {
		return m
	}
	scaled := m.Scaled(time.Second / time.Duration(tickRate))
	if scaled.MoveSpeed > maxMoveSpeed {
		scaled.MoveSpeed = maxMoveSpeed
	}
	return scaled
}

// Step applies one tick of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionMinimap) {
		g.minimap = !g.minimap
	}

	if !g.paused {
		raycast.Step(&g.cam, g.scene.Grid, in.Intents(), g.motion)
		g.tick++
	}

	return core.StepResult{
		State:    g.State(),
		Bookmark: in.Has(core.ActionBookmark),
	}
}

// Render draws the 3D view and, when enabled, the minimap in the top-left
// corner.
func (g *Game) Render(dst *core.Frame) error {
	if g.renderer == nil {
		g.renderer = g.scene.Renderer(0)
	}
	view := g.scene.View(g.cam)
	if err := g.renderer.Render(dst, view); err != nil {
		return err
	}
	if g.minimap {
		side := core.Min(dst.Width(), dst.Height()) / 3
		raycast.DrawMinimap(dst, core.NewRect(1, 1, side, side), view)
	}
	return nil
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Tick:     g.tick,
		Paused:   g.paused,
		Minimap:  g.minimap,
		Position: g.cam.Pos,
		Heading:  g.cam.Dir,
	}
}

// Camera returns the current camera.
func (g *Game) Camera() raycast.Camera {
	return g.cam
}

// SetCamera replaces the camera after checking it against the grid.
func (g *Game) SetCamera(cam raycast.Camera) error {
	if err := cam.Validate(g.scene.Grid); err != nil {
		return err
	}
	g.cam = cam
	return nil
}
