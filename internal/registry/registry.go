// Package registry provides a global registry for scene factories.
// Scenes register themselves in init() functions, allowing the platform
// to discover and start them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/raycast"
)

// Game is the interface frontends drive once per tick.
// Implementations contain pure logic with no terminal or window code.
// The platform handles input mapping, timing and presentation.
type Game interface {
	// ID returns the scene identifier (e.g., "classic", "maze").
	// Used for CLI commands and storage keys.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset puts the camera back at the scene's start state.
	Reset(cfg core.RuntimeConfig)

	// Step advances the session by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current view into dst. The whole frame is
	// overwritten, so dst need not be cleared.
	Render(dst *core.Frame) error

	// State returns the current session state.
	State() core.GameState

	// Scene returns the validated scene being explored.
	Scene() *raycast.Scene

	// Camera returns the current camera.
	Camera() raycast.Camera

	// SetCamera moves the camera, e.g. to a saved bookmark.
	// The camera is validated against the scene grid first.
	SetCamera(cam raycast.Camera) error
}

// GameInfo contains metadata about a registered scene.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new session. Building can fail when a scene file on
// disk is invalid.
type Factory func() (Game, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Typically called from an init() function.
// Panics if a scene with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered scenes, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a new session for the scene ID.
// Returns an error if the ID is not registered or the scene is invalid.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown scene %q", id)
	}

	g, err := f()
	if err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	return g, nil
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
