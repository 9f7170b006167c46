package config

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/raycast"
	"github.com/vovakirdan/tui-raycaster/internal/textures"
)

// Build converts a scene configuration into a validated scene. Zero
// motion speeds, empty colors and a zero texture size fall back to the
// reference defaults.
func Build(cfg SceneConfig) (*raycast.Scene, error) {
	s, err := build(cfg)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", cfg.ID, err)
	}
	return s, nil
}

func build(cfg SceneConfig) (*raycast.Scene, error) {
	grid, err := raycast.NewGrid(cfg.Map)
	if err != nil {
		return nil, err
	}

	cam, err := cfg.Camera.build(cfg.FOVDegrees)
	if err != nil {
		return nil, err
	}

	motion := raycast.Motion{MoveSpeed: cfg.Motion.MoveSpeed, RotSpeed: cfg.Motion.RotSpeed}
	if motion == (raycast.Motion{}) {
		motion = raycast.DefaultMotion()
	}

	sky, err := parseColor(cfg.Colors.Sky, raycast.DefaultSky)
	if err != nil {
		return nil, fmt.Errorf("sky: %w", err)
	}
	floor, err := parseColor(cfg.Colors.Floor, raycast.DefaultFloor)
	if err != nil {
		return nil, fmt.Errorf("floor: %w", err)
	}

	texSet, err := cfg.Textures.build(cfg.Dir)
	if err != nil {
		return nil, err
	}

	mode, err := raycast.ParseMode(cfg.Render.Mode)
	if err != nil {
		return nil, err
	}

	title := cfg.Title
	if title == "" {
		title = cfg.ID
	}

	s := &raycast.Scene{
		ID:       cfg.ID,
		Title:    title,
		Grid:     grid,
		Start:    cam,
		Motion:   motion,
		Textures: texSet,
		Sky:      sky,
		Floor:    floor,
		Mode:     mode,
		Width:    cfg.Screen.Width,
		Height:   cfg.Screen.Height,
	}
	if cfg.Screen.Width < 0 || cfg.Screen.Height < 0 {
		return nil, fmt.Errorf("screen size %dx%d is negative", cfg.Screen.Width, cfg.Screen.Height)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (c CameraConfig) build(fovDegrees float64) (raycast.Camera, error) {
	pos := core.V(c.Position.X, c.Position.Y)
	dir := core.V(c.Direction.X, c.Direction.Y)

	if c.Plane != nil {
		return raycast.Camera{Pos: pos, Dir: dir, Plane: core.V(c.Plane.X, c.Plane.Y)}, nil
	}
	if dir.Len() == 0 {
		return raycast.Camera{Pos: pos, Dir: dir}, nil // Rejected by Validate
	}

	planeLen := raycast.DefaultPlaneLength
	if fovDegrees != 0 {
		if fovDegrees <= 0 || fovDegrees >= 180 {
			return raycast.Camera{}, fmt.Errorf("fov_degrees %.1f must be in (0, 180)", fovDegrees)
		}
		planeLen = raycast.PlaneLengthForFOV(fovDegrees * math.Pi / 180)
	}
	return raycast.NewCamera(pos, dir, planeLen), nil
}

func (t TexturesConfig) build(dir string) (*raycast.TextureSet, error) {
	size := t.Size
	if size == 0 {
		size = raycast.DefaultTextureSize
	}

	switch {
	case len(t.Files) > 0:
		paths := make([]string, len(t.Files))
		for i, f := range t.Files {
			if filepath.IsAbs(f) || dir == "" {
				paths[i] = f
			} else {
				paths[i] = filepath.Join(dir, f)
			}
		}
		return textures.LoadFiles(paths, size)
	case len(t.Procedural) > 0:
		return textures.Procedural(t.Procedural, size)
	default:
		return textures.Classic(size)
	}
}

func parseColor(s string, fallback core.RGB) (core.RGB, error) {
	if s == "" {
		return fallback, nil
	}
	return core.ParseHex(s)
}
