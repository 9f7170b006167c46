package raycast

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// Mode selects how wall columns are filled.
type Mode int

const (
	// ModeTextured samples a texel per pixel.
	ModeTextured Mode = iota
	// ModeFlat fills each column with the texture's average color.
	ModeFlat
)

func (m Mode) String() string {
	switch m {
	case ModeTextured:
		return "textured"
	case ModeFlat:
		return "flat"
	default:
		return "unknown"
	}
}

// ParseMode converts a config string to a Mode. Empty means textured.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "textured":
		return ModeTextured, nil
	case "flat":
		return ModeFlat, nil
	default:
		return ModeTextured, fmt.Errorf("unknown render mode %q", s)
	}
}

// View is the read-only input of one frame.
type View struct {
	Camera   Camera
	Grid     *Grid
	Textures TextureSource
}

// Renderer draws complete frames. Columns are split into contiguous ranges
// and rendered by up to Workers goroutines; each goroutine owns its columns
// so no locking is needed.
type Renderer struct {
	Sky     core.RGB
	Floor   core.RGB
	Mode    Mode
	Workers int // 0 means one per CPU
}

// NewRenderer creates a renderer with the given background colors.
func NewRenderer(sky, floor core.RGB, mode Mode, workers int) *Renderer {
	return &Renderer{Sky: sky, Floor: floor, Mode: mode, Workers: workers}
}

// Render paints the sky and floor bands, then casts and draws every column.
// The camera in v must not change while Render runs.
func (r *Renderer) Render(dst *core.Frame, v View) error {
	w, h := dst.Width(), dst.Height()
	if w == 0 || h == 0 {
		return nil
	}

	dst.FillRect(core.NewRect(0, 0, w, h/2), r.Sky)
	dst.FillRect(core.NewRect(0, h/2, w, h-h/2), r.Floor)

	workers := r.workerCount(w)
	chunk := (w + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < w; start += chunk {
		lo, hi := start, core.Min(start+chunk, w)
		g.Go(func() error {
			for x := lo; x < hi; x++ {
				if err := r.RenderColumn(dst, x, w, h, v); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// RenderColumn casts and draws a single screen column of a w x h frame.
func (r *Renderer) RenderColumn(dst core.PixelSink, x, w, h int, v View) error {
	hit, err := CastColumn(v.Grid, v.Camera, x, w)
	if err != nil {
		return fmt.Errorf("column %d: %w", x, err)
	}

	col := Project(hit, v.Camera.Pos, h, v.Textures.Size())
	tex := v.Textures.Texture(col.TexID)
	if tex == nil {
		return fmt.Errorf("column %d: %w", x, invalid(CodeMissingTexture, "no texture for cell code %d", hit.Code))
	}

	switch r.Mode {
	case ModeFlat:
		DrawFlatColumn(dst, x, col, tex.Average())
	default:
		DrawColumn(dst, x, col, tex)
	}
	return nil
}

func (r *Renderer) workerCount(width int) int {
	n := r.Workers
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return core.Clamp(n, 1, width)
}
