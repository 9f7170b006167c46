package raycast

import (
	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// Default background colors of the reference scene.
var (
	DefaultSky   = core.RGB{R: 0, G: 0, B: 255}
	DefaultFloor = core.RGB{R: 0, G: 255, B: 0}
)

// Scene is everything needed to start a session: the map, the textures, the
// start camera and the tuning constants. Scenes are constant once validated.
type Scene struct {
	ID       string
	Title    string
	Grid     *Grid
	Start    Camera
	Motion   Motion
	Textures *TextureSet
	Sky      core.RGB
	Floor    core.RGB
	Mode     Mode

	// Preferred frame size for window and headless output; zero means the
	// frontend decides.
	Width, Height int
}

// Validate checks every load-time precondition so that the per-frame code
// can stay total:
//   - the grid border is closed
//   - the start camera is non-degenerate and stands on an empty cell
//   - the move speed stays below one cell per tick
//   - every wall code has a texture
func (s *Scene) Validate() error {
	if s.Grid == nil || len(s.Grid.Cells) == 0 {
		return invalid(CodeEmptyGrid, "scene %q has no grid", s.ID)
	}
	if err := s.Grid.ValidateBorder(); err != nil {
		return err
	}
	if err := s.Start.Validate(s.Grid); err != nil {
		return err
	}
	if err := s.Motion.Validate(); err != nil {
		return err
	}
	if s.Textures == nil {
		return invalid(CodeMissingTexture, "scene %q has no textures", s.ID)
	}
	if maxCode := int(s.Grid.MaxCode()); maxCode > s.Textures.Len() {
		return invalid(CodeMissingTexture, "grid uses code %d but only %d textures are loaded", maxCode, s.Textures.Len())
	}
	return nil
}

// View returns the frame input for a camera in this scene.
func (s *Scene) View(cam Camera) View {
	return View{Camera: cam, Grid: s.Grid, Textures: s.Textures}
}

// Renderer returns a renderer configured with the scene's colors and mode.
func (s *Scene) Renderer(workers int) *Renderer {
	return NewRenderer(s.Sky, s.Floor, s.Mode, workers)
}
