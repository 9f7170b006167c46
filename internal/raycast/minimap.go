package raycast

import (
	"github.com/vovakirdan/tui-raycaster/internal/core"
)

var (
	minimapEmpty  = core.RGB{R: 40, G: 40, B: 40}
	minimapPlayer = core.RGB{R: 255, G: 255, B: 0}
	minimapFacing = core.RGB{R: 255, G: 128, B: 0}
)

// DrawMinimap draws a top-down view of the grid into area: walls in their
// texture's average color, the camera cell highlighted and the cell it
// faces marked. Cells are scaled to the largest integer size that fits.
func DrawMinimap(dst core.PixelSink, area core.Rect, v View) {
	g := v.Grid
	scale := core.Min(area.W/g.W, area.H/g.H)
	if scale < 1 {
		return
	}

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := minimapEmpty
			if code := g.At(core.C(x, y)); code > 0 {
				if tex := v.Textures.Texture(int(code) - 1); tex != nil {
					c = tex.Average()
				}
			}
			dst.FillRect(core.NewRect(area.X+x*scale, area.Y+y*scale, scale, scale), c)
		}
	}

	camCell := v.Camera.Pos.Cell()
	ahead := v.Camera.Pos.Add(v.Camera.Dir.Scale(1 / v.Camera.Dir.Len())).Cell()
	if g.InBounds(ahead) && ahead != camCell {
		dst.FillRect(core.NewRect(area.X+ahead.X*scale, area.Y+ahead.Y*scale, scale, scale), minimapFacing)
	}
	if g.InBounds(camCell) {
		dst.FillRect(core.NewRect(area.X+camCell.X*scale, area.Y+camCell.Y*scale, scale, scale), minimapPlayer)
	}
}
