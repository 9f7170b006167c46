package raycast

import (
	"math"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// Hit is the result of casting one ray.
type Hit struct {
	Cell     core.Cell // Wall cell that stopped the ray
	Code     uint8     // Grid code of that cell
	NSSide   bool      // True when a horizontal grid line (y side) was crossed
	Ray      core.Vec2 // Ray direction that was cast
	PerpDist float64   // Distance to the wall along the camera's forward axis
}

// TextureID returns the texture index for the wall that was hit.
func (h Hit) TextureID() int {
	return int(h.Code) - 1
}

// WallFrac returns where along the wall face the ray landed, in [0, 1).
func (h Hit) WallFrac(pos core.Vec2) float64 {
	var w float64
	if h.NSSide {
		w = pos.X + h.PerpDist*h.Ray.X
	} else {
		w = pos.Y + h.PerpDist*h.Ray.Y
	}
	return w - math.Floor(w)
}

// CameraX maps a screen column to [-1, 1): -1 at the left edge, 0 at the
// center.
func CameraX(col, width int) float64 {
	return 2*float64(col)/float64(width) - 1
}

// RayDir returns the ray direction for a camera-space x coordinate.
func RayDir(cam Camera, cameraX float64) core.Vec2 {
	return cam.Dir.Add(cam.Plane.Scale(cameraX))
}

// Cast walks the ray from pos across the grid one cell boundary at a time
// (DDA) until it enters a wall cell.
//
// A zero ray component yields an infinite delta distance for that axis, so
// the axis is never chosen; no special case is needed. If the ray leaves the
// grid, ErrRayEscaped is returned.
func Cast(g *Grid, pos, ray core.Vec2) (Hit, error) {
	cell := pos.Cell()

	deltaDist := core.V(math.Abs(1/ray.X), math.Abs(1/ray.Y))

	var step core.Cell
	var sideDist core.Vec2
	if ray.X < 0 {
		step.X = -1
		sideDist.X = (pos.X - float64(cell.X)) * deltaDist.X
	} else {
		step.X = 1
		sideDist.X = (float64(cell.X) + 1 - pos.X) * deltaDist.X
	}
	if ray.Y < 0 {
		step.Y = -1
		sideDist.Y = (pos.Y - float64(cell.Y)) * deltaDist.Y
	} else {
		step.Y = 1
		sideDist.Y = (float64(cell.Y) + 1 - pos.Y) * deltaDist.Y
	}

	nsSide := false
	for {
		if sideDist.X < sideDist.Y {
			sideDist.X += deltaDist.X
			cell.X += step.X
			nsSide = false
		} else {
			sideDist.Y += deltaDist.Y
			cell.Y += step.Y
			nsSide = true
		}

		if !g.InBounds(cell) {
			return Hit{}, ErrRayEscaped
		}
		if g.At(cell) > 0 {
			break
		}
	}

	hit := Hit{
		Cell:   cell,
		Code:   g.At(cell),
		NSSide: nsSide,
		Ray:    ray,
	}
	if nsSide {
		hit.PerpDist = sideDist.Y - deltaDist.Y
	} else {
		hit.PerpDist = sideDist.X - deltaDist.X
	}
	return hit, nil
}

// CastColumn casts the ray for one screen column.
func CastColumn(g *Grid, cam Camera, col, width int) (Hit, error) {
	return Cast(g, cam.Pos, RayDir(cam, CameraX(col, width)))
}
