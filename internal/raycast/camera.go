package raycast

import (
	"math"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// DefaultPlaneLength gives roughly a 66 degree field of view for a unit
// direction vector.
const DefaultPlaneLength = 0.66

// Camera is the viewer state: position in map cells, facing direction and
// the camera plane whose length sets the field of view.
type Camera struct {
	Pos   core.Vec2
	Dir   core.Vec2
	Plane core.Vec2
}

// NewCamera creates a camera facing dir with a plane of the given length
// perpendicular to it. The plane points to the viewer's right in screen
// coordinates (y grows downwards), so (-1,0) gets the plane (0,planeLen).
func NewCamera(pos, dir core.Vec2, planeLen float64) Camera {
	plane := core.Vec2{}
	if l := dir.Len(); l > 0 {
		plane = dir.Scale(planeLen / l).Rotate(-math.Pi / 2)
	}
	return Camera{Pos: pos, Dir: dir, Plane: plane}
}

// PlaneLengthForFOV returns the plane length that yields the given
// horizontal field of view (radians) for a unit direction.
func PlaneLengthForFOV(fov float64) float64 {
	return math.Tan(fov / 2)
}

// FOV returns the horizontal field of view in radians.
func (c Camera) FOV() float64 {
	d := c.Dir.Len()
	if d == 0 {
		return 0
	}
	return 2 * math.Atan(c.Plane.Len()/d)
}

// Rotate turns both the direction and the plane by angle radians so the
// plane stays locked to the facing direction. Positive angles rotate
// counter-clockwise in standard math orientation. Lengths are preserved.
func (c *Camera) Rotate(angle float64) {
	c.Dir = c.Dir.Rotate(angle)
	c.Plane = c.Plane.Rotate(angle)
}

// Move advances the camera along its direction by speed (negative moves
// backwards). Each axis is tested against the grid separately: x first
// using the current row, then y using the possibly updated column. A blocked
// axis keeps its coordinate, which makes the camera slide along walls.
//
// The speed magnitude must stay below one cell per call; Move does not
// guard against tunnelling through single-cell walls.
func (c *Camera) Move(g *Grid, speed float64) {
	next := c.Pos.Add(c.Dir.Scale(speed))

	if g.IsEmpty(core.C(floor(next.X), floor(c.Pos.Y))) {
		c.Pos.X = next.X
	}
	if g.IsEmpty(core.C(floor(c.Pos.X), floor(next.Y))) {
		c.Pos.Y = next.Y
	}
}

// minSpread is the smallest accepted |Dir x Plane| relative to the product
// of their lengths; below it the view has no width.
const minSpread = 1e-9

// Validate checks the camera against the grid: the start cell must be in
// bounds and empty, both vectors must be finite and non-zero, and the
// plane must not be parallel to the direction.
func (c Camera) Validate(g *Grid) error {
	if isBad(c.Dir.X) || isBad(c.Dir.Y) || c.Dir.Len() == 0 {
		return invalid(CodeDegenerateCamera, "direction vector %v is zero or not finite", c.Dir)
	}
	if isBad(c.Plane.X) || isBad(c.Plane.Y) || c.Plane.Len() == 0 {
		return invalid(CodeDegenerateCamera, "camera plane vector %v is zero or not finite", c.Plane)
	}
	cross := c.Dir.X*c.Plane.Y - c.Dir.Y*c.Plane.X
	if math.Abs(cross) <= minSpread*c.Dir.Len()*c.Plane.Len() {
		return invalid(CodeDegenerateCamera, "camera plane %v is parallel to direction %v", c.Plane, c.Dir)
	}
	if isBad(c.Pos.X) || isBad(c.Pos.Y) {
		return invalid(CodeStartOutOfBounds, "position %v is not finite", c.Pos)
	}
	cell := c.Pos.Cell()
	if !g.InBounds(cell) {
		return invalid(CodeStartOutOfBounds, "position %v is outside the %dx%d grid", c.Pos, g.W, g.H)
	}
	if g.At(cell) != 0 {
		return invalid(CodeStartInWall, "position %v is inside wall cell %v (code %d)", c.Pos, cell, g.At(cell))
	}
	return nil
}

func floor(v float64) int {
	return int(math.Floor(v))
}

func isBad(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
