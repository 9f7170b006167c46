package raycast

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

func TestCameraX(t *testing.T) {
	tests := []struct {
		col, width int
		expected   float64
	}{
		{0, 640, -1},
		{320, 640, 0},
		{480, 640, 0.5},
		{639, 640, 2*639.0/640 - 1},
	}

	for _, tc := range tests {
		if got := CameraX(tc.col, tc.width); got != tc.expected {
			t.Errorf("CameraX(%d, %d) = %f, expected %f", tc.col, tc.width, got, tc.expected)
		}
	}
}

func TestCastCenterColumn(t *testing.T) {
	g := mustGrid(t, worldMap)
	cam := startCamera()

	hit, err := CastColumn(g, cam, 320, 640)
	if err != nil {
		t.Fatalf("CastColumn() failed: %v", err)
	}

	// Walking due west from (4.5, 5.0) along row 5 reaches the code-4 wall
	// at column 2.
	if hit.Cell != core.C(2, 5) {
		t.Errorf("Cell = %v, expected (2, 5)", hit.Cell)
	}
	if hit.Code != 4 || worldMap[5][2] != 4 {
		t.Errorf("Code = %d, expected 4", hit.Code)
	}
	if hit.NSSide {
		t.Error("expected an x-side hit")
	}
	if math.Abs(hit.PerpDist-1.5) > tolerance {
		t.Errorf("PerpDist = %f, expected 1.5", hit.PerpDist)
	}
	if hit.TextureID() != 3 {
		t.Errorf("TextureID() = %d, expected 3", hit.TextureID())
	}
}

func TestCastNorth(t *testing.T) {
	g := mustGrid(t, worldMap)

	hit, err := Cast(g, core.V(4.5, 5.0), core.V(0, -1))
	if err != nil {
		t.Fatalf("Cast() failed: %v", err)
	}
	if hit.Cell != core.C(4, 0) {
		t.Errorf("Cell = %v, expected (4, 0)", hit.Cell)
	}
	if !hit.NSSide {
		t.Error("expected a y-side hit")
	}
	if math.Abs(hit.PerpDist-4) > tolerance {
		t.Errorf("PerpDist = %f, expected 4", hit.PerpDist)
	}
}

func TestCastDiagonal(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{1, 1, 1, 1, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 1, 1, 1, 1},
	})

	hit, err := Cast(g, core.V(1.5, 1.5), core.V(1, 0.5))
	if err != nil {
		t.Fatalf("Cast() failed: %v", err)
	}
	// x reaches 4 when y is 2.75, so the east wall is hit first.
	if hit.Cell != core.C(4, 2) || hit.NSSide {
		t.Errorf("hit %v ns=%v, expected x-side at (4, 2)", hit.Cell, hit.NSSide)
	}
	if math.Abs(hit.PerpDist-2.5) > tolerance {
		t.Errorf("PerpDist = %f, expected 2.5", hit.PerpDist)
	}
}

func TestCastPerpendicularDistanceIsFisheyeFree(t *testing.T) {
	// Facing a flat wall, every column reports the same perpendicular
	// distance even though the Euclidean ray lengths differ.
	g := mustGrid(t, [][]uint8{
		{1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 1},
	})
	cam := Camera{Pos: core.V(4.5, 3.5), Dir: core.V(0, -1), Plane: core.V(0.5, 0)}

	for col := 0; col < 32; col++ {
		hit, err := CastColumn(g, cam, col, 32)
		if err != nil {
			t.Fatalf("column %d: %v", col, err)
		}
		if hit.Cell.Y != 0 {
			continue
		}
		if math.Abs(hit.PerpDist-2.5) > tolerance {
			t.Errorf("column %d: PerpDist = %f, expected 2.5", col, hit.PerpDist)
		}
	}
}

func TestCastZeroComponent(t *testing.T) {
	g := mustGrid(t, worldMap)

	tests := []struct {
		name string
		ray  core.Vec2
		cell core.Cell
	}{
		{"east", core.V(1, 0), core.C(7, 5)},
		{"south", core.V(0, 1), core.C(4, 12)},
		{"negative zero", core.V(math.Copysign(0, -1), 1), core.C(4, 12)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hit, err := Cast(g, core.V(4.5, 5.5), tc.ray)
			if err != nil {
				t.Fatalf("Cast() failed: %v", err)
			}
			if hit.Cell != tc.cell {
				t.Errorf("Cell = %v, expected %v", hit.Cell, tc.cell)
			}
			if math.IsNaN(hit.PerpDist) || math.IsInf(hit.PerpDist, 0) {
				t.Errorf("PerpDist = %f, expected finite", hit.PerpDist)
			}
		})
	}
}

func TestCastEscapes(t *testing.T) {
	g := mustGrid(t, [][]uint8{
		{1, 1, 1},
		{1, 0, 0},
		{1, 1, 1},
	})

	_, err := Cast(g, core.V(1.5, 1.5), core.V(1, 0))
	if !errors.Is(err, ErrRayEscaped) {
		t.Errorf("Cast() error = %v, expected ErrRayEscaped", err)
	}
}

func TestCastEveryColumnTerminates(t *testing.T) {
	g := mustGrid(t, worldMap)
	cam := startCamera()

	for turn := 0; turn < 80; turn++ {
		for col := 0; col < 64; col++ {
			hit, err := CastColumn(g, cam, col, 64)
			if err != nil {
				t.Fatalf("turn %d column %d: %v", turn, col, err)
			}
			if hit.Code == 0 {
				t.Fatalf("turn %d column %d: hit empty cell %v", turn, col, hit.Cell)
			}
			if hit.PerpDist < 0 {
				t.Fatalf("turn %d column %d: negative distance %f", turn, col, hit.PerpDist)
			}
		}
		cam.Rotate(DefaultRotSpeed)
	}
}
