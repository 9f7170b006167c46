// Package raycast implements the grid raycasting engine: camera state,
// movement, DDA traversal, column projection and frame rendering.
package raycast

import (
	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// Grid is the wall map. Cell code 0 is passable; a code n > 0 is a wall
// textured with texture id n-1. Cells are stored row-major: index = y*W + x.
//
// A Grid is immutable once built and safe for concurrent reads.
type Grid struct {
	W     int     // Width of the grid (columns)
	H     int     // Height of the grid (rows)
	Cells []uint8 // Flat array of cell codes, length W*H
}

// NewGrid builds a grid from rows of cell codes. Rows must be non-empty and
// of equal length; rectangular grids are allowed.
func NewGrid(rows [][]uint8) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, invalid(CodeEmptyGrid, "grid has no cells")
	}
	w := len(rows[0])
	g := &Grid{
		W:     w,
		H:     len(rows),
		Cells: make([]uint8, 0, w*len(rows)),
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, invalid(CodeRaggedGrid, "row %d has %d cells, expected %d", y, len(row), w)
		}
		g.Cells = append(g.Cells, row...)
	}
	return g, nil
}

// InBounds returns true if the cell is within the grid boundaries.
func (g *Grid) InBounds(c core.Cell) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// At returns the code of the given cell. The cell must be in bounds.
func (g *Grid) At(c core.Cell) uint8 {
	return g.Cells[c.Y*g.W+c.X]
}

// IsEmpty reports whether the cell is inside the grid and passable.
// Cells outside the grid count as solid.
func (g *Grid) IsEmpty(c core.Cell) bool {
	return g.InBounds(c) && g.At(c) == 0
}

// MaxCode returns the largest cell code in the grid.
func (g *Grid) MaxCode() uint8 {
	var m uint8
	for _, v := range g.Cells {
		if v > m {
			m = v
		}
	}
	return m
}

// Rows returns a copy of the grid as rows of cell codes.
func (g *Grid) Rows() [][]uint8 {
	rows := make([][]uint8, g.H)
	for y := range rows {
		rows[y] = make([]uint8, g.W)
		copy(rows[y], g.Cells[y*g.W:(y+1)*g.W])
	}
	return rows
}

// ValidateBorder checks that every cell on the outer ring is a wall.
// An enclosed grid guarantees that traversal and movement never index
// outside [0, H) x [0, W).
func (g *Grid) ValidateBorder() error {
	for x := 0; x < g.W; x++ {
		for _, y := range []int{0, g.H - 1} {
			if g.At(core.C(x, y)) == 0 {
				return invalid(CodeOpenBorder, "border cell %v is empty", core.C(x, y))
			}
		}
	}
	for y := 0; y < g.H; y++ {
		for _, x := range []int{0, g.W - 1} {
			if g.At(core.C(x, y)) == 0 {
				return invalid(CodeOpenBorder, "border cell %v is empty", core.C(x, y))
			}
		}
	}
	return nil
}
