package scenes

import (
	"math/rand"

	"github.com/vovakirdan/tui-raycaster/internal/config"
)

// Built-in maze parameters.
const (
	MazeSize = 21
	MazeSeed = 1
)

// mazeTextures spreads the classic wall set over the maze in 8x8 blocks.
const mazeTextures = 8

// GenerateMaze carves a perfect maze with a randomized depth-first search.
// Passages run through odd coordinates; every even row and column starts as
// wall, so the outer ring is always closed. Even sizes are rounded down to
// the next odd size. Cell (1, 1) is always open.
func GenerateMaze(w, h int, seed int64) config.MapRows {
	w, h = oddSize(w), oddSize(h)
	rng := rand.New(rand.NewSource(seed))

	rows := make(config.MapRows, h)
	for y := range rows {
		rows[y] = make([]uint8, w)
		for x := range rows[y] {
			rows[y][x] = wallCode(x, y)
		}
	}

	type cell struct{ x, y int }
	dirs := []cell{{2, 0}, {-2, 0}, {0, 2}, {0, -2}}

	stack := []cell{{1, 1}}
	rows[1][1] = 0
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var options []cell
		for _, d := range dirs {
			nx, ny := cur.x+d.x, cur.y+d.y
			if nx > 0 && nx < w-1 && ny > 0 && ny < h-1 && rows[ny][nx] != 0 {
				options = append(options, cell{nx, ny})
			}
		}
		if len(options) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := options[rng.Intn(len(options))]
		rows[(cur.y+next.y)/2][(cur.x+next.x)/2] = 0
		rows[next.y][next.x] = 0
		stack = append(stack, next)
	}
	return rows
}

// MazeConfig returns a scene with a generated maze and the classic
// camera, motion, colors and textures. The camera starts in cell (1, 1)
// facing an open neighbor.
func MazeConfig(w, h int, seed int64) config.SceneConfig {
	cfg := config.DefaultSceneConfig()
	cfg.ID = "maze"
	cfg.Title = "Maze"
	cfg.Map = GenerateMaze(w, h, seed)

	cfg.Camera.Position = config.Point{X: 1.5, Y: 1.5}
	cfg.Camera.Direction = config.Point{X: 1, Y: 0}
	if cfg.Map[1][2] != 0 {
		cfg.Camera.Direction = config.Point{X: 0, Y: 1}
	}
	// Derived from the direction with the default field of view.
	cfg.Camera.Plane = nil
	return cfg
}

func wallCode(x, y int) uint8 {
	return uint8((x/8+y/8)%mazeTextures) + 1
}

func oddSize(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}
