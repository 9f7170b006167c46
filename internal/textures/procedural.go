// Package textures builds the wall texture sets used by scenes: a
// procedural stand-in for the classic eight wall images and a loader for
// image files of any size.
package textures

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/raycast"
)

// Generator paints a square texture of the given side length.
type Generator func(size int) *raycast.Texture

var generators = map[string]Generator{
	"eagle":       eagle,
	"redbrick":    redBrick,
	"purplestone": purpleStone,
	"greystone":   greyStone,
	"bluestone":   blueStone,
	"mossy":       mossy,
	"wood":        wood,
	"colorstone":  colorStone,
}

// ClassicNames lists the classic wall set in texture id order: grid code 1
// maps to "eagle", code 8 to "colorstone".
var ClassicNames = []string{
	"eagle",
	"redbrick",
	"purplestone",
	"greystone",
	"bluestone",
	"mossy",
	"wood",
	"colorstone",
}

// Names returns all procedural texture names in sorted order.
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate paints the named texture.
func Generate(name string, size int) (*raycast.Texture, error) {
	gen, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("unknown procedural texture %q", name)
	}
	if size <= 0 {
		return nil, fmt.Errorf("texture size %d must be positive", size)
	}
	return gen(size), nil
}

// Procedural builds a texture set from generator names, in order.
func Procedural(names []string, size int) (*raycast.TextureSet, error) {
	list := make([]*raycast.Texture, 0, len(names))
	for _, name := range names {
		tex, err := Generate(name, size)
		if err != nil {
			return nil, err
		}
		list = append(list, tex)
	}
	return raycast.NewTextureSet(list...)
}

// Classic builds the classic eight-texture wall set.
func Classic(size int) (*raycast.TextureSet, error) {
	return Procedural(ClassicNames, size)
}

func paint(size int, fn func(u, v int) core.RGB) *raycast.Texture {
	tex := raycast.NewTexture(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			// Patterns are drawn on a 256-unit canvas and sampled down.
			tex.Set(x, y, fn(x*256/size, y*256/size))
		}
	}
	return tex
}

// eagle is a red tile with a dark diagonal cross.
func eagle(size int) *raycast.Texture {
	return paint(size, func(u, v int) core.RGB {
		if abs(u-v) < 8 || abs(u+v-255) < 8 {
			return core.RGB{R: 40, G: 20, B: 10}
		}
		return core.RGB{R: 200, G: 30, B: 30}
	})
}

func redBrick(size int) *raycast.Texture {
	return brick(size, core.RGB{R: 160, G: 40, B: 30}, core.RGB{R: 190, G: 180, B: 170})
}

func purpleStone(size int) *raycast.Texture {
	return stone(size, core.RGB{R: 120, G: 60, B: 140})
}

func greyStone(size int) *raycast.Texture {
	return stone(size, core.RGB{R: 128, G: 128, B: 128})
}

func blueStone(size int) *raycast.Texture {
	return stone(size, core.RGB{R: 50, G: 70, B: 170})
}

// mossy is grey stone with green xor patches.
func mossy(size int) *raycast.Texture {
	return paint(size, func(u, v int) core.RGB {
		x := uint8(u ^ v)
		if x%7 < 3 {
			return core.RGB{R: 40, G: 90 + x/4, B: 40}
		}
		return core.RGB{R: 110, G: 110, B: 100}
	})
}

// wood is vertical planks with a sloped grain.
func wood(size int) *raycast.Texture {
	return paint(size, func(u, v int) core.RGB {
		if u%64 < 3 {
			return core.RGB{R: 60, G: 35, B: 15}
		}
		grain := uint8((u*3 + v) % 32)
		return core.RGB{R: 130 + grain, G: 80 + grain/2, B: 35}
	})
}

// colorstone is the xor pattern in full color.
func colorStone(size int) *raycast.Texture {
	return paint(size, func(u, v int) core.RGB {
		x := uint8(u ^ v)
		return core.RGB{R: x, G: 255 - x, B: uint8(v)}
	})
}

// brick lays 64-unit bricks in rows of 32 with every other row offset by
// half a brick.
func brick(size int, face, mortar core.RGB) *raycast.Texture {
	return paint(size, func(u, v int) core.RGB {
		row := v / 32
		offset := 0
		if row%2 == 1 {
			offset = 32
		}
		if v%32 < 3 || (u+offset)%64 < 3 {
			return mortar
		}
		return face
	})
}

// stone shades base with a coarse xor pattern so adjacent blocks differ.
func stone(size int, base core.RGB) *raycast.Texture {
	return paint(size, func(u, v int) core.RGB {
		if u%128 < 2 || v%128 < 2 {
			return base.Half()
		}
		k := int((u/32)^(v/32)) * 6
		return core.RGB{R: shift(base.R, k), G: shift(base.G, k), B: shift(base.B, k)}
	})
}

func shift(c uint8, d int) uint8 {
	return uint8(core.Clamp(int(c)+d-20, 0, 255))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
