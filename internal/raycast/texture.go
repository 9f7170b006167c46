package raycast

import (
	"fmt"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// DefaultTextureSize is the side length of the reference wall textures.
const DefaultTextureSize = 64

// Texture is a square RGB pixel buffer addressed by (x, y) in [0, Size).
// Textures are read-only once added to a TextureSet.
type Texture struct {
	size int
	pix  []core.RGB
	avg  core.RGB
}

// NewTexture creates a black texture with the given side length.
func NewTexture(size int) *Texture {
	return &Texture{
		size: size,
		pix:  make([]core.RGB, size*size),
	}
}

// Size returns the side length in texels.
func (t *Texture) Size() int {
	return t.size
}

// At returns the texel at (x, y). Coordinates must be in [0, Size).
func (t *Texture) At(x, y int) core.RGB {
	return t.pix[y*t.size+x]
}

// Set writes the texel at (x, y).
func (t *Texture) Set(x, y int, c core.RGB) {
	t.pix[y*t.size+x] = c
}

// Average returns the mean texel color, computed when the texture joined a
// TextureSet.
func (t *Texture) Average() core.RGB {
	return t.avg
}

func (t *Texture) computeAverage() {
	if len(t.pix) == 0 {
		return
	}
	var r, g, b int
	for _, p := range t.pix {
		r += int(p.R)
		g += int(p.G)
		b += int(p.B)
	}
	n := len(t.pix)
	t.avg = core.RGB{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)}
}

// TextureSource maps texture ids to equally sized square textures.
type TextureSource interface {
	Size() int
	Len() int
	Texture(id int) *Texture
}

// TextureSet is an ordered, fixed list of textures sharing one size.
type TextureSet struct {
	size     int
	textures []*Texture
}

// NewTextureSet builds a set from textures that all share the same size.
func NewTextureSet(textures ...*Texture) (*TextureSet, error) {
	if len(textures) == 0 {
		return nil, invalid(CodeMissingTexture, "texture set is empty")
	}
	size := textures[0].Size()
	if size <= 0 {
		return nil, invalid(CodeBadTextureSize, "texture size %d must be positive", size)
	}
	for i, t := range textures {
		if t == nil {
			return nil, invalid(CodeMissingTexture, "texture %d is nil", i)
		}
		if t.Size() != size {
			return nil, invalid(CodeBadTextureSize, "texture %d is %dx%d, expected %dx%d", i, t.Size(), t.Size(), size, size)
		}
		t.computeAverage()
	}
	return &TextureSet{size: size, textures: textures}, nil
}

// Size returns the shared side length.
func (s *TextureSet) Size() int {
	return s.size
}

// Len returns the number of textures.
func (s *TextureSet) Len() int {
	return len(s.textures)
}

// Texture returns the texture for id, or nil if the id is unknown.
func (s *TextureSet) Texture(id int) *Texture {
	if id < 0 || id >= len(s.textures) {
		return nil
	}
	return s.textures[id]
}

func (s *TextureSet) String() string {
	return fmt.Sprintf("%d textures of %dx%d", len(s.textures), s.size, s.size)
}
