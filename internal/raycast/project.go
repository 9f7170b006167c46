package raycast

import (
	"math"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// maxLineHeight bounds the projected height of walls touching the camera.
const maxLineHeight = 1 << 24

// Column is a wall hit projected onto one screen column.
type Column struct {
	LineHeight int     // Unclamped wall height in pixels
	DrawStart  int     // First row to draw (clamped, inclusive)
	DrawEnd    int     // Last row to draw (clamped, exclusive)
	TexID      int     // Texture index
	TexX       int     // Texture column in [0, T)
	TexStep    float64 // Texels advanced per screen row
	TexPos     float64 // Texture row at DrawStart
	NSSide     bool    // Shade the column (y-side hit)
	texSize    int
}

// LineHeight returns the projected wall height for a perpendicular
// distance. Closer walls are taller; a non-positive or NaN distance yields
// the maximum height.
func LineHeight(screenH int, perpDist float64) int {
	if perpDist <= 0 || math.IsNaN(perpDist) {
		return maxLineHeight
	}
	h := math.Round(float64(screenH) / perpDist)
	if h > maxLineHeight {
		return maxLineHeight
	}
	return int(h)
}

// Project converts a hit into the screen span and texture mapping for a
// column of a frame screenH rows tall, using square textures of side texSize.
func Project(hit Hit, pos core.Vec2, screenH, texSize int) Column {
	lineHeight := LineHeight(screenH, hit.PerpDist)

	start := screenH/2 - lineHeight/2
	end := screenH/2 + lineHeight/2

	col := Column{
		LineHeight: lineHeight,
		DrawStart:  core.Clamp(start, 0, screenH),
		DrawEnd:    core.Clamp(end, 0, screenH),
		TexID:      hit.TextureID(),
		TexX:       TexX(hit, pos, texSize),
		NSSide:     hit.NSSide,
		texSize:    texSize,
	}
	if lineHeight > 0 {
		col.TexStep = float64(texSize) / float64(lineHeight)
	}
	// Compensate for rows cut off by the top clamp.
	col.TexPos = float64(col.DrawStart-screenH/2+lineHeight/2) * col.TexStep
	return col
}

// TexX returns the texture column for a hit, mirrored so textures keep the
// same orientation on every visible wall face.
func TexX(hit Hit, pos core.Vec2, texSize int) int {
	texX := int(hit.WallFrac(pos) * float64(texSize))
	texX = core.Clamp(texX, 0, texSize-1)
	if hit.NSSide && hit.Ray.Y < 0 {
		texX = texSize - texX - 1
	}
	if !hit.NSSide && hit.Ray.X > 0 {
		texX = texSize - texX - 1
	}
	return texX
}

// TexY returns the texture row for a screen row inside the span.
func (c Column) TexY(row int) int {
	return wrapTexel(int(c.TexPos+float64(row-c.DrawStart)*c.TexStep), c.texSize)
}

// Shade applies the side-darkening rule: y-side hits are drawn at half
// brightness.
func Shade(c core.RGB, nsSide bool) core.RGB {
	if nsSide {
		return c.Half()
	}
	return c
}

// DrawColumn writes the textured span of col at screen column x.
// The texture row is accumulated in floating point across rows.
func DrawColumn(dst core.PixelSink, x int, col Column, tex *Texture) {
	pos := col.TexPos
	for y := col.DrawStart; y < col.DrawEnd; y++ {
		texY := wrapTexel(int(pos), col.texSize)
		pos += col.TexStep
		dst.Set(x, y, Shade(tex.At(col.TexX, texY), col.NSSide))
	}
}

// DrawFlatColumn fills the span of col with a single shaded color.
func DrawFlatColumn(dst core.PixelSink, x int, col Column, c core.RGB) {
	if col.DrawEnd <= col.DrawStart {
		return
	}
	dst.FillRect(core.NewRect(x, col.DrawStart, 1, col.DrawEnd-col.DrawStart), Shade(c, col.NSSide))
}

// wrapTexel maps v into [0, size): a mask for power-of-two sizes, a
// modulo otherwise.
func wrapTexel(v, size int) int {
	if size <= 0 {
		return 0
	}
	if size&(size-1) == 0 {
		return v & (size - 1)
	}
	v %= size
	if v < 0 {
		v += size
	}
	return v
}
