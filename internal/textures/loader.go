package textures

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"

	_ "golang.org/x/image/bmp" // BMP decoder
	"golang.org/x/image/draw"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/raycast"
)

// FromImage resamples img to a size x size texture with nearest-neighbor
// filtering, keeping texels crisp at low resolutions.
func FromImage(img image.Image, size int) *raycast.Texture {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	tex := raycast.NewTexture(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := dst.RGBAAt(x, y)
			tex.Set(x, y, core.RGB{R: p.R, G: p.G, B: p.B})
		}
	}
	return tex
}

// Decode reads a PNG, JPEG, GIF or BMP image and resamples it.
func Decode(r io.Reader, size int) (*raycast.Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("image has no pixels")
	}
	return FromImage(img, size), nil
}

// LoadFile decodes the image at path.
func LoadFile(path string, size int) (*raycast.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %s: %w", path, err)
	}
	defer f.Close()

	tex, err := Decode(f, size)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}
	return tex, nil
}

// LoadFiles builds a texture set from image files, in order. Every image is
// resampled to size x size.
func LoadFiles(paths []string, size int) (*raycast.TextureSet, error) {
	if size <= 0 {
		return nil, fmt.Errorf("texture size %d must be positive", size)
	}
	list := make([]*raycast.Texture, 0, len(paths))
	for _, p := range paths {
		tex, err := LoadFile(p, size)
		if err != nil {
			return nil, err
		}
		list = append(list, tex)
	}
	return raycast.NewTextureSet(list...)
}
