package textures

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/raycast"
)

func TestClassicSet(t *testing.T) {
	for _, size := range []int{64, 16, 48} {
		set, err := Classic(size)
		if err != nil {
			t.Fatalf("Classic(%d) failed: %v", size, err)
		}
		if set.Len() != 8 {
			t.Errorf("Classic(%d) has %d textures, expected 8", size, set.Len())
		}
		if set.Size() != size {
			t.Errorf("Classic(%d) size = %d", size, set.Size())
		}
	}
}

func TestGeneratorsAreDistinct(t *testing.T) {
	seen := make(map[core.RGB]string)
	for _, name := range Names() {
		tex, err := Generate(name, raycast.DefaultTextureSize)
		if err != nil {
			t.Fatalf("Generate(%q) failed: %v", name, err)
		}
		// Averages are only filled in by a set.
		if _, err := raycast.NewTextureSet(tex); err != nil {
			t.Fatalf("NewTextureSet(%q) failed: %v", name, err)
		}
		avg := tex.Average()
		if other, ok := seen[avg]; ok {
			t.Errorf("%q and %q share average color %v", name, other, avg)
		}
		seen[avg] = name
	}
}

func TestGeneratorsAreDeterministic(t *testing.T) {
	for _, name := range Names() {
		a, _ := Generate(name, 32)
		b, _ := Generate(name, 32)
		for y := 0; y < 32; y++ {
			for x := 0; x < 32; x++ {
				if a.At(x, y) != b.At(x, y) {
					t.Fatalf("%s: texel (%d, %d) differs between runs", name, x, y)
				}
			}
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	if _, err := Generate("marble", 64); err == nil {
		t.Error("expected error for unknown texture")
	}
	if _, err := Generate("wood", 0); err == nil {
		t.Error("expected error for zero size")
	}
	if _, err := Procedural([]string{"wood", "nope"}, 64); err == nil {
		t.Error("expected error for unknown name in list")
	}
}

// quadrants returns a 2x2 image with a distinct color per pixel.
func quadrants() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{G: 255, A: 255})
	img.Set(0, 1, color.RGBA{B: 255, A: 255})
	img.Set(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}

func checkQuadrants(t *testing.T, tex *raycast.Texture) {
	t.Helper()
	tests := []struct {
		x, y     int
		expected core.RGB
	}{
		{0, 0, core.Red},
		{1, 1, core.Red},
		{2, 0, core.Green},
		{3, 1, core.Green},
		{0, 3, core.Blue},
		{3, 3, core.White},
	}
	for _, tc := range tests {
		if got := tex.At(tc.x, tc.y); got != tc.expected {
			t.Errorf("texel (%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestDecodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, quadrants()); err != nil {
		t.Fatalf("png.Encode() failed: %v", err)
	}

	tex, err := Decode(&buf, 4)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	checkQuadrants(t, tex)
}

func TestDecodeBMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, quadrants()); err != nil {
		t.Fatalf("bmp.Encode() failed: %v", err)
	}

	tex, err := Decode(&buf, 4)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	checkQuadrants(t, tex)
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode(strings.NewReader("not an image"), 4); err == nil {
		t.Error("expected error decoding garbage")
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()

	var paths []string
	for _, name := range []string{"a.png", "b.png"} {
		var buf bytes.Buffer
		if err := png.Encode(&buf, quadrants()); err != nil {
			t.Fatalf("png.Encode() failed: %v", err)
		}
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, buf.Bytes(), 0o644); err != nil {
			t.Fatalf("WriteFile() failed: %v", err)
		}
		paths = append(paths, p)
	}

	set, err := LoadFiles(paths, 8)
	if err != nil {
		t.Fatalf("LoadFiles() failed: %v", err)
	}
	if set.Len() != 2 || set.Size() != 8 {
		t.Errorf("set = %v, expected 2 textures of 8x8", set)
	}

	if _, err := LoadFiles([]string{filepath.Join(dir, "missing.png")}, 8); err == nil {
		t.Error("expected error for missing file")
	}
}
