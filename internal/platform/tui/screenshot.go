package tui

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// DefaultScreenshotDir returns ~/.raycaster/screenshots, or ./screenshots
// when the home directory is unknown.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".raycaster", "screenshots")
}

// SaveScreenshot writes f to dir as <sceneID>_<timestamp>.png and returns
// the path.
func SaveScreenshot(dir, sceneID string, f *core.Frame) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create directory %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", sceneID, timestamp))
	if err := WritePNG(path, f); err != nil {
		return "", err
	}
	return path, nil
}

// WritePNG encodes f as a PNG file at path.
func WritePNG(path string, f *core.Frame) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}

	if err := png.Encode(out, f.Image()); err != nil {
		out.Close()
		return fmt.Errorf("cannot encode %s: %w", path, err)
	}
	return out.Close()
}
