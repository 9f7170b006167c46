package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/platform/tui"
	"github.com/vovakirdan/tui-raycaster/internal/registry"
	"github.com/vovakirdan/tui-raycaster/internal/scenes"
	"github.com/vovakirdan/tui-raycaster/internal/storage"
)

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadSession creates a session from a registered scene id or, when path
// is set, from a scene file.
func loadSession(sceneID, path string) (registry.Game, error) {
	if path != "" {
		return scenes.FromFile(path)
	}
	if !registry.Exists(sceneID) {
		return nil, fmt.Errorf("unknown scene %q (run 'raycaster list' to see available scenes)", sceneID)
	}
	return registry.Create(sceneID)
}

// terminalSize returns the terminal size in cells, or 80x24.
func terminalSize() (cols, rows int) {
	cols, rows = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cols, rows = w, h
	}
	return cols, rows
}

// terminalConfig returns a runtime config whose frame fills the terminal.
func terminalConfig() core.RuntimeConfig {
	w, h := tui.FrameSize(terminalSize())
	return runtimeConfig(w, h)
}

// sceneConfig returns a runtime config at the scene's preferred size,
// overridden by non-zero width and height.
func sceneConfig(game registry.Game, width, height int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if s := game.Scene(); s.Width > 0 && s.Height > 0 {
		cfg.ScreenW, cfg.ScreenH = s.Width, s.Height
	}
	if width > 0 {
		cfg.ScreenW = width
	}
	if height > 0 {
		cfg.ScreenH = height
	}
	return runtimeConfig(cfg.ScreenW, cfg.ScreenH)
}

func runtimeConfig(w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: flagFPS,
		Workers:  flagWorkers,
	}
}

// openStore opens the database, or returns nil with a warning so that
// exploring still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
