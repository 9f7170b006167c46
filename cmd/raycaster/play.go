package main

import (
	"math"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/platform/tui"
	"github.com/vovakirdan/tui-raycaster/internal/platform/window"
	"github.com/vovakirdan/tui-raycaster/internal/raycast"
	"github.com/vovakirdan/tui-raycaster/internal/registry"
	"github.com/vovakirdan/tui-raycaster/internal/storage"
)

var (
	flagConfig string
	flagWindow bool
	flagResume bool
)

var playCmd = &cobra.Command{
	Use:   "play [scene]",
	Short: "Explore a scene",
	Long: `Start exploring the specified scene.

Controls:
  W/Up       - Move forward
  S/Down     - Move backward
  A/Left     - Turn left
  D/Right    - Turn right
  Tab        - Toggle minimap
  M          - Bookmark the camera
  P/Space    - Pause
  Ctrl+S     - Screenshot (terminal; F12 in a window)
  Q/Esc      - Quit

Examples:
  raycaster play classic
  raycaster play maze --window
  raycaster play classic --resume
  raycaster play --config ./my-scene.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a scene YAML file")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Open a desktop window instead of using the terminal")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Start at the latest bookmark for the scene")
}

func runPlay(cmd *cobra.Command, args []string) {
	if len(args) == 0 && flagConfig == "" {
		fail("a scene id or --config is required")
	}
	sceneID := ""
	if len(args) == 1 {
		sceneID = args[0]
	}

	game, err := loadSession(sceneID, flagConfig)
	if err != nil {
		fail("%v", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	var cfg core.RuntimeConfig
	if flagWindow {
		cfg = sceneConfig(game, 0, 0)
	} else {
		cfg = terminalConfig()
	}
	game.Reset(cfg)

	if flagResume {
		resume(game, store)
	}

	logger.Info("starting session",
		"scene", game.ID(),
		"width", cfg.ScreenW,
		"height", cfg.ScreenH,
		"fov", math.Round(game.Camera().FOV()*180/math.Pi),
		"window", flagWindow,
	)

	var runErr error
	if flagWindow {
		runErr = window.Run(game, store, logger, cfg)
	} else {
		runErr = tui.Run(game, store, logger, cfg)
	}
	if runErr != nil {
		if store != nil {
			store.Close()
		}
		fail("running scene: %v", runErr)
	}
}

// resume moves the camera to the latest bookmark when it is still valid
// for the scene's grid.
func resume(game registry.Game, store *storage.Store) {
	if store == nil {
		logger.Warn("cannot resume without a database")
		return
	}

	b, err := store.LatestBookmark(game.ID())
	if err != nil {
		logger.Warn("could not read bookmark", "scene", game.ID(), "err", err)
		return
	}
	if b == nil {
		logger.Info("no bookmark to resume", "scene", game.ID())
		return
	}

	cam := raycast.Camera{Pos: b.Pos, Dir: b.Dir, Plane: b.Plane}
	if err := game.SetCamera(cam); err != nil {
		logger.Warn("bookmark no longer fits the scene", "scene", game.ID(), "id", b.ID, "err", err)
		return
	}
	logger.Info("resumed bookmark", "scene", game.ID(), "id", b.ID)
}
