package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycaster/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick scenes from an interactive menu",
	Long: `Start the raycaster in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to explore a scene.
Leaving a scene returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select scene
  Tab          - Bench runs
  Q            - Quit

Examples:
  raycaster menu
  raycaster menu --fps 30
  raycaster menu --db ./raycaster.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = result.Config

		if result.Quit {
			return
		}

		if result.WantsRuns {
			cols, rows := terminalSize()
			goBack, err := tui.RunBenchBoard(store, cols, rows)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := loadSession(result.SceneID, "")
		if err != nil {
			logger.Error("cannot load scene", "scene", result.SceneID, "err", err)
			continue
		}
		game.Reset(cfg)

		logger.Info("starting session", "scene", game.ID(), "width", cfg.ScreenW, "height", cfg.ScreenH)
		if err := tui.Run(game, store, logger, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scene: %v\n", err)
			return
		}
	}
}
