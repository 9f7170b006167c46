// raycaster renders grid-map scenes in first person, in the terminal or in
// a window.
//
// Usage:
//
//	raycaster list                 - List available scenes
//	raycaster play <scene>         - Explore a scene
//	raycaster menu                 - Pick scenes interactively
//	raycaster render <scene>       - Write one frame as PNG
//	raycaster bench <scene>        - Measure frame times
//	raycaster runs [scene]         - Show recorded bench runs
//	raycaster bookmarks <scene>    - List saved cameras
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--workers <n>       - Render workers (default: 0 = GOMAXPROCS)
//	--db <path>         - Set database path (default: ~/.raycaster/raycaster.db)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycaster/internal/config"
	"github.com/vovakirdan/tui-raycaster/internal/scenes"
)

var (
	// Global flags
	flagFPS      int
	flagWorkers  int
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "raycaster",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "raycaster",
	Short: "Raycaster - walk through grid maps in your terminal",
	Long: `Raycaster renders a 2D grid map as a first-person 3D view, the way
early 90s shooters did it: one ray per screen column.

Available commands:
  list       - Show all available scenes
  play       - Explore a scene directly
  menu       - Interactive scene picker
  render     - Write a single frame as PNG
  bench      - Measure frame times and record them
  runs       - View recorded bench runs
  bookmarks  - View saved cameras

Scene files (*.yaml) in ~/.raycaster/scenes and ./scenes are picked up
automatically.

Examples:
  raycaster list
  raycaster play classic
  raycaster play --window maze
  raycaster render classic --rotate 45 --out view.png
  raycaster bench classic --sweep`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)

		added, err := scenes.RegisterUser(config.SearchDirs()...)
		if err != nil {
			logger.Warn("scene discovery failed", "err", err)
		}
		if len(added) > 0 {
			logger.Debug("user scenes registered", "ids", added)
		}
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "Render workers (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.raycaster/raycaster.db", "Path to bookmarks and bench database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(bookmarksCmd)
}
