package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/registry"
	"github.com/vovakirdan/tui-raycaster/internal/storage"
)

var (
	flagFrames      int
	flagBenchWidth  int
	flagBenchHeight int
	flagSweep       bool
	flagNoSave      bool
)

var benchCmd = &cobra.Command{
	Use:   "bench <scene>",
	Short: "Measure frame times",
	Long: `Render a fixed number of frames while the camera turns in place and
report the average frame time. Results are stored and can be viewed with
'raycaster runs'.

With --sweep, the benchmark repeats for 1, 2, 4, ... workers up to the
number of CPUs.

Examples:
  raycaster bench classic
  raycaster bench classic --frames 500 --width 1920 --height 1080
  raycaster bench maze --sweep`,
	Args: cobra.ExactArgs(1),
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagFrames, "frames", 240, "Frames to render per run")
	benchCmd.Flags().IntVar(&flagBenchWidth, "width", 0, "Frame width (default: scene or 640)")
	benchCmd.Flags().IntVar(&flagBenchHeight, "height", 0, "Frame height (default: scene or 480)")
	benchCmd.Flags().BoolVar(&flagSweep, "sweep", false, "Repeat for increasing worker counts")
	benchCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the results")
}

func runBench(cmd *cobra.Command, args []string) {
	game, err := loadSession(args[0], "")
	if err != nil {
		fail("%v", err)
	}
	if flagFrames <= 0 {
		fail("--frames must be positive")
	}

	var store *storage.Store
	if !flagNoSave {
		store = openStore()
		if store != nil {
			defer store.Close()
		}
	}

	base := sceneConfig(game, flagBenchWidth, flagBenchHeight)
	counts := []int{flagWorkers}
	if flagSweep {
		counts = workerSweep(runtime.NumCPU())
	}

	fmt.Printf("Bench - %s (%dx%d, %d frames)\n\n", game.Title(), base.ScreenW, base.ScreenH, flagFrames)
	fmt.Printf("  %-7s  %-9s  %s\n", "Workers", "Avg ms", "FPS")
	fmt.Printf("  %-7s  %-9s  %s\n", "-------", "------", "---")

	for _, n := range counts {
		cfg := base
		cfg.Workers = n

		avg, err := benchmark(game, cfg, flagFrames)
		if err != nil {
			if store != nil {
				store.Close()
			}
			fail("%v", err)
		}

		run := storage.BenchRun{
			SceneID:  game.ID(),
			Width:    cfg.ScreenW,
			Height:   cfg.ScreenH,
			Workers:  effectiveWorkers(n),
			Frames:   flagFrames,
			AvgFrame: avg,
		}
		fmt.Printf("  %-7d  %-9.3f  %.1f\n", run.Workers, float64(avg.Microseconds())/1000, run.FPS())

		if store != nil {
			if _, err := store.SaveBenchRun(run); err != nil {
				logger.Warn("bench run not saved", "scene", game.ID(), "err", err)
			}
		}
		logger.Debug("bench run", "scene", game.ID(), "workers", run.Workers, "avg", avg)
	}
}

// benchmark renders frames while turning right and returns the mean frame
// time, including the step.
func benchmark(game registry.Game, cfg core.RuntimeConfig, frames int) (time.Duration, error) {
	game.Reset(cfg)
	frame := core.NewFrame(cfg.ScreenW, cfg.ScreenH)

	turn := core.NewInputFrame()
	turn.Set(core.ActionTurnRight)

	start := time.Now()
	for i := 0; i < frames; i++ {
		game.Step(turn)
		if err := game.Render(frame); err != nil {
			return 0, err
		}
	}
	return time.Since(start) / time.Duration(frames), nil
}

// workerSweep returns 1, 2, 4, ... up to and including cpus.
func workerSweep(cpus int) []int {
	var counts []int
	for n := 1; n < cpus; n *= 2 {
		counts = append(counts, n)
	}
	return append(counts, max(cpus, 1))
}

func effectiveWorkers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}
