package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycaster/internal/platform/tui"
	"github.com/vovakirdan/tui-raycaster/internal/storage"
)

var (
	flagRunsTUI   bool
	flagRunsLimit int
)

var runsCmd = &cobra.Command{
	Use:   "runs [scene]",
	Short: "Show recorded bench runs",
	Long: `Display recorded bench runs, fastest first. Without a scene, shows a
summary per scene.

Examples:
  raycaster runs
  raycaster runs classic
  raycaster runs --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagRunsTUI, "tui", false, "Browse runs interactively")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Maximum runs to show")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening database: %v", err)
	}
	defer store.Close()

	if flagRunsTUI {
		cols, rows := terminalSize()
		if _, err := tui.RunBenchBoard(store, cols, rows); err != nil {
			store.Close()
			fail("%v", err)
		}
		return
	}

	if len(args) == 0 {
		printSummary(store)
		return
	}

	sceneID := args[0]
	runs, err := store.BenchRuns(sceneID, flagRunsLimit)
	if err != nil {
		store.Close()
		fail("retrieving runs: %v", err)
	}

	fmt.Printf("Bench runs - %s\n", sceneID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'raycaster bench %s' to record one.\n", sceneID)
		return
	}

	fmt.Printf("  %-4s  %-7s  %-10s  %-6s  %-8s  %-7s  %s\n", "Rank", "Workers", "Size", "Frames", "Avg ms", "FPS", "Date")
	fmt.Printf("  %-4s  %-7s  %-10s  %-6s  %-8s  %-7s  %s\n", "----", "-------", "----", "------", "------", "---", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-7d  %-10s  %-6d  %-8.3f  %-7.1f  %s\n",
			i+1, r.Workers, fmt.Sprintf("%dx%d", r.Width, r.Height), r.Frames,
			float64(r.AvgFrame.Microseconds())/1000, r.FPS(), r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printSummary(store *storage.Store) {
	stats, err := store.AllBenchStats()
	if err != nil {
		store.Close()
		fail("retrieving stats: %v", err)
	}

	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-12s  %-4s  %-8s  %-8s  %s\n", "Scene", "Runs", "Best ms", "Avg ms", "Last run")
	fmt.Printf("  %-12s  %-4s  %-8s  %-8s  %s\n", "-----", "----", "-------", "------", "--------")
	for _, id := range ids {
		st := stats[id]
		fmt.Printf("  %-12s  %-4d  %-8.3f  %-8.3f  %s\n", id, st.Runs,
			float64(st.Best.Microseconds())/1000, float64(st.Average.Microseconds())/1000,
			st.LastRun.Format("2006-01-02 15:04"))
	}
}
