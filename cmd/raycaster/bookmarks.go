package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycaster/internal/storage"
)

var (
	flagClearBookmarks bool
	flagBookmarkLimit  int
)

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks <scene>",
	Short: "List saved cameras for a scene",
	Long: `List the cameras saved with the M key, newest first. The newest one is
used by 'raycaster play <scene> --resume'.

Examples:
  raycaster bookmarks classic
  raycaster bookmarks classic --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runBookmarks,
}

func init() {
	bookmarksCmd.Flags().BoolVar(&flagClearBookmarks, "clear", false, "Delete all bookmarks for the scene")
	bookmarksCmd.Flags().IntVar(&flagBookmarkLimit, "limit", 20, "Maximum bookmarks to show")
}

func runBookmarks(cmd *cobra.Command, args []string) {
	sceneID := args[0]

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening database: %v", err)
	}
	defer store.Close()

	if flagClearBookmarks {
		if err := store.ClearBookmarks(sceneID); err != nil {
			store.Close()
			fail("clearing bookmarks: %v", err)
		}
		logger.Info("bookmarks cleared", "scene", sceneID)
		fmt.Printf("Cleared bookmarks for %s.\n", sceneID)
		return
	}

	list, err := store.Bookmarks(sceneID, flagBookmarkLimit)
	if err != nil {
		store.Close()
		fail("retrieving bookmarks: %v", err)
	}

	fmt.Printf("Bookmarks - %s\n", sceneID)
	fmt.Println()

	if len(list) == 0 {
		fmt.Println("No bookmarks saved yet. Press M while exploring to save one.")
		return
	}

	fmt.Printf("  %-5s  %-16s  %-16s  %s\n", "ID", "Position", "Direction", "Date")
	fmt.Printf("  %-5s  %-16s  %-16s  %s\n", "--", "--------", "---------", "----")
	for _, b := range list {
		fmt.Printf("  %-5d  %-16s  %-16s  %s\n", b.ID,
			fmt.Sprintf("%.2f, %.2f", b.Pos.X, b.Pos.Y),
			fmt.Sprintf("%.2f, %.2f", b.Dir.X, b.Dir.Y),
			b.CreatedAt.Format("2006-01-02 15:04"))
	}
}
