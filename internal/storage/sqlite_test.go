package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveBookmark(Bookmark{SceneID: "classic", Dir: core.V(-1, 0)}); err != nil {
		t.Fatalf("SaveBookmark() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	b, err := store.LatestBookmark("classic")
	if err != nil || b == nil {
		t.Fatalf("LatestBookmark() = %v, %v", b, err)
	}
}

func TestBookmarks(t *testing.T) {
	store := openTestStore(t)

	// No bookmarks yet
	b, err := store.LatestBookmark("classic")
	if err != nil {
		t.Fatalf("LatestBookmark() failed: %v", err)
	}
	if b != nil {
		t.Fatalf("Expected no bookmark, got %+v", b)
	}

	first := Bookmark{SceneID: "classic", Name: "start", Pos: core.V(4.5, 5), Dir: core.V(-1, 0), Plane: core.V(0, 0.66)}
	second := Bookmark{SceneID: "classic", Name: "hall", Pos: core.V(11.5, 13.25), Dir: core.V(0, 1), Plane: core.V(-0.66, 0)}
	other := Bookmark{SceneID: "maze", Pos: core.V(1.5, 1.5), Dir: core.V(1, 0), Plane: core.V(0, -0.66)}

	for _, bm := range []Bookmark{first, second, other} {
		if _, err := store.SaveBookmark(bm); err != nil {
			t.Fatalf("SaveBookmark() failed: %v", err)
		}
	}

	b, err = store.LatestBookmark("classic")
	if err != nil {
		t.Fatalf("LatestBookmark() failed: %v", err)
	}
	if b == nil || b.Name != "hall" {
		t.Fatalf("Expected latest bookmark 'hall', got %+v", b)
	}
	if b.Pos != second.Pos || b.Dir != second.Dir || b.Plane != second.Plane {
		t.Errorf("Camera not restored exactly: %+v", b)
	}

	list, err := store.Bookmarks("classic", 10)
	if err != nil {
		t.Fatalf("Bookmarks() failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("Expected 2 bookmarks, got %d", len(list))
	}
	if list[0].Name != "hall" || list[1].Name != "start" {
		t.Errorf("Bookmarks not newest first: %q, %q", list[0].Name, list[1].Name)
	}

	if err := store.ClearBookmarks("classic"); err != nil {
		t.Fatalf("ClearBookmarks() failed: %v", err)
	}
	list, _ = store.Bookmarks("classic", 10)
	if len(list) != 0 {
		t.Errorf("Expected 0 classic bookmarks after clear, got %d", len(list))
	}
	list, _ = store.Bookmarks("maze", 10)
	if len(list) != 1 {
		t.Errorf("Maze bookmarks should not be affected by clearing classic")
	}
}

func TestBenchRuns(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestBenchRun("classic")
	if err != nil {
		t.Fatalf("BestBenchRun() failed: %v", err)
	}
	if best != nil {
		t.Fatalf("Expected no run, got %+v", best)
	}

	for _, r := range []BenchRun{
		{SceneID: "classic", Width: 640, Height: 480, Workers: 1, Frames: 100, AvgFrame: 8 * time.Millisecond},
		{SceneID: "classic", Width: 640, Height: 480, Workers: 4, Frames: 100, AvgFrame: 2 * time.Millisecond},
		{SceneID: "classic", Width: 640, Height: 480, Workers: 2, Frames: 100, AvgFrame: 4 * time.Millisecond},
		{SceneID: "maze", Width: 320, Height: 240, Workers: 1, Frames: 50, AvgFrame: time.Millisecond},
	} {
		if _, err := store.SaveBenchRun(r); err != nil {
			t.Fatalf("SaveBenchRun() failed: %v", err)
		}
	}

	runs, err := store.BenchRuns("classic", 2)
	if err != nil {
		t.Fatalf("BenchRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs with limit, got %d", len(runs))
	}
	if runs[0].Workers != 4 || runs[1].Workers != 2 {
		t.Errorf("Runs not fastest first: %+v", runs)
	}
	if runs[0].AvgFrame != 2*time.Millisecond || runs[0].Frames != 100 || runs[0].Width != 640 {
		t.Errorf("Run fields not restored: %+v", runs[0])
	}
	if fps := runs[0].FPS(); fps != 500 {
		t.Errorf("FPS() = %f, expected 500", fps)
	}

	best, err = store.BestBenchRun("maze")
	if err != nil {
		t.Fatalf("BestBenchRun() failed: %v", err)
	}
	if best == nil || best.AvgFrame != time.Millisecond {
		t.Errorf("Unexpected best maze run: %+v", best)
	}
}

func TestAllBenchStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveBenchRun(BenchRun{SceneID: "classic", Frames: 10, AvgFrame: 2 * time.Millisecond})
	store.SaveBenchRun(BenchRun{SceneID: "classic", Frames: 10, AvgFrame: 4 * time.Millisecond})
	store.SaveBenchRun(BenchRun{SceneID: "maze", Frames: 10, AvgFrame: 3 * time.Millisecond})

	stats, err := store.AllBenchStats()
	if err != nil {
		t.Fatalf("AllBenchStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 scenes, got %d", len(stats))
	}

	classic := stats["classic"]
	if classic.Runs != 2 || classic.Best != 2*time.Millisecond || classic.Average != 3*time.Millisecond {
		t.Errorf("Unexpected classic stats: %+v", classic)
	}
	if classic.LastRun.IsZero() {
		t.Error("LastRun not parsed")
	}
}

func TestBenchRunFPSZero(t *testing.T) {
	if fps := (BenchRun{}).FPS(); fps != 0 {
		t.Errorf("FPS() = %f, expected 0", fps)
	}
}
