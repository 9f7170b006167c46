// Package storage provides SQLite-based persistence for camera bookmarks
// and benchmark runs. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Bookmark is a saved camera in a scene.
type Bookmark struct {
	ID        int64
	SceneID   string
	Name      string
	Pos       core.Vec2
	Dir       core.Vec2
	Plane     core.Vec2
	CreatedAt time.Time
}

// BenchRun is the result of rendering a fixed number of frames.
type BenchRun struct {
	ID        int64
	SceneID   string
	Width     int
	Height    int
	Workers   int
	Frames    int
	AvgFrame  time.Duration // Mean wall-clock time per frame
	CreatedAt time.Time
}

// FPS returns the frame rate implied by the average frame time.
func (r BenchRun) FPS() float64 {
	if r.AvgFrame <= 0 {
		return 0
	}
	return float64(time.Second) / float64(r.AvgFrame)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS bookmarks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scene_id TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			pos_x REAL NOT NULL,
			pos_y REAL NOT NULL,
			dir_x REAL NOT NULL,
			dir_y REAL NOT NULL,
			plane_x REAL NOT NULL,
			plane_y REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_bookmarks_scene_id ON bookmarks(scene_id);

		CREATE TABLE IF NOT EXISTS bench_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scene_id TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			workers INTEGER NOT NULL,
			frames INTEGER NOT NULL,
			avg_frame_ns INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_bench_runs_scene_id ON bench_runs(scene_id);
		CREATE INDEX IF NOT EXISTS idx_bench_runs_best ON bench_runs(scene_id, avg_frame_ns ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveBookmark records a camera for the given scene.
// Returns the ID of the inserted record.
func (s *Store) SaveBookmark(b Bookmark) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO bookmarks (scene_id, name, pos_x, pos_y, dir_x, dir_y, plane_x, plane_y)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.SceneID, b.Name, b.Pos.X, b.Pos.Y, b.Dir.X, b.Dir.Y, b.Plane.X, b.Plane.Y,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save bookmark: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// LatestBookmark returns the most recently saved bookmark for a scene,
// or nil if there is none.
func (s *Store) LatestBookmark(sceneID string) (*Bookmark, error) {
	row := s.db.QueryRow(
		`SELECT id, scene_id, name, pos_x, pos_y, dir_x, dir_y, plane_x, plane_y, created_at
		 FROM bookmarks
		 WHERE scene_id = ?
		 ORDER BY id DESC
		 LIMIT 1`,
		sceneID,
	)

	b, err := scanBookmark(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query bookmark: %w", err)
	}
	return &b, nil
}

// Bookmarks retrieves the newest N bookmarks for a scene, newest first.
func (s *Store) Bookmarks(sceneID string, limit int) ([]Bookmark, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, scene_id, name, pos_x, pos_y, dir_x, dir_y, plane_x, plane_y, created_at
		 FROM bookmarks
		 WHERE scene_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		sceneID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query bookmarks: %w", err)
	}
	defer rows.Close()

	var entries []Bookmark
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearBookmarks deletes all bookmarks for the given scene.
func (s *Store) ClearBookmarks(sceneID string) error {
	_, err := s.db.Exec("DELETE FROM bookmarks WHERE scene_id = ?", sceneID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear bookmarks: %w", err)
	}
	return nil
}

// SaveBenchRun records a benchmark result.
// Returns the ID of the inserted record.
func (s *Store) SaveBenchRun(r BenchRun) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO bench_runs (scene_id, width, height, workers, frames, avg_frame_ns)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.SceneID, r.Width, r.Height, r.Workers, r.Frames, r.AvgFrame.Nanoseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save bench run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BenchRuns retrieves the fastest N runs for a scene, fastest first.
func (s *Store) BenchRuns(sceneID string, limit int) ([]BenchRun, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, scene_id, width, height, workers, frames, avg_frame_ns, created_at
		 FROM bench_runs
		 WHERE scene_id = ?
		 ORDER BY avg_frame_ns ASC, id ASC
		 LIMIT ?`,
		sceneID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query bench runs: %w", err)
	}
	defer rows.Close()

	var entries []BenchRun
	for rows.Next() {
		r, err := scanBenchRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestBenchRun returns the fastest run for a scene, or nil if there is none.
func (s *Store) BestBenchRun(sceneID string) (*BenchRun, error) {
	runs, err := s.BenchRuns(sceneID, 1)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// BenchStats contains aggregated benchmark statistics for a scene.
type BenchStats struct {
	SceneID string
	Runs    int
	Best    time.Duration
	Average time.Duration
	LastRun time.Time
}

// AllBenchStats retrieves statistics for every scene that has been
// benchmarked.
func (s *Store) AllBenchStats() (map[string]*BenchStats, error) {
	rows, err := s.db.Query(
		`SELECT scene_id, COUNT(*), MIN(avg_frame_ns), AVG(avg_frame_ns), MAX(created_at)
		 FROM bench_runs
		 GROUP BY scene_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get bench stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*BenchStats)
	for rows.Next() {
		var st BenchStats
		var best int64
		var avg float64
		var lastRun any
		if err := rows.Scan(&st.SceneID, &st.Runs, &best, &avg, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.Best = time.Duration(best)
		st.Average = time.Duration(avg)
		st.LastRun = parseTime(lastRun)
		stats[st.SceneID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBookmark(sc scanner) (Bookmark, error) {
	var b Bookmark
	var createdAt any
	err := sc.Scan(&b.ID, &b.SceneID, &b.Name,
		&b.Pos.X, &b.Pos.Y, &b.Dir.X, &b.Dir.Y, &b.Plane.X, &b.Plane.Y,
		&createdAt)
	if err != nil {
		return Bookmark{}, err
	}
	b.CreatedAt = parseTime(createdAt)
	return b, nil
}

func scanBenchRun(sc scanner) (BenchRun, error) {
	var r BenchRun
	var avg int64
	var createdAt any
	err := sc.Scan(&r.ID, &r.SceneID, &r.Width, &r.Height, &r.Workers, &r.Frames, &avg, &createdAt)
	if err != nil {
		return BenchRun{}, err
	}
	r.AvgFrame = time.Duration(avg)
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
