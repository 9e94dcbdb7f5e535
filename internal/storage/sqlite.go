// Package storage provides SQLite-based persistence for viewing
// sessions. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session persistence.
type Store struct {
	db *sql.DB
}

// SessionEntry records one viewing session of a scene.
type SessionEntry struct {
	ID           int64
	SceneID      string
	Frames       uint64
	DurationSecs int
	CreatedAt    time.Time
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scene_id TEXT NOT NULL,
			frames INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_scene_id ON sessions(scene_id);
		CREATE INDEX IF NOT EXISTS idx_sessions_recent ON sessions(created_at DESC);
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

// SaveSession records a finished viewing session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(sceneID string, frames uint64, duration time.Duration) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO sessions (scene_id, frames, duration_secs) VALUES (?, ?, ?)",
		sceneID, int64(frames), int(duration.Seconds()),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent sessions across all scenes.
func (s *Store) RecentSessions(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, scene_id, frames, duration_secs, created_at
		 FROM sessions
		 ORDER BY created_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// SceneSessions retrieves sessions for one scene, longest first.
func (s *Store) SceneSessions(sceneID string, limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, scene_id, frames, duration_secs, created_at
		 FROM sessions
		 WHERE scene_id = ?
		 ORDER BY frames DESC
		 LIMIT ?`,
		sceneID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

func scanSessions(rows *sql.Rows) ([]SessionEntry, error) {
	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var frames int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SceneID, &frames, &e.DurationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Frames = uint64(frames)
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseCreatedAt handles both time.Time and string datetimes, depending
// on how the driver returns the column.
func parseCreatedAt(v any) time.Time {
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

// LongestSession returns the highest frame count recorded for a scene.
// Returns 0 if no sessions exist.
func (s *Store) LongestSession(sceneID string) (uint64, error) {
	var frames sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(frames) FROM sessions WHERE scene_id = ?",
		sceneID,
	).Scan(&frames)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query longest session: %w", err)
	}

	if !frames.Valid {
		return 0, nil
	}

	return uint64(frames.Int64), nil
}

// ClearSessions deletes all sessions for the given scene.
func (s *Store) ClearSessions(sceneID string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE scene_id = ?", sceneID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// SceneStats contains aggregated statistics for one scene.
type SceneStats struct {
	SceneID       string
	SessionsCount int
	TotalFrames   int64
	AvgFrames     float64
	TotalSecs     int64
	LastViewed    time.Time
}

// GetSceneStats retrieves aggregated statistics for a specific scene.
func (s *Store) GetSceneStats(sceneID string) (*SceneStats, error) {
	stats := &SceneStats{SceneID: sceneID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(frames), 0), COALESCE(AVG(frames), 0), COALESCE(SUM(duration_secs), 0)
		 FROM sessions WHERE scene_id = ?`,
		sceneID,
	).Scan(&stats.SessionsCount, &stats.TotalFrames, &stats.AvgFrames, &stats.TotalSecs)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get scene stats: %w", err)
	}

	var lastViewed any
	err = s.db.QueryRow(
		`SELECT created_at FROM sessions WHERE scene_id = ? ORDER BY created_at DESC LIMIT 1`,
		sceneID,
	).Scan(&lastViewed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last viewed: %w", err)
	}
	if err == nil {
		stats.LastViewed = parseCreatedAt(lastViewed)
	}

	return stats, nil
}

// GetAllSceneStats retrieves statistics for every scene that has
// recorded sessions.
func (s *Store) GetAllSceneStats() (map[string]*SceneStats, error) {
	rows, err := s.db.Query(
		`SELECT scene_id, COUNT(*), SUM(frames), AVG(frames), SUM(duration_secs), MAX(created_at)
		 FROM sessions
		 GROUP BY scene_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all scene stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*SceneStats)
	for rows.Next() {
		var st SceneStats
		var lastViewed any
		if err := rows.Scan(&st.SceneID, &st.SessionsCount, &st.TotalFrames, &st.AvgFrames, &st.TotalSecs, &lastViewed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastViewed = parseCreatedAt(lastViewed)
		stats[st.SceneID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
