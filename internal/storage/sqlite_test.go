package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "halfpix.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndQuerySessions(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveSession("bounce", 600, 10*time.Second)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("expected positive ID, got %d", id)
	}

	if _, err := store.SaveSession("bounce", 1200, 20*time.Second); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := store.SaveSession("orbit", 300, 5*time.Second); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	entries, err := store.SceneSessions("bounce", 10)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 bounce sessions, got %d", len(entries))
	}
	if entries[0].Frames != 1200 {
		t.Errorf("expected longest session first, got %d frames", entries[0].Frames)
	}
	if entries[0].SceneID != "bounce" {
		t.Errorf("wrong scene ID: %s", entries[0].SceneID)
	}
}

func TestRecentSessionsSpansScenes(t *testing.T) {
	store := openTestStore(t)

	scenes := []string{"bounce", "orbit", "gradient"}
	for _, id := range scenes {
		if _, err := store.SaveSession(id, 100, time.Second); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	entries, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(entries) != len(scenes) {
		t.Errorf("expected %d sessions, got %d", len(scenes), len(entries))
	}
}

func TestRecentSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveSession("bounce", uint64(i), time.Second); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	entries, err := store.RecentSessions(3)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("expected limit of 3, got %d", len(entries))
	}
}

func TestLongestSession(t *testing.T) {
	store := openTestStore(t)

	frames, err := store.LongestSession("bounce")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if frames != 0 {
		t.Errorf("expected 0 for empty store, got %d", frames)
	}

	store.SaveSession("bounce", 500, time.Second)
	store.SaveSession("bounce", 900, time.Second)
	store.SaveSession("orbit", 9999, time.Second)

	frames, err = store.LongestSession("bounce")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if frames != 900 {
		t.Errorf("expected 900, got %d", frames)
	}
}

func TestClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession("bounce", 100, time.Second)
	store.SaveSession("orbit", 100, time.Second)

	if err := store.ClearSessions("bounce"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	entries, err := store.SceneSessions("bounce", 10)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected bounce sessions cleared, got %d", len(entries))
	}

	entries, err = store.SceneSessions("orbit", 10)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected orbit sessions untouched, got %d", len(entries))
	}
}

func TestSceneStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession("bounce", 100, 10*time.Second)
	store.SaveSession("bounce", 300, 30*time.Second)

	stats, err := store.GetSceneStats("bounce")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.SessionsCount != 2 {
		t.Errorf("expected 2 sessions, got %d", stats.SessionsCount)
	}
	if stats.TotalFrames != 400 {
		t.Errorf("expected 400 total frames, got %d", stats.TotalFrames)
	}
	if stats.AvgFrames != 200 {
		t.Errorf("expected average of 200, got %f", stats.AvgFrames)
	}
	if stats.TotalSecs != 40 {
		t.Errorf("expected 40 total seconds, got %d", stats.TotalSecs)
	}
}

func TestSceneStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetSceneStats("nonexistent")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.SessionsCount != 0 || stats.TotalFrames != 0 {
		t.Errorf("expected zeroed stats, got %+v", stats)
	}
}

func TestAllSceneStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession("bounce", 100, 10*time.Second)
	store.SaveSession("orbit", 200, 20*time.Second)

	all, err := store.GetAllSceneStats()
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected stats for 2 scenes, got %d", len(all))
	}
	if all["orbit"].TotalFrames != 200 {
		t.Errorf("expected 200 frames for orbit, got %d", all["orbit"].TotalFrames)
	}
}
