package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/going-mental/internal/game"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Parent directories are created on demand
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{Player: "local", Frontend: "terminal", LevelCount: 8, LastLevel: "Theater", ExitReason: "quit"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("Expected 1 run after reopen, got %d", len(runs))
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	want := Run{
		Player:     "alice",
		Frontend:   "ssh",
		Seed:       42,
		LevelsDone: 8,
		LevelCount: 8,
		LastLevel:  "Airport",
		Ticks:      900,
		Finished:   true,
		ExitReason: "dismissed",
	}
	id, err := store.SaveRun(want)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}

	got := runs[0]
	want.ID = id
	want.CreatedAt = got.CreatedAt
	if got != want {
		t.Errorf("RecentRuns()[0] = %+v, expected %+v", got, want)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreRecentRunsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		store.SaveRun(Run{Player: "local", Frontend: "terminal", LevelsDone: i, LevelCount: 8, LastLevel: "x", ExitReason: "quit"})
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Same-second inserts fall back to ID order, newest first
	if runs[0].LevelsDone != 5 || runs[1].LevelsDone != 4 || runs[2].LevelsDone != 3 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}
}

func TestStoreBestRun(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestRun()
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected no best run on empty store, got %+v", best)
	}

	runs := []Run{
		{Player: "a", LevelsDone: 3, LevelCount: 8, Ticks: 100, ExitReason: "quit"},
		{Player: "b", LevelsDone: 8, LevelCount: 8, Ticks: 900, Finished: true, ExitReason: "dismissed"},
		{Player: "c", LevelsDone: 8, LevelCount: 8, Ticks: 600, Finished: true, ExitReason: "quit_at_end"},
		{Player: "d", LevelsDone: 7, LevelCount: 8, Ticks: 50, ExitReason: "quit"},
	}
	for _, r := range runs {
		r.Frontend = "terminal"
		r.LastLevel = "x"
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	best, err = store.BestRun()
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil || best.Player != "c" {
		t.Errorf("BestRun() = %+v, expected the fastest finished run", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.BestTicks != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun(Run{Player: "a", Frontend: "window", LevelsDone: 2, LevelCount: 8, LastLevel: "x", Ticks: 300, ExitReason: "quit"})
	store.SaveRun(Run{Player: "a", Frontend: "window", LevelsDone: 8, LevelCount: 8, LastLevel: "x", Ticks: 700, Finished: true, ExitReason: "dismissed"})

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Runs = %d, expected 2", stats.Runs)
	}
	if stats.Finished != 1 {
		t.Errorf("Finished = %d, expected 1", stats.Finished)
	}
	if stats.AvgLevels != 5 {
		t.Errorf("AvgLevels = %v, expected 5", stats.AvgLevels)
	}
	if stats.BestTicks != 700 {
		t.Errorf("BestTicks = %d, expected 700", stats.BestTicks)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Player: "a", Frontend: "terminal", LevelCount: 8, LastLevel: "x", ExitReason: "quit"})
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestNewRunFromSummary(t *testing.T) {
	sum := game.RunSummary{
		LevelsDone: 8,
		LevelCount: 8,
		LastLevel:  "Airport",
		Ticks:      1234,
		Finished:   true,
		Exit:       game.ExitDismissed,
	}

	r := NewRun(sum, "bob", FrontendSSH, 7)

	if r.Player != "bob" || r.Frontend != "ssh" || r.Seed != 7 {
		t.Errorf("metadata = %q %q %d", r.Player, r.Frontend, r.Seed)
	}
	if r.LevelsDone != 8 || r.LastLevel != "Airport" || r.Ticks != 1234 || !r.Finished {
		t.Errorf("NewRun() = %+v", r)
	}
	if r.ExitReason != "dismissed" {
		t.Errorf("ExitReason = %q, expected dismissed", r.ExitReason)
	}
}
