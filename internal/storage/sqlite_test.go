package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-blocks/internal/ranking"
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

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreRecordAndRecentPlays(t *testing.T) {
	store := openTestStore(t)

	plays := []Play{
		{GameID: "blocks", Player: "ana", Score: 300, Level: 1, Combos: 1, Elapsed: 95 * time.Second},
		{GameID: "blocks", Score: 1200, Level: 3, Combos: 4, Elapsed: 4 * time.Minute},
		{GameID: "blocks_weighted", Score: 500, Level: 2},
	}
	for _, p := range plays {
		if _, err := store.RecordPlay(p); err != nil {
			t.Fatalf("RecordPlay() failed: %v", err)
		}
	}

	recent, err := store.RecentPlays("blocks", 10)
	if err != nil {
		t.Fatalf("RecentPlays() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 plays, got %d", len(recent))
	}

	// Newest first
	if recent[0].Score != 1200 || recent[1].Player != "ana" {
		t.Errorf("unexpected order: %+v", recent)
	}
	if recent[1].Elapsed != 95*time.Second {
		t.Errorf("Elapsed = %v, expected 1m35s", recent[1].Elapsed)
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be filled in by the database")
	}
}

func TestStoreRecentPlaysLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.RecordPlay(Play{GameID: "blocks", Score: i * 10}); err != nil {
			t.Fatalf("RecordPlay() failed: %v", err)
		}
	}

	recent, err := store.RecentPlays("blocks", 5)
	if err != nil {
		t.Fatalf("RecentPlays() failed: %v", err)
	}
	if len(recent) != 5 {
		t.Errorf("expected 5 plays, got %d", len(recent))
	}
}

func TestStoreHighScoreAndStats(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("blocks")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("empty history should have high score 0, got %d", high)
	}

	for _, s := range []int{100, 500, 300} {
		if _, err := store.RecordPlay(Play{GameID: "blocks", Score: s}); err != nil {
			t.Fatalf("RecordPlay() failed: %v", err)
		}
	}

	high, err = store.HighScore("blocks")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 500 {
		t.Errorf("HighScore() = %d, expected 500", high)
	}

	stats, err := store.Stats("blocks")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 500 || stats.AvgScore != 300 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.Stats("blocks_weighted")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for an unplayed mode: %+v", empty)
	}
}

func TestStoreRankingRoundTrip(t *testing.T) {
	store := openTestStore(t)

	list, err := store.LoadRanking()
	if err != nil {
		t.Fatalf("LoadRanking() failed: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("new database should have an empty ranking, got %d", len(list))
	}

	want := []ranking.Record{
		{Name: "bo", Score: 2100, Level: 5, ElapsedTime: "06:40", Combos: 7, Date: "04/03/2025"},
		{Name: "ana", Score: 900, Level: 2, ElapsedTime: "00:55", Combos: 0, Date: "05/03/2025"},
	}
	if err := store.SaveRanking(want); err != nil {
		t.Fatalf("SaveRanking() failed: %v", err)
	}

	got, err := store.LoadRanking()
	if err != nil {
		t.Fatalf("LoadRanking() failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, expected %+v", i, got[i], want[i])
		}
	}

	// Saving again replaces the table
	if err := store.SaveRanking(want[:1]); err != nil {
		t.Fatalf("SaveRanking() failed: %v", err)
	}
	got, _ = store.LoadRanking()
	if len(got) != 1 || got[0].Name != "bo" {
		t.Errorf("ranking not replaced: %+v", got)
	}
}

func TestStoreBacksRankingBoard(t *testing.T) {
	store := openTestStore(t)
	board := ranking.NewBoard(store, nil)

	if _, _, err := board.Submit("ana", ranking.Result{Score: 700, Level: 2}); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if _, _, err := board.Submit("bo", ranking.Result{Score: 1100, Level: 3}); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}

	top := board.Top()
	if len(top) != 2 || top[0].Name != "bo" || top[0].Medal != ranking.MedalBronze {
		t.Errorf("unexpected ranking: %+v", top)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/data/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, "data", "scores.db")); err != nil {
		t.Errorf("database should be created under home: %v", err)
	}
}

func TestIsJSONPath(t *testing.T) {
	cases := map[string]bool{
		"ranking.json":     true,
		"~/x/RANKING.JSON": true,
		"scores.db":        false,
		"json":             false,
	}
	for path, want := range cases {
		if got := IsJSONPath(path); got != want {
			t.Errorf("IsJSONPath(%q) = %v, expected %v", path, got, want)
		}
	}
}
