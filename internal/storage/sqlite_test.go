package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-dash/internal/progress"
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreLoadUnknownProfile(t *testing.T) {
	store := openTestStore(t)

	rec, err := store.Load("nobody")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if rec.Coins != 0 || len(rec.BestScores) != 0 || len(rec.Skins) != 0 {
		t.Errorf("expected empty record, got %+v", rec)
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	store := openTestStore(t)

	rec := progress.New()
	rec.AddCoins(7)
	rec.AppendScore(120)
	rec.AppendScore(45)
	rec.AddSkin("Бобер")

	if err := store.Save("alice", rec); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if len(rec.UnsavedScores()) != 0 {
		t.Error("record not marked saved")
	}

	// A second save after one more run only appends the new score.
	rec.AppendScore(300)
	rec.AddSkin("Шлепа")
	if err := rec.SpendCoins(5); err != nil {
		t.Fatal(err)
	}
	if err := store.Save("alice", rec); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := store.Load("alice")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got.Coins != 2 {
		t.Errorf("coins = %d, want 2", got.Coins)
	}
	if !reflect.DeepEqual(got.BestScores, []int{120, 45, 300}) {
		t.Errorf("scores = %v, want [120 45 300]", got.BestScores)
	}
	if !reflect.DeepEqual(got.Skins, []string{"Бобер", "Шлепа"}) {
		t.Errorf("skins = %v", got.Skins)
	}
	if last, _ := got.LastSkin(); last != "Шлепа" {
		t.Errorf("last skin = %q", last)
	}
}

func TestStoreProfilesAreIsolated(t *testing.T) {
	store := openTestStore(t)

	a := progress.New()
	a.AppendScore(10)
	b := progress.New()
	b.AppendScore(99)
	b.AddCoins(3)

	if err := store.Profile("a").Persist(a); err != nil {
		t.Fatal(err)
	}
	if err := store.Profile("b").Persist(b); err != nil {
		t.Fatal(err)
	}

	got, err := store.Profile("a").Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.Coins != 0 || !reflect.DeepEqual(got.BestScores, []int{10}) {
		t.Errorf("profile a leaked: %+v", got)
	}

	names, err := store.Profiles()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(names, []string{"a", "b"}) {
		t.Errorf("profiles = %v", names)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	rec := progress.New()
	for _, s := range []int{100, 50, 200, 10, 400, 75, 300} {
		rec.AppendScore(s)
	}
	if err := store.Save("", rec); err != nil {
		t.Fatal(err)
	}

	scores, err := store.TopScores(DefaultProfile, 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	want := []int{400, 300, 200, 100, 75}
	if len(scores) != len(want) {
		t.Fatalf("Expected %d scores, got %d", len(want), len(scores))
	}
	for i, e := range scores {
		if e.Score != want[i] {
			t.Errorf("scores[%d] = %d, want %d", i, e.Score, want[i])
		}
		if e.Profile != DefaultProfile {
			t.Errorf("scores[%d] profile = %q", i, e.Profile)
		}
	}

	high, err := store.HighScore("")
	if err != nil {
		t.Fatal(err)
	}
	if high != 400 {
		t.Errorf("high score = %d, want 400", high)
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("ghost")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty profile, got %d", high)
	}
}

func TestStoreReset(t *testing.T) {
	store := openTestStore(t)

	rec := progress.New()
	rec.AddCoins(4)
	rec.AppendScore(10)
	rec.AddSkin("Огузок")
	if err := store.Save("p", rec); err != nil {
		t.Fatal(err)
	}
	if err := store.Reset("p"); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	got, err := store.Load("p")
	if err != nil {
		t.Fatal(err)
	}
	if got.Coins != 0 || len(got.BestScores) != 0 || len(got.Skins) != 0 {
		t.Errorf("reset left data: %+v", got)
	}
}

func TestStoreReplace(t *testing.T) {
	store := openTestStore(t)

	old := progress.New()
	old.AppendScore(1)
	old.AddCoins(9)
	if err := store.Save("p", old); err != nil {
		t.Fatal(err)
	}

	imported := progress.New()
	imported.AddCoins(2)
	imported.AppendScore(500)
	imported.AppendScore(600)
	imported.MarkSaved() // must not stop the scores from being written
	if err := store.Replace("p", imported); err != nil {
		t.Fatalf("Replace() failed: %v", err)
	}

	got, err := store.Load("p")
	if err != nil {
		t.Fatal(err)
	}
	if got.Coins != 2 || !reflect.DeepEqual(got.BestScores, []int{500, 600}) {
		t.Errorf("replace result = %+v", got)
	}
}

func TestStoreReplaceFailureKeepsProgress(t *testing.T) {
	store := openTestStore(t)

	old := progress.New()
	old.AddCoins(9)
	old.AppendScore(77)
	old.AddSkin("Бобер")
	if err := store.Save("p", old); err != nil {
		t.Fatal(err)
	}

	// The wallet CHECK rejects a negative balance after the wipe has run.
	bad := progress.New()
	bad.Coins = -1
	bad.AppendScore(500)
	if err := store.Replace("p", bad); err == nil {
		t.Fatal("Replace() should fail on a negative balance")
	}

	got, err := store.Load("p")
	if err != nil {
		t.Fatal(err)
	}
	if got.Coins != 9 || !reflect.DeepEqual(got.BestScores, []int{77}) || !reflect.DeepEqual(got.Skins, []string{"Бобер"}) {
		t.Errorf("failed replace lost progress: %+v", got)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	rec := progress.New()
	rec.AddCoins(6)
	rec.AppendScore(100)
	rec.AppendScore(300)
	rec.AddSkin("Бобер")
	if err := store.Save("s", rec); err != nil {
		t.Fatal(err)
	}

	stats, err := store.Stats("s")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.Coins != 6 || stats.Skins != 1 {
		t.Errorf("wallet stats = %+v", stats)
	}
}
