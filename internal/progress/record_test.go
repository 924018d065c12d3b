package progress

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRecordScores(t *testing.T) {
	rec := New()
	for _, s := range []int{120, 4000, 35, 980, 980, 7, 2200} {
		rec.AppendScore(s)
	}

	if got := rec.TopScores(5); !reflect.DeepEqual(got, []int{4000, 2200, 980, 980, 120}) {
		t.Errorf("TopScores(5) = %v", got)
	}
	if rec.BestScores[0] != 120 {
		t.Error("TopScores must not reorder the history")
	}
	if rec.Best() != 4000 {
		t.Errorf("Best() = %d, expected 4000", rec.Best())
	}
	if New().Best() != 0 {
		t.Error("Best() of an empty record should be 0")
	}
}

func TestRecordUnsavedScores(t *testing.T) {
	rec := New()
	rec.AppendScore(10)
	rec.MarkSaved()
	rec.AppendScore(20)
	rec.AppendScore(30)

	if got := rec.UnsavedScores(); !reflect.DeepEqual(got, []int{20, 30}) {
		t.Errorf("UnsavedScores() = %v, expected [20 30]", got)
	}

	clone := rec.Clone()
	rec.MarkSaved()
	if len(rec.UnsavedScores()) != 0 {
		t.Error("MarkSaved should clear unsaved scores")
	}
	if len(clone.UnsavedScores()) != 2 {
		t.Error("clone should keep its own saved marker")
	}
}

func TestRecordSpendCoins(t *testing.T) {
	rec := New()
	rec.AddCoins(3)
	rec.AddCoins(-7)

	if err := rec.SpendCoins(4); !errors.Is(err, ErrInsufficientCoins) {
		t.Errorf("SpendCoins(4) error = %v", err)
	}
	if err := rec.SpendCoins(3); err != nil || rec.Coins != 0 {
		t.Errorf("SpendCoins(3) = %v, coins = %d", err, rec.Coins)
	}
}

func TestReadJSONAcceptsLegacyDocument(t *testing.T) {
	rec, err := ReadJSON(strings.NewReader(`{"coins": 7, "best_scores": [300, 1200]}`))
	if err != nil {
		t.Fatalf("ReadJSON() failed: %v", err)
	}

	if rec.Coins != 7 || !reflect.DeepEqual(rec.BestScores, []int{300, 1200}) {
		t.Errorf("decoded record = %+v", rec)
	}
	if rec.Skins == nil || len(rec.Skins) != 0 {
		t.Errorf("missing skins key should decode as empty, got %v", rec.Skins)
	}
}

func TestWriteJSONKeys(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, &Record{Coins: 2}); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, key := range []string{`"coins": 2`, `"best_scores": []`, `"skins": []`} {
		if !strings.Contains(out, key) {
			t.Errorf("document %s missing %s", out, key)
		}
	}
}

func TestJSONFileRoundTrip(t *testing.T) {
	f := JSONFile{Path: filepath.Join(t.TempDir(), "progress.json")}

	empty, err := f.Load()
	if err != nil || empty.Coins != 0 || len(empty.BestScores) != 0 {
		t.Fatalf("Load() of missing file = %+v, %v", empty, err)
	}

	rec := New()
	rec.Coins = 11
	rec.AppendScore(1500)
	rec.AddSkin("Бобер")
	if err := f.Persist(rec); err != nil {
		t.Fatalf("Persist() failed: %v", err)
	}

	loaded, err := f.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Coins != 11 || !loaded.Owns("Бобер") || loaded.Best() != 1500 {
		t.Errorf("loaded record = %+v", loaded)
	}
	if len(loaded.UnsavedScores()) != 0 {
		t.Error("a loaded record has nothing unsaved")
	}
}
