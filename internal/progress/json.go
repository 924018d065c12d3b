package progress

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// document is the interchange layout: {"coins", "best_scores", "skins"}.
type document struct {
	Coins      int      `json:"coins"`
	BestScores []int    `json:"best_scores"`
	Skins      []string `json:"skins"`
}

// ReadJSON decodes a progress document. Missing keys default to empty,
// and a negative balance is clamped to zero.
func ReadJSON(r io.Reader) (*Record, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("progress: cannot decode document: %w", err)
	}

	rec := New()
	if doc.Coins > 0 {
		rec.Coins = doc.Coins
	}
	if doc.BestScores != nil {
		rec.BestScores = doc.BestScores
	}
	for _, s := range doc.Skins {
		rec.AddSkin(s)
	}
	return rec, nil
}

// WriteJSON encodes the record as a progress document.
func WriteJSON(w io.Writer, rec *Record) error {
	doc := document{
		Coins:      rec.Coins,
		BestScores: rec.BestScores,
		Skins:      rec.Skins,
	}
	if doc.BestScores == nil {
		doc.BestScores = []int{}
	}
	if doc.Skins == nil {
		doc.Skins = []string{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("progress: cannot encode document: %w", err)
	}
	return nil
}

// JSONFile persists a record as a progress document on disk.
type JSONFile struct {
	Path string
}

// Load reads the file. A missing file yields an empty record.
func (f JSONFile) Load() (*Record, error) {
	file, err := os.Open(f.Path)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("progress: cannot open %s: %w", f.Path, err)
	}
	defer file.Close()

	rec, err := ReadJSON(file)
	if err != nil {
		return nil, err
	}
	rec.MarkSaved()
	return rec, nil
}

// Persist writes the whole record, replacing the file.
func (f JSONFile) Persist(rec *Record) error {
	file, err := os.Create(f.Path)
	if err != nil {
		return fmt.Errorf("progress: cannot create %s: %w", f.Path, err)
	}
	if err := WriteJSON(file, rec); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("progress: cannot write %s: %w", f.Path, err)
	}
	rec.MarkSaved()
	return nil
}
