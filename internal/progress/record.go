// Package progress holds the meta-progression record that outlives a run:
// the coin balance, the best-score history and the owned skins, together
// with the skin catalog and the shop rules that spend coins.
package progress

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInsufficientCoins is returned when a purchase exceeds the balance.
	ErrInsufficientCoins = errors.New("not enough coins")
	// ErrAlreadyOwned is returned when buying a skin the player has.
	ErrAlreadyOwned = errors.New("skin already owned")
	// ErrUnknownItem is returned for names outside the catalog or not for sale.
	ErrUnknownItem = errors.New("unknown item")
	// ErrSkinLocked is returned when selecting a priced skin that is not owned.
	ErrSkinLocked = errors.New("skin is locked")
)

// Record is a player's persistent progress.
// BestScores is append-only and never trimmed; Skins keeps purchase order.
type Record struct {
	Coins      int
	BestScores []int
	Skins      []string

	saved int // how many BestScores entries the store already holds
}

// New returns an empty record.
func New() *Record {
	return &Record{
		BestScores: []int{},
		Skins:      []string{},
	}
}

// AddCoins credits the balance.
func (r *Record) AddCoins(n int) {
	if n > 0 {
		r.Coins += n
	}
}

// SpendCoins debits the balance. The balance never goes negative.
func (r *Record) SpendCoins(n int) error {
	if n > r.Coins {
		return fmt.Errorf("progress: need %d, have %d: %w", n, r.Coins, ErrInsufficientCoins)
	}
	r.Coins -= n
	return nil
}

// AppendScore records a finished run's score.
func (r *Record) AppendScore(score int) {
	r.BestScores = append(r.BestScores, score)
}

// Owns reports whether the skin has been bought.
func (r *Record) Owns(name string) bool {
	return slices.Contains(r.Skins, name)
}

// AddSkin marks a skin as owned. Owning twice is a no-op.
func (r *Record) AddSkin(name string) {
	if !r.Owns(name) {
		r.Skins = append(r.Skins, name)
	}
}

// LastSkin returns the most recently acquired skin.
func (r *Record) LastSkin() (string, bool) {
	if len(r.Skins) == 0 {
		return "", false
	}
	return r.Skins[len(r.Skins)-1], true
}

// TopScores returns up to n scores, highest first.
func (r *Record) TopScores(n int) []int {
	sorted := slices.Clone(r.BestScores)
	slices.Sort(sorted)
	slices.Reverse(sorted)
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Best returns the highest score, or 0 with no history.
func (r *Record) Best() int {
	if len(r.BestScores) == 0 {
		return 0
	}
	return slices.Max(r.BestScores)
}

// UnsavedScores returns the scores appended since the last MarkSaved.
func (r *Record) UnsavedScores() []int {
	if r.saved > len(r.BestScores) {
		return nil
	}
	return r.BestScores[r.saved:]
}

// MarkSaved records that every current score is persisted.
func (r *Record) MarkSaved() {
	r.saved = len(r.BestScores)
}

// Clone returns a deep copy, including the saved marker.
func (r *Record) Clone() *Record {
	return &Record{
		Coins:      r.Coins,
		BestScores: slices.Clone(r.BestScores),
		Skins:      slices.Clone(r.Skins),
		saved:      r.saved,
	}
}
