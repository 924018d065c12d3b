// Package storage provides SQLite-based persistence for player progress.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-dash/internal/progress"
)

// DefaultProfile is used when no profile name is given.
const DefaultProfile = "local"

// Store manages the SQLite database connection for progress persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single finished-run score.
type ScoreEntry struct {
	ID        int64
	Profile   string
	Score     int
	CreatedAt time.Time
}

// ProfileStats contains aggregated statistics for a profile.
type ProfileStats struct {
	Profile    string
	RunsCount  int
	HighScore  int
	AvgScore   float64
	Coins      int
	Skins      int
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS wallets (
			profile TEXT PRIMARY KEY,
			coins INTEGER NOT NULL DEFAULT 0 CHECK (coins >= 0),
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_profile ON scores(profile);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(profile, score DESC);

		CREATE TABLE IF NOT EXISTS skins (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile TEXT NOT NULL,
			name TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (profile, name)
		);
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

func normalizeProfile(profile string) string {
	profile = strings.TrimSpace(profile)
	if profile == "" {
		return DefaultProfile
	}
	return profile
}

// Load reads a profile's record. Unknown profiles yield an empty record.
// Scores come back in insertion order and skins in acquisition order.
func (s *Store) Load(profile string) (*progress.Record, error) {
	profile = normalizeProfile(profile)
	rec := progress.New()

	var coins sql.NullInt64
	err := s.db.QueryRow("SELECT coins FROM wallets WHERE profile = ?", profile).Scan(&coins)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot query wallet: %w", err)
	}
	if coins.Valid {
		rec.Coins = int(coins.Int64)
	}

	rows, err := s.db.Query("SELECT score FROM scores WHERE profile = ? ORDER BY id", profile)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var score int
		if err := rows.Scan(&score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.AppendScore(score)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	skinRows, err := s.db.Query("SELECT name FROM skins WHERE profile = ? ORDER BY id", profile)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query skins: %w", err)
	}
	defer skinRows.Close()
	for skinRows.Next() {
		var name string
		if err := skinRows.Scan(&name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.AddSkin(name)
	}
	if err := skinRows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	rec.MarkSaved()
	return rec, nil
}

// Save writes a profile's record in one transaction: the balance is
// replaced, scores appended since the last save are inserted and owned
// skins are added. On success the record is marked saved.
func (s *Store) Save(profile string, rec *progress.Record) error {
	profile = normalizeProfile(profile)

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := writeRecord(tx, profile, rec.Coins, rec.UnsavedScores(), rec.Skins); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit progress: %w", err)
	}
	rec.MarkSaved()
	return nil
}

// Replace overwrites a profile with the given record. Used by import.
// The wipe and the write share one transaction, so a failed write leaves
// the old progress in place.
func (s *Store) Replace(profile string, rec *progress.Record) error {
	profile = normalizeProfile(profile)

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := clearProfile(tx, profile); err != nil {
		return err
	}
	// Every score is new to the emptied profile.
	if err := writeRecord(tx, profile, rec.Coins, rec.BestScores, rec.Skins); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit replace: %w", err)
	}
	rec.MarkSaved()
	return nil
}

// Reset deletes all progress for a profile.
func (s *Store) Reset(profile string) error {
	profile = normalizeProfile(profile)

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := clearProfile(tx, profile); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit reset: %w", err)
	}
	return nil
}

func writeRecord(tx *sql.Tx, profile string, coins int, scores []int, skins []string) error {
	_, err := tx.Exec(
		`INSERT INTO wallets (profile, coins) VALUES (?, ?)
		 ON CONFLICT(profile) DO UPDATE SET coins = excluded.coins, updated_at = CURRENT_TIMESTAMP`,
		profile, coins,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save wallet: %w", err)
	}

	for _, score := range scores {
		if _, err := tx.Exec("INSERT INTO scores (profile, score) VALUES (?, ?)", profile, score); err != nil {
			return fmt.Errorf("storage: cannot save score: %w", err)
		}
	}

	for _, name := range skins {
		if _, err := tx.Exec("INSERT OR IGNORE INTO skins (profile, name) VALUES (?, ?)", profile, name); err != nil {
			return fmt.Errorf("storage: cannot save skin: %w", err)
		}
	}
	return nil
}

func clearProfile(tx *sql.Tx, profile string) error {
	for _, table := range []string{"wallets", "scores", "skins"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE profile = ?", profile); err != nil {
			return fmt.Errorf("storage: cannot clear %s: %w", table, err)
		}
	}
	return nil
}

// TopScores retrieves the top N scores for the given profile.
// Results are ordered by score descending.
func (s *Store) TopScores(profile string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 5
	}

	rows, err := s.db.Query(
		`SELECT id, profile, score, created_at
		 FROM scores
		 WHERE profile = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		normalizeProfile(profile), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Profile, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given profile.
// Returns 0 if no scores exist.
func (s *Store) HighScore(profile string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE profile = ?",
		normalizeProfile(profile),
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Profiles lists every profile that has a wallet, alphabetically.
func (s *Store) Profiles() ([]string, error) {
	rows, err := s.db.Query("SELECT profile FROM wallets ORDER BY profile")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profiles: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Stats retrieves aggregated statistics for a profile.
func (s *Store) Stats(profile string) (*ProfileStats, error) {
	profile = normalizeProfile(profile)
	stats := &ProfileStats{Profile: profile}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM scores WHERE profile = ?`,
		profile,
	).Scan(&stats.RunsCount, &stats.HighScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get profile stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	err = s.db.QueryRow(
		`SELECT COALESCE((SELECT coins FROM wallets WHERE profile = ?), 0),
		        (SELECT COUNT(*) FROM skins WHERE profile = ?)`,
		profile, profile,
	).Scan(&stats.Coins, &stats.Skins)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get wallet stats: %w", err)
	}

	return stats, nil
}

// Profile binds the store to one profile so it can persist runs.
func (s *Store) Profile(name string) ProfileStore {
	return ProfileStore{store: s, name: normalizeProfile(name)}
}

// ProfileStore persists records for a single profile.
type ProfileStore struct {
	store *Store
	name  string
}

// Name returns the bound profile.
func (p ProfileStore) Name() string { return p.name }

// Load reads the bound profile.
func (p ProfileStore) Load() (*progress.Record, error) {
	return p.store.Load(p.name)
}

// Persist saves the record under the bound profile.
func (p ProfileStore) Persist(rec *progress.Record) error {
	return p.store.Save(p.name, rec)
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
