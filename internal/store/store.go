// Package store persists the most recent derived profile in a SQLite
// database, so commands can re-render slides without re-parsing the
// export file.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nightcatdev/aiwrap/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNoProfile indicates nothing has been saved yet.
var ErrNoProfile = errors.New("no saved profile (run `aiwrap wrap -f <export>` first)")

// Only one profile is kept; a new save replaces the previous year.
const profileKey = "current"

// Store is a SQLite-backed profile store.
type Store struct {
	db *sql.DB
}

// Open opens or creates the profile database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening store db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores the profile, replacing any previous one.
func (s *Store) Save(profile model.DerivedProfile, sourceFile string) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}

	_, err = s.db.Exec(`INSERT OR REPLACE INTO profiles
		(profile_key, source_file, payload, generated_at, saved_at)
		VALUES (?, ?, ?, ?, ?)`,
		profileKey, sourceFile, string(payload),
		profile.GeneratedAt.UTC().Format(time.RFC3339),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

// Load returns the saved profile and the export file it came from.
func (s *Store) Load() (model.DerivedProfile, string, error) {
	var payload, sourceFile string
	err := s.db.QueryRow(
		"SELECT payload, source_file FROM profiles WHERE profile_key = ?", profileKey,
	).Scan(&payload, &sourceFile)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DerivedProfile{}, "", ErrNoProfile
	}
	if err != nil {
		return model.DerivedProfile{}, "", fmt.Errorf("loading profile: %w", err)
	}

	var profile model.DerivedProfile
	if err := json.Unmarshal([]byte(payload), &profile); err != nil {
		return model.DerivedProfile{}, "", fmt.Errorf("decoding profile: %w", err)
	}
	return profile, sourceFile, nil
}

// Clear deletes the saved profile. Clearing an empty store is not an
// error.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM profiles WHERE profile_key = ?", profileKey)
	return err
}
