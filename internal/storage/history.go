// Package storage keeps the round history of the running process.
// Uses the pure-Go modernc.org/sqlite driver on an in-memory database,
// so nothing outlives the process and no CGO is needed.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the in-memory database holding finished rounds.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// RoundEntry is one finished round.
type RoundEntry struct {
	ID      uuid.UUID
	Round   int // 1-based, in the order rounds ended
	Score   int
	EndedAt time.Time
}

// Stats contains aggregated statistics over the history.
type Stats struct {
	Rounds     int
	Best       int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// OpenHistory creates an empty in-memory history.
func OpenHistory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			round INTEGER NOT NULL UNIQUE,
			score INTEGER NOT NULL,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_score ON rounds(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database; the history is gone afterwards.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Append records a finished round and assigns it the next round number.
func (s *Store) Append(score int) (RoundEntry, error) {
	if score < 0 {
		return RoundEntry{}, fmt.Errorf("storage: negative score %d", score)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return RoundEntry{}, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	var last int
	if err := tx.QueryRow("SELECT COALESCE(MAX(round), 0) FROM rounds").Scan(&last); err != nil {
		return RoundEntry{}, fmt.Errorf("storage: cannot read round counter: %w", err)
	}

	entry := RoundEntry{
		ID:      uuid.New(),
		Round:   last + 1,
		Score:   score,
		EndedAt: s.now(),
	}
	if _, err := tx.Exec(
		"INSERT INTO rounds (id, round, score, ended_at) VALUES (?, ?, ?, ?)",
		entry.ID, entry.Round, entry.Score, entry.EndedAt.UnixNano(),
	); err != nil {
		return RoundEntry{}, fmt.Errorf("storage: cannot save round: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return RoundEntry{}, fmt.Errorf("storage: cannot commit round: %w", err)
	}
	return entry, nil
}

// Rounds returns every finished round, oldest first.
func (s *Store) Rounds() ([]RoundEntry, error) {
	return s.query("SELECT id, round, score, ended_at FROM rounds ORDER BY round ASC")
}

// Top returns the best rounds, highest score first. Ties go to the earlier round.
func (s *Store) Top(limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		"SELECT id, round, score, ended_at FROM rounds ORDER BY score DESC, round ASC LIMIT ?",
		limit,
	)
}

func (s *Store) query(q string, args ...any) ([]RoundEntry, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		var e RoundEntry
		var endedAt int64
		if err := rows.Scan(&e.ID, &e.Round, &e.Score, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.EndedAt = time.Unix(0, endedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Best returns the highest score so far, or 0 with no rounds.
func (s *Store) Best() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM rounds").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats aggregates the whole history.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM rounds`,
	).Scan(&st.Rounds, &st.Best, &st.AvgScore, &st.TotalScore)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed int64
	err = s.db.QueryRow("SELECT ended_at FROM rounds ORDER BY round DESC LIMIT 1").Scan(&lastPlayed)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return Stats{}, fmt.Errorf("storage: cannot get last played: %w", err)
	default:
		st.LastPlayed = time.Unix(0, lastPlayed)
	}

	return st, nil
}
