package stats

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const createResultsTableSQL = `
	CREATE TABLE IF NOT EXISTS results (
		id TEXT PRIMARY KEY,
		played_at TIMESTAMP NOT NULL,
		human_score INTEGER NOT NULL,
		computer_score INTEGER NOT NULL,
		winner TEXT NOT NULL,
		rounds INTEGER NOT NULL,
		truncated BOOLEAN NOT NULL,
		shuffle TEXT NOT NULL,
		sets TEXT NOT NULL  -- JSON object of rank to owner
	);
	CREATE INDEX IF NOT EXISTS idx_results_played_at ON results(played_at)`

// SQLiteRepository implements Repository using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (creating if needed) the results database
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Ensure the directory exists
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createResultsTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating results table: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Save stores a result, replacing any with the same id
func (r *SQLiteRepository) Save(ctx context.Context, result *Result) error {
	setsJSON, err := json.Marshal(result.Sets)
	if err != nil {
		return fmt.Errorf("failed to marshal sets: %w", err)
	}

	query := `
		INSERT OR REPLACE INTO results
			(id, played_at, human_score, computer_score, winner, rounds, truncated, shuffle, sets)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, query,
		result.ID, result.PlayedAt.UTC(), result.HumanScore, result.ComputerScore,
		result.Winner, result.Rounds, result.Truncated, result.Shuffle, string(setsJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	return nil
}

// Get retrieves a single result by id
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*Result, error) {
	query := `
		SELECT id, played_at, human_score, computer_score, winner, rounds, truncated, shuffle, sets
		FROM results WHERE id = ?`

	result, err := scanResult(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get result: %w", err)
	}
	return result, nil
}

// List returns the most recent results first
func (r *SQLiteRepository) List(ctx context.Context, limit int) ([]*Result, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `
		SELECT id, played_at, human_score, computer_score, winner, rounds, truncated, shuffle, sets
		FROM results
		ORDER BY played_at DESC
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []*Result
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating results: %w", err)
	}
	return results, nil
}

// Summary aggregates every stored result
func (r *SQLiteRepository) Summary(ctx context.Context) (*Summary, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN winner = 'human' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN winner = 'computer' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN truncated THEN 1 ELSE 0 END), 0),
		       COALESCE(MAX(human_score), 0)
		FROM results`

	var s Summary
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.Played, &s.HumanWins, &s.ComputerWins, &s.Truncated, &s.BestScore,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize results: %w", err)
	}
	return &s, nil
}

// Close closes the database
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(row rowScanner) (*Result, error) {
	var (
		result   Result
		playedAt time.Time
		setsJSON string
	)
	err := row.Scan(
		&result.ID, &playedAt, &result.HumanScore, &result.ComputerScore,
		&result.Winner, &result.Rounds, &result.Truncated, &result.Shuffle, &setsJSON,
	)
	if err != nil {
		return nil, err
	}
	result.PlayedAt = playedAt.UTC()
	if err := json.Unmarshal([]byte(setsJSON), &result.Sets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sets: %w", err)
	}
	return &result, nil
}
