package logging

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"bitevolve/internal/ga"

	_ "modernc.org/sqlite"
)

// StatsStore records generation statistics in a SQLite database, one row per
// generation keyed by run id.
type StatsStore struct {
	path string

	mu    sync.Mutex
	db    *sql.DB
	runID string
}

// OpenStatsStore opens (creating if needed) the database at path
func OpenStatsStore(ctx context.Context, path string) (*StatsStore, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &StatsStore{path: path, db: db}, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			bit_length INTEGER NOT NULL,
			population INTEGER NOT NULL,
			generations INTEGER NOT NULL,
			fitness_mode TEXT NOT NULL,
			started_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS generations (
			run_id TEXT NOT NULL REFERENCES runs(id),
			generation INTEGER NOT NULL,
			remaining INTEGER NOT NULL,
			size INTEGER NOT NULL,
			avg_fitness REAL NOT NULL,
			max_fitness REAL NOT NULL,
			min_fitness REAL NOT NULL,
			std_fitness REAL NOT NULL,
			flips INTEGER NOT NULL,
			PRIMARY KEY (run_id, generation)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}

// BeginRun registers a run; subsequent reports are stored under runID
func (s *StatsStore) BeginRun(ctx context.Context, runID string, seed int64, p ga.Params, fitnessMode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return errors.New("stats store is closed")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, seed, bit_length, population, generations, fitness_mode, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, runID, seed, p.BitLength, p.Population, p.Generations, fitnessMode, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("begin run %s: %w", runID, err)
	}
	s.runID = runID
	return nil
}

// Report stores a generation row for the current run
func (s *StatsStore) Report(ctx context.Context, st ga.GenerationStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return errors.New("stats store is closed")
	}
	if s.runID == "" {
		return errors.New("no run registered, call BeginRun first")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO generations (run_id, generation, remaining, size, avg_fitness, max_fitness, min_fitness, std_fitness, flips)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, s.runID, st.Generation, st.Remaining, st.Size, st.Average, st.Max, st.Min, st.StdDev, st.Flips)
	return err
}

// History returns the stored statistics of a run in generation order
func (s *StatsStore) History(ctx context.Context, runID string) ([]ga.GenerationStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, errors.New("stats store is closed")
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT generation, remaining, size, avg_fitness, max_fitness, min_fitness, std_fitness, flips
		FROM generations WHERE run_id = ? ORDER BY generation
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ga.GenerationStats
	for rows.Next() {
		var st ga.GenerationStats
		if err := rows.Scan(&st.Generation, &st.Remaining, &st.Size, &st.Average, &st.Max, &st.Min, &st.StdDev, &st.Flips); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// Close closes the database
func (s *StatsStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
