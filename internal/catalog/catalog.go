// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists extraction run history in a SQLite database.
// The catalog is strictly opt-in: a run that does not name a catalog path
// leaves nothing behind but its output file.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/arxiv-sampler/pkg/types"
)

// Catalog manages the run-history SQLite database.
type Catalog struct {
	db *sql.DB
}

// Open opens or creates the catalog database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Catalog, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}

	c := &Catalog{db: db}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return c, nil
}

// Close releases the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) createSchema() error {
	_, err := c.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		input_path TEXT NOT NULL,
		output_path TEXT NOT NULL,
		requested INTEGER NOT NULL,
		lines_read INTEGER NOT NULL,
		written INTEGER NOT NULL,
		skipped INTEGER NOT NULL,
		bytes_read INTEGER NOT NULL,
		started_at TEXT NOT NULL,
		duration_ms INTEGER NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record inserts one completed run and fills in rec.ID.
func (c *Catalog) Record(ctx context.Context, rec *types.RunRecord) error {
	res, err := c.db.ExecContext(ctx,
		`INSERT INTO runs (input_path, output_path, requested, lines_read, written, skipped, bytes_read, started_at, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.InputPath, rec.OutputPath, rec.Requested, rec.LinesRead,
		rec.Written, rec.Skipped, rec.BytesRead,
		rec.StartedAt.UTC().Format(time.RFC3339Nano),
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading run ID: %w", err)
	}
	rec.ID = id
	return nil
}

// List returns recorded runs, newest first. limit <= 0 returns all runs.
func (c *Catalog) List(ctx context.Context, limit int) ([]types.RunRecord, error) {
	query := `SELECT id, input_path, output_path, requested, lines_read, written, skipped, bytes_read, started_at, duration_ms
		FROM runs ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.RunRecord
	for rows.Next() {
		var rec types.RunRecord
		var startedAt string
		var durationMS int64
		if err := rows.Scan(&rec.ID, &rec.InputPath, &rec.OutputPath,
			&rec.Requested, &rec.LinesRead, &rec.Written, &rec.Skipped,
			&rec.BytesRead, &startedAt, &durationMS); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339Nano, startedAt); parseErr == nil {
			rec.StartedAt = t
		}
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		runs = append(runs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}
