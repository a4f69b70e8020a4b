package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/okian/podium/internal/domain/types"
)

// SQLiteSink writes the feature table into a SQLite database, replacing the
// table on every run and appending to the runs table.
type SQLiteSink struct {
	path  string
	table string
	runID string
}

// Format implements Sink.
func (s *SQLiteSink) Format() string { return FormatSQLite }

// columnTypes maps each feature column to its SQLite type.
func columnTypes() []string {
	out := make([]string, len(types.Columns))
	for i, c := range types.Columns {
		switch {
		case i == 1 || i == 2:
			out[i] = c + " TEXT NOT NULL"
		case strings.HasSuffix(c, "_rate") || c == "avg_career_length":
			out[i] = c + " REAL NOT NULL"
		default:
			out[i] = c + " INTEGER NOT NULL"
		}
	}
	return out
}

// Write implements Sink.
func (s *SQLiteSink) Write(ctx context.Context, rows []types.FeatureRow) error {
	if err := ensureDir(s.path); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", ErrWriteOutput, s.path, err)
	}
	defer func() { _ = db.Close() }()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	defer func() { _ = tx.Rollback() }()

	schema := fmt.Sprintf(`
		DROP TABLE IF EXISTS %[1]s;
		CREATE TABLE %[1]s (
			%[2]s,
			PRIMARY KEY (time, country_code, sport_category_code)
		);
		CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT PRIMARY KEY,
			feature_table TEXT NOT NULL,
			row_count INTEGER NOT NULL,
			finished_at TEXT NOT NULL
		);`, s.table, strings.Join(columnTypes(), ",\n\t\t\t"))
	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: create schema: %w", ErrWriteOutput, err)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(types.Columns)), ",")
	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		s.table, strings.Join(types.Columns, ", "), placeholders)
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("%w: prepare insert: %w", ErrWriteOutput, err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range rows {
		if _, err := stmt.ExecContext(ctx, rows[i].Values()...); err != nil {
			return fmt.Errorf("%w: row %d: %w", ErrWriteOutput, i, err)
		}
	}

	if s.runID != "" {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR REPLACE INTO runs (run_id, feature_table, row_count, finished_at) VALUES (?, ?, ?, ?)",
			s.runID, s.table, len(rows), time.Now().UTC().Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("%w: record run: %w", ErrWriteOutput, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrWriteOutput, err)
	}
	return nil
}
