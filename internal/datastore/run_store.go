package datastore

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/aleister1102/siteguard/internal/common"
	"github.com/aleister1102/siteguard/internal/models"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// RunStore keeps one summary row per audit run in SQLite
type RunStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

// RunRecord is a row of the audit_runs table
type RunRecord struct {
	RunID      string
	BaseURL    string
	StartedAt  time.Time
	FinishedAt time.Time
	Passed     int
	Failed     int
	Errored    int
	Total      int
}

// NewRunStore opens the database at path, creating its directory and schema as needed
func NewRunStore(path string, logger zerolog.Logger) (*RunStore, error) {
	logger = logger.With().Str("component", "RunStore").Logger()

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, common.WrapErrorf(err, "failed to create database directory %s", dir)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, common.WrapErrorf(err, "sql.Open failed for %s", path)
	}

	store := &RunStore{db: db, logger: logger}
	if err := store.initSchema(); err != nil {
		_ = db.Close()
		return nil, common.WrapError(err, "failed to initialize schema")
	}
	logger.Debug().Str("path", path).Msg("Run store ready")
	return store, nil
}

// Close closes the database connection.
func (s *RunStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *RunStore) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS audit_runs (
		run_id TEXT PRIMARY KEY,
		base_url TEXT NOT NULL,
		started_at INTEGER NOT NULL,
		finished_at INTEGER NOT NULL,
		passed INTEGER NOT NULL,
		failed INTEGER NOT NULL,
		errored INTEGER NOT NULL,
		total INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_audit_runs_started_at ON audit_runs (started_at);
	`
	_, err := s.db.Exec(query)
	return err
}

// Store implements the audit report sink
func (s *RunStore) Store(ctx context.Context, report *models.AuditReport) error {
	return s.RecordRun(ctx, report)
}

// RecordRun inserts the summary of report, replacing an earlier row with the same run id
func (s *RunStore) RecordRun(ctx context.Context, report *models.AuditReport) error {
	query := `INSERT OR REPLACE INTO audit_runs (run_id, base_url, started_at, finished_at, passed, failed, errored, total) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	sum := report.Summary
	_, err := s.db.ExecContext(ctx, query,
		report.RunID, report.BaseURL,
		report.StartedAt.UnixMilli(), report.FinishedAt.UnixMilli(),
		sum.Passed, sum.Failed, sum.Errored, sum.Total,
	)
	if err != nil {
		s.logger.Error().Err(err).Str("run_id", report.RunID).Msg("Failed to record audit run")
		return common.WrapErrorf(err, "failed to insert audit run %s", report.RunID)
	}
	s.logger.Info().Str("run_id", report.RunID).Int("passed", sum.Passed).Int("total", sum.Total).Msg("Recorded audit run")
	return nil
}

// RecentRuns returns up to limit runs, newest first
func (s *RunStore) RecentRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		return nil, common.NewValidationError("limit", limit, "limit must be positive")
	}
	query := `SELECT run_id, base_url, started_at, finished_at, passed, failed, errored, total FROM audit_runs ORDER BY started_at DESC, run_id LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, common.WrapError(err, "failed to query recent audit runs")
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var (
			rec                 RunRecord
			startedMs, finishMs int64
		)
		if err := rows.Scan(&rec.RunID, &rec.BaseURL, &startedMs, &finishMs, &rec.Passed, &rec.Failed, &rec.Errored, &rec.Total); err != nil {
			return nil, common.WrapError(err, "failed to scan audit run row")
		}
		rec.StartedAt = time.UnixMilli(startedMs).UTC()
		rec.FinishedAt = time.UnixMilli(finishMs).UTC()
		runs = append(runs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapError(err, "failed to iterate audit runs")
	}
	return runs, nil
}
