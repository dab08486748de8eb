// Package history records test runs in a SQLite database so that results can
// be compared over time.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/testy/packages/core/runner"

	// SQLite driver
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	suite       TEXT NOT NULL,
	recorded_at INTEGER NOT NULL,
	total       INTEGER NOT NULL,
	passed      INTEGER NOT NULL,
	failed      INTEGER NOT NULL,
	skipped     INTEGER NOT NULL,
	duration_us INTEGER NOT NULL,
	p95_us      INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS failures (
	run_id  TEXT NOT NULL REFERENCES runs(id),
	idx     INTEGER NOT NULL,
	name    TEXT NOT NULL,
	message TEXT NOT NULL,
	PRIMARY KEY (run_id, idx)
);
`

// Run is one recorded run.
type Run struct {
	ID         string
	Suite      string
	RecordedAt time.Time
	Total      int
	Passed     int
	Failed     int
	Skipped    int
	Duration   time.Duration
	P95        time.Duration
}

// Failure is one failed case of a recorded run.
type Failure struct {
	RunID   string
	Index   int
	Name    string
	Message string
}

// Store is a run history backed by SQLite
type Store struct {
	db           *sql.DB
	queryTimeout time.Duration
}

// Open opens (creating if needed) the history database. The connection
// string is a file path, optionally prefixed with sqlite:// or sqlite:.
func Open(connectionString string) (*Store, error) {
	dsn, err := parseConnectionString(connectionString)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{
		db:           db,
		queryTimeout: 30 * time.Second,
	}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record stores the report and its failures under suite.
func (s *Store) Record(ctx context.Context, suite string, report *runner.Report) error {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, suite, recorded_at, total, passed, failed, skipped, duration_us, p95_us)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		report.ID, suite, time.Now().UnixNano(),
		report.Total, report.Passed, report.Failed, report.Skipped,
		report.Duration.Microseconds(), report.Timing.P95.Microseconds())
	if err != nil {
		return fmt.Errorf("insert run %s: %w", report.ID, err)
	}

	for _, res := range report.Failures() {
		message := ""
		if res.Error != nil {
			message = res.Error.Error()
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO failures (run_id, idx, name, message) VALUES (?, ?, ?, ?)`,
			report.ID, res.Index, res.Name, message)
		if err != nil {
			return fmt.Errorf("insert failure %q: %w", res.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run %s: %w", report.ID, err)
	}
	return nil
}

// Recent returns up to limit runs, newest first. A limit of zero or less
// returns every run.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	query := `SELECT id, suite, recorded_at, total, passed, failed, skipped, duration_us, p95_us
		FROM runs ORDER BY recorded_at DESC, rowid DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	runs := make([]Run, 0)
	for rows.Next() {
		var (
			r                 Run
			recordedAt        int64
			durationUS, p95US int64
		)
		if err := rows.Scan(&r.ID, &r.Suite, &recordedAt, &r.Total, &r.Passed, &r.Failed, &r.Skipped, &durationUS, &p95US); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		r.RecordedAt = time.Unix(0, recordedAt)
		r.Duration = time.Duration(durationUS) * time.Microsecond
		r.P95 = time.Duration(p95US) * time.Microsecond
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return runs, nil
}

// Failures returns the failures recorded for runID in submission order.
func (s *Store) Failures(ctx context.Context, runID string) ([]Failure, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, idx, name, message FROM failures WHERE run_id = ? ORDER BY idx`, runID)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	failures := make([]Failure, 0)
	for rows.Next() {
		var f Failure
		if err := rows.Scan(&f.RunID, &f.Index, &f.Name, &f.Message); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		failures = append(failures, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return failures, nil
}

// parseConnectionString turns a connection string into a sqlite3 DSN.
// Supported formats:
// - sqlite://path/to/history.db
// - sqlite:./history.db
// - path/to/history.db
func parseConnectionString(connStr string) (string, error) {
	connStr = strings.TrimSpace(connStr)

	switch {
	case strings.HasPrefix(connStr, "sqlite://"):
		connStr = strings.TrimPrefix(connStr, "sqlite://")
	case strings.HasPrefix(connStr, "sqlite:"):
		connStr = strings.TrimPrefix(connStr, "sqlite:")
	case strings.Contains(connStr, "://"):
		return "", fmt.Errorf("unsupported database scheme in %q", connStr)
	}

	if connStr == "" {
		return "", fmt.Errorf("empty database path")
	}
	return connStr, nil
}
