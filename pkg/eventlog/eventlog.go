// Package eventlog keeps an append-only SQLite log of companion care
// actions and trade transitions. The companion's in-save history is capped
// at fifty entries; the event log is the uncapped audit trail behind
// "digip logs".
package eventlog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// Event type constants written by the CLI and the care screen.
const (
	TypeHatch   = "hatch"
	TypeFeed    = "feed"
	TypePlay    = "play"
	TypeSleep   = "sleep"
	TypeRename  = "rename"
	TypeTick    = "tick"
	TypeDeath   = "death"
	TypeTrade   = "trade"
	TypeListing = "listing"
)

// Event is one row of the action log.
type Event struct {
	ID        int64
	Type      string
	Subject   string // companion name, trade id, or listing id
	Message   string
	CreatedAt time.Time
}

// QueryOpts filters a log query.
type QueryOpts struct {
	// Type restricts results to one event type (empty = all).
	Type string

	// Subject restricts results to one subject (empty = all).
	Subject string

	// Limit caps the number of results (0 = no limit).
	Limit int
}

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	type TEXT NOT NULL,
	subject TEXT NOT NULL DEFAULT '',
	message TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
)`

// Log is an open event log. Safe for one writer; readers open their own Log.
type Log struct {
	db *sql.DB
}

// Open opens (creating if needed) the event log at path with WAL mode and a
// 5-second busy timeout.
func Open(path string) (*Log, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open event log %s: %w", path, err)
	}

	ctx := context.Background()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping event log %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode on %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set busy_timeout on %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create events table in %s: %w", path, err)
	}

	return &Log{db: db}, nil
}

// Close releases the database connection. Safe to call multiple times.
func (l *Log) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// Append records one event.
func (l *Log) Append(ctx context.Context, typ, subject, message string) error {
	_, err := l.db.ExecContext(ctx,
		"INSERT INTO events (type, subject, message, created_at) VALUES (?, ?, ?, ?)",
		typ, subject, message, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("append %s event: %w", typ, err)
	}
	return nil
}

// Query returns events matching opts, newest first.
func (l *Log) Query(ctx context.Context, opts QueryOpts) ([]Event, error) {
	query, args := buildQuery(opts)

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Type, &e.Subject, &e.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

// Tail returns the most recent limit events, newest first.
func (l *Log) Tail(ctx context.Context, limit int) ([]Event, error) {
	return l.Query(ctx, QueryOpts{Limit: limit})
}

// buildQuery constructs the SQL query and arguments from QueryOpts.
func buildQuery(opts QueryOpts) (string, []any) {
	var conditions []string
	var args []any

	query := "SELECT id, type, subject, message, created_at FROM events"

	if opts.Type != "" {
		conditions = append(conditions, "type = ?")
		args = append(args, opts.Type)
	}
	if opts.Subject != "" {
		conditions = append(conditions, "subject = ?")
		args = append(args, opts.Subject)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY id DESC"

	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
	}

	return query, args
}
