// Package store provides SQLite-backed shift persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/starford/rooster/internal/models"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS shifts (
	boff_id  TEXT NOT NULL,
	name     TEXT NOT NULL DEFAULT '',
	date     TEXT NOT NULL,
	planning TEXT NOT NULL,
	start    TEXT NOT NULL,
	"end"    TEXT NOT NULL,
	info     TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (date, planning, boff_id)
);
`

// ShiftStore defines the persistence operations on shifts. Consumers
// should depend on this interface rather than the concrete *DB type to
// facilitate testing with fakes.
type ShiftStore interface {
	UpsertShift(ctx context.Context, s models.Shift) error
	ListShifts(ctx context.Context, boffID string) ([]models.Shift, error)
	Close() error
}

// Verify *DB satisfies ShiftStore at compile time.
var _ ShiftStore = (*DB)(nil)

// DB wraps a sql.DB with shift operations.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database and applies the schema.
func Open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
