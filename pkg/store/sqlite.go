package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS cards (
	id         TEXT PRIMARY KEY,
	config     TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	expires_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS cards_expires_at ON cards (expires_at);
`

// SQLiteBackend persists cards in a local SQLite database. Expiry is lazy:
// reads skip dead rows and Purge sweeps them out in bulk.
type SQLiteBackend struct {
	mu   sync.Mutex
	conn *sqlite.Conn
	now  func() time.Time
}

// OpenSQLite opens (creating if needed) the database at path and ensures the
// schema. Use ":memory:" for an ephemeral store.
func OpenSQLite(path string) (*SQLiteBackend, error) {
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite|sqlite.OpenCreate)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite %q: %w", path, err)
	}
	if err := sqlitex.ExecuteScript(conn, sqliteSchema, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}
	return &SQLiteBackend{conn: conn, now: time.Now}, nil
}

// Close releases the underlying connection.
func (b *SQLiteBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.conn.Close()
}

// Put stores one card row, replacing any previous card under the same id.
func (b *SQLiteBackend) Put(_ context.Context, id string, data []byte, expiresAt time.Time) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	err := sqlitex.Execute(b.conn,
		`INSERT OR REPLACE INTO cards (id, config, created_at, expires_at) VALUES (?, ?, ?, ?)`,
		&sqlitex.ExecOptions{
			Args: []any{id, string(data), b.now().Unix(), expiresAt.Unix()},
		})
	if err != nil {
		return fmt.Errorf("store: insert card %q: %w", id, err)
	}
	return nil
}

// Get returns the stored card, or ErrNotFound for unknown and expired ids.
// An expired row is deleted on the way out.
func (b *SQLiteBackend) Get(_ context.Context, id string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var data []byte
	var expiresAt int64
	found := false
	err := sqlitex.Execute(b.conn,
		`SELECT config, expires_at FROM cards WHERE id = ?`,
		&sqlitex.ExecOptions{
			Args: []any{id},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				data = []byte(stmt.ColumnText(0))
				expiresAt = stmt.ColumnInt64(1)
				found = true
				return nil
			},
		})
	if err != nil {
		return nil, fmt.Errorf("store: query card %q: %w", id, err)
	}
	if !found {
		return nil, ErrNotFound
	}

	if expiresAt <= b.now().Unix() {
		err := sqlitex.Execute(b.conn,
			`DELETE FROM cards WHERE id = ?`,
			&sqlitex.ExecOptions{Args: []any{id}})
		if err != nil {
			return nil, fmt.Errorf("store: expire card %q: %w", id, err)
		}
		return nil, ErrNotFound
	}
	return data, nil
}

// Purge removes every expired row and reports how many went away.
func (b *SQLiteBackend) Purge(_ context.Context) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	err := sqlitex.Execute(b.conn,
		`DELETE FROM cards WHERE expires_at <= ?`,
		&sqlitex.ExecOptions{Args: []any{b.now().Unix()}})
	if err != nil {
		return 0, fmt.Errorf("store: purge cards: %w", err)
	}
	return b.conn.Changes(), nil
}
