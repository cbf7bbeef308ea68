// Package chatdb keeps the chat log in SQLite.
package chatdb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"partysheet/internal/travel"
)

const schema = `
CREATE TABLE IF NOT EXISTS chat_messages (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	id         TEXT NOT NULL UNIQUE,
	user_id    TEXT NOT NULL,
	content    TEXT NOT NULL,
	journal    TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL
);
`

// SQLiteChat is a chat log stored in a SQLite database.
type SQLiteChat struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the chat database at path.
func OpenSQLite(path string) (*SQLiteChat, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout=5000;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create chat schema: %w", err)
	}
	return &SQLiteChat{db: db}, nil
}

func (c *SQLiteChat) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

func (c *SQLiteChat) Post(ctx context.Context, msg travel.ChatMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO chat_messages (id, user_id, content, journal, created_at) VALUES (?, ?, ?, ?, ?)`,
		msg.ID, msg.UserID, msg.Content, msg.Journal, msg.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert chat message: %w", err)
	}
	return nil
}

// List returns the messages in the order they were posted.
func (c *SQLiteChat) List(ctx context.Context) ([]travel.ChatMessage, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, user_id, content, journal, created_at FROM chat_messages ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query chat messages: %w", err)
	}
	defer rows.Close()

	var out []travel.ChatMessage
	for rows.Next() {
		var (
			msg     travel.ChatMessage
			created int64
		)
		if err := rows.Scan(&msg.ID, &msg.UserID, &msg.Content, &msg.Journal, &created); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		msg.CreatedAt = time.Unix(0, created).UTC()
		out = append(out, msg)
	}
	return out, rows.Err()
}
