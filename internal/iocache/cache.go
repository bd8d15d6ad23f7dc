// Package iocache provides a local cache for HTTP responses, backed by
// SQLite. The cache is an explicit object with an open/close lifecycle
// owned by the command run; nothing is installed globally.
package iocache

import (
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS responses (
	key        TEXT PRIMARY KEY,
	body       BLOB NOT NULL,
	fetched_at TIMESTAMP NOT NULL
);`

// Cache stores raw response bodies keyed by request signature
// (method + URL + encoded query). It is safe for use from a single
// process; commands open it at the start of a run and close it at the
// end.
type Cache struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the cache database at path.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, OpenError(path, err)
	}
	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, OpenError(path, err)
	}
	return &Cache{db: db, path: path}, nil
}

// Get returns the cached body for a key. The second value is false on a
// cache miss.
func (c *Cache) Get(key string) ([]byte, bool, error) {
	var body []byte
	err := c.db.QueryRow(
		"SELECT body FROM responses WHERE key = ?", key,
	).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, ReadError(c.path, err)
	}
	return body, true, nil
}

// Put stores a response body, overwriting any previous entry for the key.
func (c *Cache) Put(key string, body []byte) error {
	_, err := c.db.Exec(
		`INSERT INTO responses (key, body, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE
		 SET body = excluded.body, fetched_at = excluded.fetched_at`,
		key, body, time.Now().UTC(),
	)
	if err != nil {
		return WriteError(c.path, err)
	}
	return nil
}

// Clear removes every cached response.
func (c *Cache) Clear() error {
	if _, err := c.db.Exec("DELETE FROM responses"); err != nil {
		return WriteError(c.path, err)
	}
	return nil
}

// Len returns the number of cached responses.
func (c *Cache) Len() (int, error) {
	var n int
	err := c.db.QueryRow("SELECT COUNT(*) FROM responses").Scan(&n)
	if err != nil {
		return 0, ReadError(c.path, err)
	}
	return n, nil
}

// Close flushes and closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
