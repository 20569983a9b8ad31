package module

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// Cache is a persistent signature cache backed by SQLite, so a later
// compiler invocation over an unchanged tree can skip re-analysing a
// module's body entirely — spec.md §6.2's "(may hit a cache)" parenthetical
// made concrete. funvibe-funxy carries modernc.org/sqlite as a dependency
// without using it directly in the analyzer; this package gives it an
// actual home.
type Cache struct {
	db *sql.DB
}

// OpenCache opens (creating if necessary) a signature cache at path. Pass
// ":memory:" for a cache scoped to one process.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening module cache: %w", err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS signatures (
	path    TEXT PRIMARY KEY,
	payload TEXT NOT NULL
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing module cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached Module for absPath, if present.
func (c *Cache) Get(absPath string) (*Module, bool, error) {
	var payload string
	err := c.db.QueryRow(`SELECT payload FROM signatures WHERE path = ?`, absPath).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading module cache: %w", err)
	}
	var mod Module
	if err := json.Unmarshal([]byte(payload), &mod); err != nil {
		return nil, false, fmt.Errorf("decoding cached module %s: %w", absPath, err)
	}
	return &mod, true, nil
}

// Put stores mod's signatures under absPath, replacing any prior entry.
func (c *Cache) Put(absPath string, mod *Module) error {
	payload, err := json.Marshal(mod)
	if err != nil {
		return fmt.Errorf("encoding module %s: %w", absPath, err)
	}
	_, err = c.db.Exec(
		`INSERT INTO signatures (path, payload) VALUES (?, ?)
		 ON CONFLICT(path) DO UPDATE SET payload = excluded.payload`,
		absPath, string(payload),
	)
	if err != nil {
		return fmt.Errorf("writing module cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached entry for absPath — used once the loader's
// caller detects the source has changed since the entry was written.
func (c *Cache) Invalidate(absPath string) error {
	_, err := c.db.Exec(`DELETE FROM signatures WHERE path = ?`, absPath)
	return err
}
