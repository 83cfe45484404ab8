// Package registry loads monster, item, spawn-weight, and shop-pricing
// definitions from a SQLite database, grounded directly on the teacher's
// cmd/server/db/sqlite.go: one pure-Go driver (modernc.org/sqlite, no cgo),
// one column per field (only generation_weights keeps a JSON column), only
// read by the game server (the connection itself is opened read-write) and
// populated ahead of time by a separate migration binary.
package registry

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	_ "modernc.org/sqlite"
)

// Registry wraps the opened database connection.
type Registry struct {
	db *sql.DB
}

var requiredTables = []string{
	"monsters",
	"items",
	"spells",
	"generation_weights",
	"shop_pricing",
	"npcs",
}

// openRaw opens a plain *sql.DB connection without validating its schema,
// shared by Open and by the roguedata migration CLI (which must connect
// before any table exists).
func openRaw(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry database: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping registry database: %v", err)
	}
	return db, nil
}

// OpenRaw exposes openRaw to the roguedata migration CLI, which must
// connect to the database before any table (and therefore before Open's
// validation) can succeed.
func OpenRaw(path string) (*sql.DB, error) {
	return openRaw(path)
}

// Open connects to the database at path and validates that every table the
// game engine depends on already exists, mirroring InitDatabase/
// validateDatabase's fail-fast "run the migration tool first" behavior.
func Open(path string) (*Registry, error) {
	db, err := openRaw(path)
	if err != nil {
		return nil, err
	}
	r := &Registry{db: db}
	if err := r.validate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("registry validation failed: %v\nrun roguedata -migrate first", err)
	}
	log.Printf("connected to registry database at %s", path)
	return r, nil
}

// DB exposes the underlying connection for packages that need raw access
// (the migration CLI issuing DDL, primarily).
func (r *Registry) DB() *sql.DB { return r.db }

// Close closes the underlying connection.
func (r *Registry) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Registry) validate() error {
	for _, table := range requiredTables {
		var exists int
		err := r.db.QueryRow(`
			SELECT COUNT(*)
			FROM sqlite_master
			WHERE type='table' AND name=?
		`, table).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check for table %s: %v", table, err)
		}
		if exists == 0 {
			return fmt.Errorf("required table %q not found", table)
		}
	}
	return nil
}

func parseJSON(jsonStr string, target interface{}) error {
	if jsonStr == "" {
		return nil
	}
	return json.Unmarshal([]byte(jsonStr), target)
}
