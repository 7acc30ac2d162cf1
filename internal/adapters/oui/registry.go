package oui

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is one OUI assignment.
type Entry struct {
	Prefix string // XX:XX:XX
	Vendor string
}

// Registry looks up vendors in an SQLite OUI table, with an LRU cache in
// front of it. It implements ports.VendorLookup.
type Registry struct {
	db     *sql.DB
	cache  *prefixCache
	mu     sync.RWMutex
	closed bool

	lookupStmt *sql.Stmt
}

// Open opens or creates the registry at path. ":memory:" is accepted and
// pins the pool to one connection so every query sees the same database.
func Open(path string, cache CacheConfig) (*Registry, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &DatabaseError{Op: "open", Err: err}
	}

	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(4)
		db.SetConnMaxLifetime(time.Hour)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &DatabaseError{Op: "ping", Err: err}
	}

	_, err = db.Exec(`
	CREATE TABLE IF NOT EXISTS oui_registry (
		prefix TEXT PRIMARY KEY,
		vendor TEXT NOT NULL
	);`)
	if err != nil {
		db.Close()
		return nil, &DatabaseError{Op: "initialize_schema", Err: err}
	}

	stmt, err := db.Prepare("SELECT vendor FROM oui_registry WHERE prefix = ?")
	if err != nil {
		db.Close()
		return nil, &DatabaseError{Op: "prepare_statement", Err: err}
	}

	return &Registry{db: db, cache: newPrefixCache(cache), lookupStmt: stmt}, nil
}

// LookupVendor returns the vendor registered for the OUI of mac.
func (r *Registry) LookupVendor(ctx context.Context, mac string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return "", ErrRegistryClosed
	}

	prefix, err := Prefix(mac)
	if err != nil {
		return "", err
	}

	if vendor, ok := r.cache.lookup(prefix); ok {
		if vendor == "" {
			return "", ErrVendorNotFound
		}
		return vendor, nil
	}

	var vendor string
	err = r.lookupStmt.QueryRowContext(ctx, prefix).Scan(&vendor)
	if errors.Is(err, sql.ErrNoRows) {
		r.cache.remember(prefix, "")
		return "", ErrVendorNotFound
	}
	if err != nil {
		return "", &DatabaseError{Op: "lookup", Err: err}
	}

	r.cache.remember(prefix, vendor)
	return vendor, nil
}

// Insert upserts entries in one transaction.
func (r *Registry) Insert(ctx context.Context, entries []Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrRegistryClosed
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return &DatabaseError{Op: "begin_transaction", Err: err}
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "INSERT OR REPLACE INTO oui_registry (prefix, vendor) VALUES (?, ?)")
	if err != nil {
		return &DatabaseError{Op: "prepare_insert", Err: err}
	}
	defer stmt.Close()

	prefixes := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.Prefix, e.Vendor); err != nil {
			return &DatabaseError{Op: "insert", Err: err}
		}
		prefixes = append(prefixes, e.Prefix)
	}

	if err := tx.Commit(); err != nil {
		return &DatabaseError{Op: "commit_transaction", Err: err}
	}

	r.cache.forget(prefixes)
	return nil
}

// Count returns the number of registered prefixes.
func (r *Registry) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return 0, ErrRegistryClosed
	}

	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM oui_registry").Scan(&n); err != nil {
		return 0, &DatabaseError{Op: "count", Err: err}
	}
	return n, nil
}

// CacheStats reports how the lookup cache has performed so far.
func (r *Registry) CacheStats() CacheStats {
	return r.cache.snapshot()
}

// Close releases the prepared statement and the database.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	r.lookupStmt.Close()
	return r.db.Close()
}
