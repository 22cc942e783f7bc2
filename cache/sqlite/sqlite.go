// Package sqlite implements a persistent cache.VectorStore on a local
// SQLite database: the single-machine default for durable vector
// memoization across process restarts.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // cgo-free sqlite driver

	"github.com/hupe1980/genovec/cache"
	"github.com/hupe1980/genovec/codec"
)

const schema = `
CREATE TABLE IF NOT EXISTS vectors (
	key        TEXT PRIMARY KEY,
	codec      TEXT NOT NULL,
	dim        INTEGER NOT NULL,
	data       BLOB NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Store implements cache.VectorStore on SQLite. Safe for concurrent use;
// racing writers for the same key perform idempotent upserts.
type Store struct {
	db    *sql.DB
	codec codec.Codec
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithCodec overrides the codec used for newly written rows.
func WithCodec(c codec.Codec) StoreOption {
	return func(s *Store) {
		if c != nil {
			s.codec = c
		}
	}
}

// Open opens (or creates) the vector store at path. Pass ":memory:" for an
// ephemeral in-process store.
func Open(path string, optFns ...StoreOption) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache/sqlite: open %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache/sqlite: migrate: %w", err)
	}

	s := &Store{
		db:    db,
		codec: codec.Default,
	}

	for _, fn := range optFns {
		fn(s)
	}

	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load implements cache.VectorStore.
func (s *Store) Load(ctx context.Context, key cache.Key) ([]float64, bool, error) {
	var codecName string
	var data []byte

	err := s.db.QueryRowContext(ctx,
		`SELECT codec, data FROM vectors WHERE key = ?`, string(key),
	).Scan(&codecName, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, false, fmt.Errorf("cache/sqlite: unknown codec %q for key %s", codecName, key)
	}

	v, err := c.Decode(data)
	if err != nil {
		return nil, false, fmt.Errorf("cache/sqlite: decode key %s: %w", key, err)
	}

	return v, true, nil
}

// Save implements cache.VectorStore.
func (s *Store) Save(ctx context.Context, key cache.Key, v []float64) error {
	data, err := s.codec.Encode(v)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO vectors (key, codec, dim, data) VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET codec = excluded.codec, dim = excluded.dim, data = excluded.data`,
		string(key), s.codec.Name(), len(v), data)
	return err
}

// Len returns the number of stored vectors.
func (s *Store) Len(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vectors`).Scan(&n)
	return n, err
}
