package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/dataview/core/kv"
)

// KV is a PostgreSQL-backed implementation of kv.Store. Entries live in a
// single table keyed by namespace and key.
type KV struct {
	pool      *pgxpool.Pool
	namespace string
}

// NewKV creates a kv.Store over the given pool, ensuring the backing table
// exists.
func NewKV(ctx context.Context, pool *pgxpool.Pool, namespace string) (*KV, error) {
	const ddl = `
		CREATE TABLE IF NOT EXISTS kv_entries (
			namespace TEXT NOT NULL,
			key       TEXT NOT NULL,
			value     TEXT NOT NULL,
			PRIMARY KEY (namespace, key)
		)`
	if _, err := pool.Exec(ctx, ddl); err != nil {
		return nil, errors.Join(kv.ErrWriteStore, err)
	}
	return &KV{pool: pool, namespace: namespace}, nil
}

// Get returns the value stored under key, or kv.ErrNotFound.
func (s *KV) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", kv.ErrEmptyKey
	}

	var value string
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM kv_entries WHERE namespace = $1 AND key = $2`,
		s.namespace, key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", kv.ErrNotFound
	}
	if err != nil {
		return "", errors.Join(kv.ErrReadStore, err)
	}
	return value, nil
}

// Set stores value under key, overwriting any previous value.
func (s *KV) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return kv.ErrEmptyKey
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO kv_entries (namespace, key, value) VALUES ($1, $2, $3)
		 ON CONFLICT (namespace, key) DO UPDATE SET value = EXCLUDED.value`,
		s.namespace, key, value,
	)
	if err != nil {
		return errors.Join(kv.ErrWriteStore, err)
	}
	return nil
}

// Delete removes the given keys. Missing keys are not an error.
func (s *KV) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	_, err := s.pool.Exec(ctx,
		`DELETE FROM kv_entries WHERE namespace = $1 AND key = ANY($2)`,
		s.namespace, keys,
	)
	if err != nil {
		return errors.Join(kv.ErrWriteStore, err)
	}
	return nil
}
