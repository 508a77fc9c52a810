package kv

import "errors"

var (
	// ErrNotFound is returned when a key has no stored value.
	ErrNotFound = errors.New("key not found")
	// ErrEmptyKey is returned when an empty key is used.
	ErrEmptyKey = errors.New("empty key")
	// ErrEmptyPath is returned when a file store is created without a path.
	ErrEmptyPath = errors.New("empty store path")
	// ErrReadStore is returned when the backing storage cannot be read.
	ErrReadStore = errors.New("failed to read key-value store")
	// ErrWriteStore is returned when the backing storage cannot be written.
	ErrWriteStore = errors.New("failed to write key-value store")
)
