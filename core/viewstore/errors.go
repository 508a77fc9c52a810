package viewstore

import "errors"

var (
	// ErrStale is returned when a completed fetch was superseded by a newer
	// one and its response was discarded.
	ErrStale = errors.New("stale response discarded")
	// ErrNoCategorySource is returned when a category operation is invoked
	// on a store constructed without a category source.
	ErrNoCategorySource = errors.New("store has no category source")
	// ErrNoDetailSource is returned when FetchByID is invoked on a store
	// constructed without a detail source.
	ErrNoDetailSource = errors.New("store has no detail source")
	// ErrNilSource is returned when a store is created without a source.
	ErrNilSource = errors.New("nil source")
	// ErrInvalidPageSize is returned when a store is created with a
	// non-positive page size.
	ErrInvalidPageSize = errors.New("page size must be positive")
)
