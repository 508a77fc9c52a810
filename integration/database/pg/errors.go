package pg

import "errors"

var (
	// ErrEmptyConnectionString is returned when no connection string is provided.
	ErrEmptyConnectionString = errors.New("empty postgres connection string")
	// ErrFailedToParseConnString is returned when the connection string is malformed.
	ErrFailedToParseConnString = errors.New("failed to parse postgres connection string")
	// ErrNotReady is returned when the database does not become ready within
	// the configured attempts.
	ErrNotReady = errors.New("postgres did not become ready within the given attempts")
	// ErrHealthcheckFailed is returned when the health check ping fails.
	ErrHealthcheckFailed = errors.New("postgres healthcheck failed")
)
