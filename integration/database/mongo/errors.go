package mongo

import "errors"

// Domain-specific MongoDB errors for consistent error handling across the application.
// Use errors.Is() to check error types for retry logic and user-facing messages.
var (
	ErrEmptyConnectionURL = errors.New("empty mongodb connection URL")
	ErrMongoNotReady      = errors.New("mongodb did not become ready within the given time period")
	ErrHealthcheckFailed  = errors.New("mongodb healthcheck failed")
)
