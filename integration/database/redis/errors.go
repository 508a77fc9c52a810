package redis

import "errors"

// Sentinel errors for the Redis integration. Connect wraps driver errors
// with these via errors.Join, so callers can branch on errors.Is while
// still seeing the underlying cause.
var (
	ErrEmptyConnectionURL           = errors.New("empty redis connection URL")
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
	ErrHealthcheckFailed            = errors.New("redis healthcheck failed")
)
