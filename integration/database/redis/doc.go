// Package redis provides Redis client initialization with connection
// validation and a Redis-backed implementation of the kv.Store interface
// used for durable session persistence.
//
// Connect validates the connection URL, attempts the connection with
// retries, and verifies connectivity with a ping before returning the
// client. The KV adapter stores each key under a configurable prefix so a
// shared Redis instance can hold several independent stores.
//
// # Configuration
//
//	type Config struct {
//		ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"`
//		RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
//		ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
//		KeyPrefix      string        `env:"REDIS_KEY_PREFIX" envDefault:"dataview:"`
//	}
//
// Both redis:// and rediss:// (TLS) URL schemes are supported.
//
// # Usage
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	store := redis.NewKV(client, cfg.KeyPrefix)
//	sessions, err := authstore.New(authenticator, store)
//
// # Health Checking
//
// Healthcheck returns a function suitable for readiness probes:
//
//	check := redis.Healthcheck(client)
//	if err := check(ctx); err != nil {
//		// Redis unreachable
//	}
//
// # Error Handling
//
// The package defines domain-specific errors checked with errors.Is():
// ErrFailedToParseRedisConnString, ErrRedisNotReady, ErrEmptyConnectionURL,
// and ErrHealthcheckFailed. They wrap the underlying go-redis errors while
// providing stable types for application-level handling.
package redis
