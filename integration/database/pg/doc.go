// Package pg provides PostgreSQL connection management with retry logic and
// a PostgreSQL-backed implementation of the kv.Store interface used for
// durable session persistence.
//
// Connect creates a pgxpool with application-level retry and verifies
// connectivity before returning. The KV adapter stores entries in a single
// table created on first use, keyed by namespace and key, so several
// independent stores can share one database.
//
// # Configuration
//
//	type Config struct {
//		ConnectionString  string        `env:"PG_CONN_URL,required"`
//		MaxOpenConns      int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
//		RetryAttempts     int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval     time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"`
//		HealthCheckPeriod time.Duration `env:"PG_HEALTHCHECK_PERIOD" envDefault:"1m"`
//		Namespace         string        `env:"PG_KV_NAMESPACE" envDefault:"dataview"`
//	}
//
// # Usage
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pool.Close()
//
//	store, err := pg.NewKV(ctx, pool, cfg.Namespace)
//	if err != nil {
//		log.Fatal(err)
//	}
//	sessions, err := authstore.New(authenticator, store)
//
// # Health Checking
//
// Healthcheck returns a function suitable for readiness probes; it pings
// the pool and reports failures wrapped in ErrHealthcheckFailed.
package pg
