// Package mongo provides MongoDB client initialization with retry logic and
// a MongoDB-backed implementation of the kv.Store interface used for durable
// session persistence.
//
// Connect wraps the official MongoDB Go driver with application-level retry
// optimized for managed deployments such as MongoDB Atlas, where cold starts
// and brief network interruptions could otherwise cause startup failures.
// Connectivity is verified via Ping before the client is returned.
//
// # Configuration
//
//	type Config struct {
//		ConnectionURL   string        `env:"MONGODB_URL,required"`
//		Database        string        `env:"MONGODB_DATABASE" envDefault:"dataview"`
//		Collection      string        `env:"MONGODB_KV_COLLECTION" envDefault:"kv_entries"`
//		ConnectTimeout  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
//		MaxPoolSize     uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`
//		RetryAttempts   int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval   time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"`
//	}
//
// # Usage
//
//	client, err := mongo.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Disconnect(ctx)
//
//	store := mongo.NewKV(client.Database(cfg.Database).Collection(cfg.Collection))
//	sessions, err := authstore.New(authenticator, store)
//
// # Health Checking
//
// Healthcheck returns a function suitable for readiness probes; it pings the
// server and reports failures wrapped in ErrHealthcheckFailed.
package mongo
