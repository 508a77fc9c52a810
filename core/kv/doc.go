// Package kv provides a minimal durable key-value storage abstraction used
// for persisting small pieces of client state, such as the authenticated
// session, across process restarts.
//
// The Store interface is deliberately tiny: Get, Set, and a variadic Delete
// so that logically paired entries (for example a credential token and its
// principal record) can be removed in a single call.
//
// # Implementations
//
// Two implementations ship with this package:
//
//   - Memory: process-local map guarded by a mutex, useful for tests and
//     for shells that do not need persistence.
//   - File: a single JSON document on disk, the closest Go analog to a
//     browser's localStorage. Writes go through a temp file and rename so
//     a crash mid-write never leaves a truncated store behind.
//
// Backing-service implementations live under integration/database
// (Redis and PostgreSQL adapters).
//
// # Usage
//
//	store, err := kv.NewFile(filepath.Join(dir, "session.json"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := store.Set(ctx, "token", tok); err != nil {
//		log.Fatal(err)
//	}
//
//	val, err := store.Get(ctx, "token")
//	if errors.Is(err, kv.ErrNotFound) {
//		// no persisted value
//	}
//
// All implementations are safe for concurrent use.
package kv
