// Package authstore holds the authenticated principal and credential token
// for the lifetime of the process and persists them across restarts through
// a durable key-value store.
//
// The principal and token are a pair: the store never commits or persists
// one without the other. Login performs the remote authentication call and,
// on success, persists both entries before committing them to memory.
// Logout clears both unconditionally. Hydrate restores a previously
// persisted session and treats any half-present or unparsable state as
// corrupted, deleting both entries rather than operating on a half-valid
// session.
//
// # Route guarding
//
// IsAuthenticated treats in-memory state as authoritative once the store
// has hydrated (or completed any login/logout). During the brief window
// before Hydrate has run, it falls back to checking durable storage
// directly, so a page reload does not flash-redirect an authenticated user
// to the login screen.
//
// # Usage
//
//	store := authstore.New(authenticator, kvStore)
//
//	if err := store.Hydrate(ctx); err != nil {
//		log.Fatal(err)
//	}
//
//	if err := store.Login(ctx, "emilys", "emilyspass"); err != nil {
//		// store.LastError() carries the user-facing message
//	}
//
// Login is the one operation that re-signals failure to its caller, so the
// caller can decide whether to navigate forward; the error is also recorded
// on the store for reactive rendering.
package authstore
