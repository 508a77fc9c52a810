// Package dataview is a client-side data-view layer mediating between
// interactive list/detail screens and a remote paginated REST API. It owns
// the coordination of asynchronous fetch/search/filter/paginate operations
// against mutable view state without stale overwrites, the debouncing of
// rapid user input into a bounded rate of network requests, and the
// persistence and rehydration of an authentication session across process
// restarts.
//
// # Package Organization
//
// Core packages provide the state containers and their collaborators:
//
//	github.com/dmitrymomot/dataview/core/apiclient - typed client for the remote listing API
//	github.com/dmitrymomot/dataview/core/authstore - session store with durable persistence
//	github.com/dmitrymomot/dataview/core/config    - type-safe environment variable loading
//	github.com/dmitrymomot/dataview/core/debounce  - debounced input controller
//	github.com/dmitrymomot/dataview/core/kv        - durable key-value storage abstraction
//	github.com/dmitrymomot/dataview/core/logger    - structured logging attribute helpers
//	github.com/dmitrymomot/dataview/core/viewstore - collection view store with request fencing
//
// Utility and integration packages:
//
//	github.com/dmitrymomot/dataview/pkg/async                  - generic futures for concurrent fetches
//	github.com/dmitrymomot/dataview/integration/database/redis - Redis-backed kv.Store
//	github.com/dmitrymomot/dataview/integration/database/pg    - PostgreSQL-backed kv.Store
//	github.com/dmitrymomot/dataview/integration/database/mongo - MongoDB-backed kv.Store
//
// The root package wires these together: NewUserStore and NewProductStore
// bind the API client to collection view stores, NewSessionStore binds it
// to the session store, and Prefetch warms both collections concurrently.
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/dmitrymomot/dataview/core/viewstore
//	go doc -all github.com/dmitrymomot/dataview/core/authstore
package dataview
