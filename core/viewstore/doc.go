// Package viewstore provides the state container behind interactive
// list/detail screens backed by a remote paginated API: one page of items,
// the total matching count, the active filter, the pagination cursor, and
// loading/error flags, together with the transition operations that fetch,
// search, filter, and paginate the collection.
//
// Store is generic over the item type; the users and products collections
// are two instances of the same container, with the products instance
// adding a category dimension through an optional CategorySource.
//
// # Request fencing
//
// Fetches can be issued in rapid succession while earlier ones are still in
// flight, and completions are not ordered. Every fetch captures a
// monotonically increasing sequence token at issue time; a completion only
// commits when its token still matches the latest issued one, otherwise the
// response is discarded and ErrStale is returned. A slow page-2 response can
// therefore never overwrite a newer page-1 state.
//
// # Error surface
//
// Fetch failures never blank the view: the previous items and total stay in
// place and the failure is converted into the LastError field of the
// snapshot, cleared on the next issued fetch. Errors implementing
// UserMessenger (for example *apiclient.Error) contribute their
// user-facing message verbatim.
//
// # Usage
//
//	store := viewstore.New[apiclient.User](source, 10)
//
//	store.SetPage(3)
//	_ = store.FetchPage(ctx)
//
//	snap := store.Snapshot()
//	render(snap.Items, snap.Page, snap.TotalPages())
//
// Operations are safe for concurrent use; state is mutated only under the
// store's internal lock and each commit runs to completion.
package viewstore
