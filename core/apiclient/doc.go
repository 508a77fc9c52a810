// Package apiclient is a thin client for the remote listing API consumed by
// the view stores: paginated user and product listings, server-side search,
// per-entity detail records, product categories, and credential
// authentication.
//
// The client issues JSON requests against a fixed base endpoint and decodes
// responses into typed records. Non-2xx responses are converted into a typed
// *Error carrying the HTTP status and the server-provided message, so stores
// can surface a user-facing message without parsing transport details.
//
// Every request carries a generated X-Request-Id header and is logged at
// debug level with its correlation id, method, path, and latency.
//
// # Usage
//
//	var cfg apiclient.Config
//	config.MustLoad(&cfg)
//
//	client := apiclient.New(cfg)
//
//	page, err := client.ListProducts(ctx, 10, 20)
//	if err != nil {
//		var apiErr *apiclient.Error
//		if errors.As(err, &apiErr) {
//			// apiErr.Message is safe to show to the user
//		}
//	}
//
// Request timeouts are owned by the client configuration; callers may pass a
// context with a tighter deadline per call. The listing and search endpoints
// are unauthenticated; only Login touches credentials.
package apiclient
