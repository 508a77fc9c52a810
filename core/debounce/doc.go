// Package debounce turns a continuous stream of input-change events into a
// bounded rate of settled notifications, while keeping an immediate observer
// synchronized with every keystroke.
//
// A Debouncer owns a single cancelable timer. Each call to Input forwards
// the raw value synchronously to the immediate observer and re-arms the
// timer; the settled callback fires with the trimmed value only after no
// further input has arrived for the configured delay. Only the last value
// within any delay window is ever settled.
//
// Stopping the debouncer cancels any pending settled callback permanently.
// This is a correctness requirement for callers whose settled callback
// touches state that is torn down together with the debouncer: a late fire
// after teardown would touch a destroyed view.
//
// # Usage
//
//	d := debounce.New(
//		func(raw string) { view.SetQueryText(raw) },
//		func(settled string) { store.Search(ctx, settled) },
//	)
//	defer d.Stop()
//
//	// Wire to the input field's change handler:
//	d.Input("p")
//	d.Input("ph")
//	d.Input("phone") // only "phone" settles, 400ms after this call
//
// A zero delay is valid: the settled callback fires on a subsequent
// scheduler turn but is still canceled by a newer Input or by Stop that
// happens first. An empty or whitespace-only value settles as the empty
// string, which callers conventionally treat as "clear search".
package debounce
