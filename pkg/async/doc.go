// Package async provides utilities for asynchronous programming with Go generics.
//
// This package implements a Future pattern for non-blocking operations with
// timeout support and coordination utilities for managing multiple
// asynchronous computations.
//
// # Usage
//
// Basic asynchronous operation:
//
//	future := async.Async(ctx, 3, func(ctx context.Context, page int) (ProductPage, error) {
//		return client.ListProducts(ctx, 10, (page-1)*10)
//	})
//
//	// Do other work...
//
//	page, err := future.Await()
//
// Using timeout:
//
//	page, err := future.AwaitWithTimeout(50 * time.Millisecond)
//	if errors.Is(err, async.ErrTimeout) {
//		// operation still in flight
//	}
//
// WaitAll waits for all futures to complete and returns their results in
// order; the first error encountered wins.
//
// # Concurrency Safety
//
// All operations are safe for concurrent use. Each Async call spawns exactly
// one goroutine; context cancellation is checked before execution to prevent
// work on pre-canceled contexts.
package async
