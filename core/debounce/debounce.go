package debounce

import (
	"strings"
	"sync"
	"time"
)

// DefaultDelay is the quiet period before the settled callback fires.
const DefaultDelay = 400 * time.Millisecond

// Debouncer coalesces rapid input into a single settled notification.
// Safe for concurrent use, though input events typically arrive from a
// single UI goroutine.
type Debouncer struct {
	mu        sync.Mutex
	delay     time.Duration
	immediate func(string)
	settled   func(string)
	timer     *time.Timer
	gen       uint64
	pending   string
	stopped   bool
}

// Option configures a Debouncer.
type Option func(*Debouncer)

// WithDelay overrides the default quiet period. Zero is valid and means
// "fire on a subsequent scheduler turn"; negative values are treated as zero.
func WithDelay(d time.Duration) Option {
	return func(db *Debouncer) {
		if d < 0 {
			d = 0
		}
		db.delay = d
	}
}

// New creates a debouncer forwarding every raw value to immediate and the
// trimmed value of the last input in a quiet window to settled. Either
// callback may be nil, in which case it is skipped.
func New(immediate, settled func(string), opts ...Option) *Debouncer {
	db := &Debouncer{
		delay:     DefaultDelay,
		immediate: immediate,
		settled:   settled,
	}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

// Input accepts one input-change event. The raw value is forwarded to the
// immediate observer synchronously; the settled callback is scheduled with
// the trimmed value, superseding any pending schedule.
func (db *Debouncer) Input(raw string) {
	db.mu.Lock()
	if db.stopped {
		db.mu.Unlock()
		return
	}
	db.mu.Unlock()

	if db.immediate != nil {
		db.immediate(raw)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if db.stopped || db.settled == nil {
		return
	}

	db.gen++
	gen := db.gen
	db.pending = strings.TrimSpace(raw)

	if db.timer != nil {
		db.timer.Stop()
	}
	db.timer = time.AfterFunc(db.delay, func() {
		db.fire(gen)
	})
}

// Flush fires the pending settled callback immediately, if any.
func (db *Debouncer) Flush() {
	db.mu.Lock()
	if db.stopped || db.timer == nil {
		db.mu.Unlock()
		return
	}
	// Stop returns false if the timer already fired or is firing; the
	// generation check in fire then resolves the race in its favor.
	if !db.timer.Stop() {
		db.mu.Unlock()
		return
	}
	db.timer = nil
	db.gen++ // invalidate the canceled timer's generation
	value := db.pending
	db.mu.Unlock()

	db.settled(value)
}

// Stop cancels any pending settled callback and disables the debouncer
// permanently. Further Input calls are ignored. Idempotent.
func (db *Debouncer) Stop() {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.stopped = true
	if db.timer != nil {
		db.timer.Stop()
		db.timer = nil
	}
}

// fire runs in the timer goroutine. The generation check discards fires
// superseded by a newer Input, flushed by Flush, or canceled by Stop while
// the timer callback was already in flight.
func (db *Debouncer) fire(gen uint64) {
	db.mu.Lock()
	if db.stopped || gen != db.gen {
		db.mu.Unlock()
		return
	}
	db.timer = nil
	value := db.pending
	db.mu.Unlock()

	db.settled(value)
}
