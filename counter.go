package threadsafe

import "sync/atomic"

// Counter is a lock-free counter safe for any number of concurrent
// goroutines. Increments from racing goroutines are never lost.
//
// The zero value is ready to use with an initial count of zero.
// Counter makes no ordering promises relative to operations on other
// values; it only guarantees its own operations are atomic.
type Counter struct {
	n atomic.Int64
}

// Inc adds one to the counter.
func (c *Counter) Inc() { c.n.Add(1) }

// Dec subtracts one from the counter.
func (c *Counter) Dec() { c.n.Add(-1) }

// Add adds delta (which may be negative) and returns the new value.
func (c *Counter) Add(delta int64) int64 { return c.n.Add(delta) }

// Load returns the current value.
func (c *Counter) Load() int64 { return c.n.Load() }

// Swap stores v and returns the previous value in one atomic step.
func (c *Counter) Swap(v int64) int64 { return c.n.Swap(v) }
