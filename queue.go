package threadsafe

import (
	"errors"
	"sync"
)

// ErrClosed is returned by [Queue.Push] after [Queue.Close].
var ErrClosed = errors.New("threadsafe: push on closed queue")

// Queue is an unbounded FIFO channel between producer and consumer
// goroutines. [Queue.Pop] blocks while the queue is empty; [Queue.TryPop]
// never blocks. Every pushed item is delivered to exactly one successful
// Pop or TryPop, in push order.
//
// End of stream is an explicit state: after [Queue.Close], Push returns
// [ErrClosed], already-queued items remain poppable, and once drained Pop
// returns ok=false instead of blocking forever. There is no in-band
// sentinel item; closure is never confusable with payload.
type Queue[T any] struct {
	mu       sync.Mutex
	nonEmpty *sync.Cond // signaled on push and on close
	items    []T
	closed   bool
}

// NewQueue creates an empty, open queue.
func NewQueue[T any]() *Queue[T] {
	q := &Queue[T]{}
	q.nonEmpty = sync.NewCond(&q.mu)
	return q
}

// Push appends v to the tail and wakes one goroutine blocked in [Queue.Pop].
// Returns [ErrClosed] if the queue has been closed; v is not enqueued.
func (q *Queue[T]) Push(v T) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	q.items = append(q.items, v)
	q.mu.Unlock()

	q.nonEmpty.Signal()
	return nil
}

// Pop removes and returns the head item, blocking while the queue is
// empty and open. While blocked the caller holds no lock, so producers
// are never impeded by waiting consumers.
//
// Pop returns ok=false only when the queue is closed and fully drained.
func (q *Queue[T]) Pop() (v T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 && !q.closed {
		q.nonEmpty.Wait()
	}
	if len(q.items) == 0 {
		return v, false
	}
	return q.dequeue(), true
}

// TryPop removes and returns the head item if one is present. It never
// blocks: on an empty queue it returns ok=false immediately, whether or
// not the queue is closed.
func (q *Queue[T]) TryPop() (v T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return v, false
	}
	return q.dequeue(), true
}

// dequeue removes and returns the head. Caller must hold q.mu and have
// checked the queue is non-empty.
func (q *Queue[T]) dequeue() T {
	var zero T
	v := q.items[0]
	q.items[0] = zero // drop the reference so the backing array can free it
	q.items = q.items[1:]
	return v
}

// Len returns the number of queued items. The value is a racy snapshot,
// valid only as a heuristic.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// IsEmpty reports whether the queue was empty at some instant. Like
// [Queue.Len] it is only a heuristic under concurrency.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Close marks the queue as ended and wakes every blocked consumer.
// Items already queued remain deliverable; further pushes fail with
// [ErrClosed]. Close is idempotent.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.nonEmpty.Broadcast()
}
