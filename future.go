package threadsafe

import "sync"

// Future holds the eventual outcome of a task running on another
// goroutine. Create one with [Async] or [SubmitResult].
type Future[T any] struct {
	ch chan outcome[T]

	once sync.Once
	val  T
	err  error
}

type outcome[T any] struct {
	val T
	err error
}

// Async runs fn on its own goroutine and returns a [Future] for its
// outcome. fn executes exactly once regardless of how the future is
// consumed. A panic in fn is captured as a [*PanicError] and becomes the
// future's error; it is never re-raised on the worker.
func Async[T any](fn func() (T, error)) *Future[T] {
	if fn == nil {
		panic("threadsafe: Async requires a non-nil function")
	}

	f := newFuture[T]()
	go func() {
		f.ch <- protect(fn)
	}()
	return f
}

func newFuture[T any]() *Future[T] {
	// Buffered so the worker publishes its outcome and exits without
	// waiting for Get.
	return &Future[T]{ch: make(chan outcome[T], 1)}
}

// protect runs fn, converting a panic into a *PanicError outcome.
func protect[T any](fn func() (T, error)) (out outcome[T]) {
	defer func() {
		if r := recover(); r != nil {
			out.err = newPanicError(r)
		}
	}()
	out.val, out.err = fn()
	return out
}

// Get blocks until the task completes, then returns its value and error.
// The channel receive inside Get is what orders the worker's writes
// before the caller's reads: the result is observed only after fn has
// fully finished.
//
// Get is idempotent. The first call consumes the worker's outcome and
// caches it; later calls (from any goroutine) replay the cached result
// without blocking.
func (f *Future[T]) Get() (T, error) {
	f.once.Do(func() {
		o := <-f.ch
		f.val, f.err = o.val, o.err
	})
	return f.val, f.err
}
