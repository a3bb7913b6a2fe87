package threadsafe

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrRunnerClosed is returned by [Runner.Submit] when the runner has
// been closed.
var ErrRunnerClosed = errors.New("threadsafe: runner is closed")

// Runner executes submitted tasks on a fixed set of worker goroutines.
// Submissions return immediately (subject to queue capacity); results
// travel back either through a [Future] (see [SubmitResult]) or through
// the joined error from [Runner.Close].
//
// Each task runs exactly once, on a goroutine other than the
// submitter's. Panics in tasks are captured as [*PanicError] values;
// workers survive them.
type Runner struct {
	tasks  chan job
	wg     sync.WaitGroup
	closed atomic.Bool

	errMu sync.Mutex
	errs  []error

	// Observability counters.
	submitted atomic.Int64
	completed atomic.Int64
	errored   atomic.Int64
	inFlight  atomic.Int64
	workers   int
}

type job struct {
	name string
	fn   func() error
}

// RunnerStats is a point-in-time snapshot of runner activity.
type RunnerStats struct {
	Submitted  int64 // total tasks submitted
	Completed  int64 // tasks finished (success + failure)
	Errored    int64 // tasks that produced a non-nil error or panicked
	InFlight   int64 // tasks currently executing
	QueueDepth int   // tasks waiting in the queue
	Workers    int   // worker count (fixed at creation)
}

// RunnerOption configures a [Runner].
type RunnerOption func(*runnerConfig)

type runnerConfig struct {
	queueDepth int
}

// WithQueueDepth sets the task queue buffer size. Default is workers * 2.
// Panics if n is negative.
func WithQueueDepth(n int) RunnerOption {
	if n < 0 {
		panic("threadsafe: WithQueueDepth requires n >= 0")
	}
	return func(c *runnerConfig) {
		c.queueDepth = n
	}
}

// NewRunner creates a runner with n worker goroutines. Workers start
// immediately and process tasks until [Runner.Close] is called.
// Panics if n <= 0.
func NewRunner(n int, opts ...RunnerOption) *Runner {
	if n <= 0 {
		panic("threadsafe: NewRunner requires n > 0")
	}

	cfg := runnerConfig{queueDepth: n * 2}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Runner{
		tasks:   make(chan job, cfg.queueDepth),
		workers: n,
	}

	r.wg.Add(n)
	for i := 0; i < n; i++ {
		go r.worker()
	}
	return r
}

func (r *Runner) worker() {
	defer r.wg.Done()
	for j := range r.tasks {
		r.runTask(j)
	}
}

func (r *Runner) runTask(j job) {
	r.inFlight.Add(1)
	defer func() {
		r.inFlight.Add(-1)
		r.completed.Add(1)
	}()

	var err error
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				err = newPanicError(rec)
			}
		}()
		err = j.fn()
	}()
	if err != nil {
		r.errored.Add(1)
		r.errMu.Lock()
		r.errs = append(r.errs, &TaskError{Name: j.name, Err: err})
		r.errMu.Unlock()
	}
}

// Submit queues a named task for execution. It blocks if the queue is
// full. Returns [ErrRunnerClosed] if the runner has been closed.
// Panics if fn is nil.
func (r *Runner) Submit(name string, fn func() error) (err error) {
	if fn == nil {
		panic("threadsafe: Submit requires a non-nil task")
	}
	if r.closed.Load() {
		return ErrRunnerClosed
	}

	// Guard against the race between the closed check above and Close()
	// closing the tasks channel. If Close fires between the check and
	// the send, the send panics; recover and report closed.
	defer func() {
		if rec := recover(); rec != nil {
			err = ErrRunnerClosed
		}
	}()

	r.tasks <- job{name: name, fn: fn}
	r.submitted.Add(1)
	return nil
}

// TrySubmit queues a named task without blocking. It reports false if
// the queue is full or the runner is closed. Panics if fn is nil.
func (r *Runner) TrySubmit(name string, fn func() error) (submitted bool) {
	if fn == nil {
		panic("threadsafe: TrySubmit requires a non-nil task")
	}
	if r.closed.Load() {
		return false
	}

	// Same close-race guard as Submit.
	defer func() {
		if rec := recover(); rec != nil {
			submitted = false
		}
	}()

	select {
	case r.tasks <- job{name: name, fn: fn}:
		r.submitted.Add(1)
		return true
	default:
		return false
	}
}

// SubmitResult queues a named task that produces a typed value and
// returns a [Future] for its outcome. The future's error is wrapped in a
// [*TaskError] carrying the task name.
//
// A free function rather than a method because Go methods cannot
// introduce type parameters.
//
// If the runner is already closed, the returned future immediately
// yields [ErrRunnerClosed].
func SubmitResult[T any](r *Runner, name string, fn func() (T, error)) *Future[T] {
	if fn == nil {
		panic("threadsafe: SubmitResult requires a non-nil task")
	}

	f := newFuture[T]()
	err := r.Submit(name, func() error {
		o := protect(fn)
		if o.err != nil {
			o.err = &TaskError{Name: name, Err: o.err}
		}
		f.ch <- o
		// The failure already reached the caller through the future;
		// do not double-report it to the runner's error list.
		return nil
	})
	if err != nil {
		f.ch <- outcome[T]{err: err}
	}
	return f
}

// Stats returns a snapshot of runner activity. Safe to call concurrently.
func (r *Runner) Stats() RunnerStats {
	return RunnerStats{
		Submitted:  r.submitted.Load(),
		Completed:  r.completed.Load(),
		Errored:    r.errored.Load(),
		InFlight:   r.inFlight.Load(),
		QueueDepth: len(r.tasks),
		Workers:    r.workers,
	}
}

// Close stops accepting submissions, waits for queued and in-flight
// tasks to finish, and returns every captured failure joined via
// [errors.Join] (nil if all tasks succeeded). Close is idempotent;
// later calls report the same failures.
func (r *Runner) Close() error {
	if r.closed.CompareAndSwap(false, true) {
		close(r.tasks)
	}
	r.wg.Wait()

	r.errMu.Lock()
	defer r.errMu.Unlock()
	return errors.Join(r.errs...)
}
