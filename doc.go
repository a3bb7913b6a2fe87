// Package threadsafe provides in-process coordination primitives:
// guarded shared state, deadlock-free multi-lock transfer, a blocking
// producer/consumer queue, a reader-writer lock, and asynchronous task
// execution with typed result retrieval.
//
// The primitives are independent of each other; each coordinates its
// callers solely through its own internal lock and condition state.
// None of them supports cancellation or timeouts — a caller that needs
// bounded waiting wraps the blocking call externally.
//
// # Guarded Accounts
//
// [Account] is a balance readable and writable only through guarded
// operations ([Account.Deposit], [Account.Withdraw], [Account.Balance]).
// [Transfer] mutates two accounts under both of their guards, acquiring them
// in a fixed identity order so opposing concurrent transfers cannot
// deadlock. Insufficient funds is a value-level outcome (false), not an
// error.
//
// # Lock-Free Counting
//
// [Counter] counts across goroutines without a lock; concurrent
// increments are never lost. [Counter.Swap] exchanges the value
// atomically.
//
// # Blocking Queue
//
// [Queue] is a FIFO channel between producers and consumers.
// [Queue.Pop] blocks while the queue is empty; [Queue.TryPop] never
// blocks. Each pushed item is delivered exactly once, in push order.
// [Queue.Close] ends the stream explicitly: queued items drain, then
// Pop reports ok=false. No sentinel item is ever mixed into the payload
// stream.
//
// # Reader-Writer Lock
//
// [RWLock] admits many simultaneous readers or one exclusive writer.
// The policy is writer-preferring: a waiting writer blocks new readers,
// bounding writer wait under continuous reader arrival.
//
// # Futures
//
// [Async] runs a function on its own goroutine and returns a [Future];
// [Future.Get] blocks until completion and then replays the cached
// outcome on every subsequent call. Panics in the task surface as
// [*PanicError] values from Get, on the caller's goroutine.
//
// [Runner] is a fixed-size worker pool for many submissions:
// [Runner.Submit] for fire-and-forget tasks whose failures are
// collected (wrapped in [*TaskError]) and returned by [Runner.Close],
// [SubmitResult] for tasks whose typed outcome travels back through a
// [Future]. [Runner.Stats] exposes activity counters.
//
// # Failure Model
//
// Recoverable conditions stay value-level: Withdraw/Transfer report
// false, TryPop reports ok=false, Push on a closed queue returns
// [ErrClosed]. Worker failures are deferred and replayed at the
// retrieval boundary ([Future.Get], [Runner.Close]). Misuse — releasing
// a lock that is not held, non-positive amounts, nil tasks — panics
// loudly rather than being tolerated.
package threadsafe
