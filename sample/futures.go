package sample

import (
	"errors"
	"fmt"
	"io"

	"github.com/tolgayilmaz86/threadsafe"
)

// futures demonstrates asynchronous execution with deferred result and
// failure retrieval, plus the fixed worker pool.
type futures struct{}

func (futures) Name() string { return "Futures and Task Runner" }

func (futures) Run(w io.Writer) {
	fmt.Fprintln(w, "=== Async Futures ===")

	square := func(x int) *threadsafe.Future[int] {
		return threadsafe.Async(func() (int, error) {
			return x * x, nil
		})
	}

	f1 := square(10)
	f2 := square(20)
	fmt.Fprintln(w, "tasks started, doing other work...")

	v1, _ := f1.Get()
	v2, _ := f2.Get()
	fmt.Fprintf(w, "results: %d, %d\n", v1, v2)

	// Get replays the cached result; the work ran exactly once.
	again, _ := f1.Get()
	fmt.Fprintf(w, "second Get replays: %d\n", again)

	fmt.Fprintln(w, "\n=== Deferred Failures ===")
	boom := threadsafe.Async(func() (int, error) {
		return 0, errors.New("flux capacitor offline")
	})
	if _, err := boom.Get(); err != nil {
		fmt.Fprintf(w, "failure surfaced at Get: %v\n", err)
	}

	scare := threadsafe.Async(func() (int, error) {
		panic("worker tripped")
	})
	if _, err := scare.Get(); err != nil {
		var pe *threadsafe.PanicError
		if errors.As(err, &pe) {
			fmt.Fprintf(w, "panic captured, not fatal: %v\n", pe.Value)
		}
	}

	fmt.Fprintln(w, "\n=== Worker Pool ===")
	r := threadsafe.NewRunner(2)

	sum := threadsafe.SubmitResult(r, "sum", func() (int, error) {
		total := 0
		for i := 1; i <= 100; i++ {
			total += i
		}
		return total, nil
	})

	for i := 0; i < 3; i++ {
		name := fmt.Sprintf("job-%d", i)
		fail := i == 1
		_ = r.Submit(name, func() error {
			if fail {
				return errors.New("bad input")
			}
			return nil
		})
	}

	if v, err := sum.Get(); err == nil {
		fmt.Fprintf(w, "pooled result: %d\n", v)
	}

	err := r.Close()
	stats := r.Stats()
	fmt.Fprintf(w, "pool ran %d tasks on %d workers, %d failed\n",
		stats.Completed, stats.Workers, stats.Errored)
	if threadsafe.IsTaskError(err) {
		fmt.Fprintf(w, "failure attributed: %v\n", err)
	}
}
