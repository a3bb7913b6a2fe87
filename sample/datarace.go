package sample

import (
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/tolgayilmaz86/threadsafe"
)

const (
	raceWorkers    = 4
	raceIncrements = 10000
)

// dataRace contrasts a counter with an unsynchronized read-modify-write
// cycle against a mutex-guarded counter and [threadsafe.Counter].
type dataRace struct{}

func (dataRace) Name() string { return "Data Race vs Mutex vs Atomic" }

func (dataRace) Run(w io.Writer) {
	want := int64(raceWorkers * raceIncrements)

	fmt.Fprintln(w, "=== Lost Updates (no synchronization) ===")
	got := runLossyCounter()
	fmt.Fprintf(w, "expected %d, observed %d\n", want, got)
	if got < want {
		fmt.Fprintf(w, "lost %d updates in the load/store gap\n", want-got)
	} else {
		fmt.Fprintln(w, "no updates lost this run; the gap is still a defect")
	}

	fmt.Fprintln(w, "\n=== Mutex-Guarded Counter ===")
	fmt.Fprintf(w, "expected %d, observed %d\n", want, runMutexCounter())

	fmt.Fprintln(w, "\n=== Lock-Free Counter ===")
	var c threadsafe.Counter
	runWorkers(func() {
		for i := 0; i < raceIncrements; i++ {
			c.Inc()
		}
	})
	fmt.Fprintf(w, "expected %d, observed %d\n", want, c.Load())

	old := c.Swap(0)
	fmt.Fprintf(w, "swapped out %d, counter now %d\n", old, c.Load())
}

// runLossyCounter increments through a separated load and store. The
// window between them is where concurrent increments overwrite each
// other. The accesses themselves are atomic, so this demonstrates lost
// updates without an undefined data race.
func runLossyCounter() int64 {
	var n atomic.Int64
	runWorkers(func() {
		for i := 0; i < raceIncrements; i++ {
			v := n.Load()
			if i%64 == 0 {
				runtime.Gosched() // widen the window
			}
			n.Store(v + 1)
		}
	})
	return n.Load()
}

func runMutexCounter() int64 {
	var mu sync.Mutex
	var n int64
	runWorkers(func() {
		for i := 0; i < raceIncrements; i++ {
			mu.Lock()
			n++
			mu.Unlock()
		}
	})
	return n
}

func runWorkers(fn func()) {
	var wg sync.WaitGroup
	wg.Add(raceWorkers)
	for i := 0; i < raceWorkers; i++ {
		go func() {
			defer wg.Done()
			fn()
		}()
	}
	wg.Wait()
}
