package sample

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/tolgayilmaz86/threadsafe"
)

// readersWriters shows a [threadsafe.RWLock] letting readers overlap
// while a writer excludes everyone.
type readersWriters struct{}

func (readersWriters) Name() string { return "Readers and Writers" }

func (readersWriters) Run(w io.Writer) {
	fmt.Fprintln(w, "=== Reader-Writer Lock ===")

	lock := threadsafe.NewRWLock()
	shared := 0

	var active threadsafe.Counter // readers currently inside the lock
	var peak peakTracker          // most readers ever observed together
	writerSawReaders := int64(-1)

	var wg sync.WaitGroup
	reader := func() {
		defer wg.Done()
		lock.RLock()
		peak.observe(active.Add(1))
		time.Sleep(5 * time.Millisecond) // hold the read long enough to overlap
		active.Dec()
		lock.RUnlock()
	}

	wg.Add(3)
	for i := 0; i < 3; i++ {
		go reader()
	}

	// Give the first wave a moment to get inside before the writer queues.
	time.Sleep(time.Millisecond)

	wg.Add(1)
	go func() {
		defer wg.Done()
		lock.Lock()
		writerSawReaders = active.Load()
		shared++
		lock.Unlock()
	}()

	wg.Add(2)
	for i := 0; i < 2; i++ {
		go reader()
	}
	wg.Wait()

	fmt.Fprintf(w, "peak concurrent readers: %d\n", peak.load())
	fmt.Fprintf(w, "active readers while writing: %d\n", writerSawReaders)
	fmt.Fprintf(w, "shared value after writer: %d\n", shared)
}

// peakTracker remembers the largest value it has seen.
type peakTracker struct {
	mu  sync.Mutex
	max int64
}

func (p *peakTracker) observe(v int64) {
	p.mu.Lock()
	if v > p.max {
		p.max = v
	}
	p.mu.Unlock()
}

func (p *peakTracker) load() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.max
}
