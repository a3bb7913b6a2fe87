package sample

import (
	"fmt"
	"io"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tolgayilmaz86/threadsafe"
)

// producerConsumer runs one producer and one blocking consumer over a
// [threadsafe.Queue]. The stream ends with an explicit Close, not a
// sentinel item mixed into the payload.
type producerConsumer struct{}

func (producerConsumer) Name() string { return "Producer / Consumer Queue" }

func (producerConsumer) Run(w io.Writer) {
	fmt.Fprintln(w, "=== Blocking Producer / Consumer ===")
	q := threadsafe.NewQueue[string]()

	var mu sync.Mutex // serializes demo output lines
	var g errgroup.Group

	g.Go(func() error {
		for i := 0; i < 5; i++ {
			msg := fmt.Sprintf("m%d", i)
			if err := q.Push(msg); err != nil {
				return err
			}
			mu.Lock()
			fmt.Fprintf(w, "produced %s\n", msg)
			mu.Unlock()
		}
		q.Close()
		return nil
	})

	g.Go(func() error {
		for {
			msg, ok := q.Pop()
			if !ok {
				mu.Lock()
				fmt.Fprintln(w, "queue closed, consumer done")
				mu.Unlock()
				return nil
			}
			mu.Lock()
			fmt.Fprintf(w, "consumed %s\n", msg)
			mu.Unlock()
		}
	})

	if err := g.Wait(); err != nil {
		fmt.Fprintf(w, "unexpected queue error: %v\n", err)
	}
}

// queueRacing runs two producers against two consumers using the
// non-blocking TryPop. Every pushed item is received by exactly one
// consumer; nothing is duplicated or dropped.
type queueRacing struct{}

func (queueRacing) Name() string { return "Racing Consumers (TryPop)" }

func (queueRacing) Run(w io.Writer) {
	const producers, perProducer, consumers = 2, 3, 2
	const total = int64(producers * perProducer)

	fmt.Fprintln(w, "=== Non-Blocking Racing Consumers ===")
	q := threadsafe.NewQueue[string]()

	var g errgroup.Group
	for p := 0; p < producers; p++ {
		p := p
		g.Go(func() error {
			for i := 0; i < perProducer; i++ {
				if err := q.Push(fmt.Sprintf("P%d-M%d", p+1, i)); err != nil {
					return err
				}
			}
			return nil
		})
	}

	received := make([][]string, consumers)
	var taken threadsafe.Counter
	for c := 0; c < consumers; c++ {
		c := c
		g.Go(func() error {
			for taken.Load() < total {
				msg, ok := q.TryPop()
				if !ok {
					runtime.Gosched()
					continue
				}
				taken.Inc()
				received[c] = append(received[c], msg)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintf(w, "unexpected queue error: %v\n", err)
		return
	}

	var all []string
	for c, msgs := range received {
		fmt.Fprintf(w, "consumer %d received %d items\n", c+1, len(msgs))
		all = append(all, msgs...)
	}
	sort.Strings(all)
	fmt.Fprintf(w, "all %d items delivered exactly once: %v\n", len(all), all)
	fmt.Fprintf(w, "queue drained: %v\n", q.IsEmpty())
}
