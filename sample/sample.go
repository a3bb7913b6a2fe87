// Package sample is the catalogue of runnable concurrency
// demonstrations. Each demonstration implements [Sample]: a display name
// and a Run method that writes illustrative output to the given writer.
//
// The catalogue is an explicit, ordered list constructed by [Catalog] at
// program start. There is no init-time self-registration and no mutable
// package-level registry; callers own the list they are handed.
package sample

import "io"

// Sample is one runnable demonstration. Run writes human-readable
// output to w and returns nothing; a demonstration that encounters an
// unexpected condition reports it in its output rather than failing.
type Sample interface {
	// Name returns the display label shown by the harness.
	Name() string

	// Run executes the demonstration, writing its output to w.
	Run(w io.Writer)
}

// Catalog builds the ordered list of demonstrations. Each call returns
// a fresh slice; the order is the presentation order.
func Catalog() []Sample {
	return []Sample{
		dataRace{},
		bankTransfer{},
		producerConsumer{},
		queueRacing{},
		readersWriters{},
		futures{},
	}
}
