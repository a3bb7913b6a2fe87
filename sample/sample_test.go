package sample

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogOrder(t *testing.T) {
	got := Catalog()

	var names []string
	for _, s := range got {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{
		"Data Race vs Mutex vs Atomic",
		"Guarded Accounts and Transfers",
		"Producer / Consumer Queue",
		"Racing Consumers (TryPop)",
		"Readers and Writers",
		"Futures and Task Runner",
	}, names)

	got[0] = got[1]
	assert.Equal(t, "Data Race vs Mutex vs Atomic", Catalog()[0].Name(),
		"each call returns a fresh slice")
}

func runSample(t *testing.T, s Sample) string {
	t.Helper()
	var buf bytes.Buffer
	s.Run(&buf)
	out := buf.String()
	require.NotEmpty(t, out, "a demonstration must produce output")
	return out
}

func TestDataRaceOutput(t *testing.T) {
	out := runSample(t, dataRace{})

	assert.Contains(t, out, "=== Lost Updates (no synchronization) ===")
	assert.Contains(t, out, "=== Mutex-Guarded Counter ===\nexpected 40000, observed 40000")
	assert.Contains(t, out, "=== Lock-Free Counter ===\nexpected 40000, observed 40000")
	assert.Contains(t, out, "swapped out 40000, counter now 0")
}

func TestBankTransferOutput(t *testing.T) {
	out := runSample(t, bankTransfer{})

	assert.Contains(t, out, "withdrawal of 1000 refused, balance unchanged: 120")
	assert.Contains(t, out, "final balances: A=900, B=600")
	assert.Contains(t, out, "combined balance 1500, started with 1500")
}

func TestProducerConsumerOutput(t *testing.T) {
	out := runSample(t, producerConsumer{})

	for _, m := range []string{"m0", "m1", "m2", "m3", "m4"} {
		assert.Contains(t, out, "produced "+m)
		assert.Contains(t, out, "consumed "+m)
	}
	assert.Contains(t, out, "queue closed, consumer done")

	// The single consumer must see the items in push order.
	last := -1
	for _, m := range []string{"consumed m0", "consumed m1", "consumed m2", "consumed m3", "consumed m4"} {
		idx := strings.Index(out, m)
		require.Greater(t, idx, last, "%s out of order", m)
		last = idx
	}
}

func TestQueueRacingOutput(t *testing.T) {
	out := runSample(t, queueRacing{})

	assert.Contains(t, out,
		"all 6 items delivered exactly once: [P1-M0 P1-M1 P1-M2 P2-M0 P2-M1 P2-M2]")
	assert.Contains(t, out, "queue drained: true")
}

func TestReadersWritersOutput(t *testing.T) {
	out := runSample(t, readersWriters{})

	assert.Contains(t, out, "active readers while writing: 0",
		"the writer must hold the lock alone")
	assert.Contains(t, out, "shared value after writer: 1")
}

func TestFuturesOutput(t *testing.T) {
	out := runSample(t, futures{})

	assert.Contains(t, out, "results: 100, 400")
	assert.Contains(t, out, "second Get replays: 100")
	assert.Contains(t, out, "failure surfaced at Get: flux capacitor offline")
	assert.Contains(t, out, "panic captured, not fatal: worker tripped")
	assert.Contains(t, out, "pooled result: 5050")
	assert.Contains(t, out, "pool ran 4 tasks on 2 workers, 1 failed")
	assert.Contains(t, out, `task "job-1" failed`)
}
