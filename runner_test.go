package threadsafe

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerRunsEverything(t *testing.T) {
	r := NewRunner(4)

	var done Counter
	for i := 0; i < 100; i++ {
		require.NoError(t, r.Submit("inc", func() error {
			done.Inc()
			return nil
		}))
	}
	require.NoError(t, r.Close())

	assert.Equal(t, int64(100), done.Load())

	stats := r.Stats()
	assert.Equal(t, int64(100), stats.Submitted)
	assert.Equal(t, int64(100), stats.Completed)
	assert.Equal(t, int64(0), stats.Errored)
	assert.Equal(t, 4, stats.Workers)
}

func TestRunnerCollectsAttributedErrors(t *testing.T) {
	r := NewRunner(2)

	bad := errors.New("bad input")
	require.NoError(t, r.Submit("good", func() error { return nil }))
	require.NoError(t, r.Submit("ugly", func() error { return bad }))

	err := r.Close()
	require.Error(t, err)
	assert.True(t, IsTaskError(err))
	assert.ErrorIs(t, err, bad)
	assert.Equal(t, bad, CauseOf(err))
	assert.Contains(t, err.Error(), `task "ugly" failed`)
}

func TestRunnerSurvivesPanickingTask(t *testing.T) {
	r := NewRunner(1)

	require.NoError(t, r.Submit("wild", func() error { panic("ouch") }))
	require.NoError(t, r.Submit("tame", func() error { return nil }))

	err := r.Close()
	require.Error(t, err)

	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "ouch", pe.Value)

	assert.Equal(t, int64(2), r.Stats().Completed,
		"the worker must outlive the panic and run the next task")
}

func TestRunnerSubmitAfterClose(t *testing.T) {
	r := NewRunner(1)
	require.NoError(t, r.Close())

	err := r.Submit("late", func() error { return nil })
	assert.ErrorIs(t, err, ErrRunnerClosed)
	assert.False(t, r.TrySubmit("late", func() error { return nil }))
}

func TestRunnerCloseIdempotent(t *testing.T) {
	r := NewRunner(1)
	require.NoError(t, r.Submit("bad", func() error { return errors.New("x") }))

	err1 := r.Close()
	err2 := r.Close()
	require.Error(t, err1)
	assert.Equal(t, err1.Error(), err2.Error())
}

func TestRunnerTrySubmitFullQueue(t *testing.T) {
	r := NewRunner(1, WithQueueDepth(0))

	block := make(chan struct{})
	require.NoError(t, r.Submit("block", func() error {
		<-block
		return nil
	}))

	// One task is occupying the only worker and the queue holds nothing,
	// so a non-blocking submit has nowhere to go. Give the worker a
	// moment to pick the first task up.
	time.Sleep(10 * time.Millisecond)
	assert.False(t, r.TrySubmit("overflow", func() error { return nil }))

	close(block)
	require.NoError(t, r.Close())
}

func TestSubmitResultValue(t *testing.T) {
	r := NewRunner(2)
	defer r.Close()

	f := SubmitResult(r, "square", func() (int, error) { return 12 * 12, nil })

	v, err := f.Get()
	require.NoError(t, err)
	assert.Equal(t, 144, v)
}

func TestSubmitResultErrorAttribution(t *testing.T) {
	r := NewRunner(1)
	defer r.Close()

	bad := errors.New("no data")
	f := SubmitResult(r, "fetch", func() (string, error) { return "", bad })

	_, err := f.Get()
	require.Error(t, err)
	assert.True(t, IsTaskError(err))
	assert.ErrorIs(t, err, bad)

	var te *TaskError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "fetch", te.Name)
}

func TestSubmitResultAfterClose(t *testing.T) {
	r := NewRunner(1)
	require.NoError(t, r.Close())

	f := SubmitResult(r, "late", func() (int, error) { return 1, nil })
	_, err := f.Get()
	assert.ErrorIs(t, err, ErrRunnerClosed)
}

func TestRunnerInvalidConstruction(t *testing.T) {
	mustPanic(t, "requires n > 0", func() { NewRunner(0) })
	mustPanic(t, "requires n >= 0", func() { WithQueueDepth(-1) })

	r := NewRunner(1)
	defer r.Close()
	mustPanic(t, "non-nil task", func() { r.Submit("nil", nil) })
}
