package threadsafe

import "sync"

// RWLock arbitrates access between any number of concurrent readers and
// a single exclusive writer. At every instant either the writer is
// active and the reader count is zero, or the writer is inactive and any
// number of readers may hold the lock.
//
// Fairness is writer-preferring: once a writer is waiting, new readers
// block until that writer has acquired and released. This bounds writer
// wait time under a continuous stream of arriving readers, at the cost
// of briefly stalling readers behind each writer.
//
// Unbalanced releases are programming errors and panic.
type RWLock struct {
	mu      sync.Mutex
	readOK  *sync.Cond // signaled when readers may proceed
	writeOK *sync.Cond // signaled when a writer may proceed

	readers        int
	writerActive   bool
	writersWaiting int
}

// NewRWLock creates an idle lock.
func NewRWLock() *RWLock {
	l := &RWLock{}
	l.readOK = sync.NewCond(&l.mu)
	l.writeOK = sync.NewCond(&l.mu)
	return l
}

// RLock acquires the lock for reading, blocking while a writer is
// active or waiting. Multiple readers hold the lock simultaneously.
func (l *RWLock) RLock() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for l.writerActive || l.writersWaiting > 0 {
		l.readOK.Wait()
	}
	l.readers++
}

// RUnlock releases one read hold. When the last reader leaves, a waiting
// writer (if any) is woken. Panics if the lock is not held for reading.
func (l *RWLock) RUnlock() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.readers == 0 {
		panic("threadsafe: RUnlock without matching RLock")
	}
	l.readers--
	if l.readers == 0 {
		l.writeOK.Signal()
	}
}

// Lock acquires the lock for writing, blocking until every reader has
// released and no other writer is active.
func (l *RWLock) Lock() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.writersWaiting++
	for l.writerActive || l.readers > 0 {
		l.writeOK.Wait()
	}
	l.writersWaiting--
	l.writerActive = true
}

// Unlock releases the write hold. A further waiting writer takes
// priority; otherwise all blocked readers are woken together. Panics if
// the lock is not held for writing.
func (l *RWLock) Unlock() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.writerActive {
		panic("threadsafe: Unlock without matching Lock")
	}
	l.writerActive = false
	if l.writersWaiting > 0 {
		l.writeOK.Signal()
	} else {
		l.readOK.Broadcast()
	}
}
