package threadsafe

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// accountSeq hands out account IDs. IDs only need to be unique and
// totally ordered within the process; they are never reused.
var accountSeq atomic.Uint64

// Account is a balance protected by its own mutex. Every read and write
// of the balance happens while the mutex is held; the balance is never
// exposed by reference.
//
// Each account carries a process-unique ID assigned at creation. The ID
// exists solely to give accounts a total order, which [Transfer] uses to
// acquire both locks consistently and avoid deadlock.
type Account struct {
	id uint64

	mu      sync.Mutex
	balance int64
}

// NewAccount creates an account with the given starting balance.
// Panics if initial is negative.
func NewAccount(initial int64) *Account {
	if initial < 0 {
		panic("threadsafe: NewAccount requires initial >= 0")
	}
	return &Account{
		id:      accountSeq.Add(1),
		balance: initial,
	}
}

// Deposit adds amount to the balance. Deposits always succeed.
// Panics if amount is not positive.
func (a *Account) Deposit(amount int64) {
	checkAmount("Deposit", amount)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance += amount
}

// Withdraw subtracts amount from the balance if the funds are available.
// It reports whether the withdrawal happened; on false the balance is
// untouched. Panics if amount is not positive.
func (a *Account) Withdraw(amount int64) bool {
	checkAmount("Withdraw", amount)

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.balance < amount {
		return false
	}
	a.balance -= amount
	return true
}

// Balance returns a point-in-time snapshot of the balance. The value may
// be stale the moment it is returned if other goroutines are active.
func (a *Account) Balance() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Transfer atomically moves amount from one account to another. Both
// account locks are held while the balances change, so no observer can
// see the money in flight or missing.
//
// The locks are acquired in ascending account-ID order, not argument
// order. Two concurrent transfers in opposite directions therefore
// contend on the same first lock instead of deadlocking on each other.
//
// Transfer reports whether the move happened; on false (insufficient
// funds) neither balance changes. The sum of the two balances is
// invariant under any number of concurrent transfers.
//
// Panics if either account is nil or amount is not positive.
func Transfer(from, to *Account, amount int64) bool {
	if from == nil || to == nil {
		panic("threadsafe: Transfer requires non-nil accounts")
	}
	checkAmount("Transfer", amount)

	// Self-transfer: one account, one lock. Locking twice would
	// self-deadlock.
	if from == to {
		from.mu.Lock()
		defer from.mu.Unlock()
		return from.balance >= amount
	}

	first, second := from, to
	if second.id < first.id {
		first, second = second, first
	}

	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if from.balance < amount {
		return false
	}
	from.balance -= amount
	to.balance += amount
	return true
}

func checkAmount(op string, amount int64) {
	if amount <= 0 {
		panic(fmt.Sprintf("threadsafe: %s requires amount > 0", op))
	}
}
