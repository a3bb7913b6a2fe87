package sample

import (
	"fmt"
	"io"
	"sync"

	"github.com/tolgayilmaz86/threadsafe"
)

// bankTransfer demonstrates deadlock-free movement of funds between two
// guarded accounts. Two goroutines transfer in opposite directions at
// the same time; identity-ordered lock acquisition keeps them from
// deadlocking, and the combined balance never changes.
type bankTransfer struct{}

func (bankTransfer) Name() string { return "Guarded Accounts and Transfers" }

func (bankTransfer) Run(w io.Writer) {
	fmt.Fprintln(w, "=== Deposits and Withdrawals ===")
	acct := threadsafe.NewAccount(100)
	acct.Deposit(50)
	fmt.Fprintf(w, "deposited 50, balance: %d\n", acct.Balance())
	if acct.Withdraw(30) {
		fmt.Fprintf(w, "withdrew 30, balance: %d\n", acct.Balance())
	}
	if !acct.Withdraw(1000) {
		fmt.Fprintf(w, "withdrawal of 1000 refused, balance unchanged: %d\n", acct.Balance())
	}

	fmt.Fprintln(w, "\n=== Opposing Concurrent Transfers ===")
	a := threadsafe.NewAccount(1000)
	b := threadsafe.NewAccount(500)
	total := a.Balance() + b.Balance()

	// Opposite lock-argument orders: the classic deadlock shape.
	// Identity-ordered acquisition makes both goroutines take the same
	// lock first.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		threadsafe.Transfer(a, b, 200)
	}()
	go func() {
		defer wg.Done()
		threadsafe.Transfer(b, a, 100)
	}()
	wg.Wait()

	fmt.Fprintf(w, "final balances: A=%d, B=%d\n", a.Balance(), b.Balance())
	fmt.Fprintf(w, "combined balance %d, started with %d\n", a.Balance()+b.Balance(), total)
}
