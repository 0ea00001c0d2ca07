package economy

import "sync"

// Ledger tracks per-user Snow Crystal balances for the lifetime of the
// process. Balances are cosmetic and intentionally not persisted; a restart
// wipes them.
type Ledger struct {
	mu       sync.Mutex
	balances map[string]int
}

func NewLedger() *Ledger {
	return &Ledger{balances: make(map[string]int)}
}

// Balance returns the current balance, 0 for unknown users.
func (l *Ledger) Balance(userID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[userID]
}

// Credit adds amount to the user's balance and returns the new balance.
// Non-positive amounts leave the balance untouched.
func (l *Ledger) Credit(userID string, amount int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount > 0 {
		l.balances[userID] += amount
	}
	return l.balances[userID]
}

// Debit subtracts amount from the user's balance, flooring at zero rather
// than failing on insufficient funds, and returns the new balance.
func (l *Ledger) Debit(userID string, amount int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount > 0 {
		next := l.balances[userID] - amount
		if next < 0 {
			next = 0
		}
		l.balances[userID] = next
	}
	return l.balances[userID]
}
