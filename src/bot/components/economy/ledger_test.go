package economy

import "testing"

func TestLedgerDefaultsToZero(t *testing.T) {
	l := NewLedger()
	if got := l.Balance("123"); got != 0 {
		t.Fatalf("expected 0 for unknown user, got %d", got)
	}
}

func TestLedgerCredit(t *testing.T) {
	l := NewLedger()

	if got := l.Credit("123", 50); got != 50 {
		t.Fatalf("expected 50 after first credit, got %d", got)
	}
	if got := l.Credit("123", 25); got != 75 {
		t.Fatalf("expected 75 after second credit, got %d", got)
	}

	// other users are unaffected
	if got := l.Balance("456"); got != 0 {
		t.Fatalf("expected 0 for other user, got %d", got)
	}
}

func TestLedgerCreditIgnoresNonPositive(t *testing.T) {
	l := NewLedger()
	l.Credit("123", 10)

	if got := l.Credit("123", 0); got != 10 {
		t.Fatalf("zero credit changed balance to %d", got)
	}
	if got := l.Credit("123", -5); got != 10 {
		t.Fatalf("negative credit changed balance to %d", got)
	}
}

func TestLedgerDebitFloorsAtZero(t *testing.T) {
	l := NewLedger()
	l.Credit("123", 30)

	if got := l.Debit("123", 10); got != 20 {
		t.Fatalf("expected 20 after debit, got %d", got)
	}
	if got := l.Debit("123", 100); got != 0 {
		t.Fatalf("expected floor at 0, got %d", got)
	}
	if got := l.Debit("123", 5); got != 0 {
		t.Fatalf("expected 0 after debit from empty, got %d", got)
	}
}
