package domain

import (
	"errors"
	"time"
)

// TransactionType distinguishes two-account transfers from external credits.
type TransactionType string

const (
	TypeTransfer TransactionType = "TRANSFER"
	TypeCredit   TransactionType = "CREDIT"
)

// Transaction is one row of the append-only audit log. It is never
// updated or deleted once created. A nil FromAccountID marks an
// external credit (deposit).
type Transaction struct {
	ID            int64
	Reference     string
	FromAccountID *int64
	ToAccountID   int64
	Amount        Money
	Type          TransactionType
	CreatedAt     time.Time
}

// Validate checks the invariants of a transaction record before insert.
func (t *Transaction) Validate() error {
	if t.Amount.IsZeroOrNegative() {
		return ErrInvalidAmount
	}

	if t.Type == TypeTransfer && t.FromAccountID == nil {
		return errors.New("transfer record has no source account")
	}

	if t.Type == TypeCredit && t.FromAccountID != nil {
		return errors.New("credit record must not have a source account")
	}

	return nil
}
