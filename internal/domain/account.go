package domain

import (
	"time"
)

// AccountStatus is the lifecycle state of an account.
type AccountStatus string

const (
	AccountOpen   AccountStatus = "OPEN"
	AccountClosed AccountStatus = "CLOSED"
)

// Account is the in-memory snapshot of one account's mutable state.
// Debit, Credit and the assertions are pure state transitions: the
// calling engine loads the snapshot, applies the transition and
// persists it within a unit of work.
type Account struct {
	ID        int64
	Number    string
	BIK       string
	Balance   Money
	Status    AccountStatus
	ClientID  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Debit reduces the balance by amount. It fails with an
// InsufficientFundsError when the balance is below amount; the balance
// never goes negative.
func (a *Account) Debit(amount Money) error {
	cmp, err := a.Balance.Cmp(amount)
	if err != nil {
		return err
	}

	if cmp < 0 {
		return &InsufficientFundsError{AccountID: a.ID, Balance: a.Balance, Requested: amount}
	}

	newBalance, err := a.Balance.Sub(amount)
	if err != nil {
		return err
	}

	a.Balance = newBalance

	return nil
}

// Credit increases the balance by amount. The engine validates that
// amount is positive before calling.
func (a *Account) Credit(amount Money) error {
	newBalance, err := a.Balance.Add(amount)
	if err != nil {
		return err
	}

	a.Balance = newBalance

	return nil
}

// AssertOpen fails with a ClosedError when the account is closed.
func (a *Account) AssertOpen() error {
	if a.Status == AccountClosed {
		return &ClosedError{AccountID: a.ID}
	}

	return nil
}

// AssertCurrency fails with a CurrencyMismatchError when the account
// currency differs from expected.
func (a *Account) AssertCurrency(expected Currency) error {
	if a.Balance.Currency() != expected {
		return &CurrencyMismatchError{Want: a.Balance.Currency(), Got: expected}
	}

	return nil
}

// Currency returns the account currency, fixed at creation.
func (a *Account) Currency() Currency {
	return a.Balance.Currency()
}
