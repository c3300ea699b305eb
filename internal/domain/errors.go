package domain

import (
	"errors"
	"fmt"
)

var (
	// Business-rule errors. None of these are retryable.
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrCurrencyMismatch  = errors.New("currency mismatch")
	ErrAccountClosed     = errors.New("account is closed")
	ErrSameAccount       = errors.New("cannot transfer to the same account")
	ErrInvalidCurrency   = errors.New("invalid currency code")

	ErrTransactionNotFound = errors.New("transaction not found")
)

// NotFoundError reports which account id a lookup missed.
// It matches ErrAccountNotFound via errors.Is.
type NotFoundError struct {
	AccountID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("account %d not found", e.AccountID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrAccountNotFound
}

// InsufficientFundsError reports the account, its balance and the
// requested amount. It matches ErrInsufficientFunds via errors.Is.
type InsufficientFundsError struct {
	AccountID int64
	Balance   Money
	Requested Money
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds on account %d: balance %s, requested %s",
		e.AccountID, e.Balance, e.Requested)
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}

// CurrencyMismatchError reports the two currencies that disagreed.
// It matches ErrCurrencyMismatch via errors.Is.
type CurrencyMismatchError struct {
	Want Currency
	Got  Currency
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("currency mismatch: want %s, got %s", e.Want, e.Got)
}

func (e *CurrencyMismatchError) Unwrap() error {
	return ErrCurrencyMismatch
}

// ClosedError reports an operation against a closed account.
// It matches ErrAccountClosed via errors.Is.
type ClosedError struct {
	AccountID int64
}

func (e *ClosedError) Error() string {
	return fmt.Sprintf("account %d is closed", e.AccountID)
}

func (e *ClosedError) Unwrap() error {
	return ErrAccountClosed
}

// StorageError is an infrastructure failure: the store could not
// complete the unit of work for reasons unrelated to business rules.
// No partial mutation is ever committed, so callers may retry the
// whole operation.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err as a StorageError unless it already is a
// business-rule or storage error.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}

	if IsBusinessError(err) {
		return err
	}

	var se *StorageError
	if errors.As(err, &se) {
		return err
	}

	return &StorageError{Op: op, Err: err}
}

// RollbackError is fatal: a unit of work could not be rolled back after
// a failure, so the session state is unknown. It is distinct from every
// business-rule kind and is not retryable.
type RollbackError struct {
	Cause       error // the failure that triggered the rollback
	RollbackErr error // the failure of the rollback itself
}

func (e *RollbackError) Error() string {
	return fmt.Sprintf("rollback failed: %v (while handling: %v)", e.RollbackErr, e.Cause)
}

func (e *RollbackError) Unwrap() error {
	return e.Cause
}

// IsBusinessError reports whether err is one of the enumerated
// business-rule kinds, as opposed to an infrastructure failure.
func IsBusinessError(err error) bool {
	for _, kind := range []error{
		ErrInvalidAmount,
		ErrAccountNotFound,
		ErrInsufficientFunds,
		ErrCurrencyMismatch,
		ErrAccountClosed,
		ErrSameAccount,
		ErrInvalidCurrency,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}

	return false
}
