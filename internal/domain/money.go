package domain

import (
	"github.com/shopspring/decimal"
)

// Money is an immutable fixed-point amount tagged with a currency.
// Arithmetic between two Money values is only defined when their
// currencies match; mixed-currency operations fail with a
// CurrencyMismatchError instead of coercing.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney creates a Money value from a decimal amount and currency.
func NewMoney(amount decimal.Decimal, currency Currency) Money {
	return Money{amount: amount, currency: currency}
}

// NewMoneyFromString parses a decimal string into a Money value.
func NewMoneyFromString(amount string, currency Currency) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, err
	}

	return Money{amount: d, currency: currency}, nil
}

// Zero returns a zero Money value in the given currency.
func Zero(currency Currency) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

// Amount returns the decimal magnitude.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency tag.
func (m Money) Currency() Currency {
	return m.currency
}

// Add returns m + other.
func (m Money) Add(other Money) (Money, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return Money{}, err
	}

	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Sub returns m - other. A negative result is permitted at the type
// level; the account aggregate enforces the non-negative invariant.
func (m Money) Sub(other Money) (Money, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return Money{}, err
	}

	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

// Cmp compares m against other: -1 if m < other, 0 if equal, 1 if m > other.
func (m Money) Cmp(other Money) (int, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return 0, err
	}

	return m.amount.Cmp(other.amount), nil
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsZeroOrNegative reports whether the amount is zero or below.
func (m Money) IsZeroOrNegative() bool {
	return !m.amount.IsPositive()
}

// IsNegative reports whether the amount is strictly below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Equal reports whether two Money values have the same currency and amount.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String renders the amount with two fractional digits and the currency code.
func (m Money) String() string {
	return m.amount.StringFixed(2) + " " + string(m.currency)
}

func (m Money) assertSameCurrency(other Money) error {
	if m.currency != other.currency {
		return &CurrencyMismatchError{Want: m.currency, Got: other.currency}
	}

	return nil
}
