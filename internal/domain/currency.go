package domain

import (
	"fmt"
	"strings"
)

// Currency is an ISO 4217 currency code supported by the bank.
type Currency string

const (
	RUB Currency = "RUB"
	USD Currency = "USD"
	EUR Currency = "EUR"
)

var supportedCurrencies = map[Currency]bool{
	RUB: true,
	USD: true,
	EUR: true,
}

// ParseCurrency parses a currency code.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if !supportedCurrencies[c] {
		return "", fmt.Errorf("%w: %q is not a supported currency code", ErrInvalidCurrency, code)
	}

	return c, nil
}

func (c Currency) String() string {
	return string(c)
}
