package dto

import (
	"github.com/shopspring/decimal"

	"github.com/bankapp/bankcore/internal/domain"
	"github.com/bankapp/bankcore/internal/usecase"
)

// TransferRequest represents a request to move funds between accounts.
// The amount is a decimal string; binary floats never touch money.
type TransferRequest struct {
	FromAccountID int64  `json:"from_account_id"`
	ToAccountID   int64  `json:"to_account_id"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
}

// ToUseCaseInput converts to use case input.
func (r *TransferRequest) ToUseCaseInput() (usecase.TransferInput, error) {
	currency, err := domain.ParseCurrency(r.Currency)
	if err != nil {
		return usecase.TransferInput{}, err
	}

	amount, err := domain.NewMoneyFromString(r.Amount, currency)
	if err != nil {
		return usecase.TransferInput{}, err
	}

	return usecase.TransferInput{
		FromAccountID: r.FromAccountID,
		ToAccountID:   r.ToAccountID,
		Amount:        amount,
	}, nil
}

// DepositRequest represents an external credit into an account. The
// deposit is denominated in the account's own currency, so the request
// carries no currency field.
type DepositRequest struct {
	Amount string `json:"amount"`
}

// ToUseCaseInput converts to use case input for the given account.
func (r *DepositRequest) ToUseCaseInput(accountID int64) (usecase.DepositInput, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return usecase.DepositInput{}, domain.ErrInvalidAmount
	}

	return usecase.DepositInput{
		AccountID: accountID,
		Amount:    amount,
	}, nil
}
