package usecase

import (
	"context"

	"github.com/bankapp/bankcore/internal/domain"
)

// AccountUseCase serves account reads for external callers. Account
// creation and closing happen outside this engine; balances are only
// mutated by the transfer and deposit engines.
type AccountUseCase struct {
	accountRepo AccountRepository
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository) *AccountUseCase {
	return &AccountUseCase{accountRepo: accountRepo}
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id int64) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts with pagination.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	limit, offset := clampPage(input.Limit, input.Offset)

	return uc.accountRepo.List(ctx, limit, offset)
}

// ListAccountsByClient lists all accounts owned by one client.
func (uc *AccountUseCase) ListAccountsByClient(ctx context.Context, clientID int64) ([]*domain.Account, error) {
	return uc.accountRepo.ListByClient(ctx, clientID)
}
