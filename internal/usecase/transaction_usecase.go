package usecase

import (
	"context"

	"github.com/bankapp/bankcore/internal/domain"
)

// TransactionUseCase serves reads over the append-only transaction log.
type TransactionUseCase struct {
	txnRepo TransactionRepository
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(txnRepo TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{txnRepo: txnRepo}
}

// GetTransaction retrieves a transaction by ID.
func (uc *TransactionUseCase) GetTransaction(ctx context.Context, id int64) (*domain.Transaction, error) {
	return uc.txnRepo.GetByID(ctx, id)
}

// ListTransactionsInput represents input for listing transactions.
type ListTransactionsInput struct {
	Limit  int
	Offset int
}

// ListTransactions lists transactions with pagination, newest first.
func (uc *TransactionUseCase) ListTransactions(ctx context.Context, input ListTransactionsInput) ([]*domain.Transaction, error) {
	limit, offset := clampPage(input.Limit, input.Offset)

	return uc.txnRepo.List(ctx, limit, offset)
}

// ListTransactionsByAccountInput represents input for listing an
// account's transactions.
type ListTransactionsByAccountInput struct {
	AccountID int64
	Limit     int
	Offset    int
}

// ListTransactionsByAccount lists transactions that touch one account,
// on either side.
func (uc *TransactionUseCase) ListTransactionsByAccount(ctx context.Context, input ListTransactionsByAccountInput) ([]*domain.Transaction, error) {
	limit, offset := clampPage(input.Limit, input.Offset)

	return uc.txnRepo.ListByAccount(ctx, input.AccountID, limit, offset)
}

// CountTransactions returns the total number of transactions.
func (uc *TransactionUseCase) CountTransactions(ctx context.Context) (int64, error) {
	return uc.txnRepo.Count(ctx)
}
