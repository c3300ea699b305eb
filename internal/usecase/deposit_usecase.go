package usecase

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/bankapp/bankcore/internal/domain"
)

// DepositUseCase credits a single account from an external source and
// records a CREDIT transaction, sharing the unit-of-work discipline of
// the transfer engine.
type DepositUseCase struct {
	uowManager  UnitOfWorkManager
	accountRepo AccountRepository
	txnRepo     TransactionRepository
	idGen       IDGenerator
	logger      zerolog.Logger
}

// NewDepositUseCase creates a new DepositUseCase.
func NewDepositUseCase(
	uowManager UnitOfWorkManager,
	accountRepo AccountRepository,
	txnRepo TransactionRepository,
	idGen IDGenerator,
	logger zerolog.Logger,
) *DepositUseCase {
	return &DepositUseCase{
		uowManager:  uowManager,
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		idGen:       idGen,
		logger:      logger,
	}
}

// DepositInput represents an external credit into one account. The
// amount carries no currency of its own: the credit is denominated in
// the account's currency.
type DepositInput struct {
	AccountID int64
	Amount    decimal.Decimal
}

// Deposit credits the account and appends one CREDIT record with a
// null source account. Atomicity and rollback follow the transfer
// engine exactly.
func (uc *DepositUseCase) Deposit(ctx context.Context, input DepositInput) (txn *domain.Transaction, err error) {
	if !input.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	uow, err := uc.uowManager.Begin(ctx)
	if err != nil {
		return nil, domain.NewStorageError("begin unit of work", err)
	}

	defer func() {
		if rbErr := uow.Rollback(ctx); rbErr != nil {
			err = &domain.RollbackError{Cause: err, RollbackErr: rbErr}
			txn = nil
		}
	}()

	account, err := uc.accountRepo.GetByIDForUpdate(ctx, uow, input.AccountID)
	if err != nil {
		return nil, domain.NewStorageError("load account", err)
	}

	if err := account.AssertOpen(); err != nil {
		return nil, err
	}

	amount := domain.NewMoney(input.Amount, account.Currency())

	if err := account.Credit(amount); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.Update(ctx, uow, account); err != nil {
		return nil, domain.NewStorageError("update account", err)
	}

	txn = &domain.Transaction{
		Reference:   uc.idGen.Generate(),
		ToAccountID: account.ID,
		Amount:      amount,
		Type:        domain.TypeCredit,
	}

	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := uc.txnRepo.Insert(ctx, uow, txn); err != nil {
		return nil, domain.NewStorageError("insert transaction", err)
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, domain.NewStorageError("commit unit of work", err)
	}

	uc.logger.Info().
		Int64("account_id", account.ID).
		Str("amount", amount.String()).
		Str("reference", txn.Reference).
		Msg("deposit completed")

	return txn, nil
}
