package usecase

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/bankapp/bankcore/internal/domain"
)

// TransferUseCase moves money between two accounts and records the
// movement in the transaction log, all inside one unit of work.
type TransferUseCase struct {
	uowManager  UnitOfWorkManager
	accountRepo AccountRepository
	txnRepo     TransactionRepository
	idGen       IDGenerator
	logger      zerolog.Logger
}

// NewTransferUseCase creates a new TransferUseCase.
func NewTransferUseCase(
	uowManager UnitOfWorkManager,
	accountRepo AccountRepository,
	txnRepo TransactionRepository,
	idGen IDGenerator,
	logger zerolog.Logger,
) *TransferUseCase {
	return &TransferUseCase{
		uowManager:  uowManager,
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		idGen:       idGen,
		logger:      logger,
	}
}

// TransferInput represents a request to move funds between accounts.
type TransferInput struct {
	FromAccountID int64
	ToAccountID   int64
	Amount        domain.Money
}

// Transfer debits the source account, credits the destination account
// and appends one TRANSFER record. Either all three mutations commit or
// none do; no partial balance change is ever visible to other readers.
func (uc *TransferUseCase) Transfer(ctx context.Context, input TransferInput) (txn *domain.Transaction, err error) {
	// Validate input before touching the store.
	if input.Amount.IsZeroOrNegative() {
		return nil, domain.ErrInvalidAmount
	}

	if input.FromAccountID == input.ToAccountID {
		return nil, domain.ErrSameAccount
	}

	uow, err := uc.uowManager.Begin(ctx)
	if err != nil {
		return nil, domain.NewStorageError("begin unit of work", err)
	}

	// Rollback on every exit path. Once the unit of work is committed
	// this is a no-op; a failed rollback is escalated as fatal.
	defer func() {
		if rbErr := uow.Rollback(ctx); rbErr != nil {
			err = &domain.RollbackError{Cause: err, RollbackErr: rbErr}
			txn = nil
		}
	}()

	// Lock both rows in ascending id order so concurrent opposite
	// transfers between the same pair cannot deadlock.
	ids := []int64{input.FromAccountID, input.ToAccountID}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	accounts, err := uc.accountRepo.GetByIDsForUpdate(ctx, uow, ids)
	if err != nil {
		return nil, domain.NewStorageError("load accounts", err)
	}

	byID := make(map[int64]*domain.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}

	from, ok := byID[input.FromAccountID]
	if !ok {
		return nil, &domain.NotFoundError{AccountID: input.FromAccountID}
	}

	to, ok := byID[input.ToAccountID]
	if !ok {
		return nil, &domain.NotFoundError{AccountID: input.ToAccountID}
	}

	// The requested currency must be the source account's currency;
	// the engine never converts.
	if err := from.AssertCurrency(input.Amount.Currency()); err != nil {
		return nil, err
	}

	cmp, err := from.Balance.Cmp(input.Amount)
	if err != nil {
		return nil, err
	}

	if cmp < 0 {
		return nil, &domain.InsufficientFundsError{
			AccountID: from.ID,
			Balance:   from.Balance,
			Requested: input.Amount,
		}
	}

	if from.Currency() != to.Currency() {
		return nil, &domain.CurrencyMismatchError{Want: from.Currency(), Got: to.Currency()}
	}

	if err := from.AssertOpen(); err != nil {
		return nil, err
	}

	if err := to.AssertOpen(); err != nil {
		return nil, err
	}

	if err := from.Debit(input.Amount); err != nil {
		return nil, err
	}

	if err := to.Credit(input.Amount); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.Update(ctx, uow, from); err != nil {
		return nil, domain.NewStorageError("update source account", err)
	}

	if err := uc.accountRepo.Update(ctx, uow, to); err != nil {
		return nil, domain.NewStorageError("update destination account", err)
	}

	fromID := input.FromAccountID
	txn = &domain.Transaction{
		Reference:     uc.idGen.Generate(),
		FromAccountID: &fromID,
		ToAccountID:   input.ToAccountID,
		Amount:        input.Amount,
		Type:          domain.TypeTransfer,
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
		Int64("from_account_id", input.FromAccountID).
		Int64("to_account_id", input.ToAccountID).
		Str("amount", input.Amount.String()).
		Str("reference", txn.Reference).
		Msg("transfer completed")

	return txn, nil
}
