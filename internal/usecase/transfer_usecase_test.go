package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/bankapp/bankcore/internal/domain"
	"github.com/bankapp/bankcore/internal/usecase"
	"github.com/bankapp/bankcore/internal/usecase/mocks"
)

func usd(t *testing.T, amount string) domain.Money {
	t.Helper()

	m, err := domain.NewMoneyFromString(amount, domain.USD)
	if err != nil {
		t.Fatalf("bad amount %q: %v", amount, err)
	}

	return m
}

func openAccount(id int64, balance string, currency domain.Currency) *domain.Account {
	m, _ := domain.NewMoneyFromString(balance, currency)

	return &domain.Account{
		ID:       id,
		Number:   "40817810000000000001",
		Balance:  m,
		Status:   domain.AccountOpen,
		ClientID: 1,
	}
}

func newTransferFixture() (*mocks.MockUnitOfWorkManager, *mocks.MockAccountRepository, *mocks.MockTransactionRepository, *usecase.TransferUseCase) {
	uowMgr := mocks.NewMockUnitOfWorkManager()
	accRepo := mocks.NewMockAccountRepository()
	txnRepo := mocks.NewMockTransactionRepository()
	uc := usecase.NewTransferUseCase(uowMgr, accRepo, txnRepo, mocks.NewMockIDGenerator(), zerolog.Nop())

	return uowMgr, accRepo, txnRepo, uc
}

func TestTransfer_Success(t *testing.T) {
	uowMgr, accRepo, txnRepo, uc := newTransferFixture()

	accRepo.Seed(openAccount(1, "1000.00", domain.USD))
	accRepo.Seed(openAccount(2, "500.00", domain.USD))

	txn, err := uc.Transfer(context.Background(), usecase.TransferInput{
		FromAccountID: 1,
		ToAccountID:   2,
		Amount:        usd(t, "200.00"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	from, _ := accRepo.GetByID(context.Background(), 1)
	to, _ := accRepo.GetByID(context.Background(), 2)

	if from.Balance.String() != "800.00 USD" {
		t.Errorf("expected source balance 800.00 USD, got %s", from.Balance)
	}

	if to.Balance.String() != "700.00 USD" {
		t.Errorf("expected destination balance 700.00 USD, got %s", to.Balance)
	}

	// Conservation: the pair's total is unchanged.
	total, _ := from.Balance.Add(to.Balance)
	if total.String() != "1500.00 USD" {
		t.Errorf("expected combined balance 1500.00 USD, got %s", total)
	}

	if txn.Type != domain.TypeTransfer {
		t.Errorf("expected TRANSFER, got %s", txn.Type)
	}

	if txn.FromAccountID == nil || *txn.FromAccountID != 1 || txn.ToAccountID != 2 {
		t.Errorf("unexpected transaction endpoints: %+v", txn)
	}

	if !txn.Amount.Equal(usd(t, "200.00")) {
		t.Errorf("expected amount 200.00 USD, got %s", txn.Amount)
	}

	if txn.Reference == "" {
		t.Error("expected a transaction reference")
	}

	if got := len(txnRepo.All()); got != 1 {
		t.Errorf("expected exactly one transaction recorded, got %d", got)
	}

	uow := uowMgr.Last()
	if uow == nil || !uow.Committed {
		t.Error("expected unit of work to be committed")
	}
}

func TestTransfer_InvalidAmount(t *testing.T) {
	uowMgr, accRepo, txnRepo, uc := newTransferFixture()
	accRepo.Seed(openAccount(1, "1000.00", domain.USD))
	accRepo.Seed(openAccount(2, "500.00", domain.USD))

	for _, amount := range []string{"0", "-5.00"} {
		_, err := uc.Transfer(context.Background(), usecase.TransferInput{
			FromAccountID: 1,
			ToAccountID:   2,
			Amount:        usd(t, amount),
		})
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Fatalf("amount %s: expected ErrInvalidAmount, got %v", amount, err)
		}
	}

	// Input is rejected before any unit of work is opened.
	if len(uowMgr.Units) != 0 {
		t.Error("expected no unit of work for invalid amounts")
	}

	if len(txnRepo.All()) != 0 {
		t.Error("expected no transactions recorded")
	}
}

func TestTransfer_SameAccount(t *testing.T) {
	_, accRepo, _, uc := newTransferFixture()
	accRepo.Seed(openAccount(1, "1000.00", domain.USD))

	_, err := uc.Transfer(context.Background(), usecase.TransferInput{
		FromAccountID: 1,
		ToAccountID:   1,
		Amount:        usd(t, "10.00"),
	})
	if !errors.Is(err, domain.ErrSameAccount) {
		t.Fatalf("expected ErrSameAccount, got %v", err)
	}
}

func TestTransfer_InsufficientFunds(t *testing.T) {
	uowMgr, accRepo, txnRepo, uc := newTransferFixture()
	accRepo.Seed(openAccount(1, "100.00", domain.USD))
	accRepo.Seed(openAccount(2, "500.00", domain.USD))

	_, err := uc.Transfer(context.Background(), usecase.TransferInput{
		FromAccountID: 1,
		ToAccountID:   2,
		Amount:        usd(t, "150.00"),
	})
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	var insufficient *domain.InsufficientFundsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientFundsError, got %v", err)
	}

	if insufficient.AccountID != 1 {
		t.Errorf("expected account 1 in error, got %d", insufficient.AccountID)
	}

	from, _ := accRepo.GetByID(context.Background(), 1)
	if from.Balance.String() != "100.00 USD" {
		t.Errorf("expected source balance unchanged at 100.00 USD, got %s", from.Balance)
	}

	if len(txnRepo.All()) != 0 {
		t.Error("expected no transaction recorded")
	}

	uow := uowMgr.Last()
	if uow == nil || !uow.RolledBack {
		t.Error("expected unit of work to be rolled back")
	}
}

func TestTransfer_CurrencyMismatch(t *testing.T) {
	uowMgr, accRepo, txnRepo, uc := newTransferFixture()
	accRepo.Seed(openAccount(1, "1000.00", domain.USD))
	accRepo.Seed(openAccount(2, "500.00", domain.EUR))

	_, err := uc.Transfer(context.Background(), usecase.TransferInput{
		FromAccountID: 1,
		ToAccountID:   2,
		Amount:        usd(t, "50.00"),
	})
	if !errors.Is(err, domain.ErrCurrencyMismatch) {
		t.Fatalf("expected ErrCurrencyMismatch, got %v", err)
	}

	from, _ := accRepo.GetByID(context.Background(), 1)
	to, _ := accRepo.GetByID(context.Background(), 2)

	if from.Balance.String() != "1000.00 USD" || to.Balance.String() != "500.00 EUR" {
		t.Error("expected balances unchanged")
	}

	if len(txnRepo.All()) != 0 {
		t.Error("expected no transaction recorded")
	}

	if uow := uowMgr.Last(); uow == nil || !uow.RolledBack {
		t.Error("expected unit of work to be rolled back")
	}
}

func TestTransfer_AccountNotFound(t *testing.T) {
	_, accRepo, txnRepo, uc := newTransferFixture()
	accRepo.Seed(openAccount(2, "500.00", domain.USD))

	_, err := uc.Transfer(context.Background(), usecase.TransferInput{
		FromAccountID: 999,
		ToAccountID:   2,
		Amount:        usd(t, "10.00"),
	})
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}

	// The error names the missing side.
	var notFound *domain.NotFoundError
	if !errors.As(err, &notFound) || notFound.AccountID != 999 {
		t.Fatalf("expected NotFoundError for account 999, got %v", err)
	}

	if len(txnRepo.All()) != 0 {
		t.Error("expected no transaction recorded")
	}
}

func TestTransfer_ClosedAccount(t *testing.T) {
	_, accRepo, txnRepo, uc := newTransferFixture()

	closed := openAccount(1, "1000.00", domain.USD)
	closed.Status = domain.AccountClosed
	accRepo.Seed(closed)
	accRepo.Seed(openAccount(2, "500.00", domain.USD))

	_, err := uc.Transfer(context.Background(), usecase.TransferInput{
		FromAccountID: 1,
		ToAccountID:   2,
		Amount:        usd(t, "10.00"),
	})
	if !errors.Is(err, domain.ErrAccountClosed) {
		t.Fatalf("expected ErrAccountClosed, got %v", err)
	}

	if len(txnRepo.All()) != 0 {
		t.Error("expected no transaction recorded")
	}
}

func TestTransfer_LocksAccountsInAscendingOrder(t *testing.T) {
	uowMgr, accRepo, _, uc := newTransferFixture()
	accRepo.Seed(openAccount(1, "1000.00", domain.USD))
	accRepo.Seed(openAccount(2, "500.00", domain.USD))

	var requested []int64
	accRepo.GetByIDsForUpdateFunc = func(ctx context.Context, uow usecase.UnitOfWork, ids []int64) ([]*domain.Account, error) {
		requested = append([]int64(nil), ids...)
		return []*domain.Account{
			openAccount(1, "1000.00", domain.USD),
			openAccount(2, "500.00", domain.USD),
		}, nil
	}

	// Source id above destination id: lock order must still be ascending.
	_, err := uc.Transfer(context.Background(), usecase.TransferInput{
		FromAccountID: 2,
		ToAccountID:   1,
		Amount:        usd(t, "10.00"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(requested) != 2 || requested[0] != 1 || requested[1] != 2 {
		t.Errorf("expected lock order [1 2], got %v", requested)
	}

	_ = uowMgr
}

func TestTransfer_InsertFailureRollsBack(t *testing.T) {
	uowMgr, accRepo, txnRepo, uc := newTransferFixture()
	accRepo.Seed(openAccount(1, "1000.00", domain.USD))
	accRepo.Seed(openAccount(2, "500.00", domain.USD))

	txnRepo.InsertFunc = func(ctx context.Context, uow usecase.UnitOfWork, txn *domain.Transaction) error {
		return errors.New("connection reset")
	}

	_, err := uc.Transfer(context.Background(), usecase.TransferInput{
		FromAccountID: 1,
		ToAccountID:   2,
		Amount:        usd(t, "200.00"),
	})

	var storageErr *domain.StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError, got %v", err)
	}

	if domain.IsBusinessError(err) {
		t.Error("storage failure must not match a business-rule kind")
	}

	if uow := uowMgr.Last(); uow == nil || !uow.RolledBack || uow.Committed {
		t.Error("expected unit of work to be rolled back, not committed")
	}
}

func TestTransfer_CommitFailure(t *testing.T) {
	uowMgr, accRepo, _, uc := newTransferFixture()
	accRepo.Seed(openAccount(1, "1000.00", domain.USD))
	accRepo.Seed(openAccount(2, "500.00", domain.USD))

	uowMgr.BeginFunc = func(ctx context.Context) (usecase.UnitOfWork, error) {
		return &mocks.MockUnitOfWork{
			CommitFunc: func(ctx context.Context) error {
				return errors.New("server closed the connection unexpectedly")
			},
		}, nil
	}

	_, err := uc.Transfer(context.Background(), usecase.TransferInput{
		FromAccountID: 1,
		ToAccountID:   2,
		Amount:        usd(t, "200.00"),
	})

	var storageErr *domain.StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError from failed commit, got %v", err)
	}
}

func TestTransfer_RollbackFailureIsFatal(t *testing.T) {
	uowMgr, accRepo, txnRepo, uc := newTransferFixture()
	accRepo.Seed(openAccount(1, "100.00", domain.USD))
	accRepo.Seed(openAccount(2, "500.00", domain.USD))

	rollbackErr := errors.New("store unreachable")
	uowMgr.BeginFunc = func(ctx context.Context) (usecase.UnitOfWork, error) {
		return &mocks.MockUnitOfWork{
			RollbackFunc: func(ctx context.Context) error {
				return rollbackErr
			},
		}, nil
	}

	txn, err := uc.Transfer(context.Background(), usecase.TransferInput{
		FromAccountID: 1,
		ToAccountID:   2,
		Amount:        usd(t, "150.00"),
	})

	var fatal *domain.RollbackError
	if !errors.As(err, &fatal) {
		t.Fatalf("expected RollbackError, got %v", err)
	}

	// The fatal error carries the original business failure.
	if !errors.Is(fatal.Cause, domain.ErrInsufficientFunds) {
		t.Errorf("expected cause ErrInsufficientFunds, got %v", fatal.Cause)
	}

	if !errors.Is(fatal.RollbackErr, rollbackErr) {
		t.Errorf("expected rollback error to be carried, got %v", fatal.RollbackErr)
	}

	if txn != nil {
		t.Error("expected no transaction on fatal rollback failure")
	}

	if len(txnRepo.All()) != 0 {
		t.Error("expected no transaction recorded")
	}
}

func TestTransfer_BeginFailure(t *testing.T) {
	uowMgr, accRepo, _, uc := newTransferFixture()
	accRepo.Seed(openAccount(1, "1000.00", domain.USD))
	accRepo.Seed(openAccount(2, "500.00", domain.USD))

	uowMgr.BeginFunc = func(ctx context.Context) (usecase.UnitOfWork, error) {
		return nil, errors.New("too many connections")
	}

	_, err := uc.Transfer(context.Background(), usecase.TransferInput{
		FromAccountID: 1,
		ToAccountID:   2,
		Amount:        usd(t, "10.00"),
	})

	var storageErr *domain.StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
}

func TestTransfer_PrecisionAcrossRepeatedTransfers(t *testing.T) {
	_, accRepo, _, uc := newTransferFixture()
	accRepo.Seed(openAccount(1, "10.00", domain.USD))
	accRepo.Seed(openAccount(2, "0.00", domain.USD))

	amount := domain.NewMoney(decimal.RequireFromString("0.01"), domain.USD)
	for i := 0; i < 1000; i++ {
		if _, err := uc.Transfer(context.Background(), usecase.TransferInput{
			FromAccountID: 1,
			ToAccountID:   2,
			Amount:        amount,
		}); err != nil {
			t.Fatalf("transfer %d failed: %v", i, err)
		}
	}

	from, _ := accRepo.GetByID(context.Background(), 1)
	to, _ := accRepo.GetByID(context.Background(), 2)

	if from.Balance.String() != "0.00 USD" || to.Balance.String() != "10.00 USD" {
		t.Errorf("expected 0.00/10.00 USD, got %s / %s", from.Balance, to.Balance)
	}
}
