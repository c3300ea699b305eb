package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/bankapp/bankcore/internal/domain"
	"github.com/bankapp/bankcore/internal/usecase"
	"github.com/bankapp/bankcore/internal/usecase/mocks"
)

func TestGetTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGenTransactionRepository(ctrl)
	uc := usecase.NewTransactionUseCase(repo)
	ctx := context.Background()

	from := int64(1)
	want := &domain.Transaction{
		ID:            9,
		Reference:     "01J0TESTREF",
		FromAccountID: &from,
		ToAccountID:   2,
		Amount:        mustMoney(t, "75.00", domain.USD),
		Type:          domain.TypeTransfer,
	}
	repo.EXPECT().GetByID(ctx, int64(9)).Return(want, nil)

	got, err := uc.GetTransaction(ctx, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Reference != "01J0TESTREF" || got.Type != domain.TypeTransfer {
		t.Errorf("unexpected transaction: %+v", got)
	}
}

func TestGetTransaction_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGenTransactionRepository(ctrl)
	uc := usecase.NewTransactionUseCase(repo)
	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, int64(404)).Return(nil, domain.ErrTransactionNotFound)

	_, err := uc.GetTransaction(ctx, 404)
	if !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestListTransactions_PaginationClamping(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGenTransactionRepository(ctrl)
	uc := usecase.NewTransactionUseCase(repo)
	ctx := context.Background()

	repo.EXPECT().List(ctx, usecase.DefaultPageSize, 0).Return(nil, nil)

	if _, err := uc.ListTransactions(ctx, usecase.ListTransactionsInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListTransactionsByAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGenTransactionRepository(ctrl)
	uc := usecase.NewTransactionUseCase(repo)
	ctx := context.Background()

	repo.EXPECT().ListByAccount(ctx, int64(7), 10, 20).Return([]*domain.Transaction{
		{ID: 1, ToAccountID: 7, Type: domain.TypeCredit},
	}, nil)

	txns, err := uc.ListTransactionsByAccount(ctx, usecase.ListTransactionsByAccountInput{
		AccountID: 7,
		Limit:     10,
		Offset:    20,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(txns) != 1 {
		t.Errorf("expected 1 transaction, got %d", len(txns))
	}
}

func TestCountTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockGenTransactionRepository(ctrl)
	uc := usecase.NewTransactionUseCase(repo)
	ctx := context.Background()

	repo.EXPECT().Count(ctx).Return(int64(42), nil)

	count, err := uc.CountTransactions(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if count != 42 {
		t.Errorf("expected 42, got %d", count)
	}
}

func mustMoney(t *testing.T, amount string, currency domain.Currency) domain.Money {
	t.Helper()

	m, err := domain.NewMoneyFromString(amount, currency)
	if err != nil {
		t.Fatalf("bad amount %q: %v", amount, err)
	}

	return m
}
