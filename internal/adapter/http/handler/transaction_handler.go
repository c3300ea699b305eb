package handler

import (
	"context"
	"net/http"

	"github.com/bankapp/bankcore/internal/adapter/http/dto"
	"github.com/bankapp/bankcore/internal/domain"
	"github.com/bankapp/bankcore/internal/usecase"
)

type transactionService interface {
	GetTransaction(ctx context.Context, id int64) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.Transaction, error)
	ListTransactionsByAccount(ctx context.Context, input usecase.ListTransactionsByAccountInput) ([]*domain.Transaction, error)
	CountTransactions(ctx context.Context) (int64, error)
}

// TransactionHandler handles transaction-log HTTP requests.
type TransactionHandler struct {
	txnUC transactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(txnUC transactionService) *TransactionHandler {
	return &TransactionHandler{txnUC: txnUC}
}

// Get retrieves a transaction by ID.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction ID", err.Error())
		return
	}

	txn, err := h.txnUC.GetTransaction(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get transaction", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(txn))
}

// List lists transactions with pagination, newest first.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	txns, err := h.txnUC.ListTransactions(r.Context(), usecase.ListTransactionsInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(txns))
}

// ListByAccount lists transactions that touch one account.
func (h *TransactionHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account ID", err.Error())
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	txns, err := h.txnUC.ListTransactionsByAccount(r.Context(), usecase.ListTransactionsByAccountInput{
		AccountID: accountID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(txns))
}

// Count returns the total number of transactions.
func (h *TransactionHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.txnUC.CountTransactions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to count transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CountResponse{Count: count})
}
