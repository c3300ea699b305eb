package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/bankapp/bankcore/internal/adapter/http/dto"
	"github.com/bankapp/bankcore/internal/domain"
	"github.com/bankapp/bankcore/internal/infrastructure/metrics"
	"github.com/bankapp/bankcore/internal/usecase"
)

type depositService interface {
	Deposit(ctx context.Context, input usecase.DepositInput) (*domain.Transaction, error)
}

// DepositHandler handles deposit-related HTTP requests.
type DepositHandler struct {
	depositUC depositService
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(depositUC depositService) *DepositHandler {
	return &DepositHandler{depositUC: depositUC}
}

// Create credits an account from an external source.
func (h *DepositHandler) Create(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account ID", err.Error())
		return
	}

	var req dto.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput(accountID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid deposit request", err.Error())
		return
	}

	start := time.Now()
	txn, err := h.depositUC.Deposit(r.Context(), input)
	if err != nil {
		metrics.ObserveDeposit("error", time.Since(start))

		status := mapDomainError(err)
		writeError(w, status, "failed to deposit", err.Error())

		return
	}
	metrics.ObserveDeposit("success", time.Since(start))

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(txn))
}
