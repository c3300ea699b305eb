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

type transferService interface {
	Transfer(ctx context.Context, input usecase.TransferInput) (*domain.Transaction, error)
}

// TransferHandler handles transfer-related HTTP requests.
type TransferHandler struct {
	transferUC transferService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferUC transferService) *TransferHandler {
	return &TransferHandler{transferUC: transferUC}
}

// Create moves funds between two accounts.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transfer request", err.Error())
		return
	}

	start := time.Now()
	txn, err := h.transferUC.Transfer(r.Context(), input)
	if err != nil {
		metrics.ObserveTransfer("error", time.Since(start))

		status := mapDomainError(err)
		writeError(w, status, "failed to transfer", err.Error())

		return
	}
	metrics.ObserveTransfer("success", time.Since(start))

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(txn))
}
