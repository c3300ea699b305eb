package handler

import (
	"context"
	"net/http"

	"github.com/bankapp/bankcore/internal/adapter/http/dto"
	"github.com/bankapp/bankcore/internal/domain"
	"github.com/bankapp/bankcore/internal/usecase"
)

type accountService interface {
	GetAccount(ctx context.Context, id int64) (*domain.Account, error)
	ListAccounts(ctx context.Context, input usecase.ListAccountsInput) ([]*domain.Account, error)
	ListAccountsByClient(ctx context.Context, clientID int64) ([]*domain.Account, error)
}

// AccountHandler handles account-related HTTP requests. Accounts are
// read-only here; opening and closing them happens outside this
// service.
type AccountHandler struct {
	accountUC accountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC accountService) *AccountHandler {
	return &AccountHandler{accountUC: accountUC}
}

// Get retrieves an account by ID.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account ID", err.Error())
		return
	}

	account, err := h.accountUC.GetAccount(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get account", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// List lists accounts with pagination.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	accounts, err := h.accountUC.ListAccounts(r.Context(), usecase.ListAccountsInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountsFromDomain(accounts))
}

// ListByClient lists all accounts owned by one client.
func (h *AccountHandler) ListByClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid client ID", err.Error())
		return
	}

	accounts, err := h.accountUC.ListAccountsByClient(r.Context(), clientID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountsFromDomain(accounts))
}
