package usecase

import (
	"context"
	"time"

	"github.com/bankapp/bankcore/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, uow UnitOfWork, id int64) (*domain.Account, error)
	GetByIDsForUpdate(ctx context.Context, uow UnitOfWork, ids []int64) ([]*domain.Account, error)
	// Update persists the mutable account fields (balance, status).
	// It must run inside the unit of work that locked the row.
	Update(ctx context.Context, uow UnitOfWork, account *domain.Account) error
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	ListByClient(ctx context.Context, clientID int64) ([]*domain.Account, error)
}

// TransactionRepository defines data access for the append-only
// transaction log. There is deliberately no update or delete.
type TransactionRepository interface {
	// Insert appends a transaction record and fills in the
	// store-assigned id and timestamp.
	Insert(ctx context.Context, uow UnitOfWork, txn *domain.Transaction) error
	GetByID(ctx context.Context, id int64) (*domain.Transaction, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Transaction, error)
	ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Transaction, error)
	Count(ctx context.Context) (int64, error)
}

// UnitOfWork is one atomic group of store mutations. Commit and
// Rollback settle it exactly once; Rollback after a settle is a no-op
// so it is safe to defer on every exit path.
type UnitOfWork interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// UnitOfWorkManager opens units of work. Nesting is not supported: a
// caller must settle one unit of work before beginning the next on the
// same logical session.
type UnitOfWorkManager interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}

// IDGenerator generates unique transaction references.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Delete drops a key, releasing the in-flight lock after a failure.
	Delete(ctx context.Context, key string) error
}
