package mocks

import (
	"context"
	"sync"

	"github.com/bankapp/bankcore/internal/domain"
	"github.com/bankapp/bankcore/internal/usecase"
)

// MockAccountRepository is an in-memory mock of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[int64]*domain.Account

	GetByIDFunc           func(ctx context.Context, id int64) (*domain.Account, error)
	GetByIDForUpdateFunc  func(ctx context.Context, uow usecase.UnitOfWork, id int64) (*domain.Account, error)
	GetByIDsForUpdateFunc func(ctx context.Context, uow usecase.UnitOfWork, ids []int64) ([]*domain.Account, error)
	UpdateFunc            func(ctx context.Context, uow usecase.UnitOfWork, account *domain.Account) error

	Updated []*domain.Account
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[int64]*domain.Account),
	}
}

// Seed stores an account snapshot for subsequent lookups.
func (m *MockAccountRepository) Seed(account *domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc, nil
	}
	return nil, &domain.NotFoundError{AccountID: id}
}

func (m *MockAccountRepository) GetByIDForUpdate(ctx context.Context, uow usecase.UnitOfWork, id int64) (*domain.Account, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, uow, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockAccountRepository) GetByIDsForUpdate(ctx context.Context, uow usecase.UnitOfWork, ids []int64) ([]*domain.Account, error) {
	if m.GetByIDsForUpdateFunc != nil {
		return m.GetByIDsForUpdateFunc(ctx, uow, ids)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, id := range ids {
		if acc, ok := m.accounts[id]; ok {
			accounts = append(accounts, acc)
		}
	}
	return accounts, nil
}

func (m *MockAccountRepository) Update(ctx context.Context, uow usecase.UnitOfWork, account *domain.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, uow, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	m.Updated = append(m.Updated, account)
	return nil
}

func (m *MockAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

func (m *MockAccountRepository) ListByClient(ctx context.Context, clientID int64) ([]*domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		if acc.ClientID == clientID {
			accounts = append(accounts, acc)
		}
	}
	return accounts, nil
}

// MockTransactionRepository is an in-memory mock of TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions []*domain.Transaction
	nextID       int64

	InsertFunc func(ctx context.Context, uow usecase.UnitOfWork, txn *domain.Transaction) error
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

func (m *MockTransactionRepository) Insert(ctx context.Context, uow usecase.UnitOfWork, txn *domain.Transaction) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, uow, txn)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	txn.ID = m.nextID
	m.transactions = append(m.transactions, txn)
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, txn := range m.transactions {
		if txn.ID == id {
			return txn, nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) List(ctx context.Context, limit, offset int) ([]*domain.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if offset >= len(m.transactions) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.transactions) {
		end = len(m.transactions)
	}
	return m.transactions[offset:end], nil
}

func (m *MockTransactionRepository) ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Transaction
	for _, txn := range m.transactions {
		if txn.ToAccountID == accountID || (txn.FromAccountID != nil && *txn.FromAccountID == accountID) {
			result = append(result, txn)
		}
	}
	return result, nil
}

func (m *MockTransactionRepository) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.transactions)), nil
}

// All returns every recorded transaction.
func (m *MockTransactionRepository) All() []*domain.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.Transaction(nil), m.transactions...)
}

// MockUnitOfWork records commit/rollback calls so tests can assert the
// all-or-nothing discipline.
type MockUnitOfWork struct {
	mu         sync.Mutex
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (u *MockUnitOfWork) Commit(ctx context.Context) error {
	if u.CommitFunc != nil {
		return u.CommitFunc(ctx)
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.Committed = true
	return nil
}

func (u *MockUnitOfWork) Rollback(ctx context.Context) error {
	if u.RollbackFunc != nil {
		return u.RollbackFunc(ctx)
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.Committed {
		u.RolledBack = true
	}
	return nil
}

// MockUnitOfWorkManager hands out MockUnitOfWork instances.
type MockUnitOfWorkManager struct {
	mu    sync.Mutex
	Units []*MockUnitOfWork

	BeginFunc func(ctx context.Context) (usecase.UnitOfWork, error)
}

func NewMockUnitOfWorkManager() *MockUnitOfWorkManager {
	return &MockUnitOfWorkManager{}
}

func (m *MockUnitOfWorkManager) Begin(ctx context.Context) (usecase.UnitOfWork, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	uow := &MockUnitOfWork{}
	m.Units = append(m.Units, uow)
	return uow, nil
}

// Last returns the most recently opened unit of work, or nil.
func (m *MockUnitOfWorkManager) Last() *MockUnitOfWork {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Units) == 0 {
		return nil
	}
	return m.Units[len(m.Units)-1]
}

// MockIDGenerator returns sequential references.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return "ref-" + string(rune('0'+m.counter%10))
}
