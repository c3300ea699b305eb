package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bankapp/bankcore/internal/domain"
	"github.com/bankapp/bankcore/internal/usecase"
)

const accountColumns = `id, number, bik, balance, currency, status, client_id, created_at, updated_at`

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)

	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{AccountID: id}
		}

		return nil, err
	}

	return account, nil
}

// GetByIDForUpdate retrieves an account by ID with a FOR UPDATE lock.
func (r *AccountRepository) GetByIDForUpdate(ctx context.Context, uow usecase.UnitOfWork, id int64) (*domain.Account, error) {
	tx := uow.(*UnitOfWork).PgxTx()

	row := tx.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1 FOR UPDATE`, id)

	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{AccountID: id}
		}

		return nil, err
	}

	return account, nil
}

// GetByIDsForUpdate retrieves multiple accounts with FOR UPDATE locks.
// Rows are locked in ascending id order regardless of the order of ids,
// so concurrent transfers over the same pair cannot deadlock.
func (r *AccountRepository) GetByIDsForUpdate(ctx context.Context, uow usecase.UnitOfWork, ids []int64) ([]*domain.Account, error) {
	tx := uow.(*UnitOfWork).PgxTx()

	rows, err := tx.Query(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = ANY($1) ORDER BY id FOR UPDATE`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]*domain.Account, 0, len(ids))

	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

// Update replaces the mutable columns of an account row.
func (r *AccountRepository) Update(ctx context.Context, uow usecase.UnitOfWork, account *domain.Account) error {
	tx := uow.(*UnitOfWork).PgxTx()

	tag, err := tx.Exec(ctx,
		`UPDATE accounts SET balance = $2, status = $3, updated_at = now() WHERE id = $1`,
		account.ID,
		decimalToNumeric(account.Balance.Amount()),
		string(account.Status),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{AccountID: account.ID}
	}

	return nil
}

// List lists accounts with pagination, ordered by id.
func (r *AccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+accountColumns+` FROM accounts ORDER BY id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAccounts(rows)
}

// ListByClient lists all accounts owned by one client.
func (r *AccountRepository) ListByClient(ctx context.Context, clientID int64) ([]*domain.Account, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE client_id = $1 ORDER BY id`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAccounts(rows)
}

func collectAccounts(rows pgx.Rows) ([]*domain.Account, error) {
	var accounts []*domain.Account

	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		account  domain.Account
		balance  pgtype.Numeric
		currency string
		status   string
	)

	err := row.Scan(
		&account.ID,
		&account.Number,
		&account.BIK,
		&balance,
		&currency,
		&status,
		&account.ClientID,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	account.Balance = domain.NewMoney(numericToDecimal(balance), domain.Currency(currency))
	account.Status = domain.AccountStatus(status)

	return &account, nil
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}
