package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bankapp/bankcore/internal/domain"
	"github.com/bankapp/bankcore/internal/usecase"
)

const transactionColumns = `id, reference, from_account_id, to_account_id, amount, currency, type, created_at`

// TransactionRepository implements usecase.TransactionRepository. The
// transactions table is append-only: inserts happen inside a unit of
// work, reads run against the pool, and nothing updates or deletes.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Insert appends one transaction record and fills in the
// store-assigned id and timestamp.
func (r *TransactionRepository) Insert(ctx context.Context, uow usecase.UnitOfWork, txn *domain.Transaction) error {
	tx := uow.(*UnitOfWork).PgxTx()

	return tx.QueryRow(ctx,
		`INSERT INTO transactions (reference, from_account_id, to_account_id, amount, currency, type)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		txn.Reference,
		txn.FromAccountID,
		txn.ToAccountID,
		decimalToNumeric(txn.Amount.Amount()),
		string(txn.Amount.Currency()),
		string(txn.Type),
	).Scan(&txn.ID, &txn.CreatedAt)
}

// GetByID retrieves a transaction by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)

	txn, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return txn, nil
}

// List lists transactions with pagination, newest first.
func (r *TransactionRepository) List(ctx context.Context, limit, offset int) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions ORDER BY id DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// ListByAccount lists transactions that touch one account on either
// side, newest first.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Transaction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions
		 WHERE from_account_id = $1 OR to_account_id = $1
		 ORDER BY id DESC LIMIT $2 OFFSET $3`,
		accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// Count returns the total number of transactions.
func (r *TransactionRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM transactions`).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func collectTransactions(rows pgx.Rows) ([]*domain.Transaction, error) {
	var txns []*domain.Transaction

	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}

		txns = append(txns, txn)
	}

	return txns, rows.Err()
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		txn      domain.Transaction
		amount   pgtype.Numeric
		currency string
		txnType  string
	)

	err := row.Scan(
		&txn.ID,
		&txn.Reference,
		&txn.FromAccountID,
		&txn.ToAccountID,
		&amount,
		&currency,
		&txnType,
		&txn.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	txn.Amount = domain.NewMoney(numericToDecimal(amount), domain.Currency(currency))
	txn.Type = domain.TransactionType(txnType)

	return &txn, nil
}
