package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bankapp/bankcore/internal/domain"
	"github.com/bankapp/bankcore/internal/infrastructure/postgres"
)

// TestDB provides isolated test database connections. Tests that need
// one are skipped unless BANKCORE_TEST_DATABASE_URL is set.
type TestDB struct {
	Pool *pgxpool.Pool
	t    *testing.T
}

// NewTestDB connects to the test database and applies migrations, or
// skips the test when no database is configured.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	dbURL := os.Getenv("BANKCORE_TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("BANKCORE_TEST_DATABASE_URL not set, skipping integration test")
	}

	migrationsPath := "../../migrations"
	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		migrationsPath = "migrations"
	}

	if err := postgres.RunMigrations(dbURL, migrationsPath); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping test database: %v", err)
	}

	return &TestDB{Pool: pool, t: t}
}

// Cleanup closes the database connection.
func (db *TestDB) Cleanup() {
	db.Pool.Close()
}

// TruncateAll removes all data from tables.
func (db *TestDB) TruncateAll(ctx context.Context) {
	db.t.Helper()

	_, err := db.Pool.Exec(ctx, `
		TRUNCATE TABLE transactions CASCADE;
		TRUNCATE TABLE accounts CASCADE;
		TRUNCATE TABLE clients CASCADE;
	`)
	if err != nil {
		db.t.Fatalf("failed to truncate tables: %v", err)
	}
}

// CreateTestClient inserts a client row and returns its id.
func (db *TestDB) CreateTestClient(ctx context.Context, name string) int64 {
	db.t.Helper()

	var id int64
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO clients (full_name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		db.t.Fatalf("failed to create test client: %v", err)
	}

	return id
}

// CreateTestAccount inserts an open account with the given balance and
// returns it.
func (db *TestDB) CreateTestAccount(ctx context.Context, clientID int64, number string, currency domain.Currency, balance decimal.Decimal) *domain.Account {
	db.t.Helper()

	account := &domain.Account{
		Number:   number,
		BIK:      "044525225",
		Balance:  domain.NewMoney(balance, currency),
		Status:   domain.AccountOpen,
		ClientID: clientID,
	}

	err := db.Pool.QueryRow(ctx,
		`INSERT INTO accounts (number, bik, balance, currency, status, client_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		account.Number, account.BIK, balance.String(), string(currency),
		string(account.Status), clientID,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		db.t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

// CloseAccount marks an account CLOSED.
func (db *TestDB) CloseAccount(ctx context.Context, id int64) {
	db.t.Helper()

	if _, err := db.Pool.Exec(ctx,
		`UPDATE accounts SET status = 'CLOSED' WHERE id = $1`, id); err != nil {
		db.t.Fatalf("failed to close test account: %v", err)
	}
}
