package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/openbanklab/bankapi/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs. Missing IDs
	// are simply absent from the returned map.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount updates an existing account's name and surname.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes the account row. Historical transactions
	// referencing the account are left in place.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountTransactionSupport defines operations used inside ledger transactions.
type AccountTransactionSupport interface {
	// FindAccountsByIDsForUpdate selects accounts and locks their rows for
	// update within a transaction. Rows are locked in sorted id order.
	// Returns ErrNotFound if any requested account is missing.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)
}

// AccountRepository combines all account-related repository interfaces.
type AccountRepository interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
