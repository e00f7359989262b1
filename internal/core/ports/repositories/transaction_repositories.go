package repositories

import (
	"context"

	"github.com/openbanklab/bankapi/internal/core/domain"
)

// TransactionReader defines read operations over the ledger.
type TransactionReader interface {
	// FindTransactionByID retrieves a single ledger entry.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByAccount returns every transaction where the account is
	// sender or receiver, ordered by created_at ascending with insertion order
	// as the tie-break. With DetailSummary only TransactionID is populated.
	ListTransactionsByAccount(ctx context.Context, accountID string, detail domain.TransactionDetail) ([]domain.Transaction, error)
}

// TransactionWriter defines append operations over the ledger.
type TransactionWriter interface {
	// SaveTransaction atomically appends a ledger entry. Within a single
	// database transaction it locks the referenced account rows, re-verifies
	// that withdrawals and transfers are covered by the sender's derived
	// balance, and inserts the row. Returns ErrNotFound if a referenced
	// account is missing and ErrInsufficientFunds if the re-check fails.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepository combines ledger read and append operations.
type TransactionRepository interface {
	TransactionReader
	TransactionWriter
}
