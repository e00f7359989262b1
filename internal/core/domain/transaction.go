package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger event. The sign of an event's
// contribution to a balance is derived from its type, never stored.
type TransactionType string

const (
	Deposit    TransactionType = "deposit"
	Withdrawal TransactionType = "withdrawal"
	Transfer   TransactionType = "transfer"
)

// TransactionDetail selects how much of each transaction a listing returns.
type TransactionDetail string

const (
	DetailSummary TransactionDetail = "summary"
	DetailFull    TransactionDetail = "full"
)

// Transaction is a single immutable entry in the ledger. Entries are
// append-only: created once, never mutated or deleted.
// AccountFrom is nil for deposits; AccountTo is nil for withdrawals.
// Amount is always a positive magnitude.
type Transaction struct {
	TransactionID string          `json:"id"`
	Type          TransactionType `json:"type"`
	AccountFrom   *string         `json:"account_from"`
	AccountTo     *string         `json:"account_to"`
	Amount        decimal.Decimal `json:"amount"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Contribution returns the signed amount this transaction contributes to the
// balance of accountID. Transfers are comparison-driven (+amount for the
// receiver, -amount for the sender); deposits and withdrawals are purely
// type-driven since they only ever reference one account.
func (t Transaction) Contribution(accountID string) decimal.Decimal {
	switch t.Type {
	case Transfer:
		if t.AccountTo != nil && *t.AccountTo == accountID {
			return t.Amount
		}
		return t.Amount.Neg()
	case Deposit:
		return t.Amount
	default: // Withdrawal
		return t.Amount.Neg()
	}
}

// SumBalance folds a set of ledger entries into the balance of accountID.
// It is the single source of truth for balance derivation: idempotent,
// side-effect free, and always a fold over history rather than a stored field.
func SumBalance(accountID string, transactions []Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, txn := range transactions {
		balance = balance.Add(txn.Contribution(accountID))
	}
	return balance
}
