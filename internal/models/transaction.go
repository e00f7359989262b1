package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType at the storage layer.
type TransactionType string

const (
	Deposit    TransactionType = "deposit"
	Withdrawal TransactionType = "withdrawal"
	Transfer   TransactionType = "transfer"
)

// Transaction is the database representation of a ledger row.
// AccountFrom/AccountTo map to nullable columns. Seq is assigned by the
// database on insert and provides a stable tie-break for equal timestamps.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	Type          TransactionType `db:"type"`
	AccountFrom   *string         `db:"account_from"`
	AccountTo     *string         `db:"account_to"`
	Amount        decimal.Decimal `db:"amount"`
	CreatedAt     time.Time       `db:"created_at"`
	Seq           int64           `db:"seq"`
}
