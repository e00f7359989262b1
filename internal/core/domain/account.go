package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a bank account holder within the core domain.
// This is the primary representation used by services.
type Account struct {
	AccountID     string    `json:"id"`
	Name          string    `json:"name"`
	Surname       string    `json:"surname"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// AccountStatement bundles an account with its derived balance and the
// transactions referencing it, for single-account reads.
type AccountStatement struct {
	Account      Account
	Balance      decimal.Decimal
	Transactions []Transaction
}
