package domain

import "github.com/shopspring/decimal"

// TransferResult is returned by a successful transfer or divert: the id of the
// newly appended transaction and the freshly derived balances of both
// accounts, keyed by account id.
type TransferResult struct {
	TransactionID string
	Balances      map[string]decimal.Decimal
}

// DepositResult is returned by a successful deposit or withdrawal.
type DepositResult struct {
	TransactionID string
	Balance       decimal.Decimal
}
