package dto

import (
	"github.com/openbanklab/bankapi/internal/core/domain"
	"github.com/shopspring/decimal"
)

// createdAtLayout is the wire format for transaction timestamps, second
// resolution.
const createdAtLayout = "2006-01-02 15:04:05"

// TransactionRef identifies a transaction without its details.
type TransactionRef struct {
	ID string `json:"id"`
}

// TransactionResponse is the full wire representation of a ledger entry.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	AccountFrom *string         `json:"account_from"`
	AccountTo   *string         `json:"account_to"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   string          `json:"created_at"`
}

// DepositRequest carries a signed amount: positive deposits, negative
// withdraws the magnitude.
type DepositRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// DepositResponse returns the appended transaction id and the new balance.
type DepositResponse struct {
	ID      string          `json:"id"`
	Balance decimal.Decimal `json:"balance"`
}

// TransferRequest defines a money movement between two accounts.
type TransferRequest struct {
	From   string          `json:"from" binding:"required"`
	To     string          `json:"to" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// DivertRequest identifies the transfer to reverse.
type DivertRequest struct {
	ID string `json:"id" binding:"required"`
}

// TransferResponse returns the appended transaction id and both balances,
// keyed by account id.
type TransferResponse struct {
	ID       string                     `json:"id"`
	Balances map[string]decimal.Decimal `json:"balances"`
}

// ToTransactionResponse converts a domain.Transaction to its full wire form.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.TransactionID,
		Type:        string(txn.Type),
		AccountFrom: txn.AccountFrom,
		AccountTo:   txn.AccountTo,
		Amount:      txn.Amount,
		CreatedAt:   txn.CreatedAt.UTC().Format(createdAtLayout),
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to wire form.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(txn)
	}
	return res
}

// ToTransactionRefs projects a slice of domain.Transaction to id-only refs.
func ToTransactionRefs(txns []domain.Transaction) []TransactionRef {
	res := make([]TransactionRef, len(txns))
	for i, txn := range txns {
		res[i] = TransactionRef{ID: txn.TransactionID}
	}
	return res
}

// ToTransferResponse converts a domain.TransferResult to wire form.
func ToTransferResponse(res *domain.TransferResult) TransferResponse {
	return TransferResponse{
		ID:       res.TransactionID,
		Balances: res.Balances,
	}
}

// ToDepositResponse converts a domain.DepositResult to wire form.
func ToDepositResponse(res *domain.DepositResult) DepositResponse {
	return DepositResponse{
		ID:      res.TransactionID,
		Balance: res.Balance,
	}
}
