package services

import (
	"context"

	"github.com/openbanklab/bankapi/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceCalculatorSvc derives account balances from the ledger.
type BalanceCalculatorSvc interface {
	// ComputeBalance folds the account's full transaction history into its
	// current balance. Side-effect free.
	ComputeBalance(ctx context.Context, accountID string) (decimal.Decimal, error)
}

// TransferSvc executes money movements against the ledger.
type TransferSvc interface {
	// Transfer moves amount from one account to another, validating in order:
	// sender exists, recipient exists, amount strictly positive, sender
	// balance covers the amount. Returns the new transaction id and freshly
	// derived balances for both accounts.
	Transfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal) (*domain.TransferResult, error)

	// Divert reverses a prior transfer by issuing an equal-and-opposite one.
	// Non-transfer transactions are rejected with a validation error.
	Divert(ctx context.Context, transactionID string) (*domain.TransferResult, error)

	// Deposit records a deposit when signedAmount is positive, or a withdrawal
	// of its magnitude when negative. Withdrawals require the derived balance
	// to cover the amount.
	Deposit(ctx context.Context, accountID string, signedAmount decimal.Decimal) (*domain.DepositResult, error)
}

// LedgerSvcFacade combines balance derivation and transfer execution.
type LedgerSvcFacade interface {
	BalanceCalculatorSvc
	TransferSvc
}
