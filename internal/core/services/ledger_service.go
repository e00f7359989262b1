package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openbanklab/bankapi/internal/apperrors"
	"github.com/openbanklab/bankapi/internal/core/domain"
	portsrepo "github.com/openbanklab/bankapi/internal/core/ports/repositories"
	portssvc "github.com/openbanklab/bankapi/internal/core/ports/services"
	"github.com/openbanklab/bankapi/internal/middleware"
)

// ledgerService implements balance derivation and the transfer engine on top
// of the append-only transaction log. The service performs ordered validation;
// the repository re-verifies balance-reducing entries under row locks so the
// check and the insert cannot interleave with a concurrent movement.
type ledgerService struct {
	accountRepo portsrepo.AccountReader
	txnRepo     portsrepo.TransactionRepository
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(accountRepo portsrepo.AccountReader, txnRepo portsrepo.TransactionRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// ComputeBalance folds the account's full transaction history. Balance is
// never a stored field; every read re-derives it from the log.
func (s *ledgerService) ComputeBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	transactions, err := s.txnRepo.ListTransactionsByAccount(ctx, accountID, domain.DetailFull)
	if err != nil {
		return decimal.Zero, err
	}
	return domain.SumBalance(accountID, transactions), nil
}

// Transfer moves amount between two accounts. Validation order, first failure
// wins: sender exists, recipient exists, amount strictly positive, sender
// balance covers the amount.
func (s *ledgerService) Transfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal) (*domain.TransferResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, []string{fromAccountID, toAccountID})
	if err != nil {
		return nil, err
	}
	if _, ok := accounts[fromAccountID]; !ok {
		return nil, fmt.Errorf("%w: sender account %s", apperrors.ErrNotFound, fromAccountID)
	}
	if _, ok := accounts[toAccountID]; !ok {
		return nil, fmt.Errorf("%w: recipient account %s", apperrors.ErrNotFound, toAccountID)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	balance, err := s.ComputeBalance(ctx, fromAccountID)
	if err != nil {
		return nil, err
	}
	if balance.LessThan(amount) {
		return nil, fmt.Errorf("%w: balance %s is below amount %s", apperrors.ErrInsufficientFunds, balance, amount)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          domain.Transfer,
		AccountFrom:   &fromAccountID,
		AccountTo:     &toAccountID,
		Amount:        amount,
		CreatedAt:     time.Now().UTC().Truncate(time.Second),
	}
	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		logger.Error("Failed to append transfer", slog.String("error", err.Error()), slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	balances, err := s.balancesFor(ctx, fromAccountID, toAccountID)
	if err != nil {
		return nil, err
	}

	logger.Info("Transfer recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("from", fromAccountID),
		slog.String("to", toAccountID),
		slog.String("amount", amount.String()),
	)
	return &domain.TransferResult{TransactionID: txn.TransactionID, Balances: balances}, nil
}

// Divert reverses a prior transfer by issuing an equal-and-opposite transfer.
// Deposits and withdrawals have only one side populated and are rejected.
func (s *ledgerService) Divert(ctx context.Context, transactionID string) (*domain.TransferResult, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Type != domain.Transfer || txn.AccountFrom == nil || txn.AccountTo == nil {
		return nil, fmt.Errorf("%w: only transfer transactions can be diverted", apperrors.ErrValidation)
	}
	return s.Transfer(ctx, *txn.AccountTo, *txn.AccountFrom, txn.Amount)
}

// Deposit records a deposit for a non-negative signed amount, or a withdrawal
// of the magnitude for a negative one. Withdrawals require the derived
// balance to cover the amount.
func (s *ledgerService) Deposit(ctx context.Context, accountID string, signedAmount decimal.Decimal) (*domain.DepositResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}
	if signedAmount.IsZero() {
		return nil, fmt.Errorf("%w: amount must be non-zero", apperrors.ErrValidation)
	}

	// A deposit only ever references the receiving side, a withdrawal only the
	// sending side; the contribution sign stays type-driven either way.
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          domain.Deposit,
		AccountTo:     &accountID,
		Amount:        signedAmount,
		CreatedAt:     time.Now().UTC().Truncate(time.Second),
	}
	if signedAmount.IsNegative() {
		amount := signedAmount.Neg()

		balance, err := s.ComputeBalance(ctx, accountID)
		if err != nil {
			return nil, err
		}
		if balance.LessThan(amount) {
			return nil, fmt.Errorf("%w: balance %s is below amount %s", apperrors.ErrInsufficientFunds, balance, amount)
		}

		txn.Type = domain.Withdrawal
		txn.AccountFrom = &accountID
		txn.AccountTo = nil
		txn.Amount = amount
	}
	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		logger.Error("Failed to append ledger entry", slog.String("error", err.Error()), slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	balance, err := s.ComputeBalance(ctx, accountID)
	if err != nil {
		return nil, err
	}

	logger.Info("Ledger entry recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("account_id", accountID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()),
	)
	return &domain.DepositResult{TransactionID: txn.TransactionID, Balance: balance}, nil
}

func (s *ledgerService) balancesFor(ctx context.Context, accountIDs ...string) (map[string]decimal.Decimal, error) {
	balances := make(map[string]decimal.Decimal, len(accountIDs))
	for _, id := range accountIDs {
		balance, err := s.ComputeBalance(ctx, id)
		if err != nil {
			return nil, err
		}
		balances[id] = balance
	}
	return balances, nil
}
