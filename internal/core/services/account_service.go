package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openbanklab/bankapi/internal/apperrors"
	"github.com/openbanklab/bankapi/internal/core/domain"
	portsrepo "github.com/openbanklab/bankapi/internal/core/ports/repositories"
	portssvc "github.com/openbanklab/bankapi/internal/core/ports/services"
	"github.com/openbanklab/bankapi/internal/dto"
	"github.com/openbanklab/bankapi/internal/middleware"
	"github.com/openbanklab/bankapi/internal/utils"
)

// accountService implements the account directory: identity CRUD, independent
// of ledger logic except for the statement read which composes the balance
// derivation.
type accountService struct {
	accountRepo portsrepo.AccountRepository
	ledgerSvc   portssvc.BalanceCalculatorSvc
	txnRepo     portsrepo.TransactionReader
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepository, txnRepo portsrepo.TransactionReader, ledgerSvc portssvc.BalanceCalculatorSvc) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		ledgerSvc:   ledgerSvc,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount generates a fresh random hex id and persists the account.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accountID, err := utils.NewHexToken(utils.AccountTokenBytes)
	if err != nil {
		logger.Error("Failed to generate account id", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to generate account id: %w", err)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:     accountID,
		Name:          req.Name,
		Surname:       req.Surname,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account in repository", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		return nil, err
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID))
	return &account, nil
}

// GetAccountByID retrieves a single account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// GetAccountStatement retrieves an account with its derived balance and
// transaction history at the requested detail level.
func (s *accountService) GetAccountStatement(ctx context.Context, accountID string, detail domain.TransactionDetail) (*domain.AccountStatement, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	balance, err := s.ledgerSvc.ComputeBalance(ctx, accountID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.txnRepo.ListTransactionsByAccount(ctx, accountID, detail)
	if err != nil {
		return nil, err
	}

	return &domain.AccountStatement{
		Account:      *account,
		Balance:      balance,
		Transactions: transactions,
	}, nil
}

// ListAccounts retrieves all accounts.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx)
}

// UpdateAccount replaces name and surname.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) error {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}

	account.Name = req.Name
	account.Surname = req.Surname
	account.LastUpdatedAt = time.Now().UTC()

	return s.accountRepo.UpdateAccount(ctx, *account)
}

// PatchAccount updates exactly one of name or surname.
func (s *accountService) PatchAccount(ctx context.Context, accountID string, req dto.PatchAccountRequest) error {
	if (req.Name == nil) == (req.Surname == nil) {
		return fmt.Errorf("%w: exactly one of 'name' or 'surname' must be supplied", apperrors.ErrValidation)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		account.Name = *req.Name
	} else {
		account.Surname = *req.Surname
	}
	account.LastUpdatedAt = time.Now().UTC()

	return s.accountRepo.UpdateAccount(ctx, *account)
}

// DeleteAccount removes the account record. Historical transactions are kept:
// orphaned references are tolerated as an audit trail.
func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		return err
	}

	logger.Info("Account deleted", slog.String("account_id", accountID))
	return nil
}
