package services

import (
	"context"

	"github.com/openbanklab/bankapi/internal/core/domain"
	"github.com/openbanklab/bankapi/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// GetAccountStatement retrieves an account together with its derived
	// balance and transaction history at the requested detail level.
	GetAccountStatement(ctx context.Context, accountID string, detail domain.TransactionDetail) (*domain.AccountStatement, error)

	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account and returns it with a fresh id.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount replaces an account's name and surname.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) error

	// PatchAccount updates exactly one of name or surname.
	PatchAccount(ctx context.Context, accountID string, req dto.PatchAccountRequest) error

	// DeleteAccount removes the account. Its transactions are preserved.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
