package services

import (
	portsrepo "github.com/openbanklab/bankapi/internal/core/ports/repositories"
	portssvc "github.com/openbanklab/bankapi/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Ledger first since the account statement read depends on it.
	container.Ledger = NewLedgerService(repos.AccountRepo, repos.TransactionRepo)
	container.Account = NewAccountService(repos.AccountRepo, repos.TransactionRepo, container.Ledger)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.AccountSvcFacade = (*accountService)(nil)
	_ portssvc.LedgerSvcFacade  = (*ledgerService)(nil)
)
