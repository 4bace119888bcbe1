package services

import (
	portsrepo "github.com/finbooks-app/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks-app/finbooks_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Account service first; most other services resolve accounts through it.
	container.Account = NewAccountService(repos.AccountRepo)
	container.Ledger = NewLedgerService(repos.AccountRepo, repos.JournalRepo)
	container.Journal = NewJournalService(repos.JournalRepo, container.Account)
	container.Transfer = NewTransferService(repos.TransferRepo, container.Account, container.Ledger)
	container.Banking = NewBankingService(repos.BankRepo, container.Account)

	return container
}
