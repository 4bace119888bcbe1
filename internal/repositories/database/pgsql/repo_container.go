package pgsql

import (
	portsrepo "github.com/finbooks-app/finbooks_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the concrete pgx repositories once at startup.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool)
	transferRepo := newPgxTransferRepository(dbPool)
	bankRepo := newPgxBankRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:  accountRepo,
		JournalRepo:  journalRepo,
		TransferRepo: transferRepo,
		BankRepo:     bankRepo,
	}
}
