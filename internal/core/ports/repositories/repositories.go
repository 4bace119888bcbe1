package repositories

// RepositoryProvider bundles the repository facades handed to the service
// layer, so wiring happens once at startup.
type RepositoryProvider struct {
	AccountRepo  AccountRepositoryFacade
	JournalRepo  JournalRepositoryFacade
	TransferRepo TransferRepositoryFacade
	BankRepo     BankRepositoryFacade
}
