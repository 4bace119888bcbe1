package services

import (
	"context"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/finbooks-app/finbooks_backend/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error)

	// GetAccountByIDs retrieves multiple accounts by their IDs.
	GetAccountByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts for a given company.
	ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)

	// UpdateAccount updates an existing account's details. The account code
	// is immutable and cannot be changed here.
	UpdateAccount(ctx context.Context, companyID string, accountID string, req dto.UpdateAccountRequest, requestingUserID string) (*domain.Account, error)

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, companyID string, accountID string, requestingUserID string) error
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
