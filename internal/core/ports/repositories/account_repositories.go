package repositories

import (
	"context"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
)

// AccountRepositoryFacade defines persistence operations for the chart of
// accounts. Every read is scoped by company; rows belonging to another
// company behave as if they do not exist.
type AccountRepositoryFacade interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error)
	FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error)
	FindAccountByCode(ctx context.Context, companyID string, code string) (*domain.Account, error)
	ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
}
