package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finbooks-app/finbooks_backend/internal/apperrors"
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks-app/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks-app/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks-app/finbooks_backend/internal/dto"
	"github.com/finbooks-app/finbooks_backend/internal/middleware"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrDuplicateAccountCode = errors.New("account code already exists in this company")
	ErrCyclicHierarchy      = errors.New("account hierarchy would form a cycle")
	ErrParentNotFound       = errors.New("parent account not found")
)

// maxHierarchyDepth bounds the ancestor walk so a corrupted chain cannot
// loop forever.
const maxHierarchyDepth = 64

// accountService provides chart-of-accounts operations.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

// Ensure accountService implements the portssvc.AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// defaultTypicalBalance returns the conventional sign for an account type.
func defaultTypicalBalance(accountType domain.AccountType) domain.TypicalBalance {
	switch accountType {
	case domain.Asset, domain.Expense:
		return domain.DebitNormal
	default:
		return domain.CreditNormal
	}
}

// defaultPostingType returns the statement an account type reports under.
func defaultPostingType(accountType domain.AccountType) string {
	switch accountType {
	case domain.Revenue, domain.Expense:
		return "Profit and Loss"
	default:
		return "Balance Sheet"
	}
}

// CreateAccount persists a new account after validating its code is unique
// within the company and its parent, if any, exists there.
// Implements portssvc.AccountSvcFacade
func (s *accountService) CreateAccount(ctx context.Context, companyID string, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.CompanyID != "" && req.CompanyID != companyID {
		logger.Warn("Payload company does not match authenticated company", slog.String("payload_company", req.CompanyID), slog.String("company_id", companyID))
		return nil, apperrors.ErrForbidden
	}

	accountType, err := domain.ParseAccountType(req.AccountType)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	typical := defaultTypicalBalance(accountType)
	if req.TypicalBalance != "" {
		typical, err = domain.ParseTypicalBalance(req.TypicalBalance)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
	}

	postingType := req.PostingType
	if postingType == "" {
		postingType = defaultPostingType(accountType)
	}

	// Duplicate code pre-check. The unique index still backstops races.
	existing, err := s.accountRepo.FindAccountByCode(ctx, companyID, req.Code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check account code uniqueness", slog.String("error", err.Error()), slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to check account code: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: code %s", ErrDuplicateAccountCode, req.Code)
	}

	parentID := ""
	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		parent, err := s.accountRepo.FindAccountByID(ctx, companyID, *req.ParentAccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: ID %s", ErrParentNotFound, *req.ParentAccountID)
			}
			return nil, fmt.Errorf("failed to fetch parent account: %w", err)
		}
		parentID = parent.AccountID
	}

	allowEntry := true
	if req.AllowAccountEntry != nil {
		allowEntry = *req.AllowAccountEntry
	}

	levels := domain.PostingLevels{
		Sales:      domain.PostingDetail,
		Inventory:  domain.PostingDetail,
		Purchasing: domain.PostingDetail,
		Payroll:    domain.PostingDetail,
	}
	if req.PostingLevels != nil {
		if req.PostingLevels.Sales != "" {
			levels.Sales = domain.PostingLevel(req.PostingLevels.Sales)
		}
		if req.PostingLevels.Inventory != "" {
			levels.Inventory = domain.PostingLevel(req.PostingLevels.Inventory)
		}
		if req.PostingLevels.Purchasing != "" {
			levels.Purchasing = domain.PostingLevel(req.PostingLevels.Purchasing)
		}
		if req.PostingLevels.Payroll != "" {
			levels.Payroll = domain.PostingLevel(req.PostingLevels.Payroll)
		}
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:         uuid.NewString(),
		CompanyID:         companyID,
		Code:              req.Code,
		Name:              req.Name,
		Alias:             req.Alias,
		AccountType:       accountType,
		SubType:           req.SubType,
		Description:       req.Description,
		Category:          req.Category,
		PostingType:       postingType,
		TypicalBalance:    typical,
		IsInactive:        false,
		AllowAccountEntry: allowEntry,
		OpeningBalance:    req.OpeningBalance,
		PostingLevels:     levels,
		ParentAccountID:   parentID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: code %s", ErrDuplicateAccountCode, req.Code)
		}
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code), slog.String("company_id", companyID))
	return &account, nil
}

// GetAccountByID retrieves a specific account by its unique identifier.
// Implements portssvc.AccountSvcFacade
func (s *accountService) GetAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, companyID, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID %s", ErrAccountNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to fetch account %s: %w", accountID, err)
	}
	return account, nil
}

// GetAccountByIDs retrieves multiple accounts by their IDs.
// Implements portssvc.AccountSvcFacade
func (s *accountService) GetAccountByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error) {
	return s.accountRepo.FindAccountsByIDs(ctx, companyID, accountIDs)
}

// ListAccounts retrieves a paginated list of accounts for a given company.
// Implements portssvc.AccountSvcFacade
func (s *accountService) ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Account, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.accountRepo.ListAccounts(ctx, companyID, limit, offset)
}

// validateParentChain walks the ancestor chain from newParentID and fails
// when accountID is already an ancestor, which would close a cycle.
func (s *accountService) validateParentChain(ctx context.Context, companyID string, accountID string, newParentID string) error {
	current := newParentID
	for depth := 0; current != ""; depth++ {
		if depth >= maxHierarchyDepth {
			return fmt.Errorf("%w: hierarchy deeper than %d levels", ErrCyclicHierarchy, maxHierarchyDepth)
		}
		if current == accountID {
			return fmt.Errorf("%w: account %s is an ancestor of itself", ErrCyclicHierarchy, accountID)
		}
		ancestor, err := s.accountRepo.FindAccountByID(ctx, companyID, current)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: ID %s", ErrParentNotFound, current)
			}
			return fmt.Errorf("failed to walk account hierarchy: %w", err)
		}
		current = ancestor.ParentAccountID
	}
	return nil
}

// UpdateAccount updates an existing account's mutable details. The account
// code cannot be changed after creation.
// Implements portssvc.AccountSvcFacade
func (s *accountService) UpdateAccount(ctx context.Context, companyID string, accountID string, req dto.UpdateAccountRequest, requestingUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.GetAccountByID(ctx, companyID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Alias != nil {
		account.Alias = *req.Alias
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.Category != nil {
		account.Category = *req.Category
	}
	if req.IsInactive != nil {
		account.IsInactive = *req.IsInactive
	}
	if req.AllowAccountEntry != nil {
		account.AllowAccountEntry = *req.AllowAccountEntry
	}
	if req.ParentAccountID != nil && *req.ParentAccountID != account.ParentAccountID {
		if *req.ParentAccountID != "" {
			if err := s.validateParentChain(ctx, companyID, accountID, *req.ParentAccountID); err != nil {
				return nil, err
			}
		}
		account.ParentAccountID = *req.ParentAccountID
	}

	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = requestingUserID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account %s: %w", accountID, err)
	}

	logger.Info("Account updated", slog.String("account_id", accountID), slog.String("company_id", companyID))
	return account, nil
}

// DeactivateAccount marks an account as inactive. History is preserved;
// the account simply stops accepting new entries.
// Implements portssvc.AccountSvcFacade
func (s *accountService) DeactivateAccount(ctx context.Context, companyID string, accountID string, requestingUserID string) error {
	inactive := true
	_, err := s.UpdateAccount(ctx, companyID, accountID, dto.UpdateAccountRequest{IsInactive: &inactive}, requestingUserID)
	return err
}
