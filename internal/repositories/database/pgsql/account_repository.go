package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/finbooks-app/finbooks_backend/internal/apperrors"
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks-app/finbooks_backend/internal/core/ports/repositories"
	"github.com/finbooks-app/finbooks_backend/internal/models"
	"github.com/finbooks-app/finbooks_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for chart-of-accounts data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, company_id, code, name, alias, account_type, sub_type, description, category,
	posting_type, typical_balance, is_inactive, allow_account_entry, opening_balance,
	posting_level_sales, posting_level_inventory, posting_level_purchasing, posting_level_payroll,
	parent_account_id, created_at, created_by, last_updated_at, last_updated_by`

// rowScanner covers both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanAccount reads one chart_of_accounts row in accountColumns order.
func scanAccount(row rowScanner) (models.Account, error) {
	var m models.Account
	var parentID sql.NullString

	err := row.Scan(
		&m.AccountID,
		&m.CompanyID,
		&m.Code,
		&m.Name,
		&m.Alias,
		&m.AccountType,
		&m.SubType,
		&m.Description,
		&m.Category,
		&m.PostingType,
		&m.TypicalBalance,
		&m.IsInactive,
		&m.AllowAccountEntry,
		&m.OpeningBalance,
		&m.PostingLevelSales,
		&m.PostingLevelInventory,
		&m.PostingLevelPurchase,
		&m.PostingLevelPayroll,
		&parentID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return models.Account{}, err
	}
	if parentID.Valid {
		m.ParentAccountID = parentID.String
	}
	return m, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO chart_of_accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23);
	`
	// Use sql.NullString for the potentially NULL parent_account_id
	var parentID sql.NullString
	if m.ParentAccountID != "" {
		parentID = sql.NullString{String: m.ParentAccountID, Valid: true}
	}

	_, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.CompanyID,
		m.Code,
		m.Name,
		m.Alias,
		m.AccountType,
		m.SubType,
		m.Description,
		m.Category,
		m.PostingType,
		m.TypicalBalance,
		m.IsInactive,
		m.AllowAccountEntry,
		m.OpeningBalance,
		m.PostingLevelSales,
		m.PostingLevelInventory,
		m.PostingLevelPurchase,
		m.PostingLevelPayroll,
		parentID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation (company_id, code)
				return fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, m.Code)
			}
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID within one company.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, companyID string, accountID string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM chart_of_accounts
		WHERE company_id = $1 AND account_id = $2;
	`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, companyID, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// FindAccountsByIDs retrieves multiple accounts keyed by ID. IDs that do not
// exist in the company are simply absent from the result.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, companyID string, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `
		SELECT ` + accountColumns + `
		FROM chart_of_accounts
		WHERE company_id = $1 AND account_id = ANY($2);
	`
	rows, err := r.Pool.Query(ctx, query, companyID, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs: %w", err)
	}
	defer rows.Close()

	result := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		result[m.AccountID] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read account rows: %w", err)
	}
	return result, nil
}

// FindAccountByCode retrieves an account by its code within one company.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, companyID string, code string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM chart_of_accounts
		WHERE company_id = $1 AND code = $2;
	`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, companyID, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by code %s: %w", code, err)
	}

	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// ListAccounts retrieves a page of accounts for a company ordered by code.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, companyID string, limit int, offset int) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM chart_of_accounts
		WHERE company_id = $1
		ORDER BY code
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts for company %s: %w", companyID, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0, limit)
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read account rows: %w", err)
	}
	return mapping.ToDomainAccountSlice(accounts), nil
}

// UpdateAccount persists the mutable fields of an account. The code column
// is deliberately not part of the statement.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		UPDATE chart_of_accounts
		SET name = $3, alias = $4, description = $5, category = $6,
		    is_inactive = $7, allow_account_entry = $8, parent_account_id = $9,
		    last_updated_at = $10, last_updated_by = $11
		WHERE company_id = $1 AND account_id = $2;
	`
	var parentID sql.NullString
	if m.ParentAccountID != "" {
		parentID = sql.NullString{String: m.ParentAccountID, Valid: true}
	}

	tag, err := r.Pool.Exec(ctx, query,
		m.CompanyID,
		m.AccountID,
		m.Name,
		m.Alias,
		m.Description,
		m.Category,
		m.IsInactive,
		m.AllowAccountEntry,
		parentID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
