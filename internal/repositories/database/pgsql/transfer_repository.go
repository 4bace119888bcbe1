package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbooks-app/finbooks_backend/internal/apperrors"
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks-app/finbooks_backend/internal/core/ports/repositories"
	"github.com/finbooks-app/finbooks_backend/internal/models"
	"github.com/finbooks-app/finbooks_backend/internal/utils/accounting"
	"github.com/finbooks-app/finbooks_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTransferRepository struct {
	BaseRepository
}

// newPgxTransferRepository creates a new repository for fund transfers.
func newPgxTransferRepository(pool *pgxpool.Pool) portsrepo.TransferRepositoryFacade {
	return &PgxTransferRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxTransferRepository implements portsrepo.TransferRepositoryFacade
var _ portsrepo.TransferRepositoryFacade = (*PgxTransferRepository)(nil)

const transferColumns = `transfer_id, company_id, from_account_id, to_account_id, amount, transfer_date,
	reference, notes, status, journal_id, created_at, created_by, last_updated_at, last_updated_by`

// SaveTransfer persists the transfer record together with its generated
// journal in one database transaction. The source account row is locked
// FOR UPDATE and its balance re-derived under the lock, so two concurrent
// transfers cannot jointly overdraw the account: the second blocks on the
// lock and then sees the first one's postings.
func (r *PgxTransferRepository) SaveTransfer(ctx context.Context, transfer domain.FundTransfer, header domain.JournalHeader, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	// Lock the source account row for the duration of the transaction.
	lockQuery := `
		SELECT typical_balance, opening_balance
		FROM chart_of_accounts
		WHERE company_id = $1 AND account_id = $2
		FOR UPDATE;
	`
	var typicalBalance string
	var openingBalance decimal.Decimal
	err = tx.QueryRow(ctx, lockQuery, transfer.CompanyID, transfer.FromAccountID).Scan(&typicalBalance, &openingBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock source account %s: %w", transfer.FromAccountID, err)
	}

	// Authoritative balance check, repeated under the lock.
	sumQuery := `
		SELECT COALESCE(SUM(jd.debit), 0), COALESCE(SUM(jd.credit), 0)
		FROM journal_details jd
		JOIN journal_headers jh ON jh.journal_id = jd.journal_id
		WHERE jh.company_id = $1 AND jd.account_id = $2 AND jh.status = 'POSTED';
	`
	var sumDebit, sumCredit decimal.Decimal
	if err := tx.QueryRow(ctx, sumQuery, transfer.CompanyID, transfer.FromAccountID).Scan(&sumDebit, &sumCredit); err != nil {
		return fmt.Errorf("failed to sum postings for source account %s: %w", transfer.FromAccountID, err)
	}
	balance, err := accounting.DeriveBalance(domain.TypicalBalance(typicalBalance), openingBalance, sumDebit, sumCredit)
	if err != nil {
		return fmt.Errorf("failed to derive balance for source account %s: %w", transfer.FromAccountID, err)
	}
	if balance.LessThan(transfer.Amount) {
		return fmt.Errorf("%w: balance %s is less than transfer amount %s",
			apperrors.ErrInsufficientFunds, balance.String(), transfer.Amount.String())
	}

	if err := insertJournalEntry(ctx, tx, header, lines); err != nil {
		return err
	}

	m := mapping.ToModelFundTransfer(transfer)
	transferQuery := `
		INSERT INTO fund_transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = tx.Exec(ctx, transferQuery,
		m.TransferID,
		m.CompanyID,
		m.FromAccountID,
		m.ToAccountID,
		m.Amount,
		m.TransferDate,
		m.Reference,
		m.Notes,
		m.Status,
		m.JournalID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert fund transfer %s: %w", m.TransferID, err)
	}

	return r.Commit(ctx, tx)
}

// ListTransfers retrieves the transfers of a company, newest first.
func (r *PgxTransferRepository) ListTransfers(ctx context.Context, companyID string) ([]domain.FundTransfer, error) {
	query := `
		SELECT ` + transferColumns + `
		FROM fund_transfers
		WHERE company_id = $1
		ORDER BY transfer_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers for company %s: %w", companyID, err)
	}
	defer rows.Close()

	transfers := make([]domain.FundTransfer, 0, 16)
	for rows.Next() {
		var m models.FundTransfer
		err := rows.Scan(
			&m.TransferID,
			&m.CompanyID,
			&m.FromAccountID,
			&m.ToAccountID,
			&m.Amount,
			&m.TransferDate,
			&m.Reference,
			&m.Notes,
			&m.Status,
			&m.JournalID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fund transfer: %w", err)
		}
		transfers = append(transfers, mapping.ToDomainFundTransfer(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fund transfers: %w", err)
	}
	return transfers, nil
}
