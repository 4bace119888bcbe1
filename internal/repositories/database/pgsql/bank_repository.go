package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/finbooks-app/finbooks_backend/internal/apperrors"
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks-app/finbooks_backend/internal/core/ports/repositories"
	"github.com/finbooks-app/finbooks_backend/internal/models"
	"github.com/finbooks-app/finbooks_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBankRepository struct {
	BaseRepository
}

// newPgxBankRepository creates a new repository for the bank-transaction ledger.
func newPgxBankRepository(pool *pgxpool.Pool) portsrepo.BankRepositoryFacade {
	return &PgxBankRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxBankRepository implements portsrepo.BankRepositoryFacade
var _ portsrepo.BankRepositoryFacade = (*PgxBankRepository)(nil)

const bankHeaderColumns = `transaction_id, company_id, bank_account_id, transaction_date, total_amount,
	transaction_type, reference, reconciled, created_at, created_by, last_updated_at, last_updated_by`

const bankDetailColumns = `detail_id, tx_id, description, amount, cheque_no, is_cleared, cleared_date, match_id,
	created_at, created_by, last_updated_at, last_updated_by`

// scanBankHeader reads one bank_transaction_headers row in bankHeaderColumns order.
func scanBankHeader(row rowScanner) (models.BankTransactionHeader, error) {
	var m models.BankTransactionHeader
	err := row.Scan(
		&m.TransactionID,
		&m.CompanyID,
		&m.BankAccountID,
		&m.TransactionDate,
		&m.TotalAmount,
		&m.TransactionType,
		&m.Reference,
		&m.Reconciled,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// scanBankDetail reads one bank_transaction_details row in bankDetailColumns order.
func scanBankDetail(row rowScanner) (models.BankTransactionDetail, error) {
	var m models.BankTransactionDetail
	var matchID sql.NullString

	err := row.Scan(
		&m.DetailID,
		&m.HeaderID,
		&m.Description,
		&m.Amount,
		&m.ChequeNo,
		&m.IsCleared,
		&m.ClearedDate,
		&matchID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return models.BankTransactionDetail{}, err
	}
	if matchID.Valid {
		m.MatchID = matchID.String
	}
	return m, nil
}

// SaveBankTransaction persists a header and its details atomically.
func (r *PgxBankRepository) SaveBankTransaction(ctx context.Context, header domain.BankTransactionHeader, details []domain.BankTransactionDetail) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	hm := mapping.ToModelBankHeader(header)
	headerQuery := `
		INSERT INTO bank_transaction_headers (` + bankHeaderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, headerQuery,
		hm.TransactionID,
		hm.CompanyID,
		hm.BankAccountID,
		hm.TransactionDate,
		hm.TotalAmount,
		hm.TransactionType,
		hm.Reference,
		hm.Reconciled,
		hm.CreatedAt,
		hm.CreatedBy,
		hm.LastUpdatedAt,
		hm.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bank transaction %s: %w", hm.TransactionID, err)
	}

	detailQuery := `
		INSERT INTO bank_transaction_details (` + bankDetailColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	batch := &pgx.Batch{}
	for _, detail := range details {
		dm := mapping.ToModelBankDetail(detail)
		var matchID sql.NullString
		if dm.MatchID != "" {
			matchID = sql.NullString{String: dm.MatchID, Valid: true}
		}
		batch.Queue(detailQuery,
			dm.DetailID,
			dm.HeaderID,
			dm.Description,
			dm.Amount,
			dm.ChequeNo,
			dm.IsCleared,
			dm.ClearedDate,
			matchID,
			dm.CreatedAt,
			dm.CreatedBy,
			dm.LastUpdatedAt,
			dm.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range details {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("failed to insert bank detail for transaction %s: %w", hm.TransactionID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close detail batch for transaction %s: %w", hm.TransactionID, err)
	}

	return r.Commit(ctx, tx)
}

// FindDetailScoped locates one detail through its parent header, scoped to
// the given company and bank account.
func (r *PgxBankRepository) FindDetailScoped(ctx context.Context, companyID string, bankAccountID string, detailID string) (*domain.BankTransactionDetail, error) {
	query := `
		SELECT d.detail_id, d.tx_id, d.description, d.amount, d.cheque_no, d.is_cleared, d.cleared_date, d.match_id,
		       d.created_at, d.created_by, d.last_updated_at, d.last_updated_by
		FROM bank_transaction_details d
		JOIN bank_transaction_headers h ON h.transaction_id = d.tx_id
		WHERE h.company_id = $1 AND h.bank_account_id = $2 AND d.detail_id = $3;
	`
	m, err := scanBankDetail(r.Pool.QueryRow(ctx, query, companyID, bankAccountID, detailID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank detail %s: %w", detailID, err)
	}

	detail := mapping.ToDomainBankDetail(m)
	return &detail, nil
}

// MarkDetailCleared records the cleared flag and date on a detail.
func (r *PgxBankRepository) MarkDetailCleared(ctx context.Context, detailID string, clearedDate time.Time, userID string, now time.Time) error {
	query := `
		UPDATE bank_transaction_details
		SET is_cleared = TRUE, cleared_date = $2, last_updated_at = $3, last_updated_by = $4
		WHERE detail_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, detailID, clearedDate, now, userID)
	if err != nil {
		return fmt.Errorf("failed to mark detail %s cleared: %w", detailID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkHeaderReconciled flags a header as reconciled.
func (r *PgxBankRepository) MarkHeaderReconciled(ctx context.Context, headerID string, userID string, now time.Time) error {
	query := `
		UPDATE bank_transaction_headers
		SET reconciled = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, headerID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to mark header %s reconciled: %w", headerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindDetailsByHeaderID retrieves the details of one header.
func (r *PgxBankRepository) FindDetailsByHeaderID(ctx context.Context, headerID string) ([]domain.BankTransactionDetail, error) {
	query := `
		SELECT ` + bankDetailColumns + `
		FROM bank_transaction_details
		WHERE tx_id = $1
		ORDER BY created_at, detail_id;
	`
	rows, err := r.Pool.Query(ctx, query, headerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query details for transaction %s: %w", headerID, err)
	}
	defer rows.Close()

	details := make([]models.BankTransactionDetail, 0, 8)
	for rows.Next() {
		m, err := scanBankDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank detail: %w", err)
		}
		details = append(details, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bank details: %w", err)
	}
	return mapping.ToDomainBankDetailSlice(details), nil
}

// ListDeposits retrieves the deposit transactions of a company with their
// details, newest first.
func (r *PgxBankRepository) ListDeposits(ctx context.Context, companyID string) ([]domain.BankTransactionHeader, error) {
	query := `
		SELECT ` + bankHeaderColumns + `
		FROM bank_transaction_headers
		WHERE company_id = $1 AND transaction_type = 'Deposit'
		ORDER BY transaction_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deposits for company %s: %w", companyID, err)
	}
	defer rows.Close()

	headers := make([]domain.BankTransactionHeader, 0, 16)
	for rows.Next() {
		m, err := scanBankHeader(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank transaction: %w", err)
		}
		headers = append(headers, mapping.ToDomainBankHeader(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bank transactions: %w", err)
	}

	for i := range headers {
		details, err := r.FindDetailsByHeaderID(ctx, headers[i].TransactionID)
		if err != nil {
			return nil, err
		}
		headers[i].Details = details
	}
	return headers, nil
}
