package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/finbooks-app/finbooks_backend/internal/apperrors"
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks-app/finbooks_backend/internal/core/ports/repositories"
	"github.com/finbooks-app/finbooks_backend/internal/models"
	"github.com/finbooks-app/finbooks_backend/internal/utils/mapping"
	"github.com/finbooks-app/finbooks_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const journalHeaderColumns = `journal_id, company_id, journal_date, reference, notes, status,
	total_debit, total_credit, batch_id, created_at, created_by, last_updated_at, last_updated_by`

const journalLineColumns = `line_id, journal_id, account_id, debit, credit, tax_amount, description, line_no,
	created_at, created_by, last_updated_at, last_updated_by`

// scanJournalHeader reads one journal_headers row in journalHeaderColumns order.
func scanJournalHeader(row rowScanner) (models.JournalHeader, error) {
	var m models.JournalHeader
	var batchID sql.NullString

	err := row.Scan(
		&m.JournalID,
		&m.CompanyID,
		&m.JournalDate,
		&m.Reference,
		&m.Notes,
		&m.Status,
		&m.TotalDebit,
		&m.TotalCredit,
		&batchID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return models.JournalHeader{}, err
	}
	if batchID.Valid {
		m.BatchID = batchID.String
	}
	return m, nil
}

// scanJournalLine reads one journal_details row in journalLineColumns order.
func scanJournalLine(row rowScanner) (models.JournalLine, error) {
	var m models.JournalLine
	err := row.Scan(
		&m.LineID,
		&m.JournalID,
		&m.AccountID,
		&m.Debit,
		&m.Credit,
		&m.TaxAmount,
		&m.Description,
		&m.LineNo,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveJournalEntry persists a header and its lines as one atomic unit.
func (r *PgxJournalRepository) SaveJournalEntry(ctx context.Context, header domain.JournalHeader, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := insertJournalEntry(ctx, tx, header, lines); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// insertJournalEntry writes a header and its lines inside an existing
// transaction. Shared with the transfer repository, which opens its own.
func insertJournalEntry(ctx context.Context, tx pgx.Tx, header domain.JournalHeader, lines []domain.JournalLine) error {
	m := mapping.ToModelJournalHeader(header)

	var batchID sql.NullString
	if m.BatchID != "" {
		batchID = sql.NullString{String: m.BatchID, Valid: true}
	}

	headerQuery := `
		INSERT INTO journal_headers (` + journalHeaderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := tx.Exec(ctx, headerQuery,
		m.JournalID,
		m.CompanyID,
		m.JournalDate,
		m.Reference,
		m.Notes,
		m.Status,
		m.TotalDebit,
		m.TotalCredit,
		batchID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal header %s: %w", m.JournalID, err)
	}

	lineQuery := `
		INSERT INTO journal_details (` + journalLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	batch := &pgx.Batch{}
	for _, line := range lines {
		lm := mapping.ToModelJournalLine(line)
		batch.Queue(lineQuery,
			lm.LineID,
			lm.JournalID,
			lm.AccountID,
			lm.Debit,
			lm.Credit,
			lm.TaxAmount,
			lm.Description,
			lm.LineNo,
			lm.CreatedAt,
			lm.CreatedBy,
			lm.LastUpdatedAt,
			lm.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range lines {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("failed to insert journal line for journal %s: %w", m.JournalID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close line batch for journal %s: %w", m.JournalID, err)
	}
	return nil
}

// FindJournalByID retrieves a journal header by ID within one company.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, companyID string, journalID string) (*domain.JournalHeader, error) {
	query := `
		SELECT ` + journalHeaderColumns + `
		FROM journal_headers
		WHERE company_id = $1 AND journal_id = $2;
	`
	m, err := scanJournalHeader(r.Pool.QueryRow(ctx, query, companyID, journalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal by ID %s: %w", journalID, err)
	}

	header := mapping.ToDomainJournalHeader(m)
	return &header, nil
}

// FindLinesByJournalID retrieves the lines of a journal in entry order.
func (r *PgxJournalRepository) FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error) {
	query := `
		SELECT ` + journalLineColumns + `
		FROM journal_details
		WHERE journal_id = $1
		ORDER BY line_no;
	`
	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for journal %s: %w", journalID, err)
	}
	defer rows.Close()

	lines := make([]models.JournalLine, 0, 4)
	for rows.Next() {
		m, err := scanJournalLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal line: %w", err)
		}
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read journal lines: %w", err)
	}
	return mapping.ToDomainJournalLineSlice(lines), nil
}

// ListJournals retrieves a page of journal headers for a company using
// token-based keyset pagination, newest first.
func (r *PgxJournalRepository) ListJournals(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.JournalHeader, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to know whether another page exists.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + journalHeaderColumns + `
		FROM journal_headers
		WHERE company_id = $1`
	orderByClause := ` ORDER BY journal_date DESC, created_at DESC`

	args := []interface{}{companyID}
	query := baseQuery

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (journal_date, created_at) < ($2, $3)`
		args = append(args, lastDate, lastCreatedAt)
	}

	query += orderByClause + ` LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query journals for company %s: %w", companyID, err)
	}
	defer rows.Close()

	headers := make([]models.JournalHeader, 0, fetchLimit)
	for rows.Next() {
		m, err := scanJournalHeader(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan journal header: %w", err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read journal headers: %w", err)
	}

	var newToken *string
	if len(headers) > limit {
		headers = headers[:limit]
		last := headers[len(headers)-1]
		token := pagination.EncodeToken(last.JournalDate, last.CreatedAt)
		newToken = &token
	}

	result := make([]domain.JournalHeader, len(headers))
	for i, m := range headers {
		result[i] = mapping.ToDomainJournalHeader(m)
	}
	return result, newToken, nil
}

// SumPostedByAccount totals debit and credit across POSTED lines of one
// account. DRAFT journals never contribute.
func (r *PgxJournalRepository) SumPostedByAccount(ctx context.Context, companyID string, accountID string) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(jd.debit), 0), COALESCE(SUM(jd.credit), 0)
		FROM journal_details jd
		JOIN journal_headers jh ON jh.journal_id = jd.journal_id
		WHERE jh.company_id = $1 AND jd.account_id = $2 AND jh.status = 'POSTED';
	`
	var sumDebit, sumCredit decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, companyID, accountID).Scan(&sumDebit, &sumCredit)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum posted lines for account %s: %w", accountID, err)
	}
	return sumDebit, sumCredit, nil
}

// SumPostedByAccountBefore is SumPostedByAccount restricted to headers dated
// strictly before the given date.
func (r *PgxJournalRepository) SumPostedByAccountBefore(ctx context.Context, companyID string, accountID string, before time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(jd.debit), 0), COALESCE(SUM(jd.credit), 0)
		FROM journal_details jd
		JOIN journal_headers jh ON jh.journal_id = jd.journal_id
		WHERE jh.company_id = $1 AND jd.account_id = $2 AND jh.status = 'POSTED'
		  AND jh.journal_date < $3;
	`
	var sumDebit, sumCredit decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, companyID, accountID, before).Scan(&sumDebit, &sumCredit)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum prior posted lines for account %s: %w", accountID, err)
	}
	return sumDebit, sumCredit, nil
}

// ListBatches aggregates DRAFT headers grouped by batch_id.
func (r *PgxJournalRepository) ListBatches(ctx context.Context, companyID string) ([]domain.BatchSummary, error) {
	query := `
		SELECT batch_id, COUNT(*), COALESCE(SUM(total_debit), 0)
		FROM journal_headers
		WHERE company_id = $1 AND status = 'DRAFT' AND batch_id IS NOT NULL
		GROUP BY batch_id
		ORDER BY batch_id;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches for company %s: %w", companyID, err)
	}
	defer rows.Close()

	batches := make([]domain.BatchSummary, 0, 8)
	for rows.Next() {
		var b domain.BatchSummary
		if err := rows.Scan(&b.BatchID, &b.Count, &b.TotalDebit); err != nil {
			return nil, fmt.Errorf("failed to scan batch summary: %w", err)
		}
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch summaries: %w", err)
	}
	return batches, nil
}

// PostBatch transitions every DRAFT header of the batch to POSTED in a
// single statement, attributing the update to the posting user. Returns
// the number of headers flipped; zero means the batch does not exist or
// was posted already.
func (r *PgxJournalRepository) PostBatch(ctx context.Context, companyID string, batchID string, userID string) (int64, error) {
	query := `
		UPDATE journal_headers
		SET status = 'POSTED', last_updated_at = NOW(), last_updated_by = $3
		WHERE company_id = $1 AND batch_id = $2 AND status = 'DRAFT';
	`
	tag, err := r.Pool.Exec(ctx, query, companyID, batchID, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to post batch %s: %w", batchID, err)
	}
	return tag.RowsAffected(), nil
}

// FindPostedLinesByAccountDateRange returns POSTED lines joined to their
// headers for the ledger report, in chronological order.
func (r *PgxJournalRepository) FindPostedLinesByAccountDateRange(ctx context.Context, companyID string, accountID string, startDate, endDate time.Time) ([]domain.LedgerLine, error) {
	query := `
		SELECT jd.line_id, jd.journal_id, jd.account_id, jd.debit, jd.credit, jd.tax_amount, jd.description, jd.line_no,
		       jd.created_at, jd.created_by, jd.last_updated_at, jd.last_updated_by,
		       jh.journal_date, jh.reference, jh.status
		FROM journal_details jd
		JOIN journal_headers jh ON jh.journal_id = jd.journal_id
		WHERE jh.company_id = $1 AND jd.account_id = $2 AND jh.status = 'POSTED'
		  AND jh.journal_date >= $3 AND jh.journal_date <= $4
		ORDER BY jh.journal_date, jh.created_at, jd.line_no;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, accountID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger lines for account %s: %w", accountID, err)
	}
	defer rows.Close()

	lines := make([]domain.LedgerLine, 0, 32)
	for rows.Next() {
		var m models.JournalLine
		err := rows.Scan(
			&m.LineID,
			&m.JournalID,
			&m.AccountID,
			&m.Debit,
			&m.Credit,
			&m.TaxAmount,
			&m.Description,
			&m.LineNo,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&m.JournalDate,
			&m.JournalReference,
			&m.JournalStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger line: %w", err)
		}
		lines = append(lines, mapping.ToDomainLedgerLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ledger lines: %w", err)
	}
	return lines, nil
}
