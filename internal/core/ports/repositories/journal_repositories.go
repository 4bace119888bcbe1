package repositories

import (
	"context"
	"time"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalRepositoryFacade defines persistence operations for journal
// headers and their lines.
type JournalRepositoryFacade interface {
	// SaveJournalEntry persists a header and its lines as one atomic unit.
	SaveJournalEntry(ctx context.Context, header domain.JournalHeader, lines []domain.JournalLine) error

	FindJournalByID(ctx context.Context, companyID string, journalID string) (*domain.JournalHeader, error)
	FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error)
	ListJournals(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.JournalHeader, *string, error)

	// SumPostedByAccount totals debit and credit across all lines of POSTED
	// headers for one account of one company.
	SumPostedByAccount(ctx context.Context, companyID string, accountID string) (sumDebit, sumCredit decimal.Decimal, err error)

	// SumPostedByAccountBefore is SumPostedByAccount restricted to headers
	// dated strictly before the given date.
	SumPostedByAccountBefore(ctx context.Context, companyID string, accountID string, before time.Time) (sumDebit, sumCredit decimal.Decimal, err error)

	// ListBatches aggregates DRAFT headers grouped by batch_id.
	ListBatches(ctx context.Context, companyID string) ([]domain.BatchSummary, error)

	// PostBatch transitions every DRAFT header of the batch to POSTED in a
	// single statement, attributing the update to userID, and returns how
	// many headers were posted.
	PostBatch(ctx context.Context, companyID string, batchID string, userID string) (int64, error)

	// FindPostedLinesByAccountDateRange returns POSTED lines joined to their
	// headers for the ledger report.
	FindPostedLinesByAccountDateRange(ctx context.Context, companyID string, accountID string, startDate, endDate time.Time) ([]domain.LedgerLine, error)
}
