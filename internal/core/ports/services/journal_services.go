package services

import (
	"context"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/finbooks-app/finbooks_backend/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetJournalByID retrieves a specific journal, with its lines, by ID.
	GetJournalByID(ctx context.Context, companyID string, journalID string) (*domain.JournalHeader, error)

	// ListJournals retrieves a keyset-paginated list of journals in a company.
	ListJournals(ctx context.Context, companyID string, params dto.ListJournalsParams) ([]domain.JournalHeader, *string, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// CreateJournal validates and persists a new journal with its lines.
	// Entries without a batch ID are POSTED immediately; entries with one
	// stay DRAFT until the batch is posted.
	CreateJournal(ctx context.Context, companyID string, req dto.CreateJournalRequest, creatorUserID string) (*domain.JournalHeader, error)
}

// BatchSvc defines operations on named batches of DRAFT journals
type BatchSvc interface {
	// ListBatches summarizes the pending batches of a company.
	ListBatches(ctx context.Context, companyID string) ([]domain.BatchSummary, error)

	// PostBatch atomically flips every DRAFT journal in the batch to POSTED
	// and returns how many were posted.
	PostBatch(ctx context.Context, companyID string, batchID string, requestingUserID string) (int64, error)
}

// JournalSvcFacade combines all journal-related service interfaces
// This is a facade for clients that need access to all operations
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
	BatchSvc
}
