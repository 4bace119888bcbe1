package dto

import (
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one line of a journal entry request. Amounts are
// non-negative; by convention a line carries a value in only one column.
type JournalLineRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	Description string          `json:"description"`
}

// CreateJournalRequest defines the data needed to post a journal entry.
// Supplying a batchID leaves the entry in DRAFT until the batch is posted.
type CreateJournalRequest struct {
	Date      string               `json:"date" binding:"required,datetime=2006-01-02"`
	Reference string               `json:"reference" binding:"required"`
	Notes     string               `json:"notes"`
	BatchID   string               `json:"batchID"`
	CompanyID string               `json:"companyID"` // Optional; must match the authenticated tenant when present
	Lines     []JournalLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID      string          `json:"lineID"`
	AccountID   string          `json:"accountID"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	Description string          `json:"description,omitempty"`
	LineNo      int             `json:"lineNo"`
}

// JournalResponse defines the data returned for a journal header.
type JournalResponse struct {
	JournalID   string                `json:"journalID"`
	Date        string                `json:"date"`
	Reference   string                `json:"reference"`
	Notes       string                `json:"notes,omitempty"`
	Status      string                `json:"status"`
	TotalDebit  decimal.Decimal       `json:"totalDebit"`
	TotalCredit decimal.Decimal       `json:"totalCredit"`
	BatchID     string                `json:"batchID,omitempty"`
	CreatedAt   string                `json:"createdAt"`
	CreatedBy   string                `json:"createdBy"`
	Lines       []JournalLineResponse `json:"lines,omitempty"`
}

// ToJournalLineResponse converts a domain.JournalLine to its DTO.
func ToJournalLineResponse(line *domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:      line.LineID,
		AccountID:   line.AccountID,
		Debit:       line.Debit,
		Credit:      line.Credit,
		TaxAmount:   line.TaxAmount,
		Description: line.Description,
		LineNo:      line.LineNo,
	}
}

// ToJournalResponse converts a domain.JournalHeader to its DTO, including
// lines when they are loaded.
func ToJournalResponse(j *domain.JournalHeader) JournalResponse {
	resp := JournalResponse{
		JournalID:   j.JournalID,
		Date:        FormatDate(j.Date),
		Reference:   j.Reference,
		Notes:       j.Notes,
		Status:      string(j.Status),
		TotalDebit:  j.TotalDebit,
		TotalCredit: j.TotalCredit,
		BatchID:     j.BatchID,
		CreatedAt:   j.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		CreatedBy:   j.CreatedBy,
	}
	if len(j.Lines) > 0 {
		resp.Lines = make([]JournalLineResponse, len(j.Lines))
		for i := range j.Lines {
			resp.Lines[i] = ToJournalLineResponse(&j.Lines[i])
		}
	}
	return resp
}

// ListJournalsParams defines query parameters for listing journals.
type ListJournalsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListJournalsResponse wraps a page of journals and the cursor for the next page.
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// BatchSummaryResponse describes one batch of DRAFT journals.
type BatchSummaryResponse struct {
	BatchID    string          `json:"batchID"`
	Count      int             `json:"count"`
	TotalDebit decimal.Decimal `json:"totalDebit"`
}

// ListBatchesResponse wraps the batch summaries.
type ListBatchesResponse struct {
	Batches []BatchSummaryResponse `json:"batches"`
}

// PostBatchResponse reports the outcome of posting a batch.
type PostBatchResponse struct {
	BatchID string `json:"batchID"`
	Posted  int64  `json:"posted"`
}
