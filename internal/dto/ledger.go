package dto

import (
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReportParams defines query parameters for the account ledger report.
type LedgerReportParams struct {
	AccountID string `form:"accountID" binding:"required"`
	StartDate string `form:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"required,datetime=2006-01-02"`
}

// LedgerLineResponse is one posted movement on an account, with its running
// balance after the movement.
type LedgerLineResponse struct {
	JournalID      string          `json:"journalID"`
	Date           string          `json:"date"`
	Reference      string          `json:"reference"`
	Description    string          `json:"description,omitempty"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// LedgerReportResponse defines the data returned for a ledger report.
type LedgerReportResponse struct {
	AccountID      string               `json:"accountID"`
	AccountCode    string               `json:"accountCode"`
	AccountName    string               `json:"accountName"`
	StartDate      string               `json:"startDate"`
	EndDate        string               `json:"endDate"`
	OpeningBalance decimal.Decimal      `json:"openingBalance"`
	ClosingBalance decimal.Decimal      `json:"closingBalance"`
	Lines          []LedgerLineResponse `json:"lines"`
}

// ToLedgerLineResponse converts a domain.LedgerReportLine to the report DTO.
func ToLedgerLineResponse(l *domain.LedgerReportLine) LedgerLineResponse {
	return LedgerLineResponse{
		JournalID:      l.JournalID,
		Date:           FormatDate(l.JournalDate),
		Reference:      l.JournalReference,
		Description:    l.Description,
		Debit:          l.Debit,
		Credit:         l.Credit,
		RunningBalance: l.RunningBalance,
	}
}

// ToLedgerReportResponse converts a domain.LedgerReport to its DTO.
func ToLedgerReportResponse(r *domain.LedgerReport) LedgerReportResponse {
	lines := make([]LedgerLineResponse, len(r.Lines))
	for i := range r.Lines {
		lines[i] = ToLedgerLineResponse(&r.Lines[i])
	}
	return LedgerReportResponse{
		AccountID:      r.Account.AccountID,
		AccountCode:    r.Account.Code,
		AccountName:    r.Account.Name,
		StartDate:      FormatDate(r.StartDate),
		EndDate:        FormatDate(r.EndDate),
		OpeningBalance: r.OpeningBalance,
		ClosingBalance: r.ClosingBalance,
		Lines:          lines,
	}
}
