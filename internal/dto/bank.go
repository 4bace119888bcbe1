package dto

import (
	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ChequeRequest describes one cheque inside a deposit.
type ChequeRequest struct {
	ChequeNumber string          `json:"chequeNumber" binding:"required"`
	BankName     string          `json:"bankName"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	DateOnCheque string          `json:"dateOnCheque" binding:"omitempty,datetime=2006-01-02"`
	ReceivedFrom string          `json:"receivedFrom" binding:"required"`
}

// CreateChequeDepositRequest defines the data needed to record a deposit of
// one or more cheques into a bank account.
type CreateChequeDepositRequest struct {
	BankAccountID string          `json:"bankAccountID" binding:"required"`
	DepositDate   string          `json:"depositDate" binding:"required,datetime=2006-01-02"`
	Reference     string          `json:"reference"`
	CompanyID     string          `json:"companyID"` // Optional; must match the authenticated tenant when present
	Cheques       []ChequeRequest `json:"cheques" binding:"required,min=1,dive"`
}

// BankTransactionDetailResponse defines the data returned for one detail row.
type BankTransactionDetailResponse struct {
	DetailID    string          `json:"detailID"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	ChequeNo    string          `json:"chequeNo,omitempty"`
	IsCleared   bool            `json:"isCleared"`
	ClearedDate string          `json:"clearedDate,omitempty"`
	MatchID     string          `json:"matchID,omitempty"`
}

// BankTransactionResponse defines the data returned for a bank transaction.
type BankTransactionResponse struct {
	TransactionID   string                          `json:"transactionID"`
	BankAccountID   string                          `json:"bankAccountID"`
	Date            string                          `json:"date"`
	TotalAmount     decimal.Decimal                 `json:"totalAmount"`
	TransactionType string                          `json:"transactionType"`
	Reference       string                          `json:"reference,omitempty"`
	Reconciled      bool                            `json:"reconciled"`
	CreatedAt       string                          `json:"createdAt"`
	CreatedBy       string                          `json:"createdBy"`
	Details         []BankTransactionDetailResponse `json:"details,omitempty"`
}

// ToBankTransactionDetailResponse converts a domain detail to its DTO.
func ToBankTransactionDetailResponse(d *domain.BankTransactionDetail) BankTransactionDetailResponse {
	resp := BankTransactionDetailResponse{
		DetailID:    d.DetailID,
		Description: d.Description,
		Amount:      d.Amount,
		ChequeNo:    d.ChequeNo,
		IsCleared:   d.IsCleared,
		MatchID:     d.MatchID,
	}
	if d.ClearedDate != nil {
		resp.ClearedDate = FormatDate(*d.ClearedDate)
	}
	return resp
}

// ToBankTransactionResponse converts a domain header to its DTO, including
// details when they are loaded.
func ToBankTransactionResponse(h *domain.BankTransactionHeader) BankTransactionResponse {
	resp := BankTransactionResponse{
		TransactionID:   h.TransactionID,
		BankAccountID:   h.BankAccountID,
		Date:            FormatDate(h.Date),
		TotalAmount:     h.TotalAmount,
		TransactionType: string(h.TransactionType),
		Reference:       h.Reference,
		Reconciled:      h.Reconciled,
		CreatedAt:       h.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		CreatedBy:       h.CreatedBy,
	}
	if len(h.Details) > 0 {
		resp.Details = make([]BankTransactionDetailResponse, len(h.Details))
		for i := range h.Details {
			resp.Details[i] = ToBankTransactionDetailResponse(&h.Details[i])
		}
	}
	return resp
}

// ListBankTransactionsResponse wraps the list of bank transactions.
type ListBankTransactionsResponse struct {
	Transactions []BankTransactionResponse `json:"transactions"`
}

// ReconciliationItemRequest matches one statement line to a recorded detail.
type ReconciliationItemRequest struct {
	TransactionID string `json:"transactionID" binding:"required"`
	IsCleared     bool   `json:"isCleared"`
	ClearedDate   string `json:"clearedDate" binding:"omitempty,datetime=2006-01-02"`
}

// CreateBankReconciliationRequest defines a reconciliation run against a
// bank statement.
type CreateBankReconciliationRequest struct {
	BankAccountID           string                      `json:"bankAccountID" binding:"required"`
	StatementDate           string                      `json:"statementDate" binding:"required,datetime=2006-01-02"`
	ClosingBalanceAsPerBank decimal.Decimal             `json:"closingBalanceAsPerBank"`
	CompanyID               string                      `json:"companyID"` // Optional; must match the authenticated tenant when present
	Items                   []ReconciliationItemRequest `json:"items" binding:"required,min=1,dive"`
}

// BankReconciliationResponse reports the outcome of a reconciliation run.
// Unmatched statement lines are skipped, not failed.
type BankReconciliationResponse struct {
	BankAccountID string   `json:"bankAccountID"`
	StatementDate string   `json:"statementDate"`
	Matched       int      `json:"matched"`
	Updated       int      `json:"updated"`
	Skipped       []string `json:"skipped,omitempty"`
}
