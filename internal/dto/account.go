package dto

import (
	"time"

	"github.com/finbooks-app/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostingLevelsRequest carries the optional per-module posting hints.
type PostingLevelsRequest struct {
	Sales      string `json:"sales" binding:"omitempty,oneof=DETAIL SUMMARY"`
	Inventory  string `json:"inventory" binding:"omitempty,oneof=DETAIL SUMMARY"`
	Purchasing string `json:"purchasing" binding:"omitempty,oneof=DETAIL SUMMARY"`
	Payroll    string `json:"payroll" binding:"omitempty,oneof=DETAIL SUMMARY"`
}

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Code              string                `json:"code" binding:"required"`
	Name              string                `json:"name" binding:"required"`
	Alias             string                `json:"alias"`
	AccountType       string                `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	SubType           string                `json:"subType" binding:"required"`
	Description       string                `json:"description"`
	Category          string                `json:"category"`
	PostingType       string                `json:"postingType" binding:"omitempty,oneof='Balance Sheet' 'Profit and Loss'"`
	TypicalBalance    string                `json:"typicalBalance" binding:"omitempty,oneof=DEBIT CREDIT"`
	AllowAccountEntry *bool                 `json:"allowAccountEntry"` // Defaults to true
	OpeningBalance    decimal.Decimal       `json:"openingBalance"`
	PostingLevels     *PostingLevelsRequest `json:"postingLevels"`
	ParentAccountID   *string               `json:"parentAccountID"`
	CompanyID         string                `json:"companyID"` // Optional; must match the authenticated tenant when present
}

// UpdateAccountRequest defines the data allowed for updating an account.
// The account code is immutable once created and is deliberately absent.
type UpdateAccountRequest struct {
	Name              *string `json:"name"`
	Alias             *string `json:"alias"`
	Description       *string `json:"description"`
	Category          *string `json:"category"`
	IsInactive        *bool   `json:"isInactive"`
	AllowAccountEntry *bool   `json:"allowAccountEntry"`
	ParentAccountID   *string `json:"parentAccountID"` // Empty string detaches from the parent
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID         string          `json:"accountID"`
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	Alias             string          `json:"alias,omitempty"`
	AccountType       string          `json:"accountType"`
	SubType           string          `json:"subType"`
	Description       string          `json:"description,omitempty"`
	Category          string          `json:"category,omitempty"`
	PostingType       string          `json:"postingType"`
	TypicalBalance    string          `json:"typicalBalance"`
	IsInactive        bool            `json:"isInactive"`
	AllowAccountEntry bool            `json:"allowAccountEntry"`
	OpeningBalance    decimal.Decimal `json:"openingBalance"`
	ParentAccountID   string          `json:"parentAccountID,omitempty"`
	CurrentBalance    decimal.Decimal `json:"currentBalance"`
	CreatedAt         time.Time       `json:"createdAt"`
	CreatedBy         string          `json:"createdBy"`
	LastUpdatedAt     time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy     string          `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
// The caller supplies the derived balance since the domain model does not
// cache one.
func ToAccountResponse(acc *domain.Account, balance decimal.Decimal) AccountResponse {
	return AccountResponse{
		AccountID:         acc.AccountID,
		Code:              acc.Code,
		Name:              acc.Name,
		Alias:             acc.Alias,
		AccountType:       string(acc.AccountType),
		SubType:           acc.SubType,
		Description:       acc.Description,
		Category:          acc.Category,
		PostingType:       acc.PostingType,
		TypicalBalance:    string(acc.TypicalBalance),
		IsInactive:        acc.IsInactive,
		AllowAccountEntry: acc.AllowAccountEntry,
		OpeningBalance:    acc.OpeningBalance,
		ParentAccountID:   acc.ParentAccountID,
		CurrentBalance:    balance,
		CreatedAt:         acc.CreatedAt,
		CreatedBy:         acc.CreatedBy,
		LastUpdatedAt:     acc.LastUpdatedAt,
		LastUpdatedBy:     acc.LastUpdatedBy,
	}
}

// AccountBalanceResponse defines the data returned for a balance query.
type AccountBalanceResponse struct {
	AccountID string          `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
