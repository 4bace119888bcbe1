package models

import (
	"github.com/shopspring/decimal"
)

// AccountType mirrors domain.AccountType at the storage layer.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Account is the chart_of_accounts row.
// Note: ParentAccountID uses string for the nullable self-reference; the
// repository maps it through sql.NullString.
type Account struct {
	AccountID             string          `db:"account_id"`
	CompanyID             string          `db:"company_id"`
	Code                  string          `db:"code"`
	Name                  string          `db:"name"`
	Alias                 string          `db:"alias"`
	AccountType           AccountType     `db:"account_type"`
	SubType               string          `db:"sub_type"`
	Description           string          `db:"description"`
	Category              string          `db:"category"`
	PostingType           string          `db:"posting_type"`
	TypicalBalance        string          `db:"typical_balance"`
	IsInactive            bool            `db:"is_inactive"`
	AllowAccountEntry     bool            `db:"allow_account_entry"`
	OpeningBalance        decimal.Decimal `db:"opening_balance"`
	PostingLevelSales     string          `db:"posting_level_sales"`
	PostingLevelInventory string          `db:"posting_level_inventory"`
	PostingLevelPurchase  string          `db:"posting_level_purchasing"`
	PostingLevelPayroll   string          `db:"posting_level_payroll"`
	ParentAccountID       string          `db:"parent_account_id"` // Nullable
	AuditFields
}
