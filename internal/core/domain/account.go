package domain

import "strings"

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// ParseAccountType normalises a raw type string as stored in the chart of accounts.
// The result may still be unknown; use IsKnown to check.
func ParseAccountType(raw string) AccountType {
	return AccountType(strings.ToUpper(strings.TrimSpace(raw)))
}

// IsKnown reports whether t is one of the five account types.
func (t AccountType) IsKnown() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// StatementSection is the block of a financial statement an account is shown in.
type StatementSection string

const (
	SectionAssets       StatementSection = "ASSETS"
	SectionLiabilities  StatementSection = "LIABILITIES"
	SectionEquity       StatementSection = "EQUITY"
	SectionRevenue      StatementSection = "REVENUE"
	SectionExpenses     StatementSection = "EXPENSES"
	SectionUnclassified StatementSection = "UNCLASSIFIED"
)

// Account represents a chart-of-accounts entry as seen by reporting.
type Account struct {
	AccountID   string      `json:"accountID"`   // Primary Key (UUID)
	CompanyID   string      `json:"companyID"`   // FK -> companies.company_id
	Code        string      `json:"code"`        // Stable business key, e.g. "1200"
	Name        string      `json:"name"`        // Display name
	AccountType AccountType `json:"accountType"` // ASSET, LIABILITY, etc.
	IsActive    bool        `json:"isActive"`
}
