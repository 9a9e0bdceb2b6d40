package models

// Account is the accounts table row as read by reporting.
type Account struct {
	AccountID   string `db:"account_id"`
	CompanyID   string `db:"company_id"`
	Code        string `db:"code"`
	Name        string `db:"name"`
	AccountType string `db:"account_type"` // Stored free-form; normalised on mapping
	IsActive    bool   `db:"is_active"`
}
