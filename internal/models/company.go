package models

import "time"

// Company is the companies table row.
type Company struct {
	CompanyID    string    `db:"company_id"`
	Name         string    `db:"name"`
	CurrencyCode string    `db:"currency_code"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
}

// CompanyMember is the company_members table row.
type CompanyMember struct {
	UserID        string    `db:"user_id"`
	CompanyID     string    `db:"company_id"`
	Role          string    `db:"role"`
	AllowedScopes []string  `db:"allowed_scopes"` // text[]; NULL or empty means unrestricted
	JoinedAt      time.Time `db:"joined_at"`
}
