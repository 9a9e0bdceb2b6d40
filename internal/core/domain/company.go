package domain

import "time"

// Company is the owning tenant of accounts and journals.
type Company struct {
	CompanyID    string    `json:"companyID"` // Primary Key (UUID)
	Name         string    `json:"name"`
	CurrencyCode string    `json:"currencyCode"` // Reporting currency, display only
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CompanyRole defines the roles a user can have within a company.
type CompanyRole string

const (
	RoleAdmin    CompanyRole = "ADMIN"
	RoleMember   CompanyRole = "MEMBER"
	RoleReadOnly CompanyRole = "READONLY" // Users with read-only access to company data
	RoleRemoved  CompanyRole = "REMOVED"  // For users who have been removed from the company
)

// CanReadReports reports whether the role may see financial statements.
func (r CompanyRole) CanReadReports() bool {
	switch r {
	case RoleAdmin, RoleMember, RoleReadOnly:
		return true
	}
	return false
}

// CompanyMembership represents the membership of a user in a company.
// AllowedScopes restricts the member to the listed sub-scope tags; empty means unrestricted.
type CompanyMembership struct {
	UserID        string      `json:"userID"`
	CompanyID     string      `json:"companyID"`
	Role          CompanyRole `json:"role"`
	AllowedScopes []string    `json:"allowedScopes"`
	JoinedAt      time.Time   `json:"joinedAt"`
}
