package repositories

import (
	"context"

	"github.com/SscSPs/ledger_statements/internal/core/domain"
)

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// FindCompanyByID retrieves a specific company by its ID.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
}

// CompanyMembershipReader defines read operations for company memberships
type CompanyMembershipReader interface {
	// FindMembership retrieves the membership of a user in a company.
	// Returns apperrors.ErrNotFound when the user is not a member.
	FindMembership(ctx context.Context, userID, companyID string) (*domain.CompanyMembership, error)
}

// CompanyRepositoryFacade combines all company-related repository interfaces
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyMembershipReader
}
