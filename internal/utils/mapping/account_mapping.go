package mapping

import (
	"github.com/SscSPs/ledger_statements/internal/core/domain"
	"github.com/SscSPs/ledger_statements/internal/models"
)

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		CompanyID:   m.CompanyID,
		Code:        m.Code,
		Name:        m.Name,
		AccountType: domain.ParseAccountType(m.AccountType),
		IsActive:    m.IsActive,
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}

// ToDomainCompany converts a model Company to a domain Company
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID:    m.CompanyID,
		Name:         m.Name,
		CurrencyCode: m.CurrencyCode,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
	}
}

// ToDomainMembership converts a model CompanyMember to a domain CompanyMembership
func ToDomainMembership(m models.CompanyMember) domain.CompanyMembership {
	scopes := m.AllowedScopes
	if scopes == nil {
		scopes = []string{}
	}
	return domain.CompanyMembership{
		UserID:        m.UserID,
		CompanyID:     m.CompanyID,
		Role:          domain.CompanyRole(m.Role),
		AllowedScopes: scopes,
		JoinedAt:      m.JoinedAt,
	}
}
