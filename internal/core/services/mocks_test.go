package services_test

import (
	"context"

	"github.com/SscSPs/ledger_statements/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockCompanyRepository is a mock type for the CompanyRepositoryFacade interface
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindMembership(ctx context.Context, userID, companyID string) (*domain.CompanyMembership, error) {
	args := m.Called(ctx, userID, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyMembership), args.Error(1)
}

// MockReportingRepository is a mock type for the ReportingRepository interface
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) PeriodTotals(ctx context.Context, q domain.PeriodQuery) ([]domain.AccountBalanceRow, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalanceRow), args.Error(1)
}

func (m *MockReportingRepository) ClosingBalancesUpTo(ctx context.Context, q domain.AsOfQuery) ([]domain.AccountBalanceRow, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalanceRow), args.Error(1)
}

func (m *MockReportingRepository) ListEntries(ctx context.Context, q domain.EntryQuery) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

// MockAccountRepository is a mock type for the AccountReader interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, companyID, code string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// MockScopeResolver is a mock type for the ScopeResolver interface
type MockScopeResolver struct {
	mock.Mock
}

func (m *MockScopeResolver) ResolveScope(ctx context.Context, req domain.ScopeRequest) (domain.ReportScope, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.ReportScope), args.Error(1)
}
