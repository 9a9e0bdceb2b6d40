package repositories

import (
	"context"

	"github.com/SscSPs/ledger_statements/internal/core/domain"
)

// AccountReader defines read operations on the chart of accounts.
// Accounts are maintained by the bookkeeping side; reporting never writes them.
type AccountReader interface {
	// FindAccountByCode retrieves an account by its business code within a company.
	// Returns apperrors.ErrNotFound when no such account exists.
	FindAccountByCode(ctx context.Context, companyID, code string) (*domain.Account, error)

	// ListAccounts retrieves every account of a company, ordered by code.
	ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error)
}

// AccountRepositoryFacade is the chart-of-accounts dependency of the services.
type AccountRepositoryFacade interface {
	AccountReader
}
