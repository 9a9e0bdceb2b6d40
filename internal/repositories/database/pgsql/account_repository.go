package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/ledger_statements/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_statements/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_statements/internal/models"
	"github.com/SscSPs/ledger_statements/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for chart-of-accounts data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountSelectQuery = `
SELECT a.account_id, a.company_id, a.code, a.name, a.account_type, a.is_active
FROM accounts a
`

// FindAccountByCode retrieves an account by company and business code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, companyID, code string) (*domain.Account, error) {
	m, err := collectOne[models.Account](ctx, &r.BaseRepository, fmt.Sprintf("account %s", code),
		accountSelectQuery+`WHERE a.company_id = $1 AND a.code = $2`, companyID, code)
	if err != nil {
		return nil, err
	}
	account := mapping.ToDomainAccount(*m)
	return &account, nil
}

// ListAccounts retrieves the whole chart of accounts of a company.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, companyID string) ([]domain.Account, error) {
	ms, err := collectAll[models.Account](ctx, &r.BaseRepository, "accounts",
		accountSelectQuery+`WHERE a.company_id = $1 ORDER BY a.code`, companyID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainAccountSlice(ms), nil
}
