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

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for company and membership data.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCompanyRepository implements portsrepo.CompanyRepositoryFacade
var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `
		SELECT c.company_id, c.name, c.currency_code, c.is_active, c.created_at
		FROM companies c
		WHERE c.company_id = $1
	`
	m, err := collectOne[models.Company](ctx, &r.BaseRepository, fmt.Sprintf("company %s", companyID), query, companyID)
	if err != nil {
		return nil, err
	}
	company := mapping.ToDomainCompany(*m)
	return &company, nil
}

func (r *PgxCompanyRepository) FindMembership(ctx context.Context, userID, companyID string) (*domain.CompanyMembership, error) {
	query := `
		SELECT m.user_id, m.company_id, m.role, m.allowed_scopes, m.joined_at
		FROM company_members m
		WHERE m.user_id = $1 AND m.company_id = $2
	`
	m, err := collectOne[models.CompanyMember](ctx, &r.BaseRepository, fmt.Sprintf("membership of user %s in company %s", userID, companyID), query, userID, companyID)
	if err != nil {
		return nil, err
	}
	membership := mapping.ToDomainMembership(*m)
	return &membership, nil
}
