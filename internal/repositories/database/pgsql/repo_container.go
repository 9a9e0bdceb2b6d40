package pgsql

import (
	portsrepo "github.com/SscSPs/ledger_statements/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   newPgxAccountRepository(dbPool),
		CompanyRepo:   newPgxCompanyRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
	}
}
