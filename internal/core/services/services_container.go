package services

import (
	portsrepo "github.com/SscSPs/ledger_statements/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_statements/internal/core/ports/services"
	"github.com/SscSPs/ledger_statements/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// cache may be nil, in which case reports are always computed.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, cache ReportCache) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The scope resolver comes first since reporting depends on it
	container.Scope = NewScopeService(repos.CompanyRepo)

	options := []ReportingServiceOption{WithCashFlowMapping(cfg.CashFlowMapping)}
	if cache != nil {
		options = append(options, WithReportCache(cache))
	}
	container.Reporting = NewReportingService(container.Scope, repos.AccountRepo, repos.ReportingRepo, options...)

	return container
}
