package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ledger_statements/internal/apperrors"
	"github.com/SscSPs/ledger_statements/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_statements/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_statements/internal/core/ports/services"
	"github.com/SscSPs/ledger_statements/internal/utils/accounting"
)

// scopeService implements the ScopeResolver interface on top of company memberships.
type scopeService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewScopeService creates a scope resolver backed by the company repository.
func NewScopeService(companyRepo portsrepo.CompanyRepositoryFacade) portssvc.ScopeResolver {
	return &scopeService{companyRepo: companyRepo}
}

var _ portssvc.ScopeResolver = (*scopeService)(nil)

// ResolveScope checks the caller may read the company's reports and narrows
// the requested scope tags to what the membership allows.
func (s *scopeService) ResolveScope(ctx context.Context, req domain.ScopeRequest) (domain.ReportScope, error) {
	if strings.TrimSpace(req.CompanyID) == "" {
		return domain.ReportScope{}, fmt.Errorf("%w: company id is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.UserID) == "" {
		return domain.ReportScope{}, fmt.Errorf("%w: user id is required", apperrors.ErrValidation)
	}
	if req.To.IsZero() {
		return domain.ReportScope{}, fmt.Errorf("%w: end date is required", apperrors.ErrValidation)
	}
	to := accounting.CalendarDay(req.To)
	var from time.Time
	if !req.From.IsZero() {
		from = accounting.CalendarDay(req.From)
		if from.After(to) {
			return domain.ReportScope{}, fmt.Errorf("%w: start date %s is after end date %s",
				apperrors.ErrValidation, from.Format(time.DateOnly), to.Format(time.DateOnly))
		}
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, req.CompanyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find company by ID",
				slog.String("company_id", req.CompanyID))
			return domain.ReportScope{}, fmt.Errorf("failed to resolve report scope: %w", err)
		}
		return domain.ReportScope{}, err
	}
	if !company.IsActive {
		return domain.ReportScope{}, fmt.Errorf("%w: company %s is inactive", apperrors.ErrForbidden, req.CompanyID)
	}

	membership, err := s.companyRepo.FindMembership(ctx, req.UserID, req.CompanyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User not a member of company",
				slog.String("user_id", req.UserID),
				slog.String("company_id", req.CompanyID))
			return domain.ReportScope{}, err
		}
		s.LogError(ctx, err, "Failed to find company membership",
			slog.String("user_id", req.UserID),
			slog.String("company_id", req.CompanyID))
		return domain.ReportScope{}, fmt.Errorf("failed to resolve report scope: %w", err)
	}
	if !membership.Role.CanReadReports() {
		s.LogDebug(ctx, "Member may not read reports",
			slog.String("user_id", req.UserID),
			slog.String("company_id", req.CompanyID),
			slog.String("role", string(membership.Role)))
		return domain.ReportScope{}, fmt.Errorf("%w: role %s may not read reports", apperrors.ErrForbidden, membership.Role)
	}

	filter, err := narrowScope(req.ScopeTags, membership.AllowedScopes)
	if err != nil {
		s.LogDebug(ctx, "Requested scope outside membership",
			slog.String("user_id", req.UserID),
			slog.String("company_id", req.CompanyID),
			slog.Any("requested", req.ScopeTags))
		return domain.ReportScope{}, err
	}

	return domain.ReportScope{
		CompanyID: req.CompanyID,
		From:      from,
		To:        to,
		Filter:    filter,
	}, nil
}

// narrowScope picks the filter for a request. An empty allowed list means the
// member sees every scope.
func narrowScope(requested, allowed []string) (domain.ScopeFilter, error) {
	want := domain.ScopeTags(requested...)
	permitted := domain.ScopeTags(allowed...)
	if want.IsAll() {
		return permitted, nil
	}
	if permitted.IsAll() {
		return want, nil
	}
	for _, tag := range want.Tags() {
		if !permitted.Matches(tag) {
			return domain.ScopeFilter{}, fmt.Errorf("%w: scope %q is not permitted", apperrors.ErrForbidden, tag)
		}
	}
	return want, nil
}
