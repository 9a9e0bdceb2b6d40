package services

import (
	"context"

	"github.com/SscSPs/ledger_statements/internal/core/domain"
)

// ScopeResolver turns a caller's raw reporting context into an authorised scope.
type ScopeResolver interface {
	// ResolveScope checks the user's membership and returns the company, date
	// window and scope filter to report on. Fails with apperrors.ErrValidation,
	// ErrNotFound or ErrForbidden.
	ResolveScope(ctx context.Context, req domain.ScopeRequest) (domain.ReportScope, error)
}
