package repositories

import (
	"context"

	"github.com/SscSPs/ledger_statements/internal/core/domain"
)

// ReportingRepository is the aggregation source behind every statement.
// Debit and credit sums are returned raw; callers apply signs.
type ReportingRepository interface {
	// PeriodTotals sums debits and credits per account for entries whose journal
	// date is within [From, To]. Accounts without activity are omitted.
	PeriodTotals(ctx context.Context, q domain.PeriodQuery) ([]domain.AccountBalanceRow, error)

	// ClosingBalancesUpTo sums debits and credits per account over all history
	// up to and including AsOf, optionally narrowed to accounts and/or a party.
	ClosingBalancesUpTo(ctx context.Context, q domain.AsOfQuery) ([]domain.AccountBalanceRow, error)

	// ListEntries returns raw entries in [From, To] ordered by
	// (journal date, journal id, entry id).
	ListEntries(ctx context.Context, q domain.EntryQuery) ([]domain.LedgerEntry, error)
}
