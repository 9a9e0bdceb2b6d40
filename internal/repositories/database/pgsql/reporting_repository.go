package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/ledger_statements/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_statements/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_statements/internal/models"
	"github.com/SscSPs/ledger_statements/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

const entryJoins = `
FROM entries e
JOIN journals j ON e.journal_id = j.journal_id
JOIN accounts a ON e.account_id = a.account_id
`

const balanceSelect = `
SELECT
	a.code AS account_code,
	a.name AS account_name,
	a.account_type,
	COALESCE(SUM(e.debit), 0) AS debit_total,
	COALESCE(SUM(e.credit), 0) AS credit_total
` + entryJoins

const balanceGroupBy = `
GROUP BY a.code, a.name, a.account_type
ORDER BY a.code
`

const entrySelect = `
SELECT
	e.entry_id,
	e.journal_id,
	j.journal_date,
	j.reference_type,
	j.reference_id,
	j.narration,
	a.code AS account_code,
	a.name AS account_name,
	a.account_type,
	e.debit,
	e.credit,
	e.party_type,
	e.party_id,
	e.scope_tag
` + entryJoins

// PeriodTotals sums per account within [From, To].
func (r *reportingRepository) PeriodTotals(ctx context.Context, q domain.PeriodQuery) ([]domain.AccountBalanceRow, error) {
	where := newEntryFilter(q.CompanyID).
		dateFrom(q.From).
		dateTo(q.To).
		scope(q.Filter)

	rows, err := collectAll[models.BalanceRow](ctx, &r.BaseRepository, "period totals", balanceSelect+where.sql()+balanceGroupBy, where.args...)
	if err != nil {
		return nil, fmt.Errorf("error querying period totals for company %s: %w", q.CompanyID, err)
	}
	return mapping.ToDomainBalanceRows(rows), nil
}

// ClosingBalancesUpTo sums per account over all history up to AsOf.
func (r *reportingRepository) ClosingBalancesUpTo(ctx context.Context, q domain.AsOfQuery) ([]domain.AccountBalanceRow, error) {
	where := newEntryFilter(q.CompanyID).
		dateTo(q.AsOf).
		accounts(q.AccountCodes).
		party(q.Party).
		scope(q.Filter)

	rows, err := collectAll[models.BalanceRow](ctx, &r.BaseRepository, "closing balances", balanceSelect+where.sql()+balanceGroupBy, where.args...)
	if err != nil {
		return nil, fmt.Errorf("error querying closing balances for company %s: %w", q.CompanyID, err)
	}
	return mapping.ToDomainBalanceRows(rows), nil
}

// ListEntries returns raw entries in ledger order.
func (r *reportingRepository) ListEntries(ctx context.Context, q domain.EntryQuery) ([]domain.LedgerEntry, error) {
	where := newEntryFilter(q.CompanyID).
		dateFrom(q.From).
		dateTo(q.To).
		accounts(q.AccountCodes).
		party(q.Party).
		scope(q.Filter)

	query := entrySelect + where.sql() + `
ORDER BY j.journal_date, e.journal_id, e.entry_id
`
	rows, err := collectAll[models.LedgerEntry](ctx, &r.BaseRepository, "ledger entries", query, where.args...)
	if err != nil {
		return nil, fmt.Errorf("error querying ledger entries for company %s: %w", q.CompanyID, err)
	}
	return mapping.ToDomainLedgerEntries(rows), nil
}

// entryFilter accumulates positional WHERE conditions over the entry joins.
type entryFilter struct {
	conds []string
	args  []any
}

func newEntryFilter(companyID string) *entryFilter {
	f := &entryFilter{}
	return f.add("j.company_id = $%d", companyID)
}

func (f *entryFilter) add(cond string, arg any) *entryFilter {
	f.args = append(f.args, arg)
	f.conds = append(f.conds, fmt.Sprintf(cond, len(f.args)))
	return f
}

func (f *entryFilter) dateFrom(day time.Time) *entryFilter {
	return f.add("j.journal_date >= $%d", day)
}

func (f *entryFilter) dateTo(day time.Time) *entryFilter {
	return f.add("j.journal_date <= $%d", day)
}

func (f *entryFilter) accounts(codes []string) *entryFilter {
	if len(codes) == 0 {
		return f
	}
	return f.add("a.code = ANY($%d)", codes)
}

func (f *entryFilter) party(p *domain.PartyRef) *entryFilter {
	if p == nil {
		return f
	}
	f.add("e.party_type = $%d", string(p.Type))
	return f.add("e.party_id = $%d", p.ID)
}

func (f *entryFilter) scope(filter domain.ScopeFilter) *entryFilter {
	if filter.IsAll() {
		return f
	}
	return f.add("e.scope_tag = ANY($%d)", filter.Tags())
}

func (f *entryFilter) sql() string {
	return "WHERE " + strings.Join(f.conds, "\n\tAND ")
}
