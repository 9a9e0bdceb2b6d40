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
	"github.com/SscSPs/ledger_statements/internal/core/reports"
	"github.com/SscSPs/ledger_statements/internal/utils/accounting"
	"golang.org/x/sync/errgroup"
)

// ReportCache stores composed reports as JSON under versioned keys.
type ReportCache interface {
	BuildKey(ctx context.Context, parts ...string) (string, error)
	FetchJSON(ctx context.Context, key string, dest interface{}, loader func(context.Context) (interface{}, error)) error
}

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	scope         portssvc.ScopeResolver
	accountRepo   portsrepo.AccountReader
	reportingRepo portsrepo.ReportingRepository
	cache         ReportCache
	mapping       domain.CashFlowMapping
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportCache caches composed reports. Without it every request is computed.
func WithReportCache(cache ReportCache) ReportingServiceOption {
	return func(s *reportingService) {
		s.cache = cache
	}
}

// WithCashFlowMapping overrides the control-account codes used by the cash
// flow statement and the customer and vendor ledgers.
func WithCashFlowMapping(mapping domain.CashFlowMapping) ReportingServiceOption {
	return func(s *reportingService) {
		s.mapping = mapping
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(
	scope portssvc.ScopeResolver,
	accountRepo portsrepo.AccountReader,
	reportingRepo portsrepo.ReportingRepository,
	options ...ReportingServiceOption,
) portssvc.ReportingService {
	svc := &reportingService{
		scope:         scope,
		accountRepo:   accountRepo,
		reportingRepo: reportingRepo,
		mapping:       domain.DefaultCashFlowMapping(),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// TrialBalance lists period activity per account.
func (s *reportingService) TrialBalance(ctx context.Context, req domain.ScopeRequest) (*domain.TrialBalance, error) {
	scope, err := s.resolvePeriod(ctx, req)
	if err != nil {
		return nil, err
	}

	return loadReport(ctx, s, cacheParts("trial_balance", scope), func(ctx context.Context) (*domain.TrialBalance, error) {
		rows, err := s.reportingRepo.PeriodTotals(ctx, periodQuery(scope))
		if err != nil {
			s.LogError(ctx, err, "Failed to retrieve period totals", scopeAttrs(scope)...)
			return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
		}

		tb := reports.BuildTrialBalance(scope.From, scope.To, rows)
		if !tb.Balanced {
			s.LogWarn(ctx, "Trial balance does not balance",
				append(scopeAttrs(scope), slog.String("difference", tb.Difference.StringFixed(2)))...)
		}
		if len(tb.UnknownTypes) > 0 {
			s.LogWarn(ctx, "Accounts with unrecognised type are listed but carry no section",
				append(scopeAttrs(scope), slog.Any("account_codes", tb.UnknownTypes))...)
		}

		s.LogInfo(ctx, "Trial balance report generated successfully",
			append(scopeAttrs(scope), slog.Int("row_count", len(tb.Rows)))...)
		return &tb, nil
	})
}

// BalanceSheet reports the position as of req.To.
func (s *reportingService) BalanceSheet(ctx context.Context, req domain.ScopeRequest) (*domain.BalanceSheet, error) {
	req.From = time.Time{}
	scope, err := s.scope.ResolveScope(ctx, req)
	if err != nil {
		return nil, err
	}

	return loadReport(ctx, s, cacheParts("balance_sheet", scope), func(ctx context.Context) (*domain.BalanceSheet, error) {
		rows, err := s.reportingRepo.ClosingBalancesUpTo(ctx, domain.AsOfQuery{
			CompanyID: scope.CompanyID,
			AsOf:      scope.To,
			Filter:    scope.Filter,
		})
		if err != nil {
			s.LogError(ctx, err, "Failed to retrieve closing balances", scopeAttrs(scope)...)
			return nil, fmt.Errorf("failed to retrieve balance sheet data: %w", err)
		}

		bs := reports.BuildBalanceSheet(scope.To, rows)
		if !bs.Balanced {
			s.LogWarn(ctx, "Balance sheet does not balance",
				append(scopeAttrs(scope), slog.String("difference", bs.Difference.StringFixed(2)))...)
		}

		s.LogInfo(ctx, "Balance sheet report generated successfully",
			append(scopeAttrs(scope),
				slog.Int("asset_accounts", len(bs.Assets.Lines)),
				slog.Int("liability_accounts", len(bs.Liabilities.Lines)),
				slog.Int("equity_accounts", len(bs.Equity.Lines)))...)
		return &bs, nil
	})
}

// ProfitAndLoss reports revenue and expenses over the period.
func (s *reportingService) ProfitAndLoss(ctx context.Context, req domain.ScopeRequest) (*domain.ProfitAndLoss, error) {
	scope, err := s.resolvePeriod(ctx, req)
	if err != nil {
		return nil, err
	}

	return loadReport(ctx, s, cacheParts("profit_and_loss", scope), func(ctx context.Context) (*domain.ProfitAndLoss, error) {
		rows, err := s.reportingRepo.PeriodTotals(ctx, periodQuery(scope))
		if err != nil {
			s.LogError(ctx, err, "Failed to retrieve period totals", scopeAttrs(scope)...)
			return nil, fmt.Errorf("failed to retrieve profit and loss data: %w", err)
		}

		pl := reports.BuildProfitAndLoss(scope.From, scope.To, rows)
		s.LogInfo(ctx, "Profit and loss report generated successfully",
			append(scopeAttrs(scope),
				slog.Int("revenue_accounts", len(pl.Revenue.Lines)),
				slog.Int("expense_accounts", len(pl.Expenses.Lines)))...)
		return &pl, nil
	})
}

// CashFlow reconciles period net income to the change in cash. The opening
// snapshot, closing snapshot and period totals are read concurrently; any
// failure aborts the report.
func (s *reportingService) CashFlow(ctx context.Context, req domain.ScopeRequest) (*domain.CashFlowStatement, error) {
	scope, err := s.resolvePeriod(ctx, req)
	if err != nil {
		return nil, err
	}

	return loadReport(ctx, s, cacheParts("cash_flow", scope), func(ctx context.Context) (*domain.CashFlowStatement, error) {
		codes := s.mapping.AllCodes()
		in := reports.CashFlowInput{From: scope.From, To: scope.To}
		var (
			periodRows []domain.AccountBalanceRow
			accounts   []domain.Account
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			rows, err := s.reportingRepo.ClosingBalancesUpTo(gctx, domain.AsOfQuery{
				CompanyID:    scope.CompanyID,
				AsOf:         accounting.OpeningCutoff(scope.From),
				AccountCodes: codes,
				Filter:       scope.Filter,
			})
			if err != nil {
				return fmt.Errorf("opening balances: %w", err)
			}
			in.Opening = rows
			return nil
		})
		g.Go(func() error {
			rows, err := s.reportingRepo.ClosingBalancesUpTo(gctx, domain.AsOfQuery{
				CompanyID:    scope.CompanyID,
				AsOf:         scope.To,
				AccountCodes: codes,
				Filter:       scope.Filter,
			})
			if err != nil {
				return fmt.Errorf("closing balances: %w", err)
			}
			in.Closing = rows
			return nil
		})
		g.Go(func() error {
			rows, err := s.reportingRepo.PeriodTotals(gctx, periodQuery(scope))
			if err != nil {
				return fmt.Errorf("period totals: %w", err)
			}
			periodRows = rows
			return nil
		})
		g.Go(func() error {
			list, err := s.accountRepo.ListAccounts(gctx, scope.CompanyID)
			if err != nil {
				return fmt.Errorf("chart of accounts: %w", err)
			}
			accounts = list
			return nil
		})
		if err := g.Wait(); err != nil {
			s.LogError(ctx, err, "Failed to retrieve cash flow data", scopeAttrs(scope)...)
			return nil, fmt.Errorf("failed to retrieve cash flow data: %w", err)
		}

		if missing := missingCodes(codes, accounts); len(missing) > 0 {
			s.LogWarn(ctx, "Cash flow codes not in chart of accounts are treated as zero",
				append(scopeAttrs(scope), slog.Any("account_codes", missing))...)
		}

		in.NetIncome = reports.BuildProfitAndLoss(scope.From, scope.To, periodRows).NetProfit
		cf := reports.BuildCashFlow(in, s.mapping)
		if !cf.Reconciled {
			s.LogWarn(ctx, "Cash flow has unclassified movement",
				append(scopeAttrs(scope), slog.String("unclassified", cf.Unclassified.StringFixed(2)))...)
		}

		s.LogInfo(ctx, "Cash flow report generated successfully",
			append(scopeAttrs(scope), slog.String("operating_cash", cf.OperatingCash.StringFixed(2)))...)
		return &cf, nil
	})
}

// GeneralLedger runs one account's entries from its opening balance. An
// unknown code yields an empty ledger.
func (s *reportingService) GeneralLedger(ctx context.Context, req domain.ScopeRequest, accountCode string) (*domain.SubsidiaryLedger, error) {
	if accountCode == "" {
		return nil, fmt.Errorf("%w: account code is required", apperrors.ErrValidation)
	}
	scope, err := s.resolvePeriod(ctx, req)
	if err != nil {
		return nil, err
	}

	return loadReport(ctx, s, cacheParts("general_ledger", scope, accountCode), func(ctx context.Context) (*domain.SubsidiaryLedger, error) {
		account, err := s.accountRepo.FindAccountByCode(ctx, scope.CompanyID, accountCode)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				s.LogError(ctx, err, "Failed to find account by code",
					append(scopeAttrs(scope), slog.String("account_code", accountCode))...)
				return nil, fmt.Errorf("failed to retrieve general ledger data: %w", err)
			}
			s.LogDebug(ctx, "Account not found, returning empty ledger",
				append(scopeAttrs(scope), slog.String("account_code", accountCode))...)
			ledger := reports.BuildSubsidiaryLedger(reports.LedgerSelection{
				Kind:        domain.GeneralLedger,
				AccountCode: accountCode,
				From:        scope.From,
				To:          scope.To,
			}, nil, nil)
			return &ledger, nil
		}

		return s.runLedger(ctx, scope, reports.LedgerSelection{
			Kind:            domain.GeneralLedger,
			Account:         account,
			AccountCode:     account.Code,
			ControlAccounts: []string{account.Code},
			From:            scope.From,
			To:              scope.To,
		})
	})
}

// CustomerLedger runs one customer's entries across the receivable and
// customer-advance control accounts.
func (s *reportingService) CustomerLedger(ctx context.Context, req domain.ScopeRequest, customerID string) (*domain.SubsidiaryLedger, error) {
	return s.partyLedger(ctx, req, domain.CustomerLedger, domain.PartyCustomer, customerID, s.mapping.CustomerControlCodes())
}

// VendorLedger runs one vendor's entries across the payable control accounts.
func (s *reportingService) VendorLedger(ctx context.Context, req domain.ScopeRequest, vendorID string) (*domain.SubsidiaryLedger, error) {
	return s.partyLedger(ctx, req, domain.VendorLedger, domain.PartyVendor, vendorID, s.mapping.VendorControlCodes())
}

func (s *reportingService) partyLedger(
	ctx context.Context,
	req domain.ScopeRequest,
	kind domain.LedgerKind,
	partyType domain.PartyType,
	partyID string,
	controls []string,
) (*domain.SubsidiaryLedger, error) {
	if partyID == "" {
		return nil, fmt.Errorf("%w: %s id is required", apperrors.ErrValidation, partyType)
	}
	scope, err := s.resolvePeriod(ctx, req)
	if err != nil {
		return nil, err
	}

	return loadReport(ctx, s, cacheParts(strings.ToLower(string(kind))+"_ledger", scope, partyID), func(ctx context.Context) (*domain.SubsidiaryLedger, error) {
		return s.runLedger(ctx, scope, reports.LedgerSelection{
			Kind:            kind,
			Party:           &domain.PartyRef{Type: partyType, ID: partyID},
			ControlAccounts: controls,
			From:            scope.From,
			To:              scope.To,
		})
	})
}

// runLedger loads the opening snapshot and period entries for a selection.
func (s *reportingService) runLedger(ctx context.Context, scope domain.ReportScope, sel reports.LedgerSelection) (*domain.SubsidiaryLedger, error) {
	attrs := append(scopeAttrs(scope), slog.String("ledger", string(sel.Kind)))
	if sel.Party != nil {
		attrs = append(attrs, slog.String("party_id", sel.Party.ID))
	}

	opening, err := s.reportingRepo.ClosingBalancesUpTo(ctx, domain.AsOfQuery{
		CompanyID:    scope.CompanyID,
		AsOf:         accounting.OpeningCutoff(scope.From),
		AccountCodes: sel.ControlAccounts,
		Party:        sel.Party,
		Filter:       scope.Filter,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve opening balance", attrs...)
		return nil, fmt.Errorf("failed to retrieve ledger opening balance: %w", err)
	}

	entries, err := s.reportingRepo.ListEntries(ctx, domain.EntryQuery{
		CompanyID:    scope.CompanyID,
		From:         scope.From,
		To:           scope.To,
		AccountCodes: sel.ControlAccounts,
		Party:        sel.Party,
		Filter:       scope.Filter,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve ledger entries", attrs...)
		return nil, fmt.Errorf("failed to retrieve ledger entries: %w", err)
	}

	ledger := reports.BuildSubsidiaryLedger(sel, opening, entries)
	s.LogInfo(ctx, "Ledger report generated successfully",
		append(attrs, slog.Int("row_count", len(ledger.Rows)))...)
	return &ledger, nil
}

// resolvePeriod resolves a scope that must carry both ends of the period.
func (s *reportingService) resolvePeriod(ctx context.Context, req domain.ScopeRequest) (domain.ReportScope, error) {
	if req.From.IsZero() {
		return domain.ReportScope{}, fmt.Errorf("%w: start date is required", apperrors.ErrValidation)
	}
	return s.scope.ResolveScope(ctx, req)
}

// loadReport serves a report from the cache when one is configured. Cache
// trouble is logged and the report is computed directly; build errors are
// always returned as is.
func loadReport[T any](ctx context.Context, s *reportingService, parts []string, build func(context.Context) (*T, error)) (*T, error) {
	if s.cache == nil {
		return build(ctx)
	}

	key, err := s.cache.BuildKey(ctx, parts...)
	if err != nil {
		s.LogWarn(ctx, "Report cache unavailable", slog.String("error", err.Error()))
		return build(ctx)
	}

	var (
		report   T
		built    *T
		buildErr error
	)
	err = s.cache.FetchJSON(ctx, key, &report, func(ctx context.Context) (interface{}, error) {
		built, buildErr = build(ctx)
		return built, buildErr
	})
	if buildErr != nil {
		return nil, buildErr
	}
	if err != nil {
		s.LogWarn(ctx, "Report cache failed", slog.String("key", key), slog.String("error", err.Error()))
		if built != nil {
			return built, nil
		}
		return build(ctx)
	}
	return &report, nil
}

func cacheParts(report string, scope domain.ReportScope, extra ...string) []string {
	parts := []string{"reports", report, scope.CompanyID, formatDay(scope.From), formatDay(scope.To), scope.Filter.Key()}
	return append(parts, extra...)
}

func periodQuery(scope domain.ReportScope) domain.PeriodQuery {
	return domain.PeriodQuery{
		CompanyID: scope.CompanyID,
		From:      scope.From,
		To:        scope.To,
		Filter:    scope.Filter,
	}
}

func scopeAttrs(scope domain.ReportScope) []any {
	return []any{
		slog.String("company_id", scope.CompanyID),
		slog.String("from", formatDay(scope.From)),
		slog.String("to", formatDay(scope.To)),
		slog.String("scope", scope.Filter.Key()),
	}
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

func missingCodes(codes []string, accounts []domain.Account) []string {
	known := make(map[string]struct{}, len(accounts))
	for _, a := range accounts {
		known[a.Code] = struct{}{}
	}
	var missing []string
	for _, code := range codes {
		if _, ok := known[code]; !ok {
			missing = append(missing, code)
		}
	}
	return missing
}
