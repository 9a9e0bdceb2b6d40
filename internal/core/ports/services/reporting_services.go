package services

import (
	"context"

	"github.com/SscSPs/ledger_statements/internal/core/domain"
)

// StatementReader generates the primary financial statements.
type StatementReader interface {
	// TrialBalance lists account activity within [req.From, req.To].
	TrialBalance(ctx context.Context, req domain.ScopeRequest) (*domain.TrialBalance, error)

	// BalanceSheet reports the financial position as of req.To. req.From is ignored.
	BalanceSheet(ctx context.Context, req domain.ScopeRequest) (*domain.BalanceSheet, error)

	// ProfitAndLoss reports revenue and expenses within [req.From, req.To].
	ProfitAndLoss(ctx context.Context, req domain.ScopeRequest) (*domain.ProfitAndLoss, error)

	// CashFlow reconciles period net income to the change in cash.
	CashFlow(ctx context.Context, req domain.ScopeRequest) (*domain.CashFlowStatement, error)
}

// SubsidiaryLedgerReader generates running ledgers for one account or party.
type SubsidiaryLedgerReader interface {
	GeneralLedger(ctx context.Context, req domain.ScopeRequest, accountCode string) (*domain.SubsidiaryLedger, error)
	CustomerLedger(ctx context.Context, req domain.ScopeRequest, customerID string) (*domain.SubsidiaryLedger, error)
	VendorLedger(ctx context.Context, req domain.ScopeRequest, vendorID string) (*domain.SubsidiaryLedger, error)
}

// ReportingService combines all reporting operations
type ReportingService interface {
	StatementReader
	SubsidiaryLedgerReader
}
