package dto

import (
	"testing"
	"time"

	"github.com/SscSPs/ledger_statements/internal/apperrors"
	"github.com/SscSPs/ledger_statements/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 17, 18, 45, 0, 0, time.UTC)

func TestPeriodReportQuery_Defaults(t *testing.T) {
	req, err := PeriodReportQuery{}.ToScopeRequest("u-1", "c-1", now)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), req.From)
	assert.Equal(t, time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), req.To)
	assert.Nil(t, req.ScopeTags)
}

func TestPeriodReportQuery_FromDefaultsToMonthOfToDate(t *testing.T) {
	req, err := PeriodReportQuery{ToDate: "2023-12-31", Scope: "north,south"}.ToScopeRequest("u-1", "c-1", now)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), req.From)
	assert.Equal(t, []string{"north", "south"}, req.ScopeTags)
}

func TestPeriodReportQuery_InvalidDate(t *testing.T) {
	_, err := PeriodReportQuery{FromDate: "01/02/2024"}.ToScopeRequest("u-1", "c-1", now)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAsOfReportQuery(t *testing.T) {
	req, err := AsOfReportQuery{AsOf: "2024-01-31"}.ToScopeRequest("u-1", "c-1", now)

	require.NoError(t, err)
	assert.True(t, req.From.IsZero())
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), req.To)
}

func TestToBalanceSheetResponse_FormatsMoney(t *testing.T) {
	bs := &domain.BalanceSheet{
		AsOf: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Assets: domain.ReportSection{
			Section: domain.SectionAssets,
			Lines:   []domain.StatementLine{{AccountCode: "1000", AccountName: "Cash", Amount: decimal.RequireFromString("1000")}},
			Total:   decimal.RequireFromString("1000"),
		},
		NetIncomeToDate:           decimal.RequireFromString("1000"),
		TotalEquity:               decimal.RequireFromString("1000"),
		TotalLiabilitiesAndEquity: decimal.RequireFromString("1000"),
		Balanced:                  true,
	}

	resp := ToBalanceSheetResponse(bs)

	assert.Equal(t, "2024-01-31", resp.AsOf)
	require.Len(t, resp.Assets.Lines, 1)
	assert.Equal(t, "1000.00", resp.Assets.Lines[0].Amount)
	assert.Equal(t, "0.00", resp.Summary.Difference)
	assert.Equal(t, "0.00", resp.Summary.TotalLiabilities)
	assert.NotNil(t, resp.Equity.Lines)
	assert.True(t, resp.Summary.Balanced)
}

func TestToLedgerResponse(t *testing.T) {
	l := &domain.SubsidiaryLedger{
		Kind:            domain.CustomerLedger,
		Party:           &domain.PartyRef{Type: domain.PartyCustomer, ID: "cust-1"},
		ControlAccounts: []string{"1200"},
		From:            time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		To:              time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Rows: []domain.RunningLedgerRow{{
			Entry:          domain.LedgerEntry{EntryID: 5, JournalID: 2, JournalDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), AccountCode: "1200", Debit: decimal.RequireFromString("100")},
			Delta:          decimal.RequireFromString("100"),
			RunningBalance: decimal.RequireFromString("100"),
		}},
		ClosingBalance: decimal.RequireFromString("100"),
	}

	resp := ToLedgerResponse(l)

	assert.Equal(t, "CUSTOMER", resp.Kind)
	assert.Equal(t, "cust-1", resp.PartyID)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "2024-01-05", resp.Rows[0].Date)
	assert.Equal(t, "100.00", resp.Rows[0].RunningBalance)
	assert.Equal(t, "0.00", resp.Rows[0].Credit)
	assert.Equal(t, "0.00", resp.OpeningBalance)
}
