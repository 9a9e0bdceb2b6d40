package reports_test

import (
	"testing"
	"time"

	"github.com/SscSPs/ledger_statements/internal/core/domain"
	"github.com/SscSPs/ledger_statements/internal/core/reports"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func row(code, name string, accountType domain.AccountType, debit, credit string) domain.AccountBalanceRow {
	return domain.AccountBalanceRow{
		AccountCode: code,
		AccountName: name,
		AccountType: accountType,
		DebitTotal:  dec(debit),
		CreditTotal: dec(credit),
	}
}

func assertMoney(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]any{"want %s got %s", want, got.String()}, msgAndArgs...)...)
}

func TestBuildTrialBalance(t *testing.T) {
	rows := []domain.AccountBalanceRow{
		row("4000", "Sales", domain.Revenue, "0", "1000"),
		row("1000", "Cash", domain.Asset, "1000", "250"),
		row("5000", "Rent", domain.Expense, "250", "0"),
	}

	tb := reports.BuildTrialBalance(day("2024-01-01"), day("2024-01-31"), rows)

	require.Len(t, tb.Rows, 3)
	assert.Equal(t, []string{"1000", "4000", "5000"}, []string{tb.Rows[0].AccountCode, tb.Rows[1].AccountCode, tb.Rows[2].AccountCode})
	assertMoney(t, "750", tb.Rows[0].Balance)
	assertMoney(t, "1000", tb.Rows[1].Balance)
	assertMoney(t, "250", tb.Rows[2].Balance)
	assertMoney(t, "1250", tb.TotalDebit)
	assertMoney(t, "1250", tb.TotalCredit)
	assertMoney(t, "0", tb.Difference)
	assert.True(t, tb.Balanced)
	assert.Empty(t, tb.UnknownTypes)
}

func TestBuildTrialBalance_SurfacesImbalance(t *testing.T) {
	rows := []domain.AccountBalanceRow{
		row("1000", "Cash", domain.Asset, "100", "0"),
		row("4000", "Sales", domain.Revenue, "0", "99.5"),
	}

	tb := reports.BuildTrialBalance(day("2024-01-01"), day("2024-01-31"), rows)

	assertMoney(t, "0.5", tb.Difference)
	assert.False(t, tb.Balanced)
}

func TestBuildTrialBalance_TotalsRoundedOnceAtSum(t *testing.T) {
	rows := []domain.AccountBalanceRow{
		row("1000", "Cash", domain.Asset, "0.004", "0"),
		row("1010", "Bank", domain.Asset, "0.004", "0"),
	}

	tb := reports.BuildTrialBalance(day("2024-01-01"), day("2024-01-31"), rows)

	// rows display as 0.00 each, but the raw sum 0.008 rounds to 0.01
	assertMoney(t, "0", tb.Rows[0].Debit)
	assertMoney(t, "0.01", tb.TotalDebit)
}

func TestBuildTrialBalance_UnknownTypeStillListed(t *testing.T) {
	rows := []domain.AccountBalanceRow{
		row("1000", "Cash", domain.Asset, "10", "0"),
		row("9999", "Suspense", "", "0", "10"),
	}

	tb := reports.BuildTrialBalance(day("2024-01-01"), day("2024-01-31"), rows)

	require.Len(t, tb.Rows, 2)
	assert.Equal(t, []string{"9999"}, tb.UnknownTypes)
	assertMoney(t, "10", tb.Rows[1].Balance)
	assert.True(t, tb.Balanced)
}

func TestBuildTrialBalance_Empty(t *testing.T) {
	tb := reports.BuildTrialBalance(day("2024-01-01"), day("2024-01-31"), nil)
	assert.Empty(t, tb.Rows)
	assertMoney(t, "0", tb.Difference)
	assert.True(t, tb.Balanced)
}

// One journal: Dr Cash 1,000.00 / Cr Revenue 1,000.00 on 2024-01-05.
func TestSingleSaleScenario(t *testing.T) {
	rows := []domain.AccountBalanceRow{
		row("1000", "Cash", domain.Asset, "1000.00", "0"),
		row("4000", "Sales", domain.Revenue, "0", "1000.00"),
	}

	pl := reports.BuildProfitAndLoss(day("2024-01-01"), day("2024-01-31"), rows)
	require.Len(t, pl.Revenue.Lines, 1)
	assertMoney(t, "1000.00", pl.Revenue.Lines[0].Amount)
	assertMoney(t, "1000.00", pl.NetProfit)

	bs := reports.BuildBalanceSheet(day("2024-01-31"), rows)
	assertMoney(t, "1000.00", bs.Assets.Total)
	assertMoney(t, "1000.00", bs.TotalEquity)
	assertMoney(t, "1000.00", bs.NetIncomeToDate)
	assertMoney(t, "0", bs.Difference)
	assert.True(t, bs.Balanced)
}

func TestBuildBalanceSheet(t *testing.T) {
	rows := []domain.AccountBalanceRow{
		row("1000", "Cash", domain.Asset, "5000", "1200"),
		row("1200", "Receivables", domain.Asset, "800", "800"),
		row("2000", "Payables", domain.Liability, "200", "700"),
		row("3000", "Capital", domain.Equity, "0", "3000"),
		row("4000", "Sales", domain.Revenue, "0", "1000"),
		row("5000", "Rent", domain.Expense, "700", "0"),
		row("9999", "Suspense", "WHATEVER", "123", "0"),
	}

	bs := reports.BuildBalanceSheet(day("2024-06-30"), rows)

	// receivables net to zero and are hidden
	require.Len(t, bs.Assets.Lines, 1)
	assert.Equal(t, "1000", bs.Assets.Lines[0].AccountCode)
	assertMoney(t, "3800", bs.Assets.Total)
	assertMoney(t, "500", bs.Liabilities.Total)
	assertMoney(t, "3000", bs.Equity.Total)
	assertMoney(t, "300", bs.NetIncomeToDate)
	assertMoney(t, "3300", bs.TotalEquity)
	assertMoney(t, "3800", bs.TotalLiabilitiesAndEquity)
	assertMoney(t, "0", bs.Difference)
	assert.True(t, bs.Balanced)
	assert.Equal(t, domain.SectionAssets, bs.Assets.Section)
}

func TestBuildBalanceSheet_ReportsDifference(t *testing.T) {
	rows := []domain.AccountBalanceRow{
		row("1000", "Cash", domain.Asset, "100", "0"),
		row("3000", "Capital", domain.Equity, "0", "90"),
	}

	bs := reports.BuildBalanceSheet(day("2024-06-30"), rows)

	assertMoney(t, "10", bs.Difference)
	assert.False(t, bs.Balanced)
}

func TestBuildProfitAndLoss(t *testing.T) {
	rows := []domain.AccountBalanceRow{
		row("4000", "Sales", domain.Revenue, "50", "1250.50"),
		row("4100", "Other income", domain.Revenue, "10", "10"),
		row("5000", "COGS", domain.Expense, "300", "0"),
		row("5100", "Marketing", domain.Expense, "200.25", "0.25"),
		row("1000", "Cash", domain.Asset, "9999", "0"),
	}

	pl := reports.BuildProfitAndLoss(day("2024-01-01"), day("2024-03-31"), rows)

	require.Len(t, pl.Revenue.Lines, 1)
	assertMoney(t, "1200.50", pl.Revenue.Total)
	require.Len(t, pl.Expenses.Lines, 2)
	assertMoney(t, "500", pl.Expenses.Total)
	assertMoney(t, "700.50", pl.NetProfit)
}

func TestBuildProfitAndLoss_NetLoss(t *testing.T) {
	rows := []domain.AccountBalanceRow{
		row("4000", "Sales", domain.Revenue, "0", "100"),
		row("5000", "Rent", domain.Expense, "150", "0"),
	}

	pl := reports.BuildProfitAndLoss(day("2024-01-01"), day("2024-01-31"), rows)

	assertMoney(t, "-50", pl.NetProfit)
}

func TestReportsAreIdempotent(t *testing.T) {
	rows := []domain.AccountBalanceRow{
		row("1000", "Cash", domain.Asset, "100.10", "33.333"),
		row("4000", "Sales", domain.Revenue, "0", "66.767"),
	}

	first := reports.BuildBalanceSheet(day("2024-01-31"), rows)
	second := reports.BuildBalanceSheet(day("2024-01-31"), rows)
	assert.Equal(t, first.Difference.String(), second.Difference.String())
	assert.Equal(t, first.TotalLiabilitiesAndEquity.String(), second.TotalLiabilitiesAndEquity.String())

	tb1 := reports.BuildTrialBalance(day("2024-01-01"), day("2024-01-31"), rows)
	tb2 := reports.BuildTrialBalance(day("2024-01-01"), day("2024-01-31"), rows)
	assert.Equal(t, tb1.TotalDebit.String(), tb2.TotalDebit.String())
	assert.Equal(t, tb1.TotalCredit.String(), tb2.TotalCredit.String())
}
