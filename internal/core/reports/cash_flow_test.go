package reports_test

import (
	"testing"

	"github.com/SscSPs/ledger_statements/internal/core/domain"
	"github.com/SscSPs/ledger_statements/internal/core/reports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCashFlow_ReceivablesOnly(t *testing.T) {
	opening := []domain.AccountBalanceRow{
		row("1000", "Cash", domain.Asset, "1000", "0"),
		row("1200", "Receivables", domain.Asset, "100", "0"),
	}
	closing := []domain.AccountBalanceRow{
		row("1000", "Cash", domain.Asset, "1300", "0"),
		row("1200", "Receivables", domain.Asset, "300", "0"),
	}

	cf := reports.BuildCashFlow(reports.CashFlowInput{
		From:      day("2024-02-01"),
		To:        day("2024-02-29"),
		Opening:   opening,
		Closing:   closing,
		NetIncome: dec("500"),
	}, domain.DefaultCashFlowMapping())

	require.Len(t, cf.Adjustments, 6)
	assert.Equal(t, []string{"1200"}, cf.Adjustments[0].Codes)
	assertMoney(t, "200", cf.Adjustments[0].Delta)
	assertMoney(t, "-200", cf.Adjustments[0].Effect)
	assertMoney(t, "300", cf.OperatingCash)
	assertMoney(t, "1000", cf.OpeningCash)
	assertMoney(t, "1300", cf.ClosingCash)
	assertMoney(t, "300", cf.CashDelta)
	assertMoney(t, "0", cf.Unclassified)
	assert.True(t, cf.Reconciled)
}

func TestBuildCashFlow_AllLines(t *testing.T) {
	opening := []domain.AccountBalanceRow{
		row("1000", "Cash", domain.Asset, "2000", "0"),
		row("1010", "Bank", domain.Asset, "5000", "0"),
		row("1300", "Inventory", domain.Asset, "400", "0"),
		row("1410", "CGST input", domain.Asset, "10", "0"),
		row("2000", "Payables", domain.Liability, "0", "300"),
		row("2210", "CGST output", domain.Liability, "0", "20"),
		row("2300", "Customer advances", domain.Liability, "0", "0"),
	}
	closing := []domain.AccountBalanceRow{
		row("1000", "Cash", domain.Asset, "2500", "0"),
		row("1010", "Bank", domain.Asset, "5100", "0"),
		row("1300", "Inventory", domain.Asset, "550", "0"),
		row("1410", "CGST input", domain.Asset, "25", "0"),
		row("1420", "SGST input", domain.Asset, "15", "0"),
		row("2000", "Payables", domain.Liability, "0", "380"),
		row("2210", "CGST output", domain.Liability, "0", "45"),
		row("2220", "SGST output", domain.Liability, "0", "25"),
		row("2300", "Customer advances", domain.Liability, "0", "60"),
		row("3000", "Loan", domain.Liability, "0", "1000"),
	}

	cf := reports.BuildCashFlow(reports.CashFlowInput{
		From:      day("2024-04-01"),
		To:        day("2024-04-30"),
		Opening:   opening,
		Closing:   closing,
		NetIncome: dec("250"),
	}, domain.DefaultCashFlowMapping())

	// 250 - 0 - 150 - 30 + 80 + 50 + 60
	assertMoney(t, "260", cf.OperatingCash)
	assertMoney(t, "600", cf.CashDelta)
	assertMoney(t, "340", cf.Unclassified)
	assert.False(t, cf.Reconciled)
}

func TestBuildCashFlow_NoActivity(t *testing.T) {
	cf := reports.BuildCashFlow(reports.CashFlowInput{
		From: day("2024-01-01"),
		To:   day("2024-01-31"),
	}, domain.DefaultCashFlowMapping())

	assertMoney(t, "0", cf.OperatingCash)
	assertMoney(t, "0", cf.CashDelta)
	assertMoney(t, "0", cf.Unclassified)
	assert.True(t, cf.Reconciled)
}

func TestBuildCashFlow_CustomMapping(t *testing.T) {
	mapping := domain.CashFlowMapping{
		CashCodes:       []string{"A100"},
		ReceivableCodes: []string{"A200"},
	}
	opening := []domain.AccountBalanceRow{row("A100", "Till", domain.Asset, "0", "0")}
	closing := []domain.AccountBalanceRow{
		row("A100", "Till", domain.Asset, "40", "0"),
		row("A200", "Debtors", domain.Asset, "60", "0"),
	}

	cf := reports.BuildCashFlow(reports.CashFlowInput{Opening: opening, Closing: closing, NetIncome: dec("100")}, mapping)

	assertMoney(t, "40", cf.OperatingCash)
	assertMoney(t, "40", cf.CashDelta)
	assertMoney(t, "0", cf.Unclassified)
	assert.Empty(t, cf.Adjustments[1].Codes)
}
