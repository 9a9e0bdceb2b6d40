package reports

import (
	"time"

	"github.com/SscSPs/ledger_statements/internal/core/domain"
	"github.com/SscSPs/ledger_statements/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// BuildBalanceSheet classifies as-of balances into assets, liabilities and
// equity. Revenue and expense balances are not closed into equity yet, so they
// are folded into NetIncomeToDate and shown as part of total equity.
func BuildBalanceSheet(asOf time.Time, rows []domain.AccountBalanceRow) domain.BalanceSheet {
	assets := sectionBuilder{section: newSection(domain.SectionAssets)}
	liabilities := sectionBuilder{section: newSection(domain.SectionLiabilities)}
	equity := sectionBuilder{section: newSection(domain.SectionEquity)}
	netIncome := decimal.Zero

	for _, row := range sortedByCode(rows) {
		balance := accounting.SignedBalance(row)
		switch accounting.ClassifySection(row.AccountType) {
		case domain.SectionRevenue:
			netIncome = accounting.AddMoney(netIncome, balance)
			continue
		case domain.SectionExpenses:
			netIncome = accounting.SubMoney(netIncome, balance)
			continue
		}

		if accounting.IsNearZero(balance) {
			continue
		}
		switch accounting.ClassifySection(row.AccountType) {
		case domain.SectionAssets:
			assets.add(row, balance)
		case domain.SectionLiabilities:
			liabilities.add(row, balance)
		case domain.SectionEquity:
			equity.add(row, balance)
		}
	}

	bs := domain.BalanceSheet{
		AsOf:            asOf,
		Assets:          assets.section,
		Liabilities:     liabilities.section,
		Equity:          equity.section,
		NetIncomeToDate: netIncome,
	}
	bs.TotalEquity = accounting.AddMoney(bs.Equity.Total, netIncome)
	bs.TotalLiabilitiesAndEquity = accounting.AddMoney(bs.Liabilities.Total, bs.TotalEquity)
	bs.Difference = accounting.SubMoney(bs.Assets.Total, bs.TotalLiabilitiesAndEquity)
	bs.Balanced = accounting.WithinTolerance(bs.Difference)
	return bs
}
