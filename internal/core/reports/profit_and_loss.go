package reports

import (
	"time"

	"github.com/SscSPs/ledger_statements/internal/core/domain"
	"github.com/SscSPs/ledger_statements/internal/utils/accounting"
)

// BuildProfitAndLoss nets period totals for revenue (credit - debit) and
// expense (debit - credit) accounts. Accounts netting to zero are left out.
func BuildProfitAndLoss(from, to time.Time, rows []domain.AccountBalanceRow) domain.ProfitAndLoss {
	revenue := sectionBuilder{section: newSection(domain.SectionRevenue)}
	expenses := sectionBuilder{section: newSection(domain.SectionExpenses)}

	for _, row := range sortedByCode(rows) {
		switch accounting.ClassifySection(row.AccountType) {
		case domain.SectionRevenue:
			if net := accounting.SubMoney(row.CreditTotal, row.DebitTotal); !accounting.IsNearZero(net) {
				revenue.add(row, net)
			}
		case domain.SectionExpenses:
			if net := accounting.SubMoney(row.DebitTotal, row.CreditTotal); !accounting.IsNearZero(net) {
				expenses.add(row, net)
			}
		}
	}

	return domain.ProfitAndLoss{
		From:      from,
		To:        to,
		Revenue:   revenue.section,
		Expenses:  expenses.section,
		NetProfit: accounting.SubMoney(revenue.section.Total, expenses.section.Total),
	}
}
