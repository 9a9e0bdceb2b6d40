package reports

import (
	"github.com/SscSPs/ledger_statements/internal/core/domain"
	"github.com/SscSPs/ledger_statements/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type sectionBuilder struct {
	section domain.ReportSection
}

func newSection(section domain.StatementSection) domain.ReportSection {
	return domain.ReportSection{Section: section, Lines: []domain.StatementLine{}, Total: decimal.Zero}
}

func (b *sectionBuilder) add(row domain.AccountBalanceRow, amount decimal.Decimal) {
	b.section.Lines = append(b.section.Lines, domain.StatementLine{
		AccountCode: row.AccountCode,
		AccountName: row.AccountName,
		Amount:      amount,
	})
	b.section.Total = accounting.AddMoney(b.section.Total, amount)
}
