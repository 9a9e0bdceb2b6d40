package reports

import (
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/ledger_statements/internal/core/domain"
	"github.com/SscSPs/ledger_statements/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// BuildTrialBalance lists every account with activity in the period. Footer
// totals are summed from the raw row totals and rounded once.
func BuildTrialBalance(from, to time.Time, rows []domain.AccountBalanceRow) domain.TrialBalance {
	sorted := sortedByCode(rows)

	tb := domain.TrialBalance{
		From:         from,
		To:           to,
		Rows:         make([]domain.TrialBalanceRow, 0, len(sorted)),
		UnknownTypes: []string{},
	}

	rawDebit, rawCredit := decimal.Zero, decimal.Zero
	for _, row := range sorted {
		if !domain.ParseAccountType(string(row.AccountType)).IsKnown() {
			tb.UnknownTypes = append(tb.UnknownTypes, row.AccountCode)
		}
		tb.Rows = append(tb.Rows, domain.TrialBalanceRow{
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			AccountType: row.AccountType,
			Debit:       accounting.RoundMoney(row.DebitTotal),
			Credit:      accounting.RoundMoney(row.CreditTotal),
			Balance:     accounting.SignedBalance(row),
		})
		rawDebit = rawDebit.Add(row.DebitTotal)
		rawCredit = rawCredit.Add(row.CreditTotal)
	}

	tb.TotalDebit = accounting.RoundMoney(rawDebit)
	tb.TotalCredit = accounting.RoundMoney(rawCredit)
	tb.Difference = accounting.SubMoney(tb.TotalDebit, tb.TotalCredit)
	tb.Balanced = accounting.WithinTolerance(tb.Difference)
	return tb
}

func sortedByCode(rows []domain.AccountBalanceRow) []domain.AccountBalanceRow {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b domain.AccountBalanceRow) int {
		return strings.Compare(a.AccountCode, b.AccountCode)
	})
	return sorted
}
