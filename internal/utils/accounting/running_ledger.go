package accounting

import (
	"cmp"
	"slices"

	"github.com/SscSPs/ledger_statements/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Netting turns a debit/credit pair into a signed amount.
type Netting func(debit, credit decimal.Decimal) decimal.Decimal

// DebitMinusCredit nets receivable-style balances: positive means the party owes us.
func DebitMinusCredit(debit, credit decimal.Decimal) decimal.Decimal {
	return debit.Sub(credit)
}

// CreditMinusDebit nets payable-style balances: positive means we owe the party.
func CreditMinusDebit(debit, credit decimal.Decimal) decimal.Decimal {
	return credit.Sub(debit)
}

// NormalBalanceNetting nets according to the account type's normal balance.
func NormalBalanceNetting(accountType domain.AccountType) Netting {
	return func(debit, credit decimal.Decimal) decimal.Decimal {
		return SignedAmount(debit, credit, accountType)
	}
}

// DeltaFunc computes the signed effect of one entry on a running balance.
type DeltaFunc func(entry domain.LedgerEntry) decimal.Decimal

// EntryDelta applies n to an entry's debit and credit.
func (n Netting) EntryDelta() DeltaFunc {
	return func(entry domain.LedgerEntry) decimal.Decimal {
		return n(entry.Debit, entry.Credit)
	}
}

// RowAmount applies n to an aggregated row, rounded.
func (n Netting) RowAmount(row domain.AccountBalanceRow) decimal.Decimal {
	return RoundMoney(n(row.DebitTotal, row.CreditTotal))
}

// CompareEntries orders entries by journal date, then journal id, then entry id.
func CompareEntries(a, b domain.LedgerEntry) int {
	if c := a.JournalDate.Compare(b.JournalDate); c != 0 {
		return c
	}
	if c := cmp.Compare(a.JournalID, b.JournalID); c != 0 {
		return c
	}
	return cmp.Compare(a.EntryID, b.EntryID)
}

// SortEntries sorts entries in place into ledger order.
func SortEntries(entries []domain.LedgerEntry) {
	slices.SortStableFunc(entries, CompareEntries)
}

// BuildRunningLedger folds entries, in ledger order, into running balances
// starting from opening. The input slice is not modified.
func BuildRunningLedger(opening decimal.Decimal, entries []domain.LedgerEntry, delta DeltaFunc) []domain.RunningLedgerRow {
	ordered := slices.Clone(entries)
	SortEntries(ordered)

	rows := make([]domain.RunningLedgerRow, 0, len(ordered))
	running := RoundMoney(opening)
	for _, entry := range ordered {
		d := RoundMoney(delta(entry))
		running = AddMoney(running, d)
		rows = append(rows, domain.RunningLedgerRow{
			Entry:          entry,
			Delta:          d,
			RunningBalance: running,
		})
	}
	return rows
}
