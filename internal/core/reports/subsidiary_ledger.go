package reports

import (
	"slices"
	"time"

	"github.com/SscSPs/ledger_statements/internal/core/domain"
	"github.com/SscSPs/ledger_statements/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// LedgerSelection describes which ledger to build.
type LedgerSelection struct {
	Kind            domain.LedgerKind
	Account         *domain.Account // general ledger only; nil when the code is unknown
	AccountCode     string
	Party           *domain.PartyRef
	ControlAccounts []string
	From            time.Time
	To              time.Time
}

// Netting returns the sign convention for the ledger kind. General ledgers
// follow the account's normal balance, customer ledgers read as "owed to us"
// and vendor ledgers as "owed by us".
func (s LedgerSelection) Netting() accounting.Netting {
	switch s.Kind {
	case domain.CustomerLedger:
		return accounting.DebitMinusCredit
	case domain.VendorLedger:
		return accounting.CreditMinusDebit
	default:
		var accountType domain.AccountType
		if s.Account != nil {
			accountType = s.Account.AccountType
		}
		return accounting.NormalBalanceNetting(accountType)
	}
}

// BuildSubsidiaryLedger derives the opening balance from the rows of the
// as-of snapshot taken the day before From, then runs the period entries.
func BuildSubsidiaryLedger(sel LedgerSelection, openingRows []domain.AccountBalanceRow, entries []domain.LedgerEntry) domain.SubsidiaryLedger {
	netting := sel.Netting()

	ledger := domain.SubsidiaryLedger{
		Kind:            sel.Kind,
		AccountCode:     sel.AccountCode,
		Party:           sel.Party,
		ControlAccounts: slices.Clone(sel.ControlAccounts),
		From:            sel.From,
		To:              sel.To,
		OpeningBalance:  decimal.Zero,
		TotalDebit:      decimal.Zero,
		TotalCredit:     decimal.Zero,
	}
	if ledger.ControlAccounts == nil {
		ledger.ControlAccounts = []string{}
	}
	if sel.Account != nil {
		ledger.AccountCode = sel.Account.Code
		ledger.AccountName = sel.Account.Name
	}

	for _, row := range openingRows {
		ledger.OpeningBalance = accounting.AddMoney(ledger.OpeningBalance, netting.RowAmount(row))
	}

	ledger.Rows = accounting.BuildRunningLedger(ledger.OpeningBalance, entries, netting.EntryDelta())
	ledger.ClosingBalance = ledger.OpeningBalance
	for _, row := range ledger.Rows {
		ledger.TotalDebit = accounting.AddMoney(ledger.TotalDebit, row.Entry.Debit)
		ledger.TotalCredit = accounting.AddMoney(ledger.TotalCredit, row.Entry.Credit)
		ledger.ClosingBalance = row.RunningBalance
	}
	return ledger
}
