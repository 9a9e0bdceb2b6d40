package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceRow is one grouped debit/credit sum per account.
type BalanceRow struct {
	AccountCode string          `db:"account_code"`
	AccountName string          `db:"account_name"`
	AccountType string          `db:"account_type"`
	DebitTotal  decimal.Decimal `db:"debit_total"`
	CreditTotal decimal.Decimal `db:"credit_total"`
}

// LedgerEntry is an entry joined with its journal and account.
type LedgerEntry struct {
	EntryID       int64           `db:"entry_id"`
	JournalID     int64           `db:"journal_id"`
	JournalDate   time.Time       `db:"journal_date"`
	ReferenceType *string         `db:"reference_type"` // Nullable
	ReferenceID   *string         `db:"reference_id"`   // Nullable
	Narration     *string         `db:"narration"`      // Nullable
	AccountCode   string          `db:"account_code"`
	AccountName   string          `db:"account_name"`
	AccountType   string          `db:"account_type"`
	Debit         decimal.Decimal `db:"debit"`
	Credit        decimal.Decimal `db:"credit"`
	PartyType     *string         `db:"party_type"` // Nullable
	PartyID       *string         `db:"party_id"`   // Nullable
	ScopeTag      *string         `db:"scope_tag"`  // Nullable
}
