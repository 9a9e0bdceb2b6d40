package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Journal is a posted financial event. Journals are never modified once posted.
type Journal struct {
	JournalID     int64     `json:"journalID"`
	CompanyID     string    `json:"companyID"`
	JournalDate   time.Time `json:"journalDate"`   // Posting date, calendar day
	ReferenceType string    `json:"referenceType"` // Business document kind, e.g. "SALES_INVOICE"
	ReferenceID   string    `json:"referenceID"`
	Narration     string    `json:"narration"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PartyType classifies the counterparty of an entry for subsidiary ledgers.
type PartyType string

const (
	PartyCustomer PartyType = "CUSTOMER"
	PartyVendor   PartyType = "VENDOR"
)

// PartyRef identifies a customer or vendor.
type PartyRef struct {
	Type PartyType `json:"type"`
	ID   string    `json:"id"`
}

// Entry is one debit/credit line of a journal.
type Entry struct {
	EntryID   int64           `json:"entryID"`
	JournalID int64           `json:"journalID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`  // >= 0
	Credit    decimal.Decimal `json:"credit"` // >= 0
	Party     *PartyRef       `json:"party,omitempty"`
	ScopeTag  string          `json:"scopeTag,omitempty"` // Sub-scope (branch) tag, only used for filtering
}

// LedgerEntry is an entry joined with its journal header and account, as read for ledgers.
type LedgerEntry struct {
	EntryID       int64           `json:"entryID"`
	JournalID     int64           `json:"journalID"`
	JournalDate   time.Time       `json:"journalDate"`
	ReferenceType string          `json:"referenceType"`
	ReferenceID   string          `json:"referenceID"`
	Narration     string          `json:"narration"`
	AccountCode   string          `json:"accountCode"`
	AccountName   string          `json:"accountName"`
	AccountType   AccountType     `json:"accountType"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
	Party         *PartyRef       `json:"party,omitempty"`
	ScopeTag      string          `json:"scopeTag,omitempty"`
}

// AccountBalanceRow holds raw debit and credit sums for one account over a window.
// The sums are never netted; sign is applied by the classifier.
type AccountBalanceRow struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	DebitTotal  decimal.Decimal `json:"debitTotal"`
	CreditTotal decimal.Decimal `json:"creditTotal"`
}

// RunningLedgerRow is an entry with its signed delta and the balance right after it.
type RunningLedgerRow struct {
	Entry          LedgerEntry     `json:"entry"`
	Delta          decimal.Decimal `json:"delta"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}
