package mapping

import (
	"github.com/SscSPs/ledger_statements/internal/core/domain"
	"github.com/SscSPs/ledger_statements/internal/models"
)

// ToDomainBalanceRows converts grouped sums to domain rows.
func ToDomainBalanceRows(ms []models.BalanceRow) []domain.AccountBalanceRow {
	ds := make([]domain.AccountBalanceRow, len(ms))
	for i, m := range ms {
		ds[i] = domain.AccountBalanceRow{
			AccountCode: m.AccountCode,
			AccountName: m.AccountName,
			AccountType: domain.ParseAccountType(m.AccountType),
			DebitTotal:  m.DebitTotal,
			CreditTotal: m.CreditTotal,
		}
	}
	return ds
}

// ToDomainLedgerEntry converts a joined entry row to a domain LedgerEntry.
// Party is only set when both party type and id are present.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	d := domain.LedgerEntry{
		EntryID:       m.EntryID,
		JournalID:     m.JournalID,
		JournalDate:   m.JournalDate,
		ReferenceType: deref(m.ReferenceType),
		ReferenceID:   deref(m.ReferenceID),
		Narration:     deref(m.Narration),
		AccountCode:   m.AccountCode,
		AccountName:   m.AccountName,
		AccountType:   domain.ParseAccountType(m.AccountType),
		Debit:         m.Debit,
		Credit:        m.Credit,
		ScopeTag:      deref(m.ScopeTag),
	}
	if m.PartyType != nil && m.PartyID != nil && *m.PartyID != "" {
		d.Party = &domain.PartyRef{Type: domain.PartyType(*m.PartyType), ID: *m.PartyID}
	}
	return d
}

// ToDomainLedgerEntries converts a slice of joined entry rows.
func ToDomainLedgerEntries(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
