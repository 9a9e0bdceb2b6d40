// Package memory holds an in-process ledger store implementing the reporting
// repositories. It backs service tests and local demos without PostgreSQL.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/ledger_statements/internal/apperrors"
	"github.com/SscSPs/ledger_statements/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_statements/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_statements/internal/utils/accounting"
)

// LedgerStore keeps companies, accounts, journals and entries in memory.
type LedgerStore struct {
	mu          sync.RWMutex
	companies   map[string]domain.Company
	memberships map[string]domain.CompanyMembership // key: companyID/userID
	accounts    map[string]domain.Account           // key: accountID
	journals    map[int64]domain.Journal
	entries     []domain.Entry
	nextJournal int64
	nextEntry   int64
}

var (
	_ portsrepo.ReportingRepository     = (*LedgerStore)(nil)
	_ portsrepo.AccountRepositoryFacade = (*LedgerStore)(nil)
	_ portsrepo.CompanyRepositoryFacade = (*LedgerStore)(nil)
)

// NewLedgerStore creates an empty store.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{
		companies:   make(map[string]domain.Company),
		memberships: make(map[string]domain.CompanyMembership),
		accounts:    make(map[string]domain.Account),
		journals:    make(map[int64]domain.Journal),
	}
}

// Provider exposes the store through the repository container.
func (s *LedgerStore) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   s,
		CompanyRepo:   s,
		ReportingRepo: s,
	}
}

// AddCompany registers a company.
func (s *LedgerStore) AddCompany(company domain.Company) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.companies[company.CompanyID] = company
}

// AddMembership registers a user's membership in a company.
func (s *LedgerStore) AddMembership(m domain.CompanyMembership) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memberships[membershipKey(m.CompanyID, m.UserID)] = m
}

// AddAccount registers an account. Codes must be unique per company.
func (s *LedgerStore) AddAccount(account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.accounts {
		if existing.CompanyID == account.CompanyID && existing.Code == account.Code {
			return fmt.Errorf("%w: account code %s", apperrors.ErrDuplicate, account.Code)
		}
	}
	s.accounts[account.AccountID] = account
	return nil
}

// PostJournal appends a journal with its entries and assigns ids in posting
// order. Balance is not enforced here; that belongs to the posting side.
func (s *LedgerStore) PostJournal(journal domain.Journal, entries ...domain.Entry) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range entries {
		account, ok := s.accounts[e.AccountID]
		if !ok || account.CompanyID != journal.CompanyID {
			return 0, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, e.AccountID)
		}
		if e.Debit.IsNegative() || e.Credit.IsNegative() {
			return 0, fmt.Errorf("%w: negative amount on account %s", apperrors.ErrValidation, e.AccountID)
		}
	}

	s.nextJournal++
	journal.JournalID = s.nextJournal
	journal.JournalDate = accounting.CalendarDay(journal.JournalDate)
	if journal.CreatedAt.IsZero() {
		journal.CreatedAt = time.Now().UTC()
	}
	s.journals[journal.JournalID] = journal

	for _, e := range entries {
		s.nextEntry++
		e.EntryID = s.nextEntry
		e.JournalID = journal.JournalID
		s.entries = append(s.entries, e)
	}
	return journal.JournalID, nil
}

func (s *LedgerStore) FindCompanyByID(_ context.Context, companyID string) (*domain.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	company, ok := s.companies[companyID]
	if !ok {
		return nil, fmt.Errorf("%w: company %s", apperrors.ErrNotFound, companyID)
	}
	return &company, nil
}

func (s *LedgerStore) FindMembership(_ context.Context, userID, companyID string) (*domain.CompanyMembership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.memberships[membershipKey(companyID, userID)]
	if !ok {
		return nil, fmt.Errorf("%w: membership of user %s in company %s", apperrors.ErrNotFound, userID, companyID)
	}
	m.AllowedScopes = slices.Clone(m.AllowedScopes)
	return &m, nil
}

func (s *LedgerStore) FindAccountByCode(_ context.Context, companyID, code string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, account := range s.accounts {
		if account.CompanyID == companyID && account.Code == code {
			return &account, nil
		}
	}
	return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, code)
}

func (s *LedgerStore) ListAccounts(_ context.Context, companyID string) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	accounts := make([]domain.Account, 0)
	for _, account := range s.accounts {
		if account.CompanyID == companyID {
			accounts = append(accounts, account)
		}
	}
	slices.SortFunc(accounts, func(a, b domain.Account) int { return strings.Compare(a.Code, b.Code) })
	return accounts, nil
}

func (s *LedgerStore) PeriodTotals(_ context.Context, q domain.PeriodQuery) ([]domain.AccountBalanceRow, error) {
	sel := selection{companyID: q.CompanyID, from: q.From, to: q.To, hasFrom: true, filter: q.Filter}
	return s.sum(sel), nil
}

func (s *LedgerStore) ClosingBalancesUpTo(_ context.Context, q domain.AsOfQuery) ([]domain.AccountBalanceRow, error) {
	sel := selection{companyID: q.CompanyID, to: q.AsOf, codes: q.AccountCodes, party: q.Party, filter: q.Filter}
	return s.sum(sel), nil
}

func (s *LedgerStore) ListEntries(_ context.Context, q domain.EntryQuery) ([]domain.LedgerEntry, error) {
	sel := selection{companyID: q.CompanyID, from: q.From, to: q.To, hasFrom: true, codes: q.AccountCodes, party: q.Party, filter: q.Filter}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.LedgerEntry, 0)
	for _, e := range s.entries {
		journal := s.journals[e.JournalID]
		account := s.accounts[e.AccountID]
		if !sel.matches(journal, account, e) {
			continue
		}
		out = append(out, domain.LedgerEntry{
			EntryID:       e.EntryID,
			JournalID:     e.JournalID,
			JournalDate:   journal.JournalDate,
			ReferenceType: journal.ReferenceType,
			ReferenceID:   journal.ReferenceID,
			Narration:     journal.Narration,
			AccountCode:   account.Code,
			AccountName:   account.Name,
			AccountType:   account.AccountType,
			Debit:         e.Debit,
			Credit:        e.Credit,
			Party:         e.Party,
			ScopeTag:      e.ScopeTag,
		})
	}
	accounting.SortEntries(out)
	return out, nil
}

type selection struct {
	companyID string
	from, to  time.Time
	hasFrom   bool
	codes     []string
	party     *domain.PartyRef
	filter    domain.ScopeFilter
}

func (sel selection) matches(journal domain.Journal, account domain.Account, e domain.Entry) bool {
	if journal.CompanyID != sel.companyID {
		return false
	}
	day := journal.JournalDate
	if sel.hasFrom && day.Before(accounting.CalendarDay(sel.from)) {
		return false
	}
	if day.After(accounting.CalendarDay(sel.to)) {
		return false
	}
	if len(sel.codes) > 0 && !slices.Contains(sel.codes, account.Code) {
		return false
	}
	if sel.party != nil && (e.Party == nil || *e.Party != *sel.party) {
		return false
	}
	return sel.filter.Matches(e.ScopeTag)
}

// sum groups matching entries by account code, ordered by code.
func (s *LedgerStore) sum(sel selection) []domain.AccountBalanceRow {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byCode := make(map[string]*domain.AccountBalanceRow)
	for _, e := range s.entries {
		journal := s.journals[e.JournalID]
		account := s.accounts[e.AccountID]
		if !sel.matches(journal, account, e) {
			continue
		}
		row, ok := byCode[account.Code]
		if !ok {
			row = &domain.AccountBalanceRow{
				AccountCode: account.Code,
				AccountName: account.Name,
				AccountType: account.AccountType,
			}
			byCode[account.Code] = row
		}
		row.DebitTotal = row.DebitTotal.Add(e.Debit)
		row.CreditTotal = row.CreditTotal.Add(e.Credit)
	}

	rows := make([]domain.AccountBalanceRow, 0, len(byCode))
	for _, row := range byCode {
		rows = append(rows, *row)
	}
	slices.SortFunc(rows, func(a, b domain.AccountBalanceRow) int { return strings.Compare(a.AccountCode, b.AccountCode) })
	return rows
}

func membershipKey(companyID, userID string) string {
	return companyID + "/" + userID
}
