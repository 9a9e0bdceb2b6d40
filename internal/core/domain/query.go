package domain

import "time"

// PeriodQuery selects entries whose journal date falls within [From, To] inclusive.
type PeriodQuery struct {
	CompanyID string
	From      time.Time
	To        time.Time
	Filter    ScopeFilter
}

// AsOfQuery selects all entries with journal date <= AsOf.
// AccountCodes and Party narrow the selection when set.
type AsOfQuery struct {
	CompanyID    string
	AsOf         time.Time
	AccountCodes []string
	Party        *PartyRef
	Filter       ScopeFilter
}

// EntryQuery selects raw entries within [From, To] inclusive, optionally for
// a set of accounts and/or one party.
type EntryQuery struct {
	CompanyID    string
	From         time.Time
	To           time.Time
	AccountCodes []string
	Party        *PartyRef
	Filter       ScopeFilter
}
