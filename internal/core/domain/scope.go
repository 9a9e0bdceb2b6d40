package domain

import (
	"slices"
	"strings"
	"time"
)

// ScopeFilter restricts aggregation to entries carrying one of a set of sub-scope tags.
// The zero value matches every entry. Storage adapters translate it into their own
// predicate; the statement engine only passes it along.
type ScopeFilter struct {
	tags []string
}

// AllScopes returns a filter that matches every entry.
func AllScopes() ScopeFilter {
	return ScopeFilter{}
}

// ScopeTags returns a filter matching entries tagged with any of tags.
// Blank tags are ignored; with no usable tags the filter matches everything.
func ScopeTags(tags ...string) ScopeFilter {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	slices.Sort(cleaned)
	cleaned = slices.Compact(cleaned)
	if len(cleaned) == 0 {
		return ScopeFilter{}
	}
	return ScopeFilter{tags: cleaned}
}

// IsAll reports whether the filter is unrestricted.
func (f ScopeFilter) IsAll() bool {
	return len(f.tags) == 0
}

// Tags returns a copy of the sorted tag set, nil when unrestricted.
func (f ScopeFilter) Tags() []string {
	if f.IsAll() {
		return nil
	}
	return slices.Clone(f.tags)
}

// Matches reports whether an entry with the given tag passes the filter.
func (f ScopeFilter) Matches(tag string) bool {
	if f.IsAll() {
		return true
	}
	_, found := slices.BinarySearch(f.tags, tag)
	return found
}

// Key is a stable textual form of the filter, suitable for cache keys and logs.
func (f ScopeFilter) Key() string {
	if f.IsAll() {
		return "all"
	}
	return strings.Join(f.tags, ",")
}

// ScopeRequest is the raw reporting context coming from a caller.
// From is zero for point-in-time reports such as the balance sheet.
type ScopeRequest struct {
	UserID    string
	CompanyID string
	From      time.Time
	To        time.Time
	ScopeTags []string
}

// ReportScope is a resolved, authorised reporting context.
type ReportScope struct {
	CompanyID string
	From      time.Time
	To        time.Time
	Filter    ScopeFilter
}
