package search

import (
	"strings"
)

// Query represents the structured parameters for a catalog search.
// It decouples the raw request input from the actual index requirements.
type Query struct {
	RawInput string            // The original text typed by the user
	Terms    string            // Lower-cased text matched as a substring in Bluge
	Filters  map[string]string // Exact field filters (e.g., "specialty": "Elektrik")
	Limit    int               // Pagination: number of results, 0 means all
}

// NewSearchQuery normalises the user's input and attaches the exact-match filters.
// Empty filter values are ignored so that "no selection" means "no filter".
func NewSearchQuery(input string, filters map[string]string) *Query {
	query := &Query{
		RawInput: input,
		Terms:    strings.ToLower(strings.TrimSpace(input)),
		Filters:  make(map[string]string),
	}
	for field, value := range filters {
		if value = strings.TrimSpace(value); value != "" {
			query.Filters[field] = value
		}
	}
	return query
}

// WithLimit caps the number of results.
func (q *Query) WithLimit(limit int) *Query {
	q.Limit = limit
	return q
}

// IsEmpty reports whether the query matches the whole catalog.
func (q *Query) IsEmpty() bool {
	return q.Terms == "" && len(q.Filters) == 0
}
