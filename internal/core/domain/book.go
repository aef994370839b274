package domain

import "strings"

// BookRecord is one book as returned by the remote catalog.
// The catalog owns the field set; records are passed through unchanged.
type BookRecord map[string]any

// SearchKind selects which catalog index a query runs against.
type SearchKind string

// Available search kinds.
const (
	// SearchByAuthor matches the term against author names.
	SearchByAuthor SearchKind = "author"

	// SearchByTitle matches the term against book titles.
	SearchByTitle SearchKind = "title"
)

// IsValid returns true if the search kind is recognised.
func (k SearchKind) IsValid() bool {
	switch k {
	case SearchByAuthor, SearchByTitle:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k SearchKind) String() string {
	return string(k)
}

// SearchQuery is the validated input to a catalog fetch.
type SearchQuery struct {
	// Term is the search pattern. Never empty, never padded with whitespace.
	Term string

	// PublishByDate is the optional publish-by filter (YYYY-MM-DD).
	// Nil means no filter. The value is not validated locally.
	PublishByDate *string
}

// NewSearchQuery trims term and builds a query from it.
// field names the argument the term came from and is used in the error.
func NewSearchQuery(field, term string, publishByDate *string) (SearchQuery, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return SearchQuery{}, &InvalidArgumentError{Field: field, Reason: ReasonRequired}
	}
	return SearchQuery{Term: term, PublishByDate: publishByDate}, nil
}

// HasPublishByDate returns true if a date filter was supplied.
func (q SearchQuery) HasPublishByDate() bool {
	return q.PublishByDate != nil
}
