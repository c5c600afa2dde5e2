// Package model defines the domain types used across the application.
package model

// Article is a stored news article. String fields other than Title are
// optional; the empty string means the value is absent.
type Article struct {
	ID          int64
	Title       string
	URL         string
	Source      string
	PublishedAt string // ISO-8601 UTC, empty when unknown
	Summary     string
	FetchedAt   string // assigned by the store at insert time
}

// Candidate is a normalized article that has not been stored yet.
type Candidate struct {
	Title       string
	URL         string
	Source      string
	PublishedAt string
	Summary     string
}

// InsertStatus reports the outcome of a store insert attempt.
type InsertStatus int

// Insert outcomes. Duplicates are expected and non-fatal.
const (
	StatusInserted InsertStatus = iota
	StatusDuplicateURL
	StatusDuplicateTitle
)

// String returns a short label for logging.
func (s InsertStatus) String() string {
	switch s {
	case StatusInserted:
		return "inserted"
	case StatusDuplicateURL:
		return "duplicate_url"
	case StatusDuplicateTitle:
		return "duplicate_title"
	}
	return "unknown"
}
