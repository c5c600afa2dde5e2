package ingest

import (
	"strings"
	"time"

	"newsagg/internal/model"
)

const timeLayout = "2006-01-02T15:04:05Z"

// Layouts accepted for incoming publication dates, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NormalizeDate parses a timestamp in one of the accepted layouts and
// re-formats it as canonical zero-padded UTC. Every stored timestamp goes
// through here, which is what keeps the query engine's lexicographic date
// comparison equivalent to time comparison. Returns false when s cannot be
// parsed.
func NormalizeDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format(timeLayout), true
		}
	}
	return "", false
}

// Normalize shapes a raw fetched record into a well-formed candidate.
// All fields are whitespace-trimmed. A record whose title is empty after
// trimming is rejected. An unparseable publication date becomes absent
// rather than passing through, so the store never holds a timestamp outside
// the canonical layout.
func Normalize(raw model.Candidate) (model.Candidate, bool) {
	c := model.Candidate{
		Title:   strings.TrimSpace(raw.Title),
		URL:     strings.TrimSpace(raw.URL),
		Source:  strings.TrimSpace(raw.Source),
		Summary: strings.TrimSpace(raw.Summary),
	}
	if c.Title == "" {
		return model.Candidate{}, false
	}
	if normalized, ok := NormalizeDate(raw.PublishedAt); ok {
		c.PublishedAt = normalized
	}
	return c, true
}

// Dedupe removes in-memory duplicates from a merged candidate list, keeping
// the first occurrence of each url|title key in first-seen order. This is an
// advisory pre-filter; the store's check-then-insert remains the actual
// uniqueness guard.
func Dedupe(cands []model.Candidate) []model.Candidate {
	seen := make(map[string]struct{}, len(cands))
	var unique []model.Candidate
	for _, c := range cands {
		key := c.URL + "|" + c.Title
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, c)
	}
	return unique
}
