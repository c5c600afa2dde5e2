// Package query implements the article filter and sort engine.
package query

import (
	"sort"
	"strings"

	"newsagg/internal/model"
)

// DefaultLimit is the row cap used by the view command when no limit is given.
const DefaultLimit = 50

// Filter selects and bounds the articles returned by a query.
// All fields are optional. Start and End are inclusive ISO-8601 bounds
// compared against PublishedAt; articles without a publication date never
// match a date-bounded filter. Limit <= 0 means unbounded.
type Filter struct {
	Source  string
	Keyword string
	Start   string
	End     string
	Limit   int
}

// Match reports whether an article passes the filter.
// Source and Keyword are case-insensitive substring matches; Keyword matches
// against title, summary, or URL.
func Match(a model.Article, f Filter) bool {
	if f.Source != "" && !strings.Contains(strings.ToLower(a.Source), strings.ToLower(f.Source)) {
		return false
	}
	if f.Keyword != "" {
		kw := strings.ToLower(f.Keyword)
		if !strings.Contains(strings.ToLower(a.Title), kw) &&
			!strings.Contains(strings.ToLower(a.Summary), kw) &&
			!strings.Contains(strings.ToLower(a.URL), kw) {
			return false
		}
	}
	if f.Start != "" && (a.PublishedAt == "" || a.PublishedAt < f.Start) {
		return false
	}
	if f.End != "" && (a.PublishedAt == "" || a.PublishedAt > f.End) {
		return false
	}
	return true
}

// Sort orders articles by publication date descending with undated articles
// last, then by fetch time descending as a deterministic tie-break.
// The comparison is lexicographic; the normalizer guarantees one canonical
// zero-padded UTC layout so that string order equals time order.
func Sort(articles []model.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		a, b := articles[i], articles[j]
		switch {
		case a.PublishedAt == "" && b.PublishedAt != "":
			return false
		case a.PublishedAt != "" && b.PublishedAt == "":
			return true
		case a.PublishedAt != b.PublishedAt:
			return a.PublishedAt > b.PublishedAt
		}
		return a.FetchedAt > b.FetchedAt
	})
}

// Apply filters, sorts, and truncates articles according to f.
func Apply(articles []model.Article, f Filter) []model.Article {
	var out []model.Article
	for _, a := range articles {
		if Match(a, f) {
			out = append(out, a)
		}
	}
	Sort(out)
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}
