package fetcher

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"

	"newsagg/internal/model"
)

// RSS fetches candidates from a single RSS or Atom feed.
type RSS struct {
	client  HTTPClient
	feedURL string
}

// NewRSS creates an RSS source for the given feed URL.
func NewRSS(client HTTPClient, feedURL string) *RSS {
	return &RSS{client: client, feedURL: feedURL}
}

// Name identifies the source in logs.
func (r *RSS) Name() string { return "rss:" + r.feedURL }

// Fetch downloads and parses the feed, mapping up to limit items onto the
// candidate shape. The feed title becomes the source label, falling back to
// the feed URL's host.
func (r *RSS) Fetch(ctx context.Context, limit int) ([]model.Candidate, error) {
	body, err := doGet(ctx, r.client, r.feedURL, "")
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}

	feed, err := gofeed.NewParser().ParseString(string(body))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	source := feed.Title
	if source == "" {
		if u, err := url.Parse(r.feedURL); err == nil {
			source = u.Host
		}
	}

	var out []model.Candidate
	for _, item := range feed.Items {
		if limit > 0 && len(out) >= limit {
			break
		}
		published := item.Published
		if item.PublishedParsed != nil {
			published = item.PublishedParsed.UTC().Format(time.RFC3339)
		}
		out = append(out, model.Candidate{
			Title:       item.Title,
			URL:         item.Link,
			Source:      source,
			PublishedAt: published,
			Summary:     item.Description,
		})
	}
	return out, nil
}
