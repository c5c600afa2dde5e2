package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"newsagg/internal/model"
)

// Scraper extracts headline candidates from a news front page. Scraped
// candidates carry no publication date or summary; only the structured API
// provides those. Selectors are fragile by nature and markup changes surface
// as empty result sets, not errors.
type Scraper struct {
	name    string
	pageURL string
	client  HTTPClient
	extract func(doc *goquery.Document, limit int) []model.Candidate
}

// NewBBC creates a scraper for the BBC front page.
func NewBBC(client HTTPClient) *Scraper {
	return &Scraper{
		name:    "BBC",
		pageURL: "https://www.bbc.com",
		client:  client,
		extract: extractBBC,
	}
}

// NewCNN creates a scraper for the CNN front page.
func NewCNN(client HTTPClient) *Scraper {
	return &Scraper{
		name:    "CNN",
		pageURL: "https://edition.cnn.com",
		client:  client,
		extract: extractCNN,
	}
}

// Name identifies the source in logs.
func (s *Scraper) Name() string { return strings.ToLower(s.name) }

// Fetch downloads the front page and extracts up to limit headlines.
func (s *Scraper) Fetch(ctx context.Context, limit int) ([]model.Candidate, error) {
	body, err := doGet(ctx, s.client, s.pageURL, "")
	if err != nil {
		return nil, fmt.Errorf("%s front page: %w", s.name, err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse %s html: %w", s.name, err)
	}
	return s.extract(doc, limit), nil
}

// extractBBC pulls headlines from h3 elements nested inside anchors.
func extractBBC(doc *goquery.Document, limit int) []model.Candidate {
	var items []model.Candidate
	doc.Find("a[href] h3").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		title := strings.TrimSpace(h.Text())
		href, ok := h.Closest("a").Attr("href")
		if title == "" || !ok {
			return true
		}
		items = append(items, model.Candidate{
			Title:  title,
			URL:    absoluteURL("https://www.bbc.com", href),
			Source: "BBC",
		})
		return limit <= 0 || len(items) < limit
	})
	return items
}

// extractCNN pulls headlines from the anchor patterns CNN uses for cards.
func extractCNN(doc *goquery.Document, limit int) []model.Candidate {
	var items []model.Candidate
	doc.Find("h3 a, span.cd__headline a, a.container__link[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		title := strings.TrimSpace(a.Text())
		href, ok := a.Attr("href")
		if title == "" || !ok || href == "" {
			return true
		}
		items = append(items, model.Candidate{
			Title:  title,
			URL:    absoluteURL("https://edition.cnn.com", href),
			Source: "CNN",
		})
		return limit <= 0 || len(items) < limit
	})
	return items
}

func absoluteURL(base, href string) string {
	if strings.HasPrefix(href, "/") {
		return base + href
	}
	return href
}
