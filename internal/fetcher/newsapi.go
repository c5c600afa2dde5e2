package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"newsagg/internal/model"
)

const newsAPIBase = "https://newsapi.org/v2/top-headlines"

// NewsAPI fetches top headlines from the NewsAPI HTTP endpoint, paginating
// until Pages or the reported total is reached.
type NewsAPI struct {
	client HTTPClient
	apiKey string

	// Query restricts results to a search term (the q parameter).
	Query string
	// Sources is a comma-separated list of NewsAPI source ids. Empty or
	// "all" falls back to language=en headlines.
	Sources string
	// Pages caps pagination; values below 1 mean a single page.
	Pages int
}

// NewNewsAPI creates a NewsAPI source authenticated with apiKey.
func NewNewsAPI(client HTTPClient, apiKey string) *NewsAPI {
	return &NewsAPI{client: client, apiKey: apiKey}
}

// Name identifies the source in logs.
func (n *NewsAPI) Name() string { return "newsapi" }

type newsAPIResponse struct {
	Status       string `json:"status"`
	TotalResults int    `json:"totalResults"`
	Articles     []struct {
		Source struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// Fetch downloads up to Pages pages of limit headlines each.
func (n *NewsAPI) Fetch(ctx context.Context, limit int) ([]model.Candidate, error) {
	pageSize := limit
	if pageSize <= 0 {
		pageSize = 20
	}
	pages := n.Pages
	if pages < 1 {
		pages = 1
	}

	var out []model.Candidate
	for page := 1; page <= pages; page++ {
		params := url.Values{}
		params.Set("pageSize", strconv.Itoa(pageSize))
		params.Set("page", strconv.Itoa(page))
		if n.Query != "" {
			params.Set("q", n.Query)
		}
		if n.Sources != "" && n.Sources != "all" {
			params.Set("sources", n.Sources)
		} else {
			params.Set("language", "en")
		}

		body, err := doGet(ctx, n.client, newsAPIBase+"?"+params.Encode(), n.apiKey)
		if err != nil {
			return nil, fmt.Errorf("newsapi page %d: %w", page, err)
		}

		var resp newsAPIResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("decode newsapi response: %w", err)
		}

		for _, a := range resp.Articles {
			out = append(out, model.Candidate{
				Title:       a.Title,
				URL:         a.URL,
				Source:      a.Source.Name,
				PublishedAt: a.PublishedAt,
				Summary:     a.Description,
			})
		}

		if page*pageSize >= resp.TotalResults {
			break
		}
	}
	return out, nil
}
