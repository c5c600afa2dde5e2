// Package fetcher implements the upstream article sources: the NewsAPI
// client, the BBC/CNN front-page scrapers, and the RSS feed source.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"newsagg/internal/model"
)

const (
	userAgent   = "newsagg/1.0"
	maxBodySize = 5 * 1024 * 1024
)

// HTTPClient is the interface for performing HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Source produces article candidates from one upstream. Implementations
// return raw candidates; validation and date normalization happen downstream
// in the ingest package.
type Source interface {
	Name() string
	Fetch(ctx context.Context, limit int) ([]model.Candidate, error)
}

// doGet performs a GET request and returns at most maxBodySize bytes of the
// response body. A non-200 status is an error.
func doGet(ctx context.Context, client HTTPClient, url, authorization string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
