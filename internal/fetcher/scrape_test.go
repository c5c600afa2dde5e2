package fetcher

import (
	"context"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"newsagg/internal/model"
)

func TestBBCScraper(t *testing.T) {
	html := loadFixture(t, "../../testdata/bbc.html")

	tests := []struct {
		name  string
		limit int
		want  []model.Candidate
	}{
		{
			name:  "all headlines",
			limit: 20,
			want: []model.Candidate{
				{Title: "Storm Batters Northern Coast", URL: "https://www.bbc.com/news/world-12345678", Source: "BBC"},
				{Title: "Probe Returns First Samples From Asteroid", URL: "https://www.bbc.com/news/science-23456789", Source: "BBC"},
				{Title: "Cup Final Ends In Dramatic Shootout", URL: "https://www.bbc.com/sport/football-34567890", Source: "BBC"},
				{Title: "Central Bank Holds Rates Steady", URL: "https://www.bbc.com/news/business-45678901", Source: "BBC"},
			},
		},
		{
			name:  "limit respected",
			limit: 2,
			want: []model.Candidate{
				{Title: "Storm Batters Northern Coast", URL: "https://www.bbc.com/news/world-12345678", Source: "BBC"},
				{Title: "Probe Returns First Samples From Asteroid", URL: "https://www.bbc.com/news/science-23456789", Source: "BBC"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewBBC(&mockTransport{body: html, statusCode: 200})
			got, err := s.Fetch(context.Background(), tt.limit)
			if err != nil {
				t.Fatalf("fetch: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("candidates mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCNNScraper(t *testing.T) {
	html := loadFixture(t, "../../testdata/cnn.html")

	s := NewCNN(&mockTransport{body: html, statusCode: 200})
	got, err := s.Fetch(context.Background(), 20)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	want := []model.Candidate{
		{Title: "Senate Passes Budget After Marathon Session", URL: "https://edition.cnn.com/2025/11/12/politics/budget-vote", Source: "CNN"},
		{Title: "Record Heat Grips Southern Hemisphere", URL: "https://edition.cnn.com/2025/11/12/weather/heatwave", Source: "CNN"},
		{Title: "Chipmakers Warn of Fresh Supply Crunch", URL: "https://edition.cnn.com/2025/11/11/tech/chip-shortage", Source: "CNN"},
		{Title: "Striker Joins Rivals In Shock Transfer", URL: "https://edition.cnn.com/2025/11/10/sport/transfer", Source: "CNN"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestScraperErrors(t *testing.T) {
	tests := []struct {
		name      string
		transport *mockTransport
	}{
		{name: "http error status", transport: &mockTransport{body: "gone", statusCode: 503}},
		{name: "network error", transport: &mockTransport{err: io.ErrUnexpectedEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewBBC(tt.transport)
			if _, err := s.Fetch(context.Background(), 10); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestScraperEmptyPage(t *testing.T) {
	// Markup changes show up as empty result sets, not errors.
	s := NewBBC(&mockTransport{body: "<html><body><p>redesigned</p></body></html>", statusCode: 200})
	got, err := s.Fetch(context.Background(), 10)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no candidates, got %d", len(got))
	}
}
