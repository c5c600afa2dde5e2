// Package ingest merges fetched candidates from multiple sources and feeds
// them to the article store.
package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"newsagg/internal/fetcher"
	"newsagg/internal/model"
	"newsagg/internal/storage"
)

// Orchestrator runs one ingestion pass over a set of sources.
type Orchestrator struct {
	store storage.Storage
	log   *slog.Logger
}

// New creates an Orchestrator writing to the given store.
func New(store storage.Storage, log *slog.Logger) *Orchestrator {
	return &Orchestrator{store: store, log: log}
}

// Summary aggregates the outcome of one ingestion run.
type Summary struct {
	Fetched      int // candidates produced by sources that succeeded
	Stored       int // newly persisted articles
	Duplicates   int // rejected in-memory or by the store's uniqueness checks
	Dropped      int // rejected by the normalizer (missing title)
	SourceErrors int // sources whose fetch failed outright
}

// Run fetches every source in order, merges and pre-dedupes the results, and
// inserts the survivors one at a time. A source whose fetch fails is logged
// and skipped; candidates from the remaining sources are still processed.
// Duplicate rejections from the store are counted, not treated as errors.
// Only a storage failure aborts the run.
func (o *Orchestrator) Run(ctx context.Context, sources []fetcher.Source, limit int) (Summary, error) {
	var sum Summary

	var merged []model.Candidate
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		cands, err := src.Fetch(ctx, limit)
		if err != nil {
			o.log.Error("fetch source", "source", src.Name(), "error", err)
			sum.SourceErrors++
			continue
		}
		o.log.Debug("fetched source", "source", src.Name(), "count", len(cands))
		sum.Fetched += len(cands)
		merged = append(merged, cands...)
	}

	var normalized []model.Candidate
	for _, raw := range merged {
		c, ok := Normalize(raw)
		if !ok {
			sum.Dropped++
			continue
		}
		normalized = append(normalized, c)
	}

	unique := Dedupe(normalized)
	sum.Duplicates += len(normalized) - len(unique)

	for _, c := range unique {
		status, err := o.store.InsertArticle(ctx, c)
		if err != nil {
			return sum, fmt.Errorf("store candidate: %w", err)
		}
		if status == model.StatusInserted {
			sum.Stored++
			continue
		}
		sum.Duplicates++
		o.log.Debug("duplicate skipped", "status", status.String(), "title", c.Title)
	}

	o.log.Info("ingestion complete",
		"fetched", sum.Fetched, "stored", sum.Stored,
		"duplicates", sum.Duplicates, "dropped", sum.Dropped,
		"source_errors", sum.SourceErrors)
	return sum, nil
}
