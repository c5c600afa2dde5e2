// Package storage defines the persistence interface and its implementations.
package storage

import (
	"context"

	"newsagg/internal/model"
	"newsagg/internal/query"
)

// Storage is the interface for all persistence operations.
type Storage interface {
	InsertArticle(ctx context.Context, c model.Candidate) (model.InsertStatus, error)
	Query(ctx context.Context, f query.Filter) ([]model.Article, error)
	DedupeCollapse(ctx context.Context) (int64, error)
	ClearAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)

	Close() error
}
