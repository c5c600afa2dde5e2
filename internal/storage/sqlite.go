package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver registration.

	"newsagg/internal/model"
	"newsagg/internal/query"
	"newsagg/migrations"
)

const timeLayout = "2006-01-02T15:04:05Z"

// SQLite implements Storage backed by a SQLite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at dsn and runs pending migrations.
// The connection pool is capped at one connection: the process holds a
// single exclusive handle and every insert's check-then-insert runs as one
// serialized transactional unit.
func NewSQLite(dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	if err := migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// InsertArticle attempts to store a candidate. An existing row with the same
// non-empty URL rejects it as StatusDuplicateURL; failing that, an existing
// row with the same title rejects it as StatusDuplicateTitle. Otherwise the
// row is written with a fresh fetched_at timestamp. The whole check-then-
// insert runs inside one transaction, so at most one of two concurrent
// inserts of the same key can win.
func (s *SQLite) InsertArticle(ctx context.Context, c model.Candidate) (model.InsertStatus, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	if c.URL != "" {
		err = tx.QueryRowContext(ctx, `SELECT 1 FROM articles WHERE url = ?`, c.URL).Scan(&exists)
		if err == nil {
			return model.StatusDuplicateURL, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("check url: %w", err)
		}
	}

	err = tx.QueryRowContext(ctx, `SELECT 1 FROM articles WHERE title = ?`, c.Title).Scan(&exists)
	if err == nil {
		return model.StatusDuplicateTitle, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("check title: %w", err)
	}

	now := time.Now().UTC().Format(timeLayout)
	_, err = tx.ExecContext(ctx,
		`INSERT INTO articles (title, url, source, published_at, summary, fetched_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.Title, nullable(c.URL), nullable(c.Source), nullable(c.PublishedAt), c.Summary, now,
	)
	if err != nil {
		return 0, fmt.Errorf("insert article: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit insert: %w", err)
	}
	return model.StatusInserted, nil
}

// Query returns the stored articles matching f, ordered and bounded by the
// query engine.
func (s *SQLite) Query(ctx context.Context, f query.Filter) ([]model.Article, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, url, source, published_at, summary, fetched_at FROM articles`,
	)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles, err := scanArticles(rows)
	if err != nil {
		return nil, err
	}
	return query.Apply(articles, f), nil
}

// DedupeCollapse removes redundant rows: first every duplicate of a non-null
// URL, then every duplicate of a non-null title, keeping the smallest id in
// each group. Rows whose key is NULL are never touched by that pass. The two
// passes run url-then-title inside one transaction; the order changes which
// row survives when a title group spans several URL groups. Returns the
// number of rows removed.
func (s *SQLite) DedupeCollapse(ctx context.Context) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var removed int64
	for _, key := range []string{"url", "title"} {
		res, err := tx.ExecContext(ctx, fmt.Sprintf(
			`DELETE FROM articles
			 WHERE %[1]s IS NOT NULL
			   AND id NOT IN (SELECT MIN(id) FROM articles WHERE %[1]s IS NOT NULL GROUP BY %[1]s)`,
			key,
		))
		if err != nil {
			return 0, fmt.Errorf("dedupe by %s: %w", key, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("rows affected: %w", err)
		}
		removed += n
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit dedupe: %w", err)
	}
	return removed, nil
}

// ClearAll deletes every stored article and returns the number removed.
// Irreversible; the CLI confirms with the user before calling it.
func (s *SQLite) ClearAll(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM articles`)
	if err != nil {
		return 0, fmt.Errorf("clear articles: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

// Count returns the number of stored articles.
func (s *SQLite) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return n, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

type scannable interface {
	Scan(dest ...any) error
}

func scanArticle(row scannable) (model.Article, error) {
	var a model.Article
	var url, source, published, summary, fetched sql.NullString
	err := row.Scan(&a.ID, &a.Title, &url, &source, &published, &summary, &fetched)
	if err != nil {
		return a, fmt.Errorf("scan article: %w", err)
	}
	a.URL = url.String
	a.Source = source.String
	a.PublishedAt = published.String
	a.Summary = summary.String
	a.FetchedAt = fetched.String
	return a, nil
}

func scanArticles(rows *sql.Rows) ([]model.Article, error) {
	var articles []model.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}
