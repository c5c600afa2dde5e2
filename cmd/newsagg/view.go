package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"newsagg/internal/model"
	"newsagg/internal/query"
)

var (
	flagViewSource  string
	flagViewKeyword string
	flagViewStart   string
	flagViewEnd     string
	flagViewLimit   int
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "View stored articles, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		start, err := parseDateFlag("start", flagViewStart)
		if err != nil {
			return err
		}
		end, err := parseDateFlag("end", flagViewEnd)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		articles, err := store.Query(cmd.Context(), query.Filter{
			Source:  flagViewSource,
			Keyword: flagViewKeyword,
			Start:   start,
			End:     end,
			Limit:   flagViewLimit,
		})
		if err != nil {
			return err
		}

		if len(articles) == 0 {
			fmt.Println("No articles found.")
			return nil
		}
		for _, a := range articles {
			printArticle(a)
		}
		return nil
	},
}

func init() {
	viewCmd.Flags().StringVar(&flagViewSource, "source", "", "filter by source substring")
	viewCmd.Flags().StringVar(&flagViewKeyword, "keyword", "", "filter by keyword in title, summary, or url")
	viewCmd.Flags().StringVar(&flagViewStart, "start", "", "earliest publication date (YYYY-MM-DD or ISO-8601)")
	viewCmd.Flags().StringVar(&flagViewEnd, "end", "", "latest publication date (YYYY-MM-DD or ISO-8601)")
	viewCmd.Flags().IntVar(&flagViewLimit, "limit", query.DefaultLimit, "max articles to show")
}

func printArticle(a model.Article) {
	published := a.PublishedAt
	if published == "" {
		published = a.FetchedAt
	}
	if published == "" {
		published = "-"
	}
	source := a.Source
	if source == "" {
		source = "-"
	}
	fmt.Printf("[%d] %s | %s\n%s\n%s\n\n",
		a.ID, source, published,
		runewidth.Truncate(a.Title, 100, "…"),
		a.URL)
}
