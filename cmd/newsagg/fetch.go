package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"newsagg/internal/fetcher"
	"newsagg/internal/ingest"
)

var (
	flagFetchSource  string
	flagFetchKeyword string
	flagFetchLimit   int
	flagFetchPages   int
	flagFetchAPIKey  string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch news from the configured sources and store new articles",
	RunE: func(cmd *cobra.Command, _ []string) error {
		apiKey := flagFetchAPIKey
		if apiKey == "" {
			apiKey = cfg.NewsAPIKey
		}

		sources := buildSources(apiKey)
		if len(sources) == 0 {
			return fmt.Errorf("no sources selected: set NEWSAPI_KEY, configure RSS_FEEDS, or pass --source bbc|cnn")
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		sum, err := ingest.New(store, log).Run(cmd.Context(), sources, flagFetchLimit)
		if err != nil {
			return err
		}

		fmt.Printf("Stored %d new articles.\n", sum.Stored)
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVar(&flagFetchSource, "source", "all", "newsapi source id, or bbc, cnn, rss, all")
	fetchCmd.Flags().StringVar(&flagFetchKeyword, "keyword", "", "keyword for the NewsAPI query")
	fetchCmd.Flags().IntVar(&flagFetchLimit, "limit", 50, "max items to fetch per source")
	fetchCmd.Flags().IntVar(&flagFetchPages, "pages", 1, "pages for NewsAPI pagination")
	fetchCmd.Flags().StringVar(&flagFetchAPIKey, "api-key", "", "NewsAPI key (default $NEWSAPI_KEY)")
}

// buildSources assembles the fetch sources in fixed priority order: NewsAPI,
// BBC, CNN, then configured RSS feeds. The order determines which duplicate
// survives the in-memory merge, so it stays deterministic.
func buildSources(apiKey string) []fetcher.Source {
	client := &http.Client{Timeout: 15 * time.Second}

	wants := func(name string) bool {
		return flagFetchSource == "all" || flagFetchSource == name
	}

	var sources []fetcher.Source
	if apiKey != "" && (flagFetchSource == "all" || !builtinSource(flagFetchSource)) {
		api := fetcher.NewNewsAPI(client, apiKey)
		api.Query = flagFetchKeyword
		api.Pages = flagFetchPages
		if flagFetchSource != "all" {
			api.Sources = flagFetchSource
		}
		sources = append(sources, api)
	}
	if wants("bbc") {
		sources = append(sources, fetcher.NewBBC(client))
	}
	if wants("cnn") {
		sources = append(sources, fetcher.NewCNN(client))
	}
	if wants("rss") {
		for _, u := range cfg.RSSFeeds {
			sources = append(sources, fetcher.NewRSS(client, u))
		}
	}
	return sources
}

func builtinSource(name string) bool {
	switch name {
	case "bbc", "cnn", "rss":
		return true
	}
	return false
}
