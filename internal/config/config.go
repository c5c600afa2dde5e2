// Package config handles application configuration from environment variables.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Config holds the application configuration.
type Config struct {
	NewsAPIKey   string
	DatabasePath string
	LogLevel     string
	RSSFeeds     []string
}

// Load reads configuration from environment variables. NEWSAPI_KEY is
// optional; without it the fetch command falls back to the scrapers and any
// configured RSS feeds.
func Load() (*Config, error) {
	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "./data/news.db"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	var feeds []string
	if raw := os.Getenv("RSS_FEEDS"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			u, err := url.Parse(s)
			if err != nil || u.Scheme == "" || u.Host == "" {
				return nil, fmt.Errorf("invalid feed URL %q in RSS_FEEDS", s)
			}
			feeds = append(feeds, s)
		}
	}

	return &Config{
		NewsAPIKey:   os.Getenv("NEWSAPI_KEY"),
		DatabasePath: dbPath,
		LogLevel:     logLevel,
		RSSFeeds:     feeds,
	}, nil
}
