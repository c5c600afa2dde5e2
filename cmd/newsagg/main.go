package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"newsagg/internal/config"
	"newsagg/internal/ingest"
	"newsagg/internal/storage"
)

var (
	flagDB       string
	flagLogLevel string

	cfg *config.Config
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "newsagg",
	Short: "Aggregate, store, and export news article metadata",
	Long: `newsagg fetches article metadata from NewsAPI, front-page scrapers, and
RSS feeds, stores it deduplicated in a local SQLite database, and supports
filtered viewing and CSV/XLSX export.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if flagDB != "" {
			cfg.DatabasePath = flagDB
		}
		if flagLogLevel != "" {
			cfg.LogLevel = flagLogLevel
		}
		log = newLogger(cfg.LogLevel)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "path to the sqlite database (default $DATABASE_PATH or ./data/news.db)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(dedupeCmd)
	rootCmd.AddCommand(listSourcesCmd)
	rootCmd.AddCommand(clearCmd)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// openStore ensures the data directory exists and opens the article store.
func openStore() (*storage.SQLite, error) {
	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create data directory %s: %w", dir, err)
		}
	}
	store, err := storage.NewSQLite(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", cfg.DatabasePath, err)
	}
	return store, nil
}

// parseDateFlag normalizes a --start/--end value to the canonical stored
// layout. Date-only values become midnight UTC, so an end bound excludes
// rows timestamped later that same day.
func parseDateFlag(name, value string) (string, error) {
	if value == "" {
		return "", nil
	}
	normalized, ok := ingest.NormalizeDate(value)
	if !ok {
		return "", fmt.Errorf("invalid --%s value %q (want YYYY-MM-DD or ISO-8601)", name, value)
	}
	return normalized, nil
}
