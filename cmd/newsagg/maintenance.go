package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var dedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Collapse duplicate articles by URL, then by title",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		removed, err := store.DedupeCollapse(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d duplicate articles.\n", removed)
		return nil
	},
}

var listSourcesCmd = &cobra.Command{
	Use:   "list-sources",
	Short: "List built-in fetch sources",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("Built-in scrapers: bbc, cnn")
		fmt.Println("External: NewsAPI (set NEWSAPI_KEY), RSS feeds (set RSS_FEEDS)")
	},
}

var flagClearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete ALL stored articles (use with caution)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !flagClearYes {
			fmt.Print("Are you sure you want to DELETE ALL articles? Type YES to confirm: ")
			line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if strings.TrimSpace(line) != "YES" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		removed, err := store.ClearAll(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d articles.\n", removed)
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVar(&flagClearYes, "yes", false, "skip the confirmation prompt")
}
