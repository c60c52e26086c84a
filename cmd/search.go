package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"content-indexer/core/index/elastic"

	"github.com/spf13/cobra"
)

var (
	// Flags for the search command
	searchIndex string
	searchQuery string
)

// searchCmd performs an ad-hoc lookup against the index, outside the
// reconciliation path.
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the document index",
	Long: `Run an ad-hoc query against the destination index and print the
matching documents as JSON.

Example:
  content-indexer search --index content --query 'title:Hello'`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchIndex, "index", "", "Index name (before prefixing)")
	searchCmd.Flags().StringVar(&searchQuery, "query", "", "Query string")
	_ = searchCmd.MarkFlagRequired("index")
	_ = searchCmd.MarkFlagRequired("query")

	RootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, logg, err := loadRuntime()
	if err != nil {
		return err
	}
	defer logg.Sync()

	idx, err := elastic.New(cfg.Index)
	if err != nil {
		return fmt.Errorf("failed to create index client: %w", err)
	}

	docs, err := idx.Search(context.Background(), cfg.Index.Prefix+searchIndex, searchQuery)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	out, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	return nil
}
