package cmd

import (
	"context"
	"fmt"

	"content-indexer/core/syncer"

	"github.com/spf13/cobra"
)

var (
	// Flags for the sync command
	syncTypes  []string
	syncIndex  string
	syncEntry  string
	syncDryRun bool
)

// syncCmd runs a full or single-entry sync.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync content types into the search index",
	Long: `Fetch all entries of the given content types, flatten them into one
document per entry and locale, and reconcile the destination index to match.

Examples:
  # Full sync of two content types
  content-indexer sync --type article --type page --index content

  # Re-sync one entry after a change (never deletes siblings)
  content-indexer sync --type article --index content --entry 6KntaYXaHSyIw8M6eo26OK

  # Report the diff without writing
  content-indexer sync --type article --index content --dry-run`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringArrayVar(&syncTypes, "type", nil, "Content type to sync (repeatable)")
	syncCmd.Flags().StringVar(&syncIndex, "index", "", "Destination index name (before prefixing)")
	syncCmd.Flags().StringVar(&syncEntry, "entry", "", "Restrict the sync to one entry id")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Compute and log the diff without writing")
	_ = syncCmd.MarkFlagRequired("type")
	_ = syncCmd.MarkFlagRequired("index")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, logg, err := loadRuntime()
	if err != nil {
		return err
	}
	defer logg.Sync()

	s, _, err := buildSyncer(cfg, logg)
	if err != nil {
		return err
	}

	err = s.Sync(context.Background(), syncer.Request{
		ContentTypes: syncTypes,
		IndexName:    syncIndex,
		EntryID:      syncEntry,
		DryRun:       syncDryRun,
	})
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	return nil
}
