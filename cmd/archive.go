package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"content-indexer/core/archive"
	"content-indexer/core/storage"

	"github.com/spf13/cobra"
)

var (
	// Flags for archive subcommands
	archiveRun  string
	archiveType string
)

// archiveCmd is the parent command for run-archive operations.
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Inspect and prune archived sync runs",
}

// archiveShowCmd prints the documents archived for one run and content type.
var archiveShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the archived documents of one run",
	RunE:  runArchiveShow,
}

// archivePruneCmd removes all archived objects of one run.
var archivePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete the archived objects of one run",
	RunE:  runArchivePrune,
}

func init() {
	archiveShowCmd.Flags().StringVar(&archiveRun, "run", "", "Run id")
	archiveShowCmd.Flags().StringVar(&archiveType, "type", "", "Content type")
	_ = archiveShowCmd.MarkFlagRequired("run")
	_ = archiveShowCmd.MarkFlagRequired("type")

	archivePruneCmd.Flags().StringVar(&archiveRun, "run", "", "Run id")
	_ = archivePruneCmd.MarkFlagRequired("run")

	archiveCmd.AddCommand(archiveShowCmd)
	archiveCmd.AddCommand(archivePruneCmd)
	RootCmd.AddCommand(archiveCmd)
}

// buildArchiver wires the archiver from configuration.
func buildArchiver() (*archive.Archiver, error) {
	cfg, logg, err := loadRuntime()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return archive.New(store, cfg.Storage.Bucket, logg), nil
}

func runArchiveShow(cmd *cobra.Command, args []string) error {
	a, err := buildArchiver()
	if err != nil {
		return err
	}

	docs, err := a.Fetch(context.Background(), archiveRun, archiveType)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	return nil
}

func runArchivePrune(cmd *cobra.Command, args []string) error {
	a, err := buildArchiver()
	if err != nil {
		return err
	}

	if err := a.Prune(context.Background(), archiveRun); err != nil {
		return err
	}

	fmt.Printf("Pruned archive of run %s\n", archiveRun)
	return nil
}
