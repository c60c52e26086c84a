package cmd

import (
	"fmt"

	"content-indexer/core/archive"
	"content-indexer/core/config"
	"content-indexer/core/database"
	"content-indexer/core/flatten"
	"content-indexer/core/history"
	"content-indexer/core/index/elastic"
	"content-indexer/core/logger"
	"content-indexer/core/source"
	"content-indexer/core/storage"
	"content-indexer/core/syncer"

	"go.uber.org/zap"
)

// loadRuntime loads configuration and builds the logger every command needs.
func loadRuntime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, l, nil
}

// buildSyncer wires the full sync pipeline from configuration: source
// client, index client, locale spec, plus the optional history recorder and
// run archiver. Database and storage failures downgrade to warnings; the
// pipeline runs without them.
func buildSyncer(cfg *config.Config, logg *zap.Logger) (*syncer.Syncer, history.Recorder, error) {
	locales, err := flatten.ParseLocales(cfg.Sync.Locales)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid locale specification: %w", err)
	}

	src, err := source.NewClient(cfg.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create content source client: %w", err)
	}

	idx, err := elastic.New(cfg.Index)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create index client: %w", err)
	}

	s := syncer.New(src, idx, locales, cfg.Index.Prefix, logg)

	// Optional sync-run history
	var recorder history.Recorder
	if db, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Running without sync history", zap.Error(err))
	} else {
		rec := history.NewRecorder(db)
		if err := rec.Migrate(); err != nil {
			logg.Warn("Running without sync history", zap.Error(err))
		} else {
			recorder = rec
			s.WithRecorder(rec)
		}
	}

	// Optional run archive
	if cfg.Sync.Archive {
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Warn("Running without run archive", zap.Error(err))
		} else {
			s.WithArchiver(archive.New(store, cfg.Storage.Bucket, logg))
		}
	}

	return s, recorder, nil
}
