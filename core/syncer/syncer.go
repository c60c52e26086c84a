package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"content-indexer/core/content"
	"content-indexer/core/flatten"
	"content-indexer/core/history"
	"content-indexer/core/index"
	"content-indexer/core/reconcile"
	"content-indexer/core/source"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Observer is invoked with a content type's flattened documents before they
// are indexed. It cannot veto anything.
type Observer func(docs []content.Document)

// Archiver is the optional audit-trail sink for run documents.
// *archive.Archiver satisfies it.
type Archiver interface {
	Archive(ctx context.Context, runID, contentType string, docs []content.Document) error
}

// Config holds configuration for sync runs.
type Config struct {
	// Locales is the locale specification string, groups separated by ';'
	// and fallback codes by ',' (e.g. "en,en-US;de").
	Locales string `mapstructure:"locales" default:""`
	// Archive enables writing run documents to object storage.
	Archive bool `mapstructure:"archive" default:"false"`
}

// Request describes one sync run.
type Request struct {
	// ContentType is the single-type shorthand for ContentTypes.
	ContentType string

	// ContentTypes lists the content types to sync.
	ContentTypes []string

	// IndexName is the destination index, before prefixing.
	IndexName string

	// EntryID restricts the run to one source entry. Deletion is suppressed
	// for the whole run when set.
	EntryID string

	// Observer, when set, sees each type's flattened documents before
	// indexing.
	Observer Observer

	// DryRun computes and logs diffs without writing to the index.
	DryRun bool
}

// Syncer drives content types through fetch, flatten, and reconcile.
type Syncer struct {
	source   source.ContentSource
	index    index.Client
	locales  flatten.Locales
	prefix   string
	recorder history.Recorder
	archiver Archiver
	logger   *zap.Logger
}

// New creates a syncer. The prefix is prepended to every index name.
func New(src source.ContentSource, idx index.Client, locales flatten.Locales, prefix string, logger *zap.Logger) *Syncer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Syncer{
		source:  src,
		index:   idx,
		locales: locales,
		prefix:  prefix,
		logger:  logger,
	}
}

// WithRecorder attaches a run-history recorder.
func (s *Syncer) WithRecorder(r history.Recorder) *Syncer {
	s.recorder = r
	return s
}

// WithArchiver attaches a run archiver.
func (s *Syncer) WithArchiver(a Archiver) *Syncer {
	s.archiver = a
	return s
}

// Sync runs all requested content types against the request's index.
// It returns the joined failures of the types that failed; the others
// complete regardless.
func (s *Syncer) Sync(ctx context.Context, req Request) error {
	types := req.ContentTypes
	if req.ContentType != "" {
		types = append([]string{req.ContentType}, types...)
	}
	if len(types) == 0 {
		return fmt.Errorf("no content types requested")
	}
	if req.IndexName == "" {
		return fmt.Errorf("index name is required")
	}

	// One reconciler for the whole run: every type diffs against the same
	// index snapshot.
	rec := reconcile.New(s.index, s.prefix+req.IndexName, s.logger)
	runID := uuid.NewString()

	s.logger.Info("Sync run started",
		zap.String("run_id", runID),
		zap.String("index", rec.Index()),
		zap.Strings("content_types", types),
		zap.String("entry_id", req.EntryID),
		zap.Bool("dry_run", req.DryRun),
	)

	var (
		mu   sync.Mutex
		errs []error
		wg   sync.WaitGroup
	)

	for _, contentType := range types {
		wg.Add(1)
		go func(contentType string) {
			defer wg.Done()
			if err := s.syncType(ctx, rec, runID, contentType, req); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", contentType, err))
				mu.Unlock()
			}
		}(contentType)
	}

	wg.Wait()
	return errors.Join(errs...)
}

// syncType runs one content type end to end and records the outcome.
func (s *Syncer) syncType(ctx context.Context, rec *reconcile.Reconciler, runID, contentType string, req Request) error {
	started := time.Now()

	fetcher := source.NewFetcher(s.source, s.locales, s.logger)
	docs, err := fetcher.FetchAll(ctx, contentType, req.EntryID)

	var result *reconcile.Result
	if err == nil {
		s.archive(ctx, runID, contentType, docs)
		s.observe(req.Observer, docs)
		result, err = rec.Reconcile(ctx, docs, contentType, reconcile.Options{
			SingleEntry: req.EntryID != "",
			DryRun:      req.DryRun,
		})
	}

	s.record(ctx, runID, rec.Index(), contentType, started, result, err)

	if err != nil {
		s.logger.Error("Content type sync failed",
			zap.String("run_id", runID),
			zap.String("content_type", contentType),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("Content type synced",
		zap.String("run_id", runID),
		zap.String("content_type", contentType),
		zap.Int("created", len(result.Created)),
		zap.Int("updated", len(result.Updated)),
		zap.Int("deleted", len(result.Deleted)),
		zap.Duration("duration", time.Since(started)),
	)
	return nil
}

// archive writes the run documents when an archiver is configured. Archive
// failures are logged and do not block indexing.
func (s *Syncer) archive(ctx context.Context, runID, contentType string, docs []content.Document) {
	if s.archiver == nil {
		return
	}
	if err := s.archiver.Archive(ctx, runID, contentType, docs); err != nil {
		s.logger.Warn("Run archive failed",
			zap.String("run_id", runID),
			zap.String("content_type", contentType),
			zap.Error(err),
		)
	}
}

// observe invokes the observer behind a recover guard so a panicking
// observer cannot take down the indexing path.
func (s *Syncer) observe(obs Observer, docs []content.Document) {
	if obs == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("Observer panicked", zap.Any("panic", r))
		}
	}()
	obs(docs)
}

// record stores the run row when a recorder is configured. Recording
// failures are logged and do not affect the sync outcome.
func (s *Syncer) record(ctx context.Context, runID, indexName, contentType string, started time.Time, result *reconcile.Result, syncErr error) {
	if s.recorder == nil {
		return
	}

	run := &history.SyncRun{
		RunID:       runID,
		IndexName:   indexName,
		ContentType: contentType,
		DurationMS:  time.Since(started).Milliseconds(),
		StartedAt:   started,
	}
	if result != nil {
		run.Created = len(result.Created)
		run.Updated = len(result.Updated)
		run.Deleted = len(result.Deleted)
	}
	if syncErr != nil {
		run.Error = syncErr.Error()
	}

	if err := s.recorder.Record(ctx, run); err != nil {
		s.logger.Warn("Failed to record sync run",
			zap.String("run_id", runID),
			zap.String("content_type", contentType),
			zap.Error(err),
		)
	}
}
