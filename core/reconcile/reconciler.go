package reconcile

import (
	"context"
	"errors"
	"sync"

	"content-indexer/core/content"

	"go.uber.org/zap"
)

// Reconcile diffs the flattened documents of one content type against the
// shared index snapshot and applies the difference.
//
// The three batch operations run concurrently; each one's failure is logged
// and joined into the returned error without stopping its siblings. The
// Result carries whatever identifiers the surviving batches produced, so a
// partially failed pass still reports what it wrote.
func (r *Reconciler) Reconcile(ctx context.Context, docs []content.Document, contentType string, opts Options) (*Result, error) {
	snapshot, err := r.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	diff := computeDiff(snapshot, docs, contentType, opts.SingleEntry)
	result := &Result{Planned: diff}

	if opts.DryRun {
		r.logger.Info("Dry run, skipping index writes",
			zap.String("index", r.index),
			zap.String("content_type", contentType),
			zap.Int("would_create", len(diff.Created)),
			zap.Int("would_update", len(diff.Updated)),
			zap.Int("would_delete", len(diff.Deleted)),
		)
		return result, nil
	}

	var (
		createErr error
		updateErr error
		deleteErr error
		wg        sync.WaitGroup
	)

	// Apply the three batches concurrently and independently
	wg.Add(3)

	go func() {
		defer wg.Done()
		result.Created, createErr = r.batchCreate(ctx, diff.Created)
	}()

	go func() {
		defer wg.Done()
		result.Updated, updateErr = r.batchUpsert(ctx, diff.Updated)
	}()

	go func() {
		defer wg.Done()
		result.Deleted, deleteErr = r.batchDelete(ctx, diff.Deleted)
	}()

	wg.Wait()

	if createErr != nil {
		r.logger.Error("Batch create failed",
			zap.String("index", r.index),
			zap.String("content_type", contentType),
			zap.Error(createErr),
		)
	}
	if updateErr != nil {
		r.logger.Error("Batch upsert failed",
			zap.String("index", r.index),
			zap.String("content_type", contentType),
			zap.Error(updateErr),
		)
	}
	if deleteErr != nil {
		r.logger.Error("Batch delete failed",
			zap.String("index", r.index),
			zap.String("content_type", contentType),
			zap.Error(deleteErr),
		)
	}

	return result, errors.Join(createErr, updateErr, deleteErr)
}

// batchCreate writes documents without an index-side identifier. An empty
// batch is a no-op, never a network call.
func (r *Reconciler) batchCreate(ctx context.Context, docs []content.Document) ([]string, error) {
	if len(docs) == 0 {
		return []string{}, nil
	}
	return r.client.BatchCreate(ctx, r.index, docs)
}

// batchUpsert writes documents by their matched objectID. An empty batch is
// a no-op, never a network call.
func (r *Reconciler) batchUpsert(ctx context.Context, docs []content.Document) ([]string, error) {
	if len(docs) == 0 {
		return []string{}, nil
	}
	return r.client.BatchUpsert(ctx, r.index, docs)
}

// batchDelete removes index entries by objectID. An empty batch is a no-op,
// never a network call.
func (r *Reconciler) batchDelete(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}
	return r.client.BatchDelete(ctx, r.index, ids)
}
