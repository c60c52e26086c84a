package reconcile

import (
	"context"
	"fmt"
	"sync"

	"content-indexer/core/content"
	"content-indexer/core/index"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Reconciler reconciles flattened documents against one index.
type Reconciler struct {
	index  string
	client index.Client
	logger *zap.Logger

	mu       sync.RWMutex
	loaded   bool
	snapshot []content.Document
	scanErr  error
	sf       singleflight.Group
}

// New creates a reconciler bound to the given index.
func New(client index.Client, indexName string, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{
		index:  indexName,
		client: client,
		logger: logger,
	}
}

// Index returns the index name this reconciler is bound to.
func (r *Reconciler) Index() string {
	return r.index
}

// Snapshot returns the full-index snapshot, scanning the index at most once
// per reconciler. Concurrent first callers share one in-flight scan via
// singleflight; the outcome is cached either way, so a failed scan fails
// every content type reconciled through this instance rather than being
// silently retried.
func (r *Reconciler) Snapshot(ctx context.Context) ([]content.Document, error) {
	// Fast path: snapshot (or its failure) already cached
	r.mu.RLock()
	if r.loaded {
		defer r.mu.RUnlock()
		return r.snapshot, r.scanErr
	}
	r.mu.RUnlock()

	_, _, _ = r.sf.Do("snapshot", func() (any, error) {
		// Double-check after winning the singleflight slot
		r.mu.RLock()
		loaded := r.loaded
		r.mu.RUnlock()
		if loaded {
			return nil, nil
		}

		docs, err := r.client.FullScan(ctx, r.index)
		if err != nil {
			err = fmt.Errorf("index snapshot of %s failed: %w", r.index, err)
		} else {
			r.logger.Debug("Index snapshot loaded",
				zap.String("index", r.index),
				zap.Int("documents", len(docs)),
			)
		}

		r.mu.Lock()
		r.snapshot = docs
		r.scanErr = err
		r.loaded = true
		r.mu.Unlock()

		return nil, nil
	})

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot, r.scanErr
}
