package webhook

import (
	"context"

	"content-indexer/core/syncer"

	"go.uber.org/zap"
)

// Syncer is the slice of the sync orchestrator the webhook needs.
// *syncer.Syncer satisfies it.
type Syncer interface {
	Sync(ctx context.Context, req syncer.Request) error
}

// Service runs single-entry syncs for incoming webhooks.
type Service struct {
	syncer Syncer
	logger *zap.Logger
}

// NewService creates a new webhook service.
func NewService(s Syncer, logger *zap.Logger) *Service {
	return &Service{syncer: s, logger: logger}
}

// SyncEntry syncs one entry of one content type into the index.
func (s *Service) SyncEntry(ctx context.Context, contentType, entryID, indexName string) error {
	return s.syncer.Sync(ctx, syncer.Request{
		ContentType: contentType,
		EntryID:     entryID,
		IndexName:   indexName,
	})
}
