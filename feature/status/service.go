package status

import (
	"context"
	"fmt"

	"content-indexer/core/history"

	"go.uber.org/zap"
)

// Service serves run history.
type Service struct {
	recorder history.Recorder
	logger   *zap.Logger
}

// NewService creates a new status service. The recorder may be nil when no
// history database is configured.
func NewService(recorder history.Recorder, logger *zap.Logger) *Service {
	return &Service{recorder: recorder, logger: logger}
}

// HasHistory reports whether a history store is configured.
func (s *Service) HasHistory() bool {
	return s.recorder != nil
}

// RecentRuns returns the most recent sync runs.
func (s *Service) RecentRuns(ctx context.Context, limit int) ([]history.SyncRun, error) {
	if s.recorder == nil {
		return nil, fmt.Errorf("sync history is not configured")
	}
	return s.recorder.Recent(ctx, limit)
}
