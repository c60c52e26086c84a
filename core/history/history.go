package history

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// SyncRun is one content type's outcome within one sync run.
type SyncRun struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	RunID       string    `gorm:"size:36;index" json:"run_id"`
	IndexName   string    `gorm:"size:255" json:"index_name"`
	ContentType string    `gorm:"size:255" json:"content_type"`
	Created     int       `json:"created"`
	Updated     int       `json:"updated"`
	Deleted     int       `json:"deleted"`
	DurationMS  int64     `json:"duration_ms"`
	Error       string    `gorm:"type:text" json:"error,omitempty"`
	StartedAt   time.Time `json:"started_at"`
}

// TableName sets the table name for GORM.
func (SyncRun) TableName() string {
	return "sync_runs"
}

// Recorder persists and lists sync runs.
type Recorder interface {
	// Record stores one run row.
	Record(ctx context.Context, run *SyncRun) error
	// Recent returns the most recent runs, newest first.
	Recent(ctx context.Context, limit int) ([]SyncRun, error)
}

// DBRecorder implements Recorder on a GORM connection.
type DBRecorder struct {
	db *gorm.DB
}

// NewRecorder creates a recorder on the given connection.
func NewRecorder(db *gorm.DB) *DBRecorder {
	return &DBRecorder{db: db}
}

// Migrate creates or updates the sync_runs table.
func (r *DBRecorder) Migrate() error {
	if err := r.db.AutoMigrate(&SyncRun{}); err != nil {
		return fmt.Errorf("failed to migrate sync_runs: %w", err)
	}
	return nil
}

// Record stores one run row.
func (r *DBRecorder) Record(ctx context.Context, run *SyncRun) error {
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to record sync run: %w", err)
	}
	return nil
}

// Recent returns the most recent runs, newest first.
func (r *DBRecorder) Recent(ctx context.Context, limit int) ([]SyncRun, error) {
	if limit <= 0 {
		limit = 50
	}

	var runs []SyncRun
	err := r.db.WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sync runs: %w", err)
	}
	return runs, nil
}
