package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
)

// analysisJobRepository implements the AnalysisJobRepository interface
type analysisJobRepository struct {
	db *gorm.DB
}

// NewAnalysisJobRepository creates a new analysis job repository
func NewAnalysisJobRepository(db *gorm.DB) repositories.AnalysisJobRepository {
	return &analysisJobRepository{db: db}
}

// Create creates a new analysis job
func (r *analysisJobRepository) Create(ctx context.Context, job *entities.AnalysisJob) error {
	if job == nil {
		return errors.New("job cannot be nil")
	}
	return r.db.WithContext(ctx).Create(job).Error
}

// GetByID retrieves an analysis job by ID. Returns nil when not found.
func (r *analysisJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.AnalysisJob, error) {
	var job entities.AnalysisJob
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

// ListByStatus retrieves jobs with a specific status, oldest first
func (r *analysisJobRepository) ListByStatus(ctx context.Context, status entities.AnalysisJobStatus, limit int) ([]entities.AnalysisJob, error) {
	if limit == 0 {
		limit = 10
	}
	var jobs []entities.AnalysisJob
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Limit(limit).
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Claim atomically transitions a job from one status to another. The
// WHERE guard on the current status means only one worker wins when
// several see the same pending job; the losers get false.
func (r *analysisJobRepository) Claim(ctx context.Context, id uuid.UUID, from, to entities.AnalysisJobStatus) (bool, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&entities.AnalysisJob{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"started_at": now,
			"updated_at": now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// MarkCompleted marks a job as completed
func (r *analysisJobRepository) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entities.AnalysisJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       entities.AnalysisJobStatusCompleted,
			"completed_at": now,
			"updated_at":   now,
		}).Error
}

// MarkFailed marks a job as failed with the error message and bumps the
// retry count
func (r *analysisJobRepository) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	return r.db.WithContext(ctx).
		Model(&entities.AnalysisJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      entities.AnalysisJobStatusFailed,
			"retry_count": gorm.Expr("retry_count + 1"),
			"last_error":  errMsg,
			"updated_at":  time.Now(),
		}).Error
}

// ResetStale resets jobs stuck in analyzing status back to pending.
// Covers workers that died mid-job.
func (r *analysisJobRepository) ResetStale(ctx context.Context, olderThanMinutes int) (int64, error) {
	cutoff := time.Now().Add(-time.Duration(olderThanMinutes) * time.Minute)
	result := r.db.WithContext(ctx).
		Model(&entities.AnalysisJob{}).
		Where("status = ? AND updated_at < ?", entities.AnalysisJobStatusAnalyzing, cutoff).
		Updates(map[string]interface{}{
			"status":     entities.AnalysisJobStatusPending,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to reset stale jobs: %w", result.Error)
	}
	return result.RowsAffected, nil
}
