package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
)

// actionItemRepository implements the ActionItemRepository interface
type actionItemRepository struct {
	db *gorm.DB
}

// NewActionItemRepository creates a new action item repository
func NewActionItemRepository(db *gorm.DB) repositories.ActionItemRepository {
	return &actionItemRepository{db: db}
}

// CreateBatch inserts extracted action items in one statement
func (r *actionItemRepository) CreateBatch(ctx context.Context, items []entities.ActionItemRecord) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

// ListByMeetingID retrieves all action items for a meeting
func (r *actionItemRepository) ListByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]entities.ActionItemRecord, error) {
	var items []entities.ActionItemRecord
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatus updates the status of a single action item
func (r *actionItemRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	return r.db.WithContext(ctx).
		Model(&entities.ActionItemRecord{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// DeleteByMeetingID removes all action items for a meeting. Called before
// re-analysis so the stored items always mirror the latest run.
func (r *actionItemRepository) DeleteByMeetingID(ctx context.Context, meetingID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Delete(&entities.ActionItemRecord{}).Error
}
