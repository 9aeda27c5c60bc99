package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create creates a new meeting
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	if meeting == nil {
		return errors.New("meeting cannot be nil")
	}
	return r.db.WithContext(ctx).Create(meeting).Error
}

// GetByID retrieves a meeting by ID. Returns nil when not found.
func (r *meetingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&meeting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meeting, nil
}

// List retrieves meetings ordered by creation time, newest first
func (r *meetingRepository) List(ctx context.Context, limit, offset int) ([]entities.Meeting, error) {
	if limit == 0 {
		limit = 50
	}
	var meetings []entities.Meeting
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

// GetByTranscriptJobID retrieves the meeting waiting on an external
// transcription job. Returns nil when not found.
func (r *meetingRepository) GetByTranscriptJobID(ctx context.Context, jobID string) (*entities.Meeting, error) {
	var meeting entities.Meeting
	if err := r.db.WithContext(ctx).Where("transcript_job_id = ?", jobID).First(&meeting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meeting, nil
}

// SetTranscriptJobID records the external transcription job ID
func (r *meetingRepository) SetTranscriptJobID(ctx context.Context, id uuid.UUID, jobID string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ?", id).
		Update("transcript_job_id", jobID).Error
}

// UpdateStatus updates the processing status of a meeting
func (r *meetingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.MeetingStatus) error {
	return r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// UpdateAnalysisMetadata records the detected meeting type and participant count
func (r *meetingRepository) UpdateAnalysisMetadata(ctx context.Context, id uuid.UUID, meetingType string, participantsCount int) error {
	return r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"meeting_type":       meetingType,
			"participants_count": participantsCount,
		}).Error
}

// Delete removes a meeting
func (r *meetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Meeting{}, "id = ?", id).Error
}
