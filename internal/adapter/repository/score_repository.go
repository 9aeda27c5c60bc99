package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
)

// scoreRepository implements the ScoreRepository interface
type scoreRepository struct {
	db *gorm.DB
}

// NewScoreRepository creates a new score repository
func NewScoreRepository(db *gorm.DB) repositories.ScoreRepository {
	return &scoreRepository{db: db}
}

// Upsert creates or replaces the score for a meeting
func (r *scoreRepository) Upsert(ctx context.Context, score *entities.MeetingScore) error {
	if score == nil {
		return errors.New("score cannot be nil")
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "meeting_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"total_score", "grade", "category",
				"individual_scores", "recommendations", "scored_at",
			}),
		}).
		Create(score).Error
}

// GetByMeetingID retrieves the score for a meeting. Returns nil when not found.
func (r *scoreRepository) GetByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.MeetingScore, error) {
	var score entities.MeetingScore
	if err := r.db.WithContext(ctx).Where("meeting_id = ?", meetingID).First(&score).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &score, nil
}
