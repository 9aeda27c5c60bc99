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

// noteRepository implements the NoteRepository interface
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *gorm.DB) repositories.NoteRepository {
	return &noteRepository{db: db}
}

// Upsert creates or replaces the note for a meeting. Re-running analysis
// overwrites the previous result; a meeting has at most one note.
func (r *noteRepository) Upsert(ctx context.Context, note *entities.Note) error {
	if note == nil {
		return errors.New("note cannot be nil")
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "meeting_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"summary", "key_points", "decisions", "participants",
				"markdown", "meeting_type", "analyzed_at", "updated_at",
			}),
		}).
		Create(note).Error
}

// GetByMeetingID retrieves the note for a meeting. Returns nil when not found.
func (r *noteRepository) GetByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.Note, error) {
	var note entities.Note
	if err := r.db.WithContext(ctx).Where("meeting_id = ?", meetingID).First(&note).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &note, nil
}
