package meeting

import (
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// MeetingResponse represents a meeting in API responses
type MeetingResponse struct {
	ID                uuid.UUID  `json:"id"`
	Title             string     `json:"title"`
	MeetingDate       *time.Time `json:"meeting_date,omitempty"`
	DurationSeconds   float64    `json:"duration_seconds,omitempty"`
	Language          string     `json:"language"`
	Status            string     `json:"status"`
	MeetingType       string     `json:"meeting_type,omitempty"`
	ParticipantsCount int        `json:"participants_count"`
	CreatedAt         time.Time  `json:"created_at"`
}

// FromMeeting maps a meeting entity to its response shape
func FromMeeting(m *entities.Meeting) MeetingResponse {
	return MeetingResponse{
		ID:                m.ID,
		Title:             m.Title,
		MeetingDate:       m.MeetingDate,
		DurationSeconds:   m.DurationSeconds,
		Language:          m.Language,
		Status:            string(m.Status),
		MeetingType:       m.MeetingType,
		ParticipantsCount: m.ParticipantsCount,
		CreatedAt:         m.CreatedAt,
	}
}

// AnalysisJobResponse represents a queued analysis job
type AnalysisJobResponse struct {
	JobID     uuid.UUID `json:"job_id"`
	MeetingID uuid.UUID `json:"meeting_id"`
	Status    string    `json:"status"`
	Template  string    `json:"template,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NotesResponse represents analyzed meeting notes
type NotesResponse struct {
	MeetingID    uuid.UUID              `json:"meeting_id"`
	Summary      string                 `json:"summary"`
	KeyPoints    []entities.KeyPoint    `json:"key_points"`
	Decisions    []entities.Decision    `json:"decisions"`
	Participants []entities.Participant `json:"participants"`
	MeetingType  string                 `json:"meeting_type,omitempty"`
	Markdown     string                 `json:"markdown,omitempty"`
	AnalyzedAt   time.Time              `json:"analyzed_at"`
}

// ScoreResponse represents a meeting effectiveness score
type ScoreResponse struct {
	MeetingID        uuid.UUID          `json:"meeting_id"`
	TotalScore       float64            `json:"total_score"`
	Grade            string             `json:"grade"`
	Category         string             `json:"category"`
	IndividualScores map[string]float64 `json:"individual_scores"`
	Recommendations  []string           `json:"recommendations"`
	ScoredAt         time.Time          `json:"scored_at"`
}
