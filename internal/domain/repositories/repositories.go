package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// MeetingRepository defines persistence operations for meetings
type MeetingRepository interface {
	Create(ctx context.Context, meeting *entities.Meeting) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)
	GetByTranscriptJobID(ctx context.Context, jobID string) (*entities.Meeting, error)
	SetTranscriptJobID(ctx context.Context, id uuid.UUID, jobID string) error
	List(ctx context.Context, limit, offset int) ([]entities.Meeting, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.MeetingStatus) error
	UpdateAnalysisMetadata(ctx context.Context, id uuid.UUID, meetingType string, participantsCount int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TranscriptRepository defines persistence operations for transcripts
type TranscriptRepository interface {
	Create(ctx context.Context, transcript *entities.Transcript) error
	GetByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.Transcript, error)
}

// NoteRepository defines persistence operations for analysis notes
type NoteRepository interface {
	Upsert(ctx context.Context, note *entities.Note) error
	GetByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.Note, error)
}

// ActionItemRepository defines persistence operations for action items
type ActionItemRepository interface {
	CreateBatch(ctx context.Context, items []entities.ActionItemRecord) error
	ListByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]entities.ActionItemRecord, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	DeleteByMeetingID(ctx context.Context, meetingID uuid.UUID) error
}

// ScoreRepository defines persistence operations for meeting scores
type ScoreRepository interface {
	Upsert(ctx context.Context, score *entities.MeetingScore) error
	GetByMeetingID(ctx context.Context, meetingID uuid.UUID) (*entities.MeetingScore, error)
}

// AnalysisJobRepository defines persistence operations for analysis jobs
type AnalysisJobRepository interface {
	Create(ctx context.Context, job *entities.AnalysisJob) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.AnalysisJob, error)
	ListByStatus(ctx context.Context, status entities.AnalysisJobStatus, limit int) ([]entities.AnalysisJob, error)
	Claim(ctx context.Context, id uuid.UUID, from, to entities.AnalysisJobStatus) (bool, error)
	MarkCompleted(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error
	ResetStale(ctx context.Context, olderThanMinutes int) (int64, error)
}
