package meeting

import (
	"time"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// CreateMeetingRequest represents the request to register a meeting.
// Either transcript_text or audio_url must be provided: raw text is
// stored directly, an audio URL is submitted for transcription.
type CreateMeetingRequest struct {
	Title           string             `json:"title" validate:"required,min=1,max=500"`
	MeetingDate     *time.Time         `json:"meeting_date,omitempty"`
	DurationSeconds float64            `json:"duration_seconds,omitempty" validate:"omitempty,min=0"`
	Language        string             `json:"language,omitempty" validate:"omitempty,max=20"`
	TranscriptText  string             `json:"transcript_text,omitempty"`
	Segments        []entities.Segment `json:"segments,omitempty"`
	AudioURL        string             `json:"audio_url,omitempty" validate:"omitempty,url"`
}

// ListMeetingsRequest represents query parameters for listing meetings
type ListMeetingsRequest struct {
	Page     int `query:"page" validate:"omitempty,min=1"`
	PageSize int `query:"page_size" validate:"omitempty,min=1,max=100"`
}

// AnalyzeMeetingRequest represents the request to analyze a meeting.
// Template "" or "auto" means auto-detect; Sync runs the pipeline
// inline instead of queueing a job.
type AnalyzeMeetingRequest struct {
	Template string `json:"template,omitempty" validate:"omitempty,oneof=standup planning review generic auto"`
	Sync     bool   `json:"sync,omitempty"`
}

// UpdateActionItemRequest represents the request to change an action
// item's status
type UpdateActionItemRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed cancelled"`
}
