package entities

import (
	"time"

	"github.com/google/uuid"
)

// Segment is a time-bounded slice of the transcript, produced by the
// transcription collaborator. Segments are time-ordered but may have gaps
// or overlaps after diarization merge.
type Segment struct {
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Speaker    string  `json:"speaker,omitempty"`
}

// Transcript is the stored transcript model
type Transcript struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID       uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Text            string    `json:"text" gorm:"type:text"`
	Language        string    `json:"language,omitempty" gorm:"type:varchar(20)"`
	Segments        []Segment `json:"segments,omitempty" gorm:"type:jsonb;serializer:json"`
	ConfidenceScore float64   `json:"confidence_score,omitempty"`
	WordCount       int       `json:"word_count,omitempty"`
	DurationSeconds float64   `json:"duration_seconds,omitempty"`
	ModelUsed       string    `json:"model_used,omitempty" gorm:"type:varchar(100)"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Transcript) TableName() string {
	return "transcripts"
}

// NewTranscript creates a new transcript
func NewTranscript(meetingID uuid.UUID) *Transcript {
	return &Transcript{
		ID:        uuid.New(),
		MeetingID: meetingID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}
