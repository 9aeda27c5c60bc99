package entities

import (
	"time"

	"github.com/google/uuid"
)

// MeetingStatus represents the processing status of a meeting
type MeetingStatus string

const (
	MeetingStatusProcessing MeetingStatus = "processing"
	MeetingStatusCompleted  MeetingStatus = "completed"
	MeetingStatusFailed     MeetingStatus = "failed"
)

// Meeting represents one recorded meeting and its processing metadata
type Meeting struct {
	ID                uuid.UUID     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title             string        `json:"title" gorm:"type:varchar(500);not null"`
	MeetingDate       *time.Time    `json:"meeting_date,omitempty"`
	AudioFilePath     string        `json:"audio_file_path,omitempty" gorm:"type:text"`
	TranscriptJobID   string        `json:"transcript_job_id,omitempty" gorm:"type:varchar(100);index"`
	DurationSeconds   float64       `json:"duration_seconds,omitempty"`
	Language          string        `json:"language" gorm:"type:varchar(20);default:'en'"`
	ModelUsed         string        `json:"model_used,omitempty" gorm:"type:varchar(100)"`
	Status            MeetingStatus `json:"status" gorm:"type:varchar(20);default:'processing';index"`
	MeetingType       string        `json:"meeting_type,omitempty" gorm:"type:varchar(50)"`
	ParticipantsCount int           `json:"participants_count" gorm:"default:0"`
	CreatedAt         time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a new meeting record
func NewMeeting(title string) *Meeting {
	return &Meeting{
		ID:       uuid.New(),
		Title:    title,
		Language: "en",
		Status:   MeetingStatusProcessing,
	}
}
