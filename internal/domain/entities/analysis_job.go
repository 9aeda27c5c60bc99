package entities

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisJobStatus represents the status of an analysis job
type AnalysisJobStatus string

const (
	AnalysisJobStatusPending   AnalysisJobStatus = "pending"   // Waiting to be picked up by a worker
	AnalysisJobStatusAnalyzing AnalysisJobStatus = "analyzing" // Claimed by a worker, analysis running
	AnalysisJobStatusCompleted AnalysisJobStatus = "completed" // Notes, action items and score persisted
	AnalysisJobStatusFailed    AnalysisJobStatus = "failed"    // Analysis failed after retries
)

// AnalysisJob represents a queued analysis run for one meeting transcript
type AnalysisJob struct {
	ID           uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID    uuid.UUID         `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Status       AnalysisJobStatus `json:"status" gorm:"type:varchar(50);not null;index;default:'pending'"`
	TemplateName string            `json:"template_name,omitempty" gorm:"type:varchar(50)"` // empty = auto-detect
	RetryCount   int               `json:"retry_count" gorm:"default:0"`
	MaxRetries   int               `json:"max_retries" gorm:"default:3"`
	LastError    *string           `json:"last_error,omitempty" gorm:"type:text"`
	StartedAt    *time.Time        `json:"started_at,omitempty"`
	CompletedAt  *time.Time        `json:"completed_at,omitempty"`
	CreatedAt    time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (AnalysisJob) TableName() string {
	return "analysis_jobs"
}

// NewAnalysisJob creates a new pending analysis job
func NewAnalysisJob(meetingID uuid.UUID, templateName string) *AnalysisJob {
	return &AnalysisJob{
		ID:           uuid.New(),
		MeetingID:    meetingID,
		Status:       AnalysisJobStatusPending,
		TemplateName: templateName,
		MaxRetries:   3,
	}
}
