package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Score dimension names. Keys of ScoreResult.IndividualScores.
const (
	ScoreDurationEfficiency    = "duration_efficiency"
	ScoreActionItemQuality     = "action_item_quality"
	ScoreContentStructure      = "content_structure"
	ScoreFollowUpPlanning      = "follow_up_planning"
	ScoreParticipantEngagement = "participant_engagement"
)

// ScoreResult is the output of the meeting effectiveness scorer.
// Derived purely from its inputs and never mutated after creation.
type ScoreResult struct {
	TotalScore       float64            `json:"total_score"`
	Grade            string             `json:"grade"`
	Category         string             `json:"category"`
	IndividualScores map[string]float64 `json:"individual_scores"`
	Recommendations  []string           `json:"recommendations"`
	Timestamp        time.Time          `json:"timestamp"`
}

// MeetingScore is the persisted form of a ScoreResult
type MeetingScore struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID        uuid.UUID      `json:"meeting_id" gorm:"type:uuid;not null;uniqueIndex"`
	TotalScore       float64        `json:"total_score"`
	Grade            string         `json:"grade" gorm:"type:varchar(2)"`
	Category         string         `json:"category" gorm:"type:varchar(50)"`
	IndividualScores datatypes.JSON `json:"individual_scores,omitempty" gorm:"type:jsonb"`
	Recommendations  datatypes.JSON `json:"recommendations,omitempty" gorm:"type:jsonb"`
	ScoredAt         time.Time      `json:"scored_at"`
	CreatedAt        time.Time      `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (MeetingScore) TableName() string {
	return "meeting_scores"
}
