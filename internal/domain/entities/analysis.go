package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Confidence is a qualitative tag for how strong the textual evidence
// was for an extracted record. It is not a probability.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
)

// DecisionType classifies how a decision was phrased
type DecisionType string

const (
	DecisionTypeFormal         DecisionType = "formal_decision"
	DecisionTypeRecommendation DecisionType = "recommendation"
)

// ActionItemType classifies whether an action item has an attributed owner
type ActionItemType string

const (
	ActionItemTypeAssigned ActionItemType = "assigned_task"
	ActionItemTypeGeneral  ActionItemType = "general_task"
)

// Priority levels for action items
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// KeyPoint is a single key discussion point derived from one normalized sentence
type KeyPoint struct {
	Text string `json:"text"`
}

// Decision represents a decision made during the meeting
type Decision struct {
	Text       string       `json:"text"`
	Confidence Confidence   `json:"confidence"`
	Type       DecisionType `json:"type"`
}

// ActionItem is a discrete task extracted from meeting text. Owner and
// DueDate are optional; an empty owner means the task is unassigned.
// DueDate, when present, is an ISO-8601 date (YYYY-MM-DD).
type ActionItem struct {
	Description string         `json:"description"`
	Owner       string         `json:"owner,omitempty"`
	DueDate     string         `json:"due_date,omitempty"`
	Priority    Priority       `json:"priority"`
	Confidence  Confidence     `json:"confidence"`
	Type        ActionItemType `json:"type"`
	Context     string         `json:"context,omitempty"`
}

// Participant is a person detected in the transcript by name mentions
type Participant struct {
	Name         string `json:"name"`
	MentionCount int    `json:"mention_count"`
	Role         string `json:"role"`
}

// AnalysisResult is the aggregate output of one analysis run. The engine
// is stateless and returns a fresh value each call; the caller owns it.
type AnalysisResult struct {
	Summary           string        `json:"summary"`
	KeyPoints         []KeyPoint    `json:"key_points"`
	Decisions         []Decision    `json:"decisions"`
	ActionItems       []ActionItem  `json:"action_items"`
	Participants      []Participant `json:"participants"`
	Markdown          string        `json:"markdown"`
	MeetingType       string        `json:"meeting_type,omitempty"`
	AnalysisTimestamp time.Time     `json:"analysis_timestamp"`
}

// Note is the persisted form of an AnalysisResult
type Note struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID    uuid.UUID      `json:"meeting_id" gorm:"type:uuid;not null;uniqueIndex"`
	Summary      string         `json:"summary" gorm:"type:text"`
	KeyPoints    datatypes.JSON `json:"key_points,omitempty" gorm:"type:jsonb"`
	Decisions    datatypes.JSON `json:"decisions,omitempty" gorm:"type:jsonb"`
	Participants datatypes.JSON `json:"participants,omitempty" gorm:"type:jsonb"`
	Markdown     string         `json:"markdown,omitempty" gorm:"type:text"`
	MeetingType  string         `json:"meeting_type,omitempty" gorm:"type:varchar(50)"`
	AnalyzedAt   time.Time      `json:"analyzed_at"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Note) TableName() string {
	return "notes"
}

// ActionItemStatus constants. Status is owned by storage and downstream
// consumers; the extraction core never sets anything but pending.
const (
	ActionItemStatusPending    = "pending"
	ActionItemStatusInProgress = "in_progress"
	ActionItemStatusCompleted  = "completed"
	ActionItemStatusCancelled  = "cancelled"
)

// ActionItemRecord is the persisted form of an ActionItem. It gains a
// numeric identity and a mutable status once stored.
type ActionItemRecord struct {
	ID          int64      `json:"id" gorm:"primary_key;autoIncrement"`
	MeetingID   uuid.UUID  `json:"meeting_id" gorm:"type:uuid;not null;index"`
	NoteID      *uuid.UUID `json:"note_id,omitempty" gorm:"type:uuid;index"`
	Description string     `json:"description" gorm:"type:text;not null"`
	Owner       string     `json:"owner,omitempty" gorm:"type:varchar(255)"`
	DueDate     string     `json:"due_date,omitempty" gorm:"type:varchar(10)"`
	Priority    Priority   `json:"priority" gorm:"type:varchar(20);default:'medium'"`
	Confidence  Confidence `json:"confidence,omitempty" gorm:"type:varchar(20)"`
	Type        string     `json:"type,omitempty" gorm:"type:varchar(50)"`
	Status      string     `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	Context     string     `json:"context,omitempty" gorm:"type:text"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (ActionItemRecord) TableName() string {
	return "action_items"
}

// NewActionItemRecord creates a persisted action item from an extracted one
func NewActionItemRecord(meetingID uuid.UUID, noteID *uuid.UUID, item ActionItem) *ActionItemRecord {
	return &ActionItemRecord{
		MeetingID:   meetingID,
		NoteID:      noteID,
		Description: item.Description,
		Owner:       item.Owner,
		DueDate:     item.DueDate,
		Priority:    item.Priority,
		Confidence:  item.Confidence,
		Type:        string(item.Type),
		Status:      ActionItemStatusPending,
		Context:     item.Context,
	}
}
