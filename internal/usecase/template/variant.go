package template

import (
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/usecase/analysis"
)

// Variant names form a closed set; there is no open-ended registration.
const (
	VariantStandup  = "standup"
	VariantPlanning = "planning"
	VariantReview   = "review"
	VariantGeneric  = "generic"
)

// Result is the partial analysis a template variant produces. Nil slices
// mean the variant does not override that field; the caller merges a
// Result over the generic engine output, later fields winning.
type Result struct {
	MeetingType string
	KeyPoints   []entities.KeyPoint
	ActionItems []entities.ActionItem
	Decisions   []entities.Decision
}

// Variant is a meeting-type-specific extraction strategy. Each variant
// owns a fixed keyword-indicator set used by auto-detection and its own
// regex families tuned to its domain.
type Variant interface {
	Name() string
	DisplayName() string
	Description() string
	KeyIndicators() []string
	Analyze(text string, segments []entities.Segment, dates *analysis.DueDateResolver) *Result
}

// genericVariant is the no-op template: it matches nothing during
// auto-detection and overrides nothing during analysis.
type genericVariant struct{}

func (genericVariant) Name() string            { return VariantGeneric }
func (genericVariant) DisplayName() string     { return "Generic Meeting" }
func (genericVariant) Description() string     { return "Standard meeting template" }
func (genericVariant) KeyIndicators() []string { return nil }

func (genericVariant) Analyze(_ string, _ []entities.Segment, _ *analysis.DueDateResolver) *Result {
	return &Result{MeetingType: "Generic Meeting"}
}
