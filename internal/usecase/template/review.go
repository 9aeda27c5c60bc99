package template

import (
	"regexp"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/usecase/analysis"
)

// reviewVariant extracts issues, feedback and fix commitments from code
// and design review meetings.
type reviewVariant struct{}

func (reviewVariant) Name() string        { return VariantReview }
func (reviewVariant) DisplayName() string { return "Code/Design Review" }
func (reviewVariant) Description() string { return "Technical review and feedback meeting" }

func (reviewVariant) KeyIndicators() []string {
	return []string{"review", "feedback", "comment", "issue", "bug", "improvement", "suggestion"}
}

var reviewKeyPointPatterns = []labeledPattern{
	{regexp.MustCompile(`(?i)(?:issue|problem|bug)\s+([^.!?]+)`), "Issue"},
	{regexp.MustCompile(`(?i)(?:improvement|enhancement|optimization)\s+([^.!?]+)`), "Improvement"},
	{regexp.MustCompile(`(?i)(?:feedback|comment|suggestion)\s+([^.!?]+)`), "Feedback"},
	{regexp.MustCompile(`(?i)(?:approve|reject|conditional)\s+([^.!?]+)`), "Approval"},
}

var reviewActionRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:fix|update|change|modify)\s+([^.!?]+)`),
	regexp.MustCompile(`(?i)(?:need\s+to|should|must)\s+([^.!?]+)`),
	regexp.MustCompile(`(?i)(?:address|resolve|handle)\s+([^.!?]+)`),
}

func (reviewVariant) Analyze(text string, _ []entities.Segment, dates *analysis.DueDateResolver) *Result {
	return &Result{
		MeetingType: "Code/Design Review",
		KeyPoints:   extractLabeledKeyPoints(text, reviewKeyPointPatterns, 6),
		ActionItems: extractClauseActions(text, reviewActionRes, 12, "Review feedback", dates),
	}
}
