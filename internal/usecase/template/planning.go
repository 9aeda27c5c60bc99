package template

import (
	"regexp"
	"strings"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/usecase/analysis"
)

// planningVariant extracts objectives, milestones, estimates and risks
// from project planning meetings.
type planningVariant struct{}

func (planningVariant) Name() string        { return VariantPlanning }
func (planningVariant) DisplayName() string { return "Project Planning" }
func (planningVariant) Description() string { return "Project planning and estimation meeting" }

func (planningVariant) KeyIndicators() []string {
	return []string{"estimate", "story points", "sprint", "milestone", "deadline", "scope", "requirements"}
}

// labeledPattern pairs a clause matcher with the label its matches get
// in the key-point list.
type labeledPattern struct {
	re    *regexp.Regexp
	label string
}

var planningKeyPointPatterns = []labeledPattern{
	{regexp.MustCompile(`(?i)(?:objective|goal|target)\s+([^.!?]+)`), "Objective"},
	{regexp.MustCompile(`(?i)(?:milestone|deadline|due\s+date)\s+([^.!?]+)`), "Milestone"},
	{regexp.MustCompile(`(?i)(?:estimate|story\s+points|effort)\s+([^.!?]+)`), "Estimate"},
	{regexp.MustCompile(`(?i)(?:risk|issue|concern)\s+([^.!?]+)`), "Risk"},
}

var planningActionRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:assign|delegate|responsible\s+for)\s+([^.!?]+)`),
	regexp.MustCompile(`(?i)(?:need\s+to|must|should)\s+([^.!?]+)`),
	regexp.MustCompile(`(?i)(?:by|before|until)\s+([^.!?]+)`),
}

var (
	assignedOwnerRe  = regexp.MustCompile(`(?i:assign|delegate|responsible\s+for)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)
	committedOwnerRe = regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)\s+(?i:will|should|must)`)
)

// extractClauseOwner pulls an owner name out of an action clause. Used by
// the planning and review variants, which match clauses rather than
// name-anchored patterns.
func extractClauseOwner(clause string) string {
	if m := assignedOwnerRe.FindStringSubmatch(clause); m != nil {
		return m[1]
	}
	if m := committedOwnerRe.FindStringSubmatch(clause); m != nil {
		return m[1]
	}
	return ""
}

// classifyClausePriority is the planning/review urgency scale: explicit
// urgency terms rank high, emphasis terms medium, everything else low.
func classifyClausePriority(clause string) entities.Priority {
	lower := strings.ToLower(clause)
	for _, w := range []string{"urgent", "critical", "blocker", "immediate"} {
		if strings.Contains(lower, w) {
			return entities.PriorityHigh
		}
	}
	for _, w := range []string{"important", "key", "essential"} {
		if strings.Contains(lower, w) {
			return entities.PriorityMedium
		}
	}
	return entities.PriorityLow
}

// extractLabeledKeyPoints runs labeled clause patterns and caps the result
func extractLabeledKeyPoints(text string, patterns []labeledPattern, limit int) []entities.KeyPoint {
	keyPoints := make([]entities.KeyPoint, 0, limit)
	for _, p := range patterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			keyPoints = append(keyPoints, entities.KeyPoint{Text: p.label + ": " + strings.TrimSpace(m[1])})
		}
	}
	if len(keyPoints) > limit {
		keyPoints = keyPoints[:limit]
	}
	return keyPoints
}

// extractClauseActions runs clause patterns and builds action items with
// owner and priority taken from the clause itself.
func extractClauseActions(text string, patterns []*regexp.Regexp, limit int, context string, dates *analysis.DueDateResolver) []entities.ActionItem {
	actionItems := make([]entities.ActionItem, 0, limit)
	for _, re := range patterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			description := strings.TrimSpace(m[1])
			if description == "" {
				continue
			}
			actionItems = append(actionItems, entities.ActionItem{
				Description: description,
				Owner:       extractClauseOwner(description),
				DueDate:     dates.Resolve(description),
				Priority:    classifyClausePriority(description),
				Confidence:  entities.ConfidenceMedium,
				Type:        entities.ActionItemTypeGeneral,
				Context:     context,
			})
		}
	}
	if len(actionItems) > limit {
		actionItems = actionItems[:limit]
	}
	return actionItems
}

func (planningVariant) Analyze(text string, _ []entities.Segment, dates *analysis.DueDateResolver) *Result {
	return &Result{
		MeetingType: "Project Planning",
		KeyPoints:   extractLabeledKeyPoints(text, planningKeyPointPatterns, 8),
		ActionItems: extractClauseActions(text, planningActionRes, 15, "Planning meeting", dates),
	}
}
