package template

import (
	"regexp"
	"strings"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/usecase/analysis"
)

// standupVariant extracts yesterday/today/blocker status updates from
// daily standup meetings.
type standupVariant struct{}

func (standupVariant) Name() string        { return VariantStandup }
func (standupVariant) DisplayName() string { return "Daily Standup" }
func (standupVariant) Description() string { return "Daily team status update meeting" }

func (standupVariant) KeyIndicators() []string {
	return []string{"yesterday", "today", "blockers", "impediments", "sprint", "story points"}
}

var (
	standupYesterdayRe = regexp.MustCompile(`(?i)yesterday(?:\s+i|\s+we)?\s+([^.!?]+)`)
	standupTodayRe     = regexp.MustCompile(`(?i)today(?:\s+i|\s+we)?\s+([^.!?]+)`)
	standupBlockerRe   = regexp.MustCompile(`(?i)(?:blocked|blocker|impediment|stuck|need\s+help)\s+([^.!?]+)`)

	standupCommitmentRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:i\s+will|we\s+will|going\s+to|plan\s+to)\s+([^.!?]+)`),
		regexp.MustCompile(`(?i)(?:need\s+to|have\s+to|must)\s+([^.!?]+)`),
		regexp.MustCompile(`(?i)(?:tomorrow|next|following)\s+([^.!?]+)`),
	}
)

func (standupVariant) Analyze(text string, _ []entities.Segment, dates *analysis.DueDateResolver) *Result {
	keyPoints := make([]entities.KeyPoint, 0, 5)
	appendMatches := func(re *regexp.Regexp, label string) {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			keyPoints = append(keyPoints, entities.KeyPoint{Text: label + ": " + strings.TrimSpace(m[1])})
		}
	}
	appendMatches(standupYesterdayRe, "Yesterday")
	appendMatches(standupTodayRe, "Today")
	appendMatches(standupBlockerRe, "Blocker")
	if len(keyPoints) > 5 {
		keyPoints = keyPoints[:5]
	}

	actionItems := make([]entities.ActionItem, 0, 10)
	for _, re := range standupCommitmentRes {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			description := strings.TrimSpace(m[1])
			if description == "" {
				continue
			}
			actionItems = append(actionItems, entities.ActionItem{
				Description: description,
				Owner:       "Team Member",
				DueDate:     dates.Resolve(description),
				Priority:    entities.PriorityMedium,
				Confidence:  entities.ConfidenceMedium,
				Type:        entities.ActionItemTypeGeneral,
				Context:     "Standup commitment",
			})
		}
	}
	if len(actionItems) > 10 {
		actionItems = actionItems[:10]
	}

	return &Result{
		MeetingType: "Daily Standup",
		KeyPoints:   keyPoints,
		ActionItems: actionItems,
	}
}
