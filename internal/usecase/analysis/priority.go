package analysis

import (
	"strings"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

var (
	highPriorityTerms = []string{
		"urgent", "asap", "immediately", "critical", "emergency",
		"high priority", "rush", "deadline", "due soon",
	}

	lowPriorityTerms = []string{
		"low priority", "when possible", "no rush", "take your time",
		"when convenient",
	}
)

// ClassifyPriority assigns a priority from urgency terms in the text.
// High-urgency terms take precedence when both vocabularies match.
func ClassifyPriority(text string) entities.Priority {
	lower := strings.ToLower(text)

	if containsAny(lower, highPriorityTerms) {
		return entities.PriorityHigh
	}
	if containsAny(lower, lowPriorityTerms) {
		return entities.PriorityLow
	}
	return entities.PriorityMedium
}
