package analysis

import (
	"regexp"
	"strings"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

const (
	maxDecisions      = 8
	minDecisionLength = 15
)

// decisionRule pairs a matcher with the confidence and type of the
// decisions it produces. Rules run across the whole text, not per sentence.
type decisionRule struct {
	re         *regexp.Regexp
	confidence entities.Confidence
	dtype      entities.DecisionType
}

// Strong rules catch explicit decision and agreement verbs; medium rules
// catch obligation modals and recommendations. Strong rules run first so
// duplicates keep the higher-confidence version.
var decisionRules = []decisionRule{
	{regexp.MustCompile(`(?i)(?:we\s+)?(?:decided|agreed|concluded|determined|resolved|voted)\s+(?:that\s+)?(.+?)[.!?]`), entities.ConfidenceHigh, entities.DecisionTypeFormal},
	{regexp.MustCompile(`(?i)(?:the\s+)?(?:decision|conclusion|agreement|resolution)\s+(?:is|was)\s+(?:that\s+)?(.+?)[.!?]`), entities.ConfidenceHigh, entities.DecisionTypeFormal},
	{regexp.MustCompile(`(?i)(?:it\s+)?(?:was\s+)?(?:decided|agreed|concluded|determined)\s+(?:that\s+)?(.+?)[.!?]`), entities.ConfidenceHigh, entities.DecisionTypeFormal},
	{regexp.MustCompile(`(?i)(?:we\s+)?(?:will|are\s+going\s+to|plan\s+to)\s+(.+?)[.!?]`), entities.ConfidenceHigh, entities.DecisionTypeFormal},
	{regexp.MustCompile(`(?i)(?:let'?s|let\s+us)\s+(.+?)[.!?]`), entities.ConfidenceHigh, entities.DecisionTypeFormal},
	{regexp.MustCompile(`(?i)motion\s+(?:carried|passed|approved|rejected)\s+(?:to\s+)?(.+?)[.!?]`), entities.ConfidenceHigh, entities.DecisionTypeFormal},

	{regexp.MustCompile(`(?i)(?:we\s+)?(?:should|must|need\s+to|have\s+to)\s+(.+?)[.!?]`), entities.ConfidenceMedium, entities.DecisionTypeRecommendation},
	{regexp.MustCompile(`(?i)(?:the\s+)?(?:plan|strategy|approach)\s+(?:is|will\s+be)\s+(.+?)[.!?]`), entities.ConfidenceMedium, entities.DecisionTypeRecommendation},
	{regexp.MustCompile(`(?i)(?:we\s+)?(?:recommend|suggest|propose)\s+(.+?)[.!?]`), entities.ConfidenceMedium, entities.DecisionTypeRecommendation},
}

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

// dedupKey strips punctuation and lowercases so near-identical phrasings
// collapse to one entry. First occurrence wins.
func dedupKey(text string) string {
	return strings.ToLower(nonWordRe.ReplaceAllString(text, ""))
}

// ExtractDecisions applies the decision rule families across the text and
// returns up to eight deduplicated decisions.
func ExtractDecisions(text string) []entities.Decision {
	decisions := make([]entities.Decision, 0, maxDecisions)
	seen := make(map[string]struct{})

	for _, rule := range decisionRules {
		for _, m := range rule.re.FindAllStringSubmatch(text, -1) {
			decisionText := strings.TrimSpace(m[1])
			if len(decisionText) <= minDecisionLength {
				continue
			}

			key := dedupKey(decisionText)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			decisions = append(decisions, entities.Decision{
				Text:       decisionText,
				Confidence: rule.confidence,
				Type:       rule.dtype,
			})
		}
	}

	if len(decisions) > maxDecisions {
		decisions = decisions[:maxDecisions]
	}
	return decisions
}
