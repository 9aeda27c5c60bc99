package analysis

import (
	"regexp"
	"strings"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

const (
	maxActionItems      = 10
	minActionItemLength = 15
	ownerContextWindow  = 200
)

// actionRule is one pattern family for action-item extraction. Owner
// rules capture (owner, description); ownerless rules capture only the
// description and the owner is inferred from the surrounding text.
type actionRule struct {
	re         *regexp.Regexp
	hasOwner   bool
	confidence entities.Confidence
	atype      entities.ActionItemType
}

// Strong rules anchor on a two-word capitalized name followed by a
// commitment verb. The name part stays case-sensitive on purpose; only
// the verbs are matched case-insensitively.
var strongActionRules = []actionRule{
	{regexp.MustCompile(`\b([A-Z][a-z]+\s+[A-Z][a-z]+)\s+(?i:will|is\s+going\s+to|needs\s+to|has\s+to)\s+(.+?)[.!?]`), true, entities.ConfidenceHigh, entities.ActionItemTypeAssigned},
	{regexp.MustCompile(`\b([A-Z][a-z]+\s+[A-Z][a-z]+)\s+to\s+(.+?)[.!?]`), true, entities.ConfidenceHigh, entities.ActionItemTypeAssigned},
	{regexp.MustCompile(`\b([A-Z][a-z]+\s+[A-Z][a-z]+)\s+(?i:should)\s+(.+?)[.!?]`), true, entities.ConfidenceHigh, entities.ActionItemTypeAssigned},
	{regexp.MustCompile(`\b([A-Z][a-z]+\s+[A-Z][a-z]+)\s+(?i:please)\s+(.+?)[.!?]`), true, entities.ConfidenceHigh, entities.ActionItemTypeAssigned},
	{regexp.MustCompile(`(?i:action\s+item|todo|task|next\s+step)\s+(?i:for|to|assigned\s+to)\s+\b([A-Z][a-z]+\s+[A-Z][a-z]+)[:\s]+(.+?)[.!?]`), true, entities.ConfidenceHigh, entities.ActionItemTypeAssigned},
	{regexp.MustCompile(`\b([A-Z][a-z]+\s+[A-Z][a-z]+)\s+(?i:action)[:\s]+(.+?)[.!?]`), true, entities.ConfidenceHigh, entities.ActionItemTypeAssigned},
	{regexp.MustCompile(`\b([A-Z][a-z]+\s+[A-Z][a-z]+)\s+(?i:(?:is\s+)?responsible\s+for)\s+(.+?)[.!?]`), true, entities.ConfidenceHigh, entities.ActionItemTypeAssigned},
	{regexp.MustCompile(`\b([A-Z][a-z]+\s+[A-Z][a-z]+)\s+(?i:takes)\s+(.+?)[.!?]`), true, entities.ConfidenceHigh, entities.ActionItemTypeAssigned},
}

var mediumActionRules = []actionRule{
	{regexp.MustCompile(`(?i)(?:we\s+)?(?:need\s+to|should|must|have\s+to|got\s+to)\s+(.+?)[.!?]`), false, entities.ConfidenceMedium, entities.ActionItemTypeGeneral},
	{regexp.MustCompile(`(?i)(?:let'?s|let\s+us)\s+(.+?)[.!?]`), false, entities.ConfidenceMedium, entities.ActionItemTypeGeneral},
	{regexp.MustCompile(`(?i)(?:next\s+steps?|action\s+items?|follow\s+up)[:\s]+(.+?)[.!?]`), false, entities.ConfidenceMedium, entities.ActionItemTypeGeneral},
	{regexp.MustCompile(`(?i)(?:someone\s+needs\s+to|somebody\s+should)\s+(.+?)[.!?]`), false, entities.ConfidenceMedium, entities.ActionItemTypeGeneral},
}

// ownerStoplist rejects capitalized non-name words in owner position
var ownerStoplist = map[string]struct{}{
	"we": {}, "the": {}, "team": {}, "someone": {}, "somebody": {},
	"everyone": {}, "anyone": {}, "decided": {}, "agreed": {}, "will": {},
	"should": {}, "must": {}, "need": {}, "going": {}, "needs": {},
	"has": {}, "takes": {}, "please": {}, "action": {}, "item": {}, "task": {},
}

// contextStoplist rejects common capitalized sentence-starters when
// inferring an owner from the text window around an ownerless match
var contextStoplist = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "this": {}, "that": {},
	"will": {}, "should": {}, "must": {}, "need": {}, "have": {},
	"going": {}, "needs": {}, "has": {}, "takes": {}, "please": {},
	"action": {}, "item": {}, "task": {}, "step": {}, "next": {},
	"follow": {}, "up": {},
}

// IsValidOwnerName reports whether a string looks like a person name:
// exactly two capitalized words, neither in the stoplist.
func IsValidOwnerName(name string) bool {
	words := strings.Fields(name)
	if len(words) != 2 {
		return false
	}
	for _, w := range words {
		if w[0] < 'A' || w[0] > 'Z' {
			return false
		}
		if _, ok := ownerStoplist[strings.ToLower(w)]; ok {
			return false
		}
	}
	return true
}

// inferOwnerFromContext scans a window around the action description for
// a two-word capitalized name not in the context stoplist.
func inferOwnerFromContext(text, description string) string {
	pos := strings.Index(text, description)
	if pos == -1 {
		return ""
	}

	start := pos - ownerContextWindow
	if start < 0 {
		start = 0
	}
	end := pos + ownerContextWindow
	if end > len(text) {
		end = len(text)
	}

	for _, name := range personNameRe.FindAllString(text[start:end], -1) {
		valid := true
		for _, w := range strings.Fields(name) {
			if _, ok := contextStoplist[strings.ToLower(w)]; ok {
				valid = false
				break
			}
		}
		if valid {
			return name
		}
	}
	return ""
}

// ExtractActionItems applies the strong (owner-attributed) rules before
// the medium (ownerless) ones, so duplicates keep the higher-confidence,
// owner-attributed version. Deduplicated by normalized description,
// capped at ten.
func ExtractActionItems(text string, dates *DueDateResolver) []entities.ActionItem {
	items := make([]entities.ActionItem, 0, maxActionItems)
	seen := make(map[string]struct{})

	add := func(item entities.ActionItem) {
		key := dedupKey(item.Description)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		items = append(items, item)
	}

	for _, rule := range strongActionRules {
		for _, m := range rule.re.FindAllStringSubmatch(text, -1) {
			owner := strings.TrimSpace(m[1])
			description := strings.TrimSpace(m[2])

			if !IsValidOwnerName(owner) {
				owner = ""
			}
			if len(description) <= minActionItemLength {
				continue
			}

			add(entities.ActionItem{
				Description: description,
				Owner:       owner,
				DueDate:     dates.Resolve(description),
				Priority:    ClassifyPriority(description),
				Confidence:  rule.confidence,
				Type:        rule.atype,
			})
		}
	}

	for _, rule := range mediumActionRules {
		for _, m := range rule.re.FindAllStringSubmatch(text, -1) {
			description := strings.TrimSpace(m[1])
			if len(description) <= minActionItemLength {
				continue
			}

			add(entities.ActionItem{
				Description: description,
				Owner:       inferOwnerFromContext(text, description),
				DueDate:     dates.Resolve(description),
				Priority:    ClassifyPriority(description),
				Confidence:  rule.confidence,
				Type:        rule.atype,
			})
		}
	}

	if len(items) > maxActionItems {
		items = items[:maxActionItems]
	}
	return items
}
