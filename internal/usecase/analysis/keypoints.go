package analysis

import (
	"regexp"
	"strings"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

const (
	maxKeyPoints        = 5
	keyPointThreshold   = 3
	keyPointPlaceholder = "Key discussion points will be identified during detailed review."
)

// Indicator vocabularies for key-point sentence scoring. Strong indicators
// mark sentences that announce importance; weak and generic ones penalize
// small talk and filler.
var (
	strongIndicators = []string{
		"key point", "main point", "important", "critical", "essential",
		"significant", "major", "crucial", "vital", "fundamental",
		"takeaway", "highlight", "focus on", "emphasis on", "key takeaway",
	}

	mediumIndicators = []string{
		"note that", "remember", "keep in mind", "consider",
		"understand", "realize", "recognize", "plan to", "strategy",
	}

	weakIndicators = []string{
		"good", "great", "nice", "interesting", "helpful", "welcome",
		"talk about", "discuss", "meeting", "today", "tomorrow",
	}

	genericPhrases = []string{
		"we had a meeting", "it was good", "nice to see", "talked about",
		"weather was nice", "stuff and things", "um", "uh", "like",
	}
)

var (
	numberedRe   = regexp.MustCompile(`^\d+\.`)
	numberingRe  = regexp.MustCompile(`^\d+\.\s*`)
	bulletRe     = regexp.MustCompile(`^[•\-]\s*`)
	digitRe      = regexp.MustCompile(`\d`)
	personNameRe = regexp.MustCompile(`\b[A-Z][a-z]+\s+[A-Z][a-z]+\b`)
)

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// ExtractKeyPoints selects up to five sentences whose indicator score
// clears the retention threshold, in original order. It never returns an
// empty list: when nothing qualifies a single placeholder entry is
// returned so downstream rendering always has content.
func ExtractKeyPoints(text string) []entities.KeyPoint {
	keyPoints := make([]entities.KeyPoint, 0, maxKeyPoints)

	for _, sentence := range splitSentences(text) {
		if len(sentence) <= 25 {
			continue
		}

		lower := strings.ToLower(sentence)
		score := 0

		if containsAny(lower, strongIndicators) {
			score += 4
		}
		if containsAny(lower, mediumIndicators) {
			score += 2
		}
		if containsAny(lower, weakIndicators) {
			score -= 2
		}
		if containsAny(lower, genericPhrases) {
			score -= 5
		}
		if numberedRe.MatchString(sentence) {
			score += 2
		}
		if strings.HasPrefix(sentence, "•") || strings.HasPrefix(sentence, "-") {
			score += 2
		}
		if strings.Contains(sentence, "?") && len(sentence) > 50 {
			score++
		}
		if digitRe.MatchString(sentence) {
			score++
		}
		if personNameRe.MatchString(sentence) {
			score++
		}

		if score < keyPointThreshold {
			continue
		}

		clean := numberingRe.ReplaceAllString(sentence, "")
		clean = bulletRe.ReplaceAllString(clean, "")
		if len(clean) > 20 {
			keyPoints = append(keyPoints, entities.KeyPoint{Text: clean})
		}
	}

	if len(keyPoints) > maxKeyPoints {
		keyPoints = keyPoints[:maxKeyPoints]
	}

	if len(keyPoints) == 0 {
		return []entities.KeyPoint{{Text: keyPointPlaceholder}}
	}

	return keyPoints
}
