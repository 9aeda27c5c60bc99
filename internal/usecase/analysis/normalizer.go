package analysis

import (
	"regexp"
	"strings"
)

var (
	speakerLabelRe = regexp.MustCompile(`(?m)^[A-Za-z]+:\s*`)
	timestampRe    = regexp.MustCompile(`\d{1,2}:\d{2}(?::\d{2})?`)
	punctuationRe  = regexp.MustCompile(`[^\w\s.,!?-]`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

// Normalize cleans raw transcript text before extraction: strips speaker
// labels at line starts, H:MM / H:MM:SS timestamps and any punctuation
// outside of ". , ! ? -", then collapses whitespace. Idempotent, and
// returns "" for empty input rather than failing.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = speakerLabelRe.ReplaceAllString(text, "")
	text = timestampRe.ReplaceAllString(text, "")
	text = punctuationRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// splitSentences splits normalized text on sentence delimiters and trims
// each piece. Empty pieces are dropped.
func splitSentences(text string) []string {
	parts := sentenceSplitRe.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}
