package analysis

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	minSummarizableLength = 50
	summarizerInputLimit  = 2000
	summaryMinLength      = 30
	summaryMaxLength      = 500
	fallbackSentenceCount = 3

	summaryTooShort  = "Meeting transcript too short for meaningful summary."
	summaryProcessed = "Meeting transcript processed successfully."
)

// Summarizer is the abstractive summarization collaborator. It may fail;
// the engine catches any error and falls back to extractive summarization.
type Summarizer interface {
	Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error)
}

// GenerateSummary produces a short summary of normalized text. The
// abstractive collaborator is tried first; any failure falls back to
// extractive sentence selection, which never fails.
func (e *Engine) GenerateSummary(ctx context.Context, text string) string {
	if len(strings.TrimSpace(text)) < minSummarizableLength {
		return summaryTooShort
	}

	if e.summarizer != nil && len(text) > 100 {
		input := text
		if len(input) > summarizerInputLimit {
			// Back off to a rune boundary so the cut never splits a
			// multi-byte character.
			cut := summarizerInputLimit
			for cut > 0 && !utf8.RuneStart(input[cut]) {
				cut--
			}
			input = input[:cut]
		}
		maxLength := len(text) / 2
		if maxLength > summaryMaxLength {
			maxLength = summaryMaxLength
		}

		summary, err := e.summarizer.Summarize(ctx, input, maxLength, summaryMinLength)
		if err == nil && summary != "" {
			return summary
		}
		if err != nil && e.logger != nil {
			e.logger.Warn("abstractive summarization failed, using extractive fallback", zap.Error(err))
		}
	}

	return extractiveSummary(text)
}

// extractiveSummary keeps the first three sentences longer than 20
// characters. Returns a fixed message when nothing qualifies.
func extractiveSummary(text string) string {
	kept := make([]string, 0, fallbackSentenceCount)
	for _, s := range splitSentences(text) {
		if len(s) > 20 {
			kept = append(kept, s)
		}
		if len(kept) == fallbackSentenceCount {
			break
		}
	}

	if len(kept) == 0 {
		return summaryProcessed
	}
	return strings.Join(kept, ". ") + "."
}
