package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// Engine runs the full transcript analysis pipeline: normalization,
// summary generation, pattern extraction and markdown rendering. It is
// stateless between calls; concurrent use on different transcripts needs
// no coordination.
type Engine struct {
	summarizer Summarizer
	dates      *DueDateResolver
	logger     *zap.Logger
	now        func() time.Time
}

// NewEngine constructs an analysis engine. The summarizer may be nil, in
// which case summaries are always extractive. A nil date parser falls
// back to the default natural-language collaborator.
func NewEngine(summarizer Summarizer, parser DateParser, logger *zap.Logger) *Engine {
	return &Engine{
		summarizer: summarizer,
		dates:      NewDueDateResolver(parser),
		logger:     logger,
		now:        time.Now,
	}
}

// DueDates exposes the engine's due-date resolver for callers that need
// to resolve dates outside a full analysis run (e.g. template extraction).
func (e *Engine) DueDates() *DueDateResolver {
	return e.dates
}

// AnalyzeMeeting analyzes a transcript and returns a fresh AnalysisResult.
// It never returns an error: total failure anywhere in the pipeline
// degrades to a fixed fallback result so downstream persistence and
// rendering never have to special-case a missing analysis.
func (e *Engine) AnalyzeMeeting(ctx context.Context, text string, segments []entities.Segment) (result *entities.AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			if e.logger != nil {
				e.logger.Error("meeting analysis failed", zap.Any("panic", r))
			}
			result = e.fallbackResult()
		}
	}()

	cleaned := Normalize(text)

	summary := e.GenerateSummary(ctx, cleaned)
	keyPoints := ExtractKeyPoints(cleaned)
	decisions := ExtractDecisions(cleaned)
	actionItems := ExtractActionItems(cleaned, e.dates)
	participants := ExtractParticipants(cleaned)

	result = &entities.AnalysisResult{
		Summary:           summary,
		KeyPoints:         keyPoints,
		Decisions:         decisions,
		ActionItems:       actionItems,
		Participants:      participants,
		AnalysisTimestamp: e.now(),
	}
	result.Markdown = RenderMarkdown(result)

	if e.logger != nil {
		e.logger.Info("meeting analysis completed",
			zap.Int("key_points", len(keyPoints)),
			zap.Int("decisions", len(decisions)),
			zap.Int("action_items", len(actionItems)),
			zap.Int("participants", len(participants)),
		)
	}
	return result
}

// fallbackResult is returned when analysis fails entirely. Well-typed and
// non-empty so the failure is visible only as degraded content quality.
func (e *Engine) fallbackResult() *entities.AnalysisResult {
	result := &entities.AnalysisResult{
		Summary:           summaryProcessed,
		KeyPoints:         []entities.KeyPoint{{Text: keyPointPlaceholder}},
		Decisions:         []entities.Decision{},
		ActionItems:       []entities.ActionItem{},
		Participants:      []entities.Participant{},
		AnalysisTimestamp: e.now(),
	}
	result.Markdown = RenderMarkdown(result)
	return result
}

// RenderMarkdown renders the analysis record as a self-contained markdown
// document. Sections with no content are omitted; the summary heading is
// always present.
func RenderMarkdown(result *entities.AnalysisResult) string {
	var sb strings.Builder

	sb.WriteString("# Meeting Summary\n\n")
	sb.WriteString(result.Summary)
	sb.WriteString("\n\n")

	if len(result.KeyPoints) > 0 {
		sb.WriteString("## Key Points\n\n")
		for _, kp := range result.KeyPoints {
			fmt.Fprintf(&sb, "- %s\n", kp.Text)
		}
		sb.WriteString("\n")
	}

	if len(result.Decisions) > 0 {
		sb.WriteString("## Decisions Made\n\n")
		for _, d := range result.Decisions {
			fmt.Fprintf(&sb, "- %s\n", d.Text)
		}
		sb.WriteString("\n")
	}

	if len(result.ActionItems) > 0 {
		sb.WriteString("## Action Items\n\n")
		for _, a := range result.ActionItems {
			owner := a.Owner
			if owner == "" {
				owner = "Unassigned"
			}
			dueDate := a.DueDate
			if dueDate == "" {
				dueDate = "No deadline"
			}
			fmt.Fprintf(&sb, "- **%s** (Owner: %s, Due: %s, Priority: %s)\n", a.Description, owner, dueDate, a.Priority)
		}
		sb.WriteString("\n")
	}

	if len(result.Participants) > 0 {
		sb.WriteString("## Participants\n\n")
		for _, p := range result.Participants {
			fmt.Fprintf(&sb, "- %s (Mentioned %d times)\n", p.Name, p.MentionCount)
		}
	}

	return sb.String()
}
