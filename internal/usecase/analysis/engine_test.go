package analysis

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

type stubSummarizer struct {
	out string
	err error
}

func (s stubSummarizer) Summarize(_ context.Context, _ string, _, _ int) (string, error) {
	return s.out, s.err
}

func TestGenerateSummaryTooShort(t *testing.T) {
	e := NewEngine(nil, nil, nil)
	got := e.GenerateSummary(context.Background(), "hi there")
	assert.Equal(t, summaryTooShort, got)
}

func TestGenerateSummaryExtractiveFallback(t *testing.T) {
	e := NewEngine(nil, nil, nil)
	s1 := "The team reviewed the quarterly results in detail"
	s2 := "Revenue targets were exceeded across all regions"
	s3 := "The board approved additional budget for hiring"
	s4 := "Everyone left the call satisfied with the progress"
	text := strings.Join([]string{s1, s2, s3, s4}, ". ") + "."

	got := e.GenerateSummary(context.Background(), text)
	assert.Equal(t, s1+". "+s2+". "+s3+".", got)
}

func TestGenerateSummaryPrefersAbstractive(t *testing.T) {
	e := NewEngine(stubSummarizer{out: "Abstractive summary of the call."}, nil, nil)
	text := strings.Repeat("The roadmap discussion covered migration milestones and owners. ", 3)

	got := e.GenerateSummary(context.Background(), text)
	assert.Equal(t, "Abstractive summary of the call.", got)
}

func TestGenerateSummaryFallsBackOnSummarizerError(t *testing.T) {
	e := NewEngine(stubSummarizer{err: errors.New("api unavailable")}, nil, nil)
	s1 := "The migration plan was approved by everyone present"
	s2 := "Rollback procedures still need a dedicated owner assigned"
	text := s1 + ". " + s2 + "."

	got := e.GenerateSummary(context.Background(), text)
	assert.Equal(t, s1+". "+s2+".", got)
}

type recordingSummarizer struct {
	input string
}

func (r *recordingSummarizer) Summarize(_ context.Context, text string, _, _ int) (string, error) {
	r.input = text
	return "ok", nil
}

func TestGenerateSummaryTruncatesOnRuneBoundary(t *testing.T) {
	rec := &recordingSummarizer{}
	e := NewEngine(rec, nil, nil)
	text := strings.Repeat("a", summarizerInputLimit-1) + strings.Repeat("世", 200)

	got := e.GenerateSummary(context.Background(), text)
	assert.Equal(t, "ok", got)
	require.NotEmpty(t, rec.input)
	assert.LessOrEqual(t, len(rec.input), summarizerInputLimit)
	assert.True(t, utf8.ValidString(rec.input))
}

var (
	mdActionItemRe  = regexp.MustCompile(`^- \*\*(.+)\*\* \(Owner: (.+), Due: (.+), Priority: (.+)\)$`)
	mdParticipantRe = regexp.MustCompile(`^- (.+) \(Mentioned (\d+) times\)$`)
)

// parseMarkdownNotes recovers the structured fields from a rendered
// markdown document.
func parseMarkdownNotes(t *testing.T, md string) *entities.AnalysisResult {
	t.Helper()

	parsed := &entities.AnalysisResult{}
	section := ""
	for _, line := range strings.Split(md, "\n") {
		switch {
		case strings.HasPrefix(line, "# "):
			section = "summary"
		case strings.HasPrefix(line, "## "):
			section = strings.TrimPrefix(line, "## ")
		case line == "":
		case section == "summary":
			if parsed.Summary != "" {
				parsed.Summary += "\n"
			}
			parsed.Summary += line
		case section == "Key Points":
			parsed.KeyPoints = append(parsed.KeyPoints, entities.KeyPoint{Text: strings.TrimPrefix(line, "- ")})
		case section == "Decisions Made":
			parsed.Decisions = append(parsed.Decisions, entities.Decision{Text: strings.TrimPrefix(line, "- ")})
		case section == "Action Items":
			m := mdActionItemRe.FindStringSubmatch(line)
			require.NotNil(t, m, "unparseable action item line: %q", line)
			parsed.ActionItems = append(parsed.ActionItems, entities.ActionItem{
				Description: m[1],
				Owner:       m[2],
				DueDate:     m[3],
				Priority:    entities.Priority(m[4]),
			})
		case section == "Participants":
			m := mdParticipantRe.FindStringSubmatch(line)
			require.NotNil(t, m, "unparseable participant line: %q", line)
			count, err := strconv.Atoi(m[2])
			require.NoError(t, err)
			parsed.Participants = append(parsed.Participants, entities.Participant{Name: m[1], MentionCount: count})
		}
	}
	return parsed
}

func TestRenderMarkdownRoundTrip(t *testing.T) {
	source := &entities.AnalysisResult{
		Summary: "The team agreed on the rollout sequence for the new billing stack.",
		KeyPoints: []entities.KeyPoint{
			{Text: "Rollout starts with internal accounts"},
			{Text: "Billing cutover is reversible"},
		},
		Decisions: []entities.Decision{
			{Text: "we will migrate internal accounts first", Confidence: entities.ConfidenceHigh},
		},
		ActionItems: []entities.ActionItem{
			{Description: "Prepare the cutover checklist", Owner: "John Smith", DueDate: "2025-07-01", Priority: entities.PriorityHigh},
			{Description: "Verify invoice totals after migration", Owner: "Sarah Lee", DueDate: "2025-07-03", Priority: entities.PriorityMedium},
		},
		Participants: []entities.Participant{
			{Name: "John Smith", MentionCount: 3},
			{Name: "Sarah Lee", MentionCount: 2},
		},
	}

	parsed := parseMarkdownNotes(t, RenderMarkdown(source))

	assert.Equal(t, source.Summary, parsed.Summary)
	assert.Equal(t, source.KeyPoints, parsed.KeyPoints)
	require.Len(t, parsed.Decisions, len(source.Decisions))
	for i := range source.Decisions {
		assert.Equal(t, source.Decisions[i].Text, parsed.Decisions[i].Text)
	}
	require.Len(t, parsed.ActionItems, len(source.ActionItems))
	for i := range source.ActionItems {
		assert.Equal(t, source.ActionItems[i].Description, parsed.ActionItems[i].Description)
		assert.Equal(t, source.ActionItems[i].Owner, parsed.ActionItems[i].Owner)
		assert.Equal(t, source.ActionItems[i].DueDate, parsed.ActionItems[i].DueDate)
		assert.Equal(t, source.ActionItems[i].Priority, parsed.ActionItems[i].Priority)
	}
	assert.Equal(t, source.Participants, parsed.Participants)
}

func TestRenderMarkdownUnassignedAndUndatedItems(t *testing.T) {
	source := &entities.AnalysisResult{
		Summary: "Short sync.",
		ActionItems: []entities.ActionItem{
			{Description: "Follow up with the vendor", Priority: entities.PriorityLow},
		},
	}

	parsed := parseMarkdownNotes(t, RenderMarkdown(source))
	require.Len(t, parsed.ActionItems, 1)
	assert.Equal(t, "Unassigned", parsed.ActionItems[0].Owner)
	assert.Equal(t, "No deadline", parsed.ActionItems[0].DueDate)
}

func TestAnalyzeMeetingEndToEnd(t *testing.T) {
	e := NewEngine(nil, nil, nil)
	transcript := strings.Join([]string{
		"John: We decided that we will migrate the billing database to Postgres.",
		"John: John Smith will prepare the migration runbook by Friday.",
		"John: John Smith takes ownership of coordinating with the infra group.",
		"Sarah: Sarah Lee to review the rollback procedure in 2 days.",
		"Sarah: Sarah Lee should document the verification steps for the migration.",
	}, "\n")

	result := e.AnalyzeMeeting(context.Background(), transcript, nil)
	require.NotNil(t, result)
	assert.False(t, result.AnalysisTimestamp.IsZero())
	assert.NotEmpty(t, result.Summary)
	require.NotEmpty(t, result.KeyPoints)

	var decisionTexts []string
	for _, d := range result.Decisions {
		decisionTexts = append(decisionTexts, d.Text)
	}
	assert.Contains(t, strings.Join(decisionTexts, " | "), "migrate the billing database")

	var runbookOwner, runbookDue string
	var rollbackOwner string
	for _, a := range result.ActionItems {
		if strings.Contains(a.Description, "migration runbook") {
			runbookOwner = a.Owner
			runbookDue = a.DueDate
		}
		if strings.Contains(a.Description, "rollback procedure") {
			rollbackOwner = a.Owner
		}
	}
	assert.Equal(t, "John Smith", runbookOwner)
	assert.NotEmpty(t, runbookDue)
	assert.Equal(t, "Sarah Lee", rollbackOwner)

	names := make(map[string]int)
	for _, p := range result.Participants {
		names[p.Name] = p.MentionCount
	}
	assert.GreaterOrEqual(t, names["John Smith"], 2)
	assert.GreaterOrEqual(t, names["Sarah Lee"], 2)

	assert.Contains(t, result.Markdown, "# Meeting Summary")
	assert.Contains(t, result.Markdown, "## Action Items")
	assert.Contains(t, result.Markdown, "## Participants")
}

func TestAnalyzeMeetingAssignsOwnersAndDueDates(t *testing.T) {
	e := NewEngine(nil, nil, nil)
	transcript := "John Smith will update the deployment script by next Friday. " +
		"We decided to postpone the launch. Sarah Lee should review the proposal."

	result := e.AnalyzeMeeting(context.Background(), transcript, nil)
	require.NotNil(t, result)

	var deployOwner, deployDue, reviewOwner string
	for _, a := range result.ActionItems {
		if strings.Contains(a.Description, "update the deployment script") {
			deployOwner = a.Owner
			deployDue = a.DueDate
		}
		if strings.Contains(a.Description, "review the proposal") {
			reviewOwner = a.Owner
		}
	}
	assert.Equal(t, "John Smith", deployOwner)
	assert.NotEmpty(t, deployDue)
	assert.Equal(t, "Sarah Lee", reviewOwner)

	var foundPostpone bool
	for _, d := range result.Decisions {
		if strings.Contains(d.Text, "postpone the launch") {
			foundPostpone = true
			assert.Equal(t, entities.ConfidenceHigh, d.Confidence)
		}
	}
	assert.True(t, foundPostpone)
}

func TestAnalyzeMeetingEmptyTranscript(t *testing.T) {
	e := NewEngine(nil, nil, nil)
	result := e.AnalyzeMeeting(context.Background(), "", nil)
	require.NotNil(t, result)
	assert.Equal(t, summaryTooShort, result.Summary)
	require.Len(t, result.KeyPoints, 1)
	assert.Equal(t, keyPointPlaceholder, result.KeyPoints[0].Text)
	assert.Empty(t, result.ActionItems)
	assert.Contains(t, result.Markdown, "# Meeting Summary")
}
