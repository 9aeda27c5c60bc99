package template

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/usecase/analysis"
)

func TestAutoDetectStandup(t *testing.T) {
	m := NewManager(nil)
	v := m.AutoDetect("yesterday I finished the API, today I'll start tests, no blockers")
	assert.Equal(t, VariantStandup, v.Name())
}

func TestAutoDetectZeroHitsKeepsFirstVariant(t *testing.T) {
	m := NewManager(nil)
	v := m.AutoDetect("nothing special happened on this call")
	assert.Equal(t, VariantStandup, v.Name())
}

func TestGetUnknownNameFallsBackToGeneric(t *testing.T) {
	m := NewManager(nil)
	assert.Equal(t, VariantGeneric, m.Get("retrospective").Name())
	assert.Equal(t, VariantPlanning, m.Get("planning").Name())
}

func TestMergeNilPartialKeepsBase(t *testing.T) {
	base := &entities.AnalysisResult{
		Summary:   "base summary",
		KeyPoints: []entities.KeyPoint{{Text: "a key point"}},
	}
	merged := Merge(base, nil)
	assert.Equal(t, "base summary", merged.Summary)
	assert.Len(t, merged.KeyPoints, 1)
}

func TestMergeOverridesOnlyNonNilFields(t *testing.T) {
	base := &entities.AnalysisResult{
		Summary:     "base summary that carries through the merge",
		KeyPoints:   []entities.KeyPoint{{Text: "generic key point"}},
		ActionItems: []entities.ActionItem{{Description: "generic action"}},
	}
	partial := &Result{
		MeetingType: "Daily Standup",
		KeyPoints:   []entities.KeyPoint{}, // deliberate clear
	}

	merged := Merge(base, partial)
	assert.Equal(t, "Daily Standup", merged.MeetingType)
	assert.Empty(t, merged.KeyPoints)
	assert.Len(t, merged.ActionItems, 1)
	assert.Equal(t, "base summary that carries through the merge", merged.Summary)
	assert.Contains(t, merged.Markdown, "# Meeting Summary")
	assert.Contains(t, merged.Markdown, "generic action")
}

func TestAnalyzeWithStandupTemplate(t *testing.T) {
	m := NewManager(nil)
	dates := analysis.NewDueDateResolver(nil)
	text := "Yesterday I finished the API endpoints. Today I will start writing tests. " +
		"I am blocked waiting for the staging environment."
	base := &entities.AnalysisResult{Summary: "base summary"}

	result := m.AnalyzeWithTemplate("standup", text, nil, base, dates)
	require.NotNil(t, result)
	assert.Equal(t, "Daily Standup", result.MeetingType)
	assert.Equal(t, "base summary", result.Summary)

	joined := ""
	for _, kp := range result.KeyPoints {
		joined += kp.Text + " | "
	}
	assert.Contains(t, joined, "Yesterday: ")
	assert.Contains(t, joined, "Blocker: ")

	require.NotEmpty(t, result.ActionItems)
	var found bool
	for _, a := range result.ActionItems {
		if strings.Contains(a.Description, "start writing tests") {
			found = true
			assert.Equal(t, "Team Member", a.Owner)
			assert.Equal(t, "Standup commitment", a.Context)
		}
	}
	assert.True(t, found)
}

func TestAnalyzeWithAutoDetection(t *testing.T) {
	m := NewManager(nil)
	dates := analysis.NewDueDateResolver(nil)
	text := "We need an estimate for each milestone before the sprint starts. " +
		"The scope and requirements are still moving."
	base := &entities.AnalysisResult{Summary: "base"}

	result := m.AnalyzeWithTemplate("auto", text, nil, base, dates)
	assert.Equal(t, "Project Planning", result.MeetingType)
}

func TestAvailableTemplates(t *testing.T) {
	m := NewManager(nil)
	infos := m.AvailableTemplates()
	require.Len(t, infos, 4)

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name)
	}
	assert.Equal(t, []string{VariantStandup, VariantPlanning, VariantReview, VariantGeneric}, names)
	assert.NotEmpty(t, infos[0].KeyIndicators)
}
