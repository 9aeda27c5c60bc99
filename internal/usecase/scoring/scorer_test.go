package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

func TestWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestGradeBoundariesAreInclusive(t *testing.T) {
	cases := []struct {
		score    float64
		grade    string
		category string
	}{
		{9.0, "A", "Excellent"},
		{8.0, "B", "Good"},
		{7.0, "C", "Satisfactory"},
		{6.0, "D", "Needs Improvement"},
		{5.99, "F", "Poor"},
	}
	for _, tc := range cases {
		grade, category := gradeAndCategory(tc.score)
		assert.Equal(t, tc.grade, grade, "score %.2f", tc.score)
		assert.Equal(t, tc.category, category, "score %.2f", tc.score)
	}
}

func TestCalculateMeetingScoreEmptyInputs(t *testing.T) {
	s := NewScorer(nil)
	result := s.CalculateMeetingScore(0, "", nil, nil)
	require.NotNil(t, result)

	// duration 5.0 neutral, action quality 3.0, the rest at their 5.0 base
	assert.InDelta(t, 4.4, result.TotalScore, 0.001)
	assert.Equal(t, "F", result.Grade)
	assert.Equal(t, "Poor", result.Category)
	assert.False(t, result.Timestamp.IsZero())
	assert.NotEmpty(t, result.Recommendations)
}

func TestScoreDurationEfficiencyBands(t *testing.T) {
	assert.Equal(t, 5.0, scoreDurationEfficiency(0, 5))
	assert.Equal(t, 5.0, scoreDurationEfficiency(3600, 0))
	assert.Equal(t, 10.0, scoreDurationEfficiency(3600, 6))  // 0.1/min
	assert.Equal(t, 8.0, scoreDurationEfficiency(3600, 25))  // 0.42/min
	assert.Equal(t, 6.0, scoreDurationEfficiency(3600, 2))   // 0.03/min
	assert.Equal(t, 4.0, scoreDurationEfficiency(3600, 100)) // 1.67/min
}

func TestScoreActionItemQuality(t *testing.T) {
	assert.Equal(t, 3.0, scoreActionItemQuality(nil))

	full := entities.ActionItemRecord{
		Description: "Prepare the launch checklist",
		Owner:       "John Smith",
		DueDate:     "2025-06-30",
		Priority:    entities.PriorityHigh,
		Status:      "pending",
	}
	assert.Equal(t, 9.0, scoreActionItemQuality([]entities.ActionItemRecord{full}))

	bare := entities.ActionItemRecord{Description: "fix"}
	assert.Equal(t, 1.0, scoreActionItemQuality([]entities.ActionItemRecord{bare}))
}

func TestCalculateMeetingScoreWellRunMeeting(t *testing.T) {
	s := NewScorer(nil)

	transcript := strings.Repeat(
		"We will discuss the launch today. Does anyone have a question? "+
			"I agree with the proposal and suggest we review the plan. "+
			"Any feedback or input to consider? What do you think? ", 3)

	notes := &entities.AnalysisResult{
		Summary: "The team finalized the launch plan and assigned owners for every workstream next week.",
		KeyPoints: []entities.KeyPoint{
			{Text: "Launch date confirmed"},
			{Text: "Owners assigned"},
			{Text: "Risks reviewed"},
		},
		Decisions: []entities.Decision{{Text: "Launch on the first of the month"}},
	}

	items := make([]entities.ActionItemRecord, 6)
	for i := range items {
		items[i] = entities.ActionItemRecord{
			Description: "Prepare the launch checklist",
			Owner:       "John Smith",
			DueDate:     "2025-06-30",
			Priority:    entities.PriorityHigh,
			Status:      "pending",
		}
	}

	result := s.CalculateMeetingScore(3600, transcript, notes, items)
	require.NotNil(t, result)
	assert.InDelta(t, 9.7, result.TotalScore, 0.001)
	assert.Equal(t, "A", result.Grade)
	assert.Equal(t, "Excellent", result.Category)

	require.Len(t, result.IndividualScores, 5)
	assert.Equal(t, 10.0, result.IndividualScores[entities.ScoreDurationEfficiency])
	assert.Equal(t, 9.0, result.IndividualScores[entities.ScoreActionItemQuality])
	assert.Equal(t, 10.0, result.IndividualScores[entities.ScoreContentStructure])
	assert.Equal(t, 10.0, result.IndividualScores[entities.ScoreFollowUpPlanning])
	assert.Equal(t, 10.0, result.IndividualScores[entities.ScoreParticipantEngagement])

	require.Len(t, result.Recommendations, 1)
	assert.Contains(t, result.Recommendations[0], "Great meeting")
}
