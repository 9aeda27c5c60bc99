package analysis

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

func TestExtractKeyPointsNeverEmpty(t *testing.T) {
	got := ExtractKeyPoints("we talked about stuff")
	require.Len(t, got, 1)
	assert.Equal(t, keyPointPlaceholder, got[0].Text)
}

func TestExtractKeyPointsSelectsIndicatorSentences(t *testing.T) {
	text := "The key takeaway is that we must improve our deployment pipeline. The weather was nice."
	got := ExtractKeyPoints(text)
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Text, "deployment pipeline")
}

func TestExtractKeyPointsCappedAtFive(t *testing.T) {
	sentences := make([]string, 0, 7)
	for i := 1; i <= 7; i++ {
		sentences = append(sentences, fmt.Sprintf("It is important that we finish task %d before the release date", i))
	}
	got := ExtractKeyPoints(strings.Join(sentences, ". ") + ".")
	assert.Len(t, got, 5)
}

func TestExtractDecisionsDeduplicates(t *testing.T) {
	text := "We decided that we will launch in March. It was decided that we will launch in March!"
	got := ExtractDecisions(text)
	require.Len(t, got, 1)
	assert.Equal(t, "we will launch in March", got[0].Text)
	assert.Equal(t, entities.ConfidenceHigh, got[0].Confidence)
	assert.Equal(t, entities.DecisionTypeFormal, got[0].Type)
}

func TestExtractDecisionsSkipsShortMatches(t *testing.T) {
	got := ExtractDecisions("We decided that we win.")
	assert.Empty(t, got)
}

func TestExtractActionItemsWithOwner(t *testing.T) {
	dates := NewDueDateResolver(nil)
	got := ExtractActionItems("John Smith will prepare the quarterly report by Friday.", dates)
	require.Len(t, got, 1)
	assert.Equal(t, "John Smith", got[0].Owner)
	assert.Contains(t, got[0].Description, "quarterly report")
	assert.NotEmpty(t, got[0].DueDate)
	assert.Equal(t, entities.ConfidenceHigh, got[0].Confidence)
}

func TestExtractActionItemsRejectsNonNameOwner(t *testing.T) {
	dates := NewDueDateResolver(nil)
	got := ExtractActionItems("The Team will update the onboarding documentation soon.", dates)
	require.NotEmpty(t, got)
	assert.Empty(t, got[0].Owner)
}

func TestIsValidOwnerName(t *testing.T) {
	assert.True(t, IsValidOwnerName("John Smith"))
	assert.False(t, IsValidOwnerName("The Team"))
	assert.False(t, IsValidOwnerName("John"))
	assert.False(t, IsValidOwnerName("john smith"))
	assert.False(t, IsValidOwnerName("Someone Needs"))
}

func TestClassifyPriority(t *testing.T) {
	assert.Equal(t, entities.PriorityHigh, ClassifyPriority("fix the outage ASAP"))
	assert.Equal(t, entities.PriorityLow, ClassifyPriority("tidy the wiki when possible"))
	assert.Equal(t, entities.PriorityMedium, ClassifyPriority("update the dashboard"))
	// high urgency wins when both vocabularies match
	assert.Equal(t, entities.PriorityHigh, ClassifyPriority("urgent but no rush on the rest"))
}

func TestExtractParticipantsRequiresTwoMentions(t *testing.T) {
	text := "Alice Johnson presented the roadmap. Bob Brown asked about costs. " +
		"Alice Johnson answered every question. Alice Johnson closed the call. " +
		"Bob Brown thanked everyone. Carol White left early."

	got := ExtractParticipants(text)
	require.Len(t, got, 2)
	assert.Equal(t, "Alice Johnson", got[0].Name)
	assert.Equal(t, 3, got[0].MentionCount)
	assert.Equal(t, "Bob Brown", got[1].Name)
	assert.Equal(t, 2, got[1].MentionCount)
	assert.Equal(t, "participant", got[0].Role)
}
