package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
}

func TestNormalizeStripsSpeakerLabelsAndTimestamps(t *testing.T) {
	got := Normalize("John: We start at 10:30 today.")
	assert.Equal(t, "We start at today.", got)
}

func TestNormalizeStripsPunctuation(t *testing.T) {
	got := Normalize("costs $500 (approx); really?")
	assert.Equal(t, "costs 500 approx really?", got)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	raw := "John: We start at 10:30 today.\nSarah: Agenda (draft) is attached!"
	once := Normalize(raw)
	assert.Equal(t, once, Normalize(once))
}

func TestSplitSentencesDropsEmptyPieces(t *testing.T) {
	got := splitSentences("First sentence. Second one!  ? Third here.")
	assert.Equal(t, []string{"First sentence", "Second one", "Third here"}, got)
}
