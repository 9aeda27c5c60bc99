package analysis

import (
	"sort"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

const (
	maxParticipants     = 10
	minMentionThreshold = 2
)

// ExtractParticipants counts two-word capitalized-name occurrences across
// the text and keeps names mentioned at least twice, most frequent first.
// Ties keep first-mention order.
func ExtractParticipants(text string) []entities.Participant {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, name := range personNameRe.FindAllString(text, -1) {
		if counts[name] == 0 {
			order = append(order, name)
		}
		counts[name]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	participants := make([]entities.Participant, 0, maxParticipants)
	for _, name := range order {
		if counts[name] < minMentionThreshold {
			continue
		}
		participants = append(participants, entities.Participant{
			Name:         name,
			MentionCount: counts[name],
			Role:         "participant",
		})
		if len(participants) == maxParticipants {
			break
		}
	}
	return participants
}
