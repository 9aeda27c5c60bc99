package scoring

import (
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

// Dimension weights. Must sum to 1.0.
var weights = map[string]float64{
	entities.ScoreDurationEfficiency:    0.25,
	entities.ScoreActionItemQuality:     0.30,
	entities.ScoreContentStructure:      0.20,
	entities.ScoreFollowUpPlanning:      0.15,
	entities.ScoreParticipantEngagement: 0.10,
}

var engagementWords = []string{
	"question", "discuss", "agree", "disagree", "suggest", "propose",
	"think", "believe", "consider", "review", "feedback", "input",
}

// Scorer computes a weighted meeting effectiveness score from the
// structured analysis output plus meeting metadata. Stateless; safe for
// concurrent use.
type Scorer struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewScorer(logger *zap.Logger) *Scorer {
	return &Scorer{logger: logger, now: time.Now}
}

// CalculateMeetingScore scores a meeting across five dimensions and
// combines them via fixed weights. It never returns an error or panics:
// any internal failure yields the fixed "Unable to Score" result.
func (s *Scorer) CalculateMeetingScore(durationSeconds float64, transcriptText string, notes *entities.AnalysisResult, actionItems []entities.ActionItemRecord) (result *entities.ScoreResult) {
	defer func() {
		if r := recover(); r != nil {
			if s.logger != nil {
				s.logger.Error("meeting scoring failed", zap.Any("panic", r))
			}
			result = &entities.ScoreResult{
				TotalScore:       0,
				Grade:            "F",
				Category:         "Unable to Score",
				IndividualScores: map[string]float64{},
				Recommendations:  []string{"Error occurred during scoring"},
				Timestamp:        s.now(),
			}
		}
	}()

	if notes == nil {
		notes = &entities.AnalysisResult{}
	}

	scores := map[string]float64{
		entities.ScoreDurationEfficiency:    scoreDurationEfficiency(durationSeconds, len(actionItems)),
		entities.ScoreActionItemQuality:     scoreActionItemQuality(actionItems),
		entities.ScoreContentStructure:      scoreContentStructure(notes, transcriptText),
		entities.ScoreFollowUpPlanning:      scoreFollowUpPlanning(actionItems, notes),
		entities.ScoreParticipantEngagement: scoreParticipantEngagement(transcriptText),
	}

	totalScore := 0.0
	for dimension, score := range scores {
		totalScore += score * weights[dimension]
	}
	totalScore = round2(totalScore)

	grade, category := gradeAndCategory(totalScore)

	result = &entities.ScoreResult{
		TotalScore:       totalScore,
		Grade:            grade,
		Category:         category,
		IndividualScores: scores,
		Recommendations:  generateRecommendations(scores, totalScore),
		Timestamp:        s.now(),
	}

	if s.logger != nil {
		s.logger.Info("meeting scored",
			zap.Float64("total_score", totalScore),
			zap.String("grade", grade),
		)
	}
	return result
}

// scoreDurationEfficiency rates the action-items-per-minute ratio. Zero
// duration or zero actions cannot be evaluated and scores neutral, not
// as a penalty.
func scoreDurationEfficiency(durationSeconds float64, actionCount int) float64 {
	if durationSeconds == 0 || actionCount == 0 {
		return 5.0
	}

	actionsPerMinute := float64(actionCount) / (durationSeconds / 60)

	switch {
	case actionsPerMinute >= 0.1 && actionsPerMinute <= 0.3:
		return 10.0
	case actionsPerMinute >= 0.05 && actionsPerMinute <= 0.5:
		return 8.0
	case actionsPerMinute < 0.05:
		return 6.0 // too few actions for the time spent
	default:
		return 4.0 // too many actions
	}
}

// scoreActionItemQuality averages per-item completeness points, rescaled
// to 0-10. An empty list scores 3.0: here the absence of action items is
// itself a negative signal, unlike the neutral-on-missing-data policy of
// the duration dimension.
func scoreActionItemQuality(actionItems []entities.ActionItemRecord) float64 {
	if len(actionItems) == 0 {
		return 3.0
	}

	totalPoints := 0
	maxPossible := len(actionItems) * 10

	for _, item := range actionItems {
		points := 0

		description := strings.TrimSpace(item.Description)
		switch {
		case len(description) > 10:
			points += 3
		case len(description) > 5:
			points += 2
		default:
			points += 1
		}

		if item.Owner != "" {
			points += 2
		}
		if item.DueDate != "" {
			points += 2
		}
		if item.Priority != "" {
			points += 1
		}
		if item.Status != "" {
			points += 1
		}

		totalPoints += points
	}

	return round2(float64(totalPoints) / float64(maxPossible) * 10)
}

func scoreContentStructure(notes *entities.AnalysisResult, transcriptText string) float64 {
	score := 5.0

	switch {
	case len(notes.Summary) > 50:
		score += 1.5
	case len(notes.Summary) > 20:
		score += 1.0
	}

	switch {
	case len(notes.KeyPoints) >= 3:
		score += 1.5
	case len(notes.KeyPoints) >= 1:
		score += 1.0
	}

	if len(notes.Decisions) >= 1 {
		score += 1.0
	}

	if len(transcriptText) > 500 {
		score += 1.0
	}

	return math.Min(10.0, score)
}

func scoreFollowUpPlanning(actionItems []entities.ActionItemRecord, notes *entities.AnalysisResult) float64 {
	score := 5.0

	for _, item := range actionItems {
		if item.DueDate != "" {
			score += 2.0
			break
		}
	}
	for _, item := range actionItems {
		if item.Owner != "" {
			score += 2.0
			break
		}
	}

	summary := strings.ToLower(notes.Summary)
	for _, word := range []string{"next", "follow", "schedule", "plan"} {
		if strings.Contains(summary, word) {
			score += 1.0
			break
		}
	}

	return math.Min(10.0, score)
}

func scoreParticipantEngagement(transcriptText string) float64 {
	score := 5.0
	lower := strings.ToLower(transcriptText)

	engagementCount := 0
	for _, word := range engagementWords {
		if strings.Contains(lower, word) {
			engagementCount++
		}
	}
	switch {
	case engagementCount >= 5:
		score += 3.0
	case engagementCount >= 3:
		score += 2.0
	case engagementCount >= 1:
		score += 1.0
	}

	questionCount := strings.Count(lower, "?")
	switch {
	case questionCount >= 3:
		score += 2.0
	case questionCount >= 1:
		score += 1.0
	}

	return math.Min(10.0, score)
}

// gradeAndCategory maps the total score to a letter grade. Boundaries
// are inclusive: exactly 8.0 is a B.
func gradeAndCategory(totalScore float64) (string, string) {
	switch {
	case totalScore >= 9.0:
		return "A", "Excellent"
	case totalScore >= 8.0:
		return "B", "Good"
	case totalScore >= 7.0:
		return "C", "Satisfactory"
	case totalScore >= 6.0:
		return "D", "Needs Improvement"
	default:
		return "F", "Poor"
	}
}

func generateRecommendations(scores map[string]float64, totalScore float64) []string {
	recommendations := []string{}

	if scores[entities.ScoreDurationEfficiency] < 7 {
		recommendations = append(recommendations, "Optimize meeting duration - consider shorter, more focused meetings")
	}
	if scores[entities.ScoreActionItemQuality] < 7 {
		recommendations = append(recommendations, "Improve action items - ensure each action has an owner, due date, and clear description")
	}
	if scores[entities.ScoreContentStructure] < 7 {
		recommendations = append(recommendations, "Enhance meeting structure - create clear agendas and document key decisions")
	}
	if scores[entities.ScoreFollowUpPlanning] < 7 {
		recommendations = append(recommendations, "Plan follow-ups - schedule follow-up meetings and set clear deadlines")
	}
	if scores[entities.ScoreParticipantEngagement] < 7 {
		recommendations = append(recommendations, "Increase engagement - encourage questions and active participation")
	}

	switch {
	case totalScore < 6:
		recommendations = append(recommendations, "Immediate attention needed - this meeting needs significant improvement")
	case totalScore < 7.5:
		recommendations = append(recommendations, "Room for improvement - focus on the areas with lowest scores")
	case totalScore >= 8.5:
		recommendations = append(recommendations, "Great meeting - consider sharing best practices with the team")
	}

	return recommendations
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
