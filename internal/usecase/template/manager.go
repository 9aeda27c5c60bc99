package template

import (
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/usecase/analysis"
)

// Info describes a template variant for listing endpoints.
type Info struct {
	Name          string   `json:"name"`
	DisplayName   string   `json:"display_name"`
	Description   string   `json:"description"`
	KeyIndicators []string `json:"key_indicators"`
}

// Manager owns the fixed variant set and implements auto-detection and
// template-specific analysis over it.
type Manager struct {
	variants []Variant
	logger   *zap.Logger
}

// NewManager builds a manager with the four built-in variants. Order
// matters: auto-detect breaks ties by position, generic last.
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		variants: []Variant{
			standupVariant{},
			planningVariant{},
			reviewVariant{},
			genericVariant{},
		},
		logger: logger,
	}
}

// Get returns the variant with the given name, or the generic variant
// when the name is unknown or empty.
func (m *Manager) Get(name string) Variant {
	for _, v := range m.variants {
		if v.Name() == name {
			return v
		}
	}
	return genericVariant{}
}

// AutoDetect scores each variant by how many of its keyword indicators
// appear in the transcript (case-insensitive substring match) and returns
// the variant with the highest count. Ties keep the earlier variant, so
// a transcript hitting no indicators at all detects as the first one.
func (m *Manager) AutoDetect(text string) Variant {
	lower := strings.ToLower(text)

	best := m.variants[0]
	bestScore := -1
	for _, v := range m.variants {
		score := 0
		for _, indicator := range v.KeyIndicators() {
			if strings.Contains(lower, indicator) {
				score++
			}
		}
		if score > bestScore {
			best = v
			bestScore = score
		}
	}

	if m.logger != nil {
		m.logger.Debug("template auto-detected",
			zap.String("template", best.Name()),
			zap.Int("indicator_hits", bestScore),
		)
	}
	return best
}

// AnalyzeWithTemplate runs the named variant over the transcript and
// merges its partial result into base. Name "auto" (or "") triggers
// detection first. The merged result's MeetingType always reflects the
// variant that ran.
func (m *Manager) AnalyzeWithTemplate(name, text string, segments []entities.Segment, base *entities.AnalysisResult, dates *analysis.DueDateResolver) *entities.AnalysisResult {
	var variant Variant
	if name == "" || name == "auto" {
		variant = m.AutoDetect(text)
	} else {
		variant = m.Get(name)
	}

	partial := variant.Analyze(text, segments, dates)
	return Merge(base, partial)
}

// Merge applies a variant's partial result over the generic analysis.
// Only non-nil fields override; a variant that produced an empty (but
// non-nil) slice deliberately clears that section.
func Merge(base *entities.AnalysisResult, partial *Result) *entities.AnalysisResult {
	merged := *base
	if partial == nil {
		return &merged
	}
	if partial.MeetingType != "" {
		merged.MeetingType = partial.MeetingType
	}
	if partial.KeyPoints != nil {
		merged.KeyPoints = partial.KeyPoints
	}
	if partial.ActionItems != nil {
		merged.ActionItems = partial.ActionItems
	}
	if partial.Decisions != nil {
		merged.Decisions = partial.Decisions
	}
	merged.Markdown = analysis.RenderMarkdown(&merged)
	return &merged
}

// AvailableTemplates lists the variant set for API consumers.
func (m *Manager) AvailableTemplates() []Info {
	infos := make([]Info, 0, len(m.variants))
	for _, v := range m.variants {
		infos = append(infos, Info{
			Name:          v.Name(),
			DisplayName:   v.DisplayName(),
			Description:   v.Description(),
			KeyIndicators: v.KeyIndicators(),
		})
	}
	return infos
}
