package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-insights/internal/usecase/analysis"
	"github.com/johnquangdev/meeting-insights/internal/usecase/scoring"
	"github.com/johnquangdev/meeting-insights/internal/usecase/template"
	"github.com/johnquangdev/meeting-insights/pkg/config"
)

// Service orchestrates the full insight pipeline for a meeting:
// transcript lookup, generic analysis, template-specific extraction,
// persistence of notes and action items, and effectiveness scoring.
type Service interface {
	EnqueueAnalysis(ctx context.Context, meetingID uuid.UUID, templateName string) (*entities.AnalysisJob, error)
	AnalyzeMeeting(ctx context.Context, meetingID uuid.UUID, templateName string) (*entities.AnalysisResult, error)
	ScoreMeeting(ctx context.Context, meetingID uuid.UUID) (*entities.ScoreResult, error)
	GetMarkdown(ctx context.Context, meetingID uuid.UUID) (string, error)
	StartWorkerPool(ctx context.Context) error
	StopWorkerPool() error
}

type service struct {
	meetingRepo    repositories.MeetingRepository
	transcriptRepo repositories.TranscriptRepository
	noteRepo       repositories.NoteRepository
	actionItemRepo repositories.ActionItemRepository
	scoreRepo      repositories.ScoreRepository
	jobRepo        repositories.AnalysisJobRepository

	engine    *analysis.Engine
	templates *template.Manager
	scorer    *scoring.Scorer
	store     cache.Store

	cfg    *config.Config
	logger *zap.Logger

	workerStopChan      chan struct{}
	workerWg            sync.WaitGroup
	isWorkerPoolRunning bool
	workerMutex         sync.Mutex
}

// NewService constructs the insight service
func NewService(
	meetingRepo repositories.MeetingRepository,
	transcriptRepo repositories.TranscriptRepository,
	noteRepo repositories.NoteRepository,
	actionItemRepo repositories.ActionItemRepository,
	scoreRepo repositories.ScoreRepository,
	jobRepo repositories.AnalysisJobRepository,
	engine *analysis.Engine,
	templates *template.Manager,
	scorer *scoring.Scorer,
	store cache.Store,
	cfg *config.Config,
	logger *zap.Logger,
) Service {
	return &service{
		meetingRepo:    meetingRepo,
		transcriptRepo: transcriptRepo,
		noteRepo:       noteRepo,
		actionItemRepo: actionItemRepo,
		scoreRepo:      scoreRepo,
		jobRepo:        jobRepo,
		engine:         engine,
		templates:      templates,
		scorer:         scorer,
		store:          store,
		cfg:            cfg,
		logger:         logger,
		workerStopChan: make(chan struct{}),
	}
}

// EnqueueAnalysis creates a pending analysis job for a meeting. The
// worker pool picks it up; templateName "" or "auto" means auto-detect.
func (s *service) EnqueueAnalysis(ctx context.Context, meetingID uuid.UUID, templateName string) (*entities.AnalysisJob, error) {
	meeting, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load meeting: %w", err)
	}
	if meeting == nil {
		return nil, entities.ErrMeetingNotFound
	}

	transcript, err := s.transcriptRepo.GetByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transcript: %w", err)
	}
	if transcript == nil {
		return nil, entities.ErrTranscriptNotFound
	}

	job := entities.NewAnalysisJob(meetingID, templateName)
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create analysis job: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("analysis job enqueued",
			zap.String("job_id", job.ID.String()),
			zap.String("meeting_id", meetingID.String()),
			zap.String("template", templateName),
		)
	}
	return job, nil
}

// AnalyzeMeeting runs the full pipeline synchronously and persists the
// results. Used both by the worker pool and by the synchronous API path.
func (s *service) AnalyzeMeeting(ctx context.Context, meetingID uuid.UUID, templateName string) (*entities.AnalysisResult, error) {
	meeting, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load meeting: %w", err)
	}
	if meeting == nil {
		return nil, entities.ErrMeetingNotFound
	}

	transcript, err := s.transcriptRepo.GetByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transcript: %w", err)
	}
	if transcript == nil {
		return nil, entities.ErrTranscriptNotFound
	}

	// Generic extraction first, then the template variant's partial
	// result merged over it. The engine never returns an error; total
	// failure degrades to its fallback result.
	base := s.engine.AnalyzeMeeting(ctx, transcript.Text, transcript.Segments)
	cleaned := analysis.Normalize(transcript.Text)
	result := s.templates.AnalyzeWithTemplate(templateName, cleaned, transcript.Segments, base, s.engine.DueDates())

	note, err := s.persistResult(ctx, meetingID, result)
	if err != nil {
		return nil, err
	}

	// Score from the persisted action items so status defaults count
	// toward action-item quality.
	items, err := s.actionItemRepo.ListByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list action items: %w", err)
	}
	scoreResult := s.scorer.CalculateMeetingScore(meeting.DurationSeconds, transcript.Text, result, items)
	if err := s.persistScore(ctx, meetingID, scoreResult); err != nil {
		return nil, err
	}

	if err := s.meetingRepo.UpdateAnalysisMetadata(ctx, meetingID, result.MeetingType, len(result.Participants)); err != nil {
		if s.logger != nil {
			s.logger.Warn("failed to update meeting metadata", zap.Error(err))
		}
	}
	if err := s.meetingRepo.UpdateStatus(ctx, meetingID, entities.MeetingStatusCompleted); err != nil {
		if s.logger != nil {
			s.logger.Warn("failed to update meeting status", zap.Error(err))
		}
	}

	s.cacheMarkdown(ctx, meetingID, result.Markdown)

	if s.logger != nil {
		s.logger.Info("meeting analyzed",
			zap.String("meeting_id", meetingID.String()),
			zap.String("note_id", note.ID.String()),
			zap.String("meeting_type", result.MeetingType),
			zap.Int("action_items", len(result.ActionItems)),
		)
	}
	return result, nil
}

// persistResult stores the analysis as a note plus its action items
func (s *service) persistResult(ctx context.Context, meetingID uuid.UUID, result *entities.AnalysisResult) (*entities.Note, error) {
	note := &entities.Note{
		ID:          uuid.New(),
		MeetingID:   meetingID,
		Summary:     result.Summary,
		Markdown:    result.Markdown,
		MeetingType: result.MeetingType,
		AnalyzedAt:  result.AnalysisTimestamp,
	}
	if b, err := json.Marshal(result.KeyPoints); err == nil {
		note.KeyPoints = b
	}
	if b, err := json.Marshal(result.Decisions); err == nil {
		note.Decisions = b
	}
	if b, err := json.Marshal(result.Participants); err == nil {
		note.Participants = b
	}

	if err := s.noteRepo.Upsert(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to save note: %w", err)
	}

	// Re-analysis replaces the stored items wholesale
	if err := s.actionItemRepo.DeleteByMeetingID(ctx, meetingID); err != nil {
		return nil, fmt.Errorf("failed to clear action items: %w", err)
	}
	records := make([]entities.ActionItemRecord, 0, len(result.ActionItems))
	for _, item := range result.ActionItems {
		records = append(records, *entities.NewActionItemRecord(meetingID, &note.ID, item))
	}
	if err := s.actionItemRepo.CreateBatch(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to save action items: %w", err)
	}

	return note, nil
}

func (s *service) persistScore(ctx context.Context, meetingID uuid.UUID, result *entities.ScoreResult) error {
	score := &entities.MeetingScore{
		ID:         uuid.New(),
		MeetingID:  meetingID,
		TotalScore: result.TotalScore,
		Grade:      result.Grade,
		Category:   result.Category,
		ScoredAt:   result.Timestamp,
	}
	if b, err := json.Marshal(result.IndividualScores); err == nil {
		score.IndividualScores = b
	}
	if b, err := json.Marshal(result.Recommendations); err == nil {
		score.Recommendations = b
	}
	if err := s.scoreRepo.Upsert(ctx, score); err != nil {
		return fmt.Errorf("failed to save score: %w", err)
	}
	return nil
}

// ScoreMeeting recomputes the effectiveness score from the stored
// analysis without re-running extraction.
func (s *service) ScoreMeeting(ctx context.Context, meetingID uuid.UUID) (*entities.ScoreResult, error) {
	meeting, err := s.meetingRepo.GetByID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load meeting: %w", err)
	}
	if meeting == nil {
		return nil, entities.ErrMeetingNotFound
	}

	transcript, err := s.transcriptRepo.GetByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transcript: %w", err)
	}

	var transcriptText string
	if transcript != nil {
		transcriptText = transcript.Text
	}

	note, err := s.noteRepo.GetByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load note: %w", err)
	}
	if note == nil {
		return nil, entities.ErrNoteNotFound
	}

	items, err := s.actionItemRepo.ListByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list action items: %w", err)
	}

	notes := &entities.AnalysisResult{Summary: note.Summary}
	if len(note.KeyPoints) > 0 {
		_ = json.Unmarshal(note.KeyPoints, &notes.KeyPoints)
	}
	if len(note.Decisions) > 0 {
		_ = json.Unmarshal(note.Decisions, &notes.Decisions)
	}

	result := s.scorer.CalculateMeetingScore(meeting.DurationSeconds, transcriptText, notes, items)
	if err := s.persistScore(ctx, meetingID, result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetMarkdown returns the rendered markdown notes, served from cache
// when available.
func (s *service) GetMarkdown(ctx context.Context, meetingID uuid.UUID) (string, error) {
	if s.store != nil {
		if md, ok, err := s.store.Get(ctx, markdownCacheKey(meetingID)); err == nil && ok {
			return md, nil
		}
	}

	note, err := s.noteRepo.GetByMeetingID(ctx, meetingID)
	if err != nil {
		return "", fmt.Errorf("failed to load note: %w", err)
	}
	if note == nil {
		return "", entities.ErrNoteNotFound
	}

	s.cacheMarkdown(ctx, meetingID, note.Markdown)
	return note.Markdown, nil
}

func (s *service) cacheMarkdown(ctx context.Context, meetingID uuid.UUID, markdown string) {
	if s.store == nil || markdown == "" {
		return
	}
	ttl := time.Hour
	if s.cfg != nil && s.cfg.Redis.CacheTTL > 0 {
		ttl = s.cfg.Redis.CacheTTL
	}
	if err := s.store.Set(ctx, markdownCacheKey(meetingID), markdown, ttl); err != nil {
		if s.logger != nil {
			s.logger.Warn("failed to cache markdown", zap.Error(err))
		}
	}
}

func markdownCacheKey(meetingID uuid.UUID) string {
	return "notes:markdown:" + meetingID.String()
}
