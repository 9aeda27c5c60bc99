package handler

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-insights/errors"
	dto "github.com/johnquangdev/meeting-insights/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/external/transcription"
	"github.com/johnquangdev/meeting-insights/internal/usecase/insights"
)

// Meeting handles meeting and analysis HTTP endpoints
type Meeting struct {
	service        insights.Service
	meetingRepo    repositories.MeetingRepository
	transcriptRepo repositories.TranscriptRepository
	noteRepo       repositories.NoteRepository
	actionItemRepo repositories.ActionItemRepository
	scoreRepo      repositories.ScoreRepository
	transcriber    *transcription.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(
	service insights.Service,
	meetingRepo repositories.MeetingRepository,
	transcriptRepo repositories.TranscriptRepository,
	noteRepo repositories.NoteRepository,
	actionItemRepo repositories.ActionItemRepository,
	scoreRepo repositories.ScoreRepository,
	transcriber *transcription.Service,
	logger *zap.Logger,
) *Meeting {
	return &Meeting{
		service:        service,
		meetingRepo:    meetingRepo,
		transcriptRepo: transcriptRepo,
		noteRepo:       noteRepo,
		actionItemRepo: actionItemRepo,
		scoreRepo:      scoreRepo,
		transcriber:    transcriber,
		logger:         logger,
	}
}

// Create registers a meeting. A transcript supplied inline is stored
// directly; an audio URL is submitted to the transcription collaborator
// and the transcript arrives later via webhook.
func (h *Meeting) Create(c echo.Context) error {
	var req dto.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}
	if req.TranscriptText == "" && req.AudioURL == "" {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("either transcript_text or audio_url is required"))
	}

	meeting := entities.NewMeeting(req.Title)
	meeting.MeetingDate = req.MeetingDate
	meeting.DurationSeconds = req.DurationSeconds
	if req.Language != "" {
		meeting.Language = req.Language
	}
	meeting.AudioFilePath = req.AudioURL

	ctx := c.Request().Context()
	if err := h.meetingRepo.Create(ctx, meeting); err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed("create meeting", err))
	}

	if req.TranscriptText != "" {
		transcript := entities.NewTranscript(meeting.ID)
		transcript.Text = req.TranscriptText
		transcript.Segments = req.Segments
		transcript.Language = meeting.Language
		transcript.DurationSeconds = req.DurationSeconds
		if err := h.transcriptRepo.Create(ctx, transcript); err != nil {
			return HandleError(h.logger, c, apperrors.ErrDBQueryFailed("create transcript", err))
		}
	} else {
		jobID, err := h.transcriber.SubmitAudio(ctx, req.AudioURL)
		if err != nil {
			return HandleError(h.logger, c, apperrors.ErrTranscriptionFailed(err))
		}
		if err := h.meetingRepo.SetTranscriptJobID(ctx, meeting.ID, jobID); err != nil {
			return HandleError(h.logger, c, apperrors.ErrDBQueryFailed("set transcript job", err))
		}
	}

	return HandleSuccess(h.logger, c, dto.FromMeeting(meeting))
}

// List returns meetings, newest first
func (h *Meeting) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	meetings, err := h.meetingRepo.List(c.Request().Context(), pageSize, (page-1)*pageSize)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed("list meetings", err))
	}

	responses := make([]dto.MeetingResponse, 0, len(meetings))
	for i := range meetings {
		responses = append(responses, dto.FromMeeting(&meetings[i]))
	}
	return HandleSuccess(h.logger, c, responses)
}

// Get returns one meeting by ID
func (h *Meeting) Get(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid meeting ID"))
	}

	meeting, err := h.meetingRepo.GetByID(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed("get meeting", err))
	}
	if meeting == nil {
		return HandleError(h.logger, c, apperrors.ErrMeetingNotFound(meetingID.String()))
	}
	return HandleSuccess(h.logger, c, dto.FromMeeting(meeting))
}

// Analyze runs or enqueues transcript analysis for a meeting
func (h *Meeting) Analyze(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid meeting ID"))
	}

	var req dto.AnalyzeMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	ctx := c.Request().Context()

	if req.Sync {
		result, err := h.service.AnalyzeMeeting(ctx, meetingID, req.Template)
		if err != nil {
			return h.mapServiceError(c, meetingID, err)
		}
		return HandleSuccess(h.logger, c, result)
	}

	job, err := h.service.EnqueueAnalysis(ctx, meetingID, req.Template)
	if err != nil {
		return h.mapServiceError(c, meetingID, err)
	}
	return HandleSuccess(h.logger, c, dto.AnalysisJobResponse{
		JobID:     job.ID,
		MeetingID: job.MeetingID,
		Status:    string(job.Status),
		Template:  job.TemplateName,
		CreatedAt: job.CreatedAt,
	})
}

// GetNotes returns the analyzed notes for a meeting
func (h *Meeting) GetNotes(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid meeting ID"))
	}

	note, err := h.noteRepo.GetByMeetingID(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed("get notes", err))
	}
	if note == nil {
		return HandleError(h.logger, c, apperrors.ErrNoteNotFound(meetingID.String()))
	}

	resp := dto.NotesResponse{
		MeetingID:   note.MeetingID,
		Summary:     note.Summary,
		MeetingType: note.MeetingType,
		Markdown:    note.Markdown,
		AnalyzedAt:  note.AnalyzedAt,
	}
	if len(note.KeyPoints) > 0 {
		_ = json.Unmarshal(note.KeyPoints, &resp.KeyPoints)
	}
	if len(note.Decisions) > 0 {
		_ = json.Unmarshal(note.Decisions, &resp.Decisions)
	}
	if len(note.Participants) > 0 {
		_ = json.Unmarshal(note.Participants, &resp.Participants)
	}
	return HandleSuccess(h.logger, c, resp)
}

// GetMarkdown returns the rendered markdown notes as a markdown document
func (h *Meeting) GetMarkdown(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid meeting ID"))
	}

	markdown, err := h.service.GetMarkdown(c.Request().Context(), meetingID)
	if err != nil {
		return h.mapServiceError(c, meetingID, err)
	}
	return c.Blob(200, "text/markdown; charset=utf-8", []byte(markdown))
}

// ListActionItems returns all action items for a meeting
func (h *Meeting) ListActionItems(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid meeting ID"))
	}

	items, err := h.actionItemRepo.ListByMeetingID(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed("list action items", err))
	}
	return HandleSuccess(h.logger, c, items)
}

// UpdateActionItem changes the status of an action item
func (h *Meeting) UpdateActionItem(c echo.Context) error {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid action item ID"))
	}

	var req dto.UpdateActionItemRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	if err := h.actionItemRepo.UpdateStatus(c.Request().Context(), itemID, req.Status); err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed("update action item", err))
	}
	return HandleSuccess(h.logger, c, map[string]interface{}{"id": itemID, "status": req.Status})
}

// GetScore returns the stored effectiveness score for a meeting
func (h *Meeting) GetScore(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid meeting ID"))
	}

	score, err := h.scoreRepo.GetByMeetingID(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed("get score", err))
	}
	if score == nil {
		return HandleError(h.logger, c, apperrors.ErrScoreNotFound(meetingID.String()))
	}

	resp := dto.ScoreResponse{
		MeetingID:  score.MeetingID,
		TotalScore: score.TotalScore,
		Grade:      score.Grade,
		Category:   score.Category,
		ScoredAt:   score.ScoredAt,
	}
	if len(score.IndividualScores) > 0 {
		_ = json.Unmarshal(score.IndividualScores, &resp.IndividualScores)
	}
	if len(score.Recommendations) > 0 {
		_ = json.Unmarshal(score.Recommendations, &resp.Recommendations)
	}
	return HandleSuccess(h.logger, c, resp)
}

// RecalculateScore recomputes the score from the stored analysis
func (h *Meeting) RecalculateScore(c echo.Context) error {
	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("invalid meeting ID"))
	}

	result, err := h.service.ScoreMeeting(c.Request().Context(), meetingID)
	if err != nil {
		return h.mapServiceError(c, meetingID, err)
	}
	return HandleSuccess(h.logger, c, result)
}

// mapServiceError converts domain sentinel errors to API errors. The
// service may wrap sentinels with context, so match with errors.Is.
func (h *Meeting) mapServiceError(c echo.Context, meetingID uuid.UUID, err error) error {
	switch {
	case errors.Is(err, entities.ErrMeetingNotFound):
		return HandleError(h.logger, c, apperrors.ErrMeetingNotFound(meetingID.String()))
	case errors.Is(err, entities.ErrTranscriptNotFound):
		return HandleError(h.logger, c, apperrors.ErrTranscriptNotFound(meetingID.String()))
	case errors.Is(err, entities.ErrNoteNotFound):
		return HandleError(h.logger, c, apperrors.ErrNoteNotFound(meetingID.String()))
	default:
		return HandleError(h.logger, c, apperrors.ErrInternal(err))
	}
}
