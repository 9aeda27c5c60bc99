package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/external/transcription"
	"github.com/johnquangdev/meeting-insights/internal/usecase/insights"
	"github.com/johnquangdev/meeting-insights/pkg/ai"
	"github.com/johnquangdev/meeting-insights/pkg/config"
)

// assemblyWebhookPayload is the body AssemblyAI posts on completion
type assemblyWebhookPayload struct {
	TranscriptID string `json:"transcript_id"`
	Status       string `json:"status"`
	Error        string `json:"error,omitempty"`
}

// Webhook receives transcription completion callbacks
type Webhook struct {
	service        insights.Service
	meetingRepo    repositories.MeetingRepository
	transcriptRepo repositories.TranscriptRepository
	transcriber    *transcription.Service
	cfg            *config.AssemblyAIConfig
	logger         *zap.Logger
}

// NewWebhookHandler creates a webhook handler
func NewWebhookHandler(
	service insights.Service,
	meetingRepo repositories.MeetingRepository,
	transcriptRepo repositories.TranscriptRepository,
	transcriber *transcription.Service,
	cfg *config.AssemblyAIConfig,
	logger *zap.Logger,
) *Webhook {
	return &Webhook{
		service:        service,
		meetingRepo:    meetingRepo,
		transcriptRepo: transcriptRepo,
		transcriber:    transcriber,
		cfg:            cfg,
		logger:         logger,
	}
}

// AssemblyAI handles POST callbacks for finished transcription jobs. It
// fetches the transcript, stores it against the waiting meeting, and
// enqueues analysis. Returns 200 on handled terminal states so
// AssemblyAI stops retrying.
func (h *Webhook) AssemblyAI(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}

	if h.cfg != nil && h.cfg.WebhookSecret != "" {
		signature := c.Request().Header.Get("X-Assembly-Signature")
		if !ai.VerifyHMAC(h.cfg.WebhookSecret, body, signature) {
			if h.logger != nil {
				h.logger.Warn("webhook signature verification failed",
					zap.String("request_id", getRequestID(c)),
				)
			}
			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var payload assemblyWebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload())
	}
	if payload.TranscriptID == "" {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("transcript_id is required"))
	}

	ctx := c.Request().Context()

	meeting, err := h.meetingRepo.GetByTranscriptJobID(ctx, payload.TranscriptID)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed("get meeting by transcript job", err))
	}
	if meeting == nil {
		if h.logger != nil {
			h.logger.Warn("webhook for unknown transcript job",
				zap.String("transcript_id", payload.TranscriptID),
			)
		}
		// Unknown job is terminal for us; do not trigger retries
		return c.NoContent(http.StatusOK)
	}

	if payload.Status == "error" {
		if h.logger != nil {
			h.logger.Error("transcription job failed",
				zap.String("transcript_id", payload.TranscriptID),
				zap.String("meeting_id", meeting.ID.String()),
				zap.String("error", payload.Error),
			)
		}
		if err := h.meetingRepo.UpdateStatus(ctx, meeting.ID, entities.MeetingStatusFailed); err != nil && h.logger != nil {
			h.logger.Warn("failed to mark meeting failed", zap.Error(err))
		}
		return c.NoContent(http.StatusOK)
	}

	transcript, err := h.transcriber.FetchTranscript(ctx, meeting.ID, payload.TranscriptID)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrTranscriptionFailed(err))
	}
	if err := h.transcriptRepo.Create(ctx, transcript); err != nil {
		return HandleError(h.logger, c, apperrors.ErrDBQueryFailed("create transcript", err))
	}

	job, err := h.service.EnqueueAnalysis(ctx, meeting.ID, "")
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrAnalysisFailed(err))
	}

	if h.logger != nil {
		h.logger.Info("webhook processed",
			zap.String("transcript_id", payload.TranscriptID),
			zap.String("meeting_id", meeting.ID.String()),
			zap.String("job_id", job.ID.String()),
		)
	}
	return c.NoContent(http.StatusOK)
}
