package transcription

import (
	"context"
	"fmt"
	"strings"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	pkgai "github.com/johnquangdev/meeting-insights/pkg/ai"
	"github.com/johnquangdev/meeting-insights/pkg/config"
)

// Service submits audio to AssemblyAI and converts finished transcripts
// into domain entities. The analysis core consumes its output; it never
// talks to AssemblyAI itself.
type Service struct {
	client *aai.Client
	raw    *pkgai.AssemblyAIClient
	cfg    *config.AssemblyAIConfig
	logger *zap.Logger
}

// NewService creates an AssemblyAI-backed transcription service
func NewService(cfg *config.AssemblyAIConfig, logger *zap.Logger) *Service {
	return &Service{
		client: aai.NewClient(cfg.APIKey),
		raw:    pkgai.NewAssemblyAIClient(cfg),
		cfg:    cfg,
		logger: logger,
	}
}

// SubmitAudio submits an audio URL for transcription with speaker labels
// and returns the external transcript ID. Completion arrives via webhook.
func (s *Service) SubmitAudio(ctx context.Context, audioURL string) (string, error) {
	audioURL = strings.TrimSpace(audioURL)
	if audioURL == "" {
		return "", fmt.Errorf("audio URL is required")
	}

	// Webhook submissions go through the raw client, which also carries
	// the auth header name AssemblyAI echoes back on the callback.
	if s.cfg.WebhookBaseURL != "" {
		webhookURL := s.cfg.WebhookBaseURL + "/v1/webhooks/assemblyai"
		transcriptID, err := s.raw.TranscribeAudio(ctx, audioURL, webhookURL, "X-Assembly-Signature", nil)
		if err != nil {
			return "", fmt.Errorf("failed to submit to AssemblyAI: %w", err)
		}
		if s.logger != nil {
			s.logger.Info("transcription submitted",
				zap.String("transcript_id", transcriptID),
				zap.String("webhook_url", webhookURL),
			)
		}
		return transcriptID, nil
	}

	params := &aai.TranscriptOptionalParams{
		SpeakerLabels: aai.Bool(true),
	}
	transcript, err := s.client.Transcripts.TranscribeFromURL(ctx, audioURL, params)
	if err != nil {
		return "", fmt.Errorf("failed to submit to AssemblyAI: %w", err)
	}

	var transcriptID string
	if transcript.ID != nil {
		transcriptID = *transcript.ID
	}

	if s.logger != nil {
		s.logger.Info("transcription submitted",
			zap.String("transcript_id", transcriptID),
			zap.String("status", string(transcript.Status)),
		)
	}
	return transcriptID, nil
}

// FetchTranscript fetches a completed transcript from AssemblyAI and
// converts it into a domain Transcript with speaker segments.
func (s *Service) FetchTranscript(ctx context.Context, meetingID uuid.UUID, transcriptID string) (*entities.Transcript, error) {
	transcript, err := s.client.Transcripts.Get(ctx, transcriptID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transcript: %w", err)
	}

	if transcript.Status == aai.TranscriptStatusError {
		msg := "AssemblyAI transcription failed"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return nil, fmt.Errorf("transcription error: %s", msg)
	}
	if transcript.Status != aai.TranscriptStatusCompleted {
		return nil, fmt.Errorf("transcript %s not completed yet (status %s)", transcriptID, transcript.Status)
	}

	entity := entities.NewTranscript(meetingID)
	entity.ModelUsed = "assemblyai"

	if transcript.Text != nil {
		entity.Text = *transcript.Text
		entity.WordCount = len(strings.Fields(*transcript.Text))
	}
	if transcript.LanguageCode != "" {
		entity.Language = string(transcript.LanguageCode)
	}
	if transcript.Confidence != nil {
		entity.ConfidenceScore = *transcript.Confidence
	}
	if transcript.AudioDuration != nil {
		entity.DurationSeconds = *transcript.AudioDuration
	}

	// Utterances become segments, ms timestamps converted to seconds
	if len(transcript.Utterances) > 0 {
		segments := make([]entities.Segment, 0, len(transcript.Utterances))
		for _, utt := range transcript.Utterances {
			segment := entities.Segment{}
			if utt.Text != nil {
				segment.Text = *utt.Text
			}
			if utt.Speaker != nil {
				segment.Speaker = *utt.Speaker
			}
			if utt.Start != nil {
				segment.Start = float64(*utt.Start) / 1000.0
			}
			if utt.End != nil {
				segment.End = float64(*utt.End) / 1000.0
			}
			if utt.Confidence != nil {
				segment.Confidence = *utt.Confidence
			}
			segments = append(segments, segment)
		}
		entity.Segments = segments
	}

	if s.logger != nil {
		s.logger.Info("transcript fetched",
			zap.String("transcript_id", transcriptID),
			zap.String("meeting_id", meetingID.String()),
			zap.Int("text_length", len(entity.Text)),
			zap.Int("segment_count", len(entity.Segments)),
		)
	}
	return entity, nil
}
