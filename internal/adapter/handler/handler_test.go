package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/usecase/template"
	"github.com/johnquangdev/meeting-insights/pkg/config"
)

func TestTemplateListReturnsAllVariants(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/templates", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewTemplateHandler(template.NewManager(nil), nil)
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Data    []struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Message)
	require.Len(t, body.Data, 4)
	assert.Equal(t, "standup", body.Data[0].Name)
	assert.Equal(t, "generic", body.Data[3].Name)
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/assemblyai",
		strings.NewReader(`{"transcript_id":"abc","status":"completed"}`))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewWebhookHandler(nil, nil, nil, nil, &config.AssemblyAIConfig{WebhookSecret: "secret"}, nil)
	require.NoError(t, h.AssemblyAI(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWebhookRejectsInvalidPayload(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/assemblyai",
		strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewWebhookHandler(nil, nil, nil, nil, &config.AssemblyAIConfig{}, nil)
	require.NoError(t, h.AssemblyAI(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMapServiceErrorUnwrapsSentinels(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/meetings/x/analyze", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := &Meeting{}
	wrapped := fmt.Errorf("failed to load meeting: %w", entities.ErrMeetingNotFound)
	require.NoError(t, h.mapServiceError(c, uuid.New(), wrapped))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleErrorMapsAppError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/meetings/x", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HandleError(nil, c, apperrors.ErrMeetingNotFound("x")))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Meeting not found", body.Message)
}
