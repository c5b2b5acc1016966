package handler

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"elderguard/internal/delivery/api/response"
	domainerrors "elderguard/internal/domain/errors"
	"elderguard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GeminiHandlerParams holds dependencies for GeminiHandler, injected by Fx.
type GeminiHandlerParams struct {
	fx.In

	AssistantUC usecase.AssistantUsecase
	Logger      *slog.Logger
}

// GeminiHandler serves /api/gemini
type GeminiHandler struct {
	assistantUC usecase.AssistantUsecase
	logger      *slog.Logger
}

// NewGeminiHandler is the constructor for GeminiHandler
func NewGeminiHandler(params GeminiHandlerParams) *GeminiHandler {
	return &GeminiHandler{
		assistantUC: params.AssistantUC,
		logger:      params.Logger,
	}
}

// ResearchRequest represents the request body for a research query
type ResearchRequest struct {
	Query string `json:"query"`
}

// SummarizeRequest represents the request body for a notes summary.
// Notes stays raw so non-array payloads can be told apart from empty arrays.
type SummarizeRequest struct {
	Notes json.RawMessage `json:"notes"`
}

// TTSRequest represents the request body for text-to-speech
type TTSRequest struct {
	Text string `json:"text"`
}

// SpeechResponse is the TTS payload with base64-encoded PCM
type SpeechResponse struct {
	AudioBase64   string    `json:"audioBase64"`
	SampleRate    int       `json:"sampleRate"`
	Channels      int       `json:"channels"`
	BitsPerSample int       `json:"bitsPerSample"`
	Format        string    `json:"format"`
	Timestamp     time.Time `json:"timestamp"`
}

// Research handles POST /api/gemini/research
func (h *GeminiHandler) Research(c echo.Context) error {
	var req ResearchRequest
	if err := c.Bind(&req); err != nil {
		return response.FromAppError(c, domainerrors.ErrQueryRequired)
	}

	result, err := h.assistantUC.Research(c.Request().Context(), req.Query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Summarize handles POST /api/gemini/summarize
func (h *GeminiHandler) Summarize(c echo.Context) error {
	var req SummarizeRequest
	if err := c.Bind(&req); err != nil {
		return response.FromAppError(c, domainerrors.ErrNotesNotArray)
	}

	var notes []json.RawMessage
	if len(req.Notes) == 0 || json.Unmarshal(req.Notes, &notes) != nil || notes == nil {
		return response.FromAppError(c, domainerrors.ErrNotesNotArray)
	}

	result, err := h.assistantUC.Summarize(c.Request().Context(), notes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// TextToSpeech handles POST /api/gemini/tts
func (h *GeminiHandler) TextToSpeech(c echo.Context) error {
	var req TTSRequest
	if err := c.Bind(&req); err != nil {
		return response.FromAppError(c, domainerrors.ErrTextRequired)
	}

	result, err := h.assistantUC.TextToSpeech(c.Request().Context(), req.Text)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SpeechResponse{
		AudioBase64:   base64.StdEncoding.EncodeToString(result.PCM),
		SampleRate:    result.SampleRate,
		Channels:      result.Channels,
		BitsPerSample: result.BitsPerSample,
		Format:        result.Format,
		Timestamp:     result.Timestamp,
	})
}
