package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "elderguard/internal/delivery/context"
	domainerrors "elderguard/internal/domain/errors"
	"elderguard/internal/domain/service"
	"elderguard/internal/infra/metrics"
	"elderguard/internal/usecase"
	"elderguard/internal/util"

	"go.uber.org/fx"
)

// Answers returned instead of an error when the generative API fails or returns nothing.
const (
	researchEmptyFallback       = "No information available at the moment."
	researchUnavailableFallback = "Research service is temporarily unavailable. Please try again later."
	summaryEmptyFallback        = "Unable to generate summary at this time."
	summaryUnavailableFallback  = "Summary service is temporarily unavailable."
)

const (
	noteSeparator       = "\n---\n"
	speechChannels      = 1
	speechBitsPerSample = 16
	speechFormat        = "audio/pcm"
	defaultSampleRate   = 24000
)

var (
	researchParams = service.GenerationParams{Temperature: 0.2, TopK: 40, TopP: 0.95, MaxOutputTokens: 1000}
	summaryParams  = service.GenerationParams{Temperature: 0.1, TopK: 20, TopP: 0.9, MaxOutputTokens: 800}
)

type assistantService struct {
	generator service.GenerativeService
	metrics   *metrics.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// AssistantServiceParams holds dependencies for AssistantService, injected by Fx.
type AssistantServiceParams struct {
	fx.In

	Generator service.GenerativeService
	Metrics   *metrics.Metrics `optional:"true"`
	Logger    *slog.Logger
}

// NewAssistantService creates a new generative assistant service instance
func NewAssistantService(params AssistantServiceParams) usecase.AssistantUsecase {
	return &assistantService{
		generator: params.Generator,
		metrics:   params.Metrics,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (s *assistantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Research answers a medical question about elderly care
func (s *assistantService) Research(ctx context.Context, query string) (*usecase.ResearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domainerrors.ErrQueryRequired
	}

	query = util.TruncateRunes(query, usecase.MaxResearchQueryLength)
	text := s.generate(ctx, "research", researchPrompt(query), researchParams, researchEmptyFallback, researchUnavailableFallback)

	return &usecase.ResearchResult{
		Text:      text,
		Timestamp: s.now(),
	}, nil
}

// Summarize condenses a batch of notes into a clinical summary
func (s *assistantService) Summarize(ctx context.Context, notes []json.RawMessage) (*usecase.SummaryResult, error) {
	if len(notes) == 0 {
		return nil, domainerrors.ErrNotesRequired
	}
	if len(notes) > usecase.MaxSummarizedNotes {
		notes = notes[:usecase.MaxSummarizedNotes]
	}

	texts := make([]string, 0, len(notes))
	for _, note := range notes {
		texts = append(texts, noteText(note))
	}

	summary := s.generate(ctx, "summarize", summaryPrompt(strings.Join(texts, noteSeparator)), summaryParams, summaryEmptyFallback, summaryUnavailableFallback)

	return &usecase.SummaryResult{
		Summary:   summary,
		NoteCount: len(notes),
		Timestamp: s.now(),
	}, nil
}

// TextToSpeech synthesizes the text with the prebuilt caregiver voice
func (s *assistantService) TextToSpeech(ctx context.Context, text string) (*usecase.SpeechResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domainerrors.ErrTextRequired
	}
	if utf8.RuneCountInString(text) > usecase.MaxSpeechTextLength {
		return nil, domainerrors.ErrTextTooLong
	}

	audio, err := s.generator.GenerateSpeech(ctx, speechPrompt(text))
	if err != nil {
		s.metrics.IncGenerative("tts", metrics.OutcomeError)
		s.log(ctx).Error("Text-to-speech failed", slog.Any("error", err))

		return nil, domainerrors.ErrTTSFailed.WrapMessage(err.Error())
	}
	if audio == nil || len(audio.PCM) == 0 {
		s.metrics.IncGenerative("tts", metrics.OutcomeError)

		return nil, domainerrors.ErrTTSFailed.WrapMessage("no audio data returned")
	}

	s.metrics.IncGenerative("tts", metrics.OutcomeOK)

	sampleRate := audio.SampleRate
	if sampleRate <= 0 {
		sampleRate = defaultSampleRate
	}

	return &usecase.SpeechResult{
		PCM:           audio.PCM,
		SampleRate:    sampleRate,
		Channels:      speechChannels,
		BitsPerSample: speechBitsPerSample,
		Format:        speechFormat,
		Timestamp:     s.now(),
	}, nil
}

// generate runs a text prompt and substitutes the fallbacks for empty answers and failures.
func (s *assistantService) generate(ctx context.Context, operation, prompt string, params service.GenerationParams, emptyFallback, errorFallback string) string {
	text, err := s.generator.GenerateText(ctx, prompt, params)
	if err != nil {
		s.metrics.IncGenerative(operation, metrics.OutcomeFallback)
		s.log(ctx).Warn("Generative request failed, using fallback",
			slog.String("operation", operation),
			slog.Any("error", err),
		)

		return errorFallback
	}

	if strings.TrimSpace(text) == "" {
		s.metrics.IncGenerative(operation, metrics.OutcomeFallback)

		return emptyFallback
	}

	s.metrics.IncGenerative(operation, metrics.OutcomeOK)

	return text
}

// noteText renders one summarize input: a string as-is, an object's text field, or raw JSON.
func noteText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var obj struct {
		Text *string `json:"text"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Text != nil && *obj.Text != "" {
		return *obj.Text
	}

	return string(raw)
}

func researchPrompt(query string) string {
	return fmt.Sprintf(`As a medical research assistant, provide accurate, concise information about: %q.
Focus on evidence-based medical information relevant to elderly care.
Include citations if available. Keep response under 500 words.`, query)
}

func summaryPrompt(notes string) string {
	return fmt.Sprintf(`As a clinical summary assistant, analyze these patient notes and provide a concise summary.

Notes:
%s

Please provide:
1. Key observations and trends
2. Any concerning patterns
3. Recommendations for follow-up
4. Overall patient status

Keep it professional, clinical, and under 300 words.`, notes)
}

func speechPrompt(text string) string {
	return "In a warm, clear, caregiver voice, say: " + text
}
