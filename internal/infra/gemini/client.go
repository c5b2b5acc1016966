// Package gemini adapts the Google generative-content API to service.GenerativeService.
package gemini

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"elderguard/config"
	"elderguard/internal/domain/service"
	"elderguard/internal/errors"

	"google.golang.org/genai"
)

const (
	defaultTextModel   = "gemini-2.5-flash-preview-09-2025"
	defaultSpeechModel = "gemini-2.5-flash-preview-tts"
	defaultVoice       = "Kore"
	defaultSampleRate  = 24000
)

var (
	// ErrNotConfigured is returned by every call when no API key is configured.
	ErrNotConfigured = errors.New("gemini api key is not configured")

	// ErrNoAudio is returned when the speech model answers without inline audio.
	ErrNoAudio = errors.New("no audio data received from speech model")
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type client struct {
	models      contentGenerator
	textModel   string
	speechModel string
	voice       string
	sampleRate  int
	logger      *slog.Logger
}

// NewClient builds the generative service. A missing API key yields a client whose calls fail
// with ErrNotConfigured so the server can still start.
func NewClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.GenerativeService, error) {
	g := cfg.Gemini
	c := &client{
		textModel:   valueOr(g.TextModel, defaultTextModel),
		speechModel: valueOr(g.SpeechModel, defaultSpeechModel),
		voice:       valueOr(g.Voice, defaultVoice),
		sampleRate:  g.SampleRate,
		logger:      logger,
	}
	if c.sampleRate <= 0 {
		c.sampleRate = defaultSampleRate
	}

	if strings.TrimSpace(g.APIKey) == "" {
		logger.Warn("GEMINI_API_KEY not set, generative features will use fallbacks")

		return c, nil
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  g.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if g.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: g.BaseURL}
	}

	gc, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gemini client")
	}
	c.models = gc.Models

	logger.Info("Gemini client initialized",
		slog.String("text_model", c.textModel),
		slog.String("speech_model", c.speechModel),
	)

	return c, nil
}

// GenerateText implements service.GenerativeService.
func (c *client) GenerateText(ctx context.Context, prompt string, params service.GenerationParams) (string, error) {
	if c.models == nil {
		return "", ErrNotConfigured
	}

	resp, err := c.models.GenerateContent(ctx, c.textModel, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(params.Temperature),
		TopK:            genai.Ptr(params.TopK),
		TopP:            genai.Ptr(params.TopP),
		MaxOutputTokens: params.MaxOutputTokens,
	})
	if err != nil {
		return "", errors.Wrap(err, "generate text")
	}

	var text strings.Builder
	for _, part := range firstCandidateParts(resp) {
		text.WriteString(part.Text)
	}

	return strings.TrimSpace(text.String()), nil
}

// GenerateSpeech implements service.GenerativeService.
func (c *client) GenerateSpeech(ctx context.Context, prompt string) (*service.SpeechAudio, error) {
	if c.models == nil {
		return nil, ErrNotConfigured
	}

	resp, err := c.models.GenerateContent(ctx, c.speechModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityAudio)},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: c.voice},
			},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "generate speech")
	}

	for _, part := range firstCandidateParts(resp) {
		if part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}

		return &service.SpeechAudio{
			PCM:        part.InlineData.Data,
			MIMEType:   part.InlineData.MIMEType,
			SampleRate: sampleRateOf(part.InlineData.MIMEType, c.sampleRate),
		}, nil
	}

	c.logger.Warn("Speech response carried no inline audio", slog.String("model", c.speechModel))

	return nil, ErrNoAudio
}

func firstCandidateParts(resp *genai.GenerateContentResponse) []*genai.Part {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return nil
	}

	return candidate.Content.Parts
}

// sampleRateOf reads the rate parameter of a MIME type such as "audio/L16;codec=pcm;rate=24000".
func sampleRateOf(mimeType string, fallback int) int {
	for _, param := range strings.Split(mimeType, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok || !strings.EqualFold(key, "rate") {
			continue
		}
		if rate, err := strconv.Atoi(value); err == nil && rate > 0 {
			return rate
		}
	}

	return fallback
}

func valueOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}

	return v
}
