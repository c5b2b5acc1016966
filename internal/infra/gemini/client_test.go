package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"elderguard/config"
	"elderguard/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) service.GenerativeService {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Gemini.APIKey = "test-key"
	cfg.Gemini.BaseURL = srv.URL + "/"

	c, err := NewClient(context.Background(), cfg, discardLogger())
	require.NoError(t, err)

	return c
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

func TestGenerateText(t *testing.T) {
	var request map[string]any
	var path string

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&request)
		writeJSON(w, map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"role":  "model",
						"parts": []any{map[string]any{"text": "Hydration "}, map[string]any{"text": "matters."}},
					},
				},
			},
		})
	})

	text, err := c.GenerateText(context.Background(), "prompt", service.GenerationParams{
		Temperature: 0.2, TopK: 40, TopP: 0.95, MaxOutputTokens: 1000,
	})
	require.NoError(t, err)
	assert.Equal(t, "Hydration matters.", text)
	assert.True(t, strings.HasSuffix(path, defaultTextModel+":generateContent"), path)

	genCfg, ok := request["generationConfig"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 0.2, genCfg["temperature"], 0.0001)
	assert.InDelta(t, 40, genCfg["topK"], 0.0001)
	assert.InDelta(t, 1000, genCfg["maxOutputTokens"], 0.0001)
}

func TestGenerateText_UpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		writeJSON(w, map[string]any{"error": map[string]any{"code": 500, "message": "boom", "status": "INTERNAL"}})
	})

	_, err := c.GenerateText(context.Background(), "prompt", service.GenerationParams{})
	require.Error(t, err)
}

func TestGenerateSpeech(t *testing.T) {
	pcm := []byte{0x10, 0x20, 0x30, 0x40}

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"parts": []any{map[string]any{
							"inlineData": map[string]any{
								"mimeType": "audio/L16;codec=pcm;rate=24000",
								"data":     base64.StdEncoding.EncodeToString(pcm),
							},
						}},
					},
				},
			},
		})
	})

	audio, err := c.GenerateSpeech(context.Background(), "Say cheerfully: hello")
	require.NoError(t, err)
	assert.Equal(t, pcm, audio.PCM)
	assert.Equal(t, 24000, audio.SampleRate)
}

func TestGenerateSpeech_NoAudio(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]any{
			"candidates": []any{
				map[string]any{"content": map[string]any{"parts": []any{map[string]any{"text": "sorry"}}}},
			},
		})
	})

	_, err := c.GenerateSpeech(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrNoAudio)
}

func TestNewClient_WithoutAPIKey(t *testing.T) {
	c, err := NewClient(context.Background(), &config.Config{}, discardLogger())
	require.NoError(t, err)

	_, err = c.GenerateText(context.Background(), "prompt", service.GenerationParams{})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = c.GenerateSpeech(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSampleRateOf(t *testing.T) {
	assert.Equal(t, 24000, sampleRateOf("audio/L16;codec=pcm;rate=24000", 16000))
	assert.Equal(t, 16000, sampleRateOf("audio/pcm", 16000))
	assert.Equal(t, 16000, sampleRateOf("audio/L16;rate=abc", 16000))
}
