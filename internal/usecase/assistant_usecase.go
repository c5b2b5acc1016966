package usecase

import (
	"context"
	"encoding/json"
	"time"
)

// Limits applied to assistant inputs.
const (
	MaxResearchQueryLength = 1000
	MaxSummarizedNotes     = 50
	MaxSpeechTextLength    = 2000
)

// ResearchResult is the answer to a research query.
type ResearchResult struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// SummaryResult is a clinical summary of a batch of notes.
type SummaryResult struct {
	Summary   string    `json:"summary"`
	NoteCount int       `json:"noteCount"`
	Timestamp time.Time `json:"timestamp"`
}

// SpeechResult is synthesized speech as raw PCM.
type SpeechResult struct {
	PCM           []byte    `json:"-"`
	SampleRate    int       `json:"sampleRate"`
	Channels      int       `json:"channels"`
	BitsPerSample int       `json:"bitsPerSample"`
	Format        string    `json:"format"`
	Timestamp     time.Time `json:"timestamp"`
}

// AssistantUsecase proxies the generative API.
type AssistantUsecase interface {
	// Research answers a medical question. Upstream failures yield a fallback text, never an error.
	Research(ctx context.Context, query string) (*ResearchResult, error)

	// Summarize condenses up to MaxSummarizedNotes notes. Upstream failures yield a fallback text.
	Summarize(ctx context.Context, notes []json.RawMessage) (*SummaryResult, error)

	// TextToSpeech synthesizes text. Upstream failures are returned as errors.
	TextToSpeech(ctx context.Context, text string) (*SpeechResult, error)
}
