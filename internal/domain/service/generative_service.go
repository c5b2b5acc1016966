package service

import "context"

// GenerationParams are the sampling parameters sent with a text prompt.
type GenerationParams struct {
	Temperature     float32
	TopK            float32
	TopP            float32
	MaxOutputTokens int32
}

// SpeechAudio is raw PCM audio returned by the speech model.
type SpeechAudio struct {
	PCM        []byte
	MIMEType   string
	SampleRate int
}

// GenerativeService abstracts the generative-content API.
type GenerativeService interface {
	// GenerateText sends prompt and returns the first candidate's text (possibly empty).
	GenerateText(ctx context.Context, prompt string, params GenerationParams) (string, error)

	// GenerateSpeech requests the AUDIO modality and returns the inline audio payload.
	GenerateSpeech(ctx context.Context, prompt string) (*SpeechAudio, error)
}
