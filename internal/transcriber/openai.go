package transcriber

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAI speech-to-text via audio.transcriptions
type openAITranscriber struct {
	client   *openai.Client
	model    string
	language string
}

func newOpenAI(apiKey, model, language, baseURL string) *openAITranscriber {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.Whisper1
	}
	return &openAITranscriber{
		client:   openai.NewClientWithConfig(cfg),
		model:    model,
		language: isoLanguage(language),
	}
}

func (o *openAITranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	resp, err := o.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    o.model,
		FilePath: audioPath,
		Language: o.language,
	})
	if err != nil {
		return "", fmt.Errorf("openai transcription: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", ErrNoSpeech
	}
	return text, nil
}

// isoLanguage reduces a locale such as "ja-JP" to its ISO-639-1 code.
func isoLanguage(locale string) string {
	lang, _, _ := strings.Cut(locale, "-")
	return strings.ToLower(lang)
}
