package transcriber

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/secretary/internal/config"
	"github.com/nguyentantai21042004/secretary/internal/logger"
	"google.golang.org/genai"
)

const defaultPrompt = `Transcribe the speech in this audio verbatim. The spoken language is %s.
Output only the transcript text, without timestamps, speaker labels or commentary.
If there is no speech, output nothing.`

type generateFunc func(ctx context.Context, apiKey string, contents []*genai.Content) (string, error)

type geminiTranscriber struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	model      string
	prompt     string
	baseURL    string
	logger     logger.Logger
	generate   generateFunc
}

func newGemini(cfg config.TranscriberConfig, log logger.Logger) *geminiTranscriber {
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = fmt.Sprintf(defaultPrompt, cfg.Language)
	}

	g := &geminiTranscriber{
		apiKeys: cfg.APIKeys,
		model:   cfg.Model,
		prompt:  prompt,
		baseURL: cfg.BaseURL,
		logger:  log,
	}
	g.generate = g.callGemini
	return g
}

// Transcribe sends the WAV file inline to Gemini.
// Rotates API keys on 429 / quota errors.
func (g *geminiTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	data, err := os.ReadFile(audioPath)
	if err != nil {
		return "", fmt.Errorf("read audio: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(g.prompt),
			genai.NewPartFromBytes(data, "audio/wav"),
		}, genai.RoleUser),
	}

	var lastErr error
	for range len(g.apiKeys) {
		key, index := g.key()

		text, err := g.generate(ctx, key, contents)
		if err != nil {
			if isQuotaError(err) {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", index+1)
				g.rotateKey(index)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		text = strings.TrimSpace(text)
		if text == "" {
			return "", ErrNoSpeech
		}
		return text, nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *geminiTranscriber) callGemini(ctx context.Context, apiKey string, contents []*genai.Content) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: g.baseURL},
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", err
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", nil
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return text, nil
}

func (g *geminiTranscriber) key() (string, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.apiKeys[g.currentKey], g.currentKey
}

// rotateKey advances past from unless another caller already did.
func (g *geminiTranscriber) rotateKey(from int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.currentKey == from {
		g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
	}
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
