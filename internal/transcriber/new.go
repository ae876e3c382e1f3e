package transcriber

import (
	"fmt"

	"github.com/nguyentantai21042004/secretary/internal/config"
	"github.com/nguyentantai21042004/secretary/internal/logger"
)

// New builds the configured backend, wrapped with retries when enabled
func New(cfg config.TranscriberConfig, log logger.Logger) (Transcriber, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, fmt.Errorf("%s backend requires at least one API key", cfg.Backend)
	}

	var t Transcriber
	switch cfg.Backend {
	case config.BackendOpenAI:
		t = newOpenAI(cfg.APIKeys[0], cfg.Model, cfg.Language, cfg.BaseURL)
	case config.BackendGemini, "":
		t = newGemini(cfg, log)
	default:
		return nil, fmt.Errorf("unknown transcriber backend: %s", cfg.Backend)
	}

	if cfg.MaxRetries > 0 {
		t = withRetry(t, cfg.MaxRetries, log)
	}
	return t, nil
}
