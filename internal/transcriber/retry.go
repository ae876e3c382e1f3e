package transcriber

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nguyentantai21042004/secretary/internal/logger"
)

type retryingTranscriber struct {
	next       Transcriber
	maxRetries int
	logger     logger.Logger
	newBackOff func() backoff.BackOff
}

func withRetry(next Transcriber, maxRetries int, log logger.Logger) Transcriber {
	return &retryingTranscriber{
		next:       next,
		maxRetries: maxRetries,
		logger:     log,
		newBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
	}
}

func (r *retryingTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	op := func() (string, error) {
		text, err := r.next.Transcribe(ctx, audioPath)
		if errors.Is(err, ErrNoSpeech) {
			return "", backoff.Permanent(err)
		}
		return text, err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(r.newBackOff(), uint64(r.maxRetries)), ctx)
	notify := func(err error, wait time.Duration) {
		r.logger.Warn(ctx, "Transcription of %s failed, retrying in %s: %v", audioPath, wait, err)
	}
	return backoff.RetryNotifyWithData(op, policy, notify)
}
