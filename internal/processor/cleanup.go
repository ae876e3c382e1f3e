package processor

import (
	"context"
	"errors"
	"os"

	"github.com/nguyentantai21042004/secretary/internal/chunker"
)

// cleanupChunks removes the chunk files of one input once it is done.
// The run's scratch directory itself is removed by the caller.
func (p *implProcessor) cleanupChunks(ctx context.Context, audio chunker.Audio) {
	for _, ch := range audio.Chunks {
		p.cleanupTempFile(ctx, ch.Path)
	}
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}
