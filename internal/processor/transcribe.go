package processor

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/secretary/internal/segmenter"
	"github.com/nguyentantai21042004/secretary/internal/writer"
)

// processChunk transcribes one chunk and appends its sentences to outputPath
func (p *implProcessor) processChunk(ctx context.Context, outputPath, chunkPath string) error {
	text, err := p.transcriber.Transcribe(ctx, chunkPath)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	sentences := p.segmenter.Segment(text)
	if len(sentences) == 0 {
		return fmt.Errorf("segment: no sentences in %q", text)
	}

	block := segmenter.Join(sentences)
	p.logger.Debug(ctx, "text: %s", block)

	if err := writer.Append(outputPath, block); err != nil {
		return fmt.Errorf("save text: %w", err)
	}
	return nil
}
