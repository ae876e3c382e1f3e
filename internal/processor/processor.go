package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/nguyentantai21042004/secretary/internal/writer"
	"github.com/schollz/progressbar/v3"
)

// ProcessAll walks the input directory and processes each file in turn.
// The first file whose audio cannot be extracted aborts the batch.
func (p *implProcessor) ProcessAll(ctx context.Context, dir string) error {
	files, err := discoverInputs(dir)
	if err != nil {
		return fmt.Errorf("list inputs: %w", err)
	}

	p.logger.Info(ctx, "Found %d input files in %s", len(files), dir)

	bar := p.newBar(len(files), "inputs", false)
	for _, path := range files {
		if err := p.ProcessFile(ctx, path); err != nil {
			return err
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	return nil
}

// ProcessFile orchestrates the pipeline for one input file
func (p *implProcessor) ProcessFile(ctx context.Context, path string) error {
	startTime := time.Now()
	log := p.logger.WithField("input", filepath.Base(path))

	log.Info(ctx, "Starting: %s", path)

	// Step 1: Split into audio chunks
	audio, err := p.chunker.Split(ctx, path, p.run.ScratchDir)
	if err != nil {
		return fmt.Errorf("split %s: %w", path, err)
	}
	defer p.cleanupChunks(ctx, audio)

	// Step 2: Transcribe, segment and append chunk by chunk
	outputPath := p.run.OutputPath(audio.Name)
	unlock := p.lockOutput(outputPath)
	defer unlock()

	written, failed := 0, 0

	bar := p.newBar(len(audio.Chunks), audio.Name, true)
	for _, ch := range audio.Chunks {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := p.processChunk(ctx, outputPath, ch.Path); err != nil {
			log.Error(ctx, "Chunk %d (%s at %s) skipped: %v", ch.Index, ch.Duration, ch.Offset, err)
			failed++
		} else {
			written++
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	// Step 3: Optional docx rendering of the finished transcript
	if p.cfg.Output.Docx && written > 0 {
		docxPath := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".docx"
		if err := writer.ExportDocx(audio.Name, outputPath, docxPath); err != nil {
			log.Warn(ctx, "Failed to export docx: %v", err)
		}
	}

	log.Info(ctx, "Finished %s: %d chunks written, %d skipped in %s",
		audio.Name, written, failed, time.Since(startTime).Round(time.Millisecond))
	return nil
}

func (p *implProcessor) newBar(total int, description string, transient bool) *progressbar.ProgressBar {
	opts := []progressbar.Option{
		progressbar.OptionSetWriter(p.progress),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
	}
	if transient {
		opts = append(opts, progressbar.OptionClearOnFinish())
	}
	return progressbar.NewOptions(total, opts...)
}

// discoverInputs lists regular, non-hidden files sorted by name
func discoverInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}

	sort.Strings(files)
	return files, nil
}
