package chunker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Split extracts consecutive chunks starting at offset 0 until ffprobe
// reports a zero-duration slice. The zero-duration slice is not returned.
func (c *implChunker) Split(ctx context.Context, inputPath, scratchDir string) (Audio, error) {
	base := filepath.Base(inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	audio := Audio{Name: name}

	c.logger.Info(ctx, "Splitting %s into %s chunks", inputPath, c.chunkLength)

	for index := 0; ; index++ {
		if err := ctx.Err(); err != nil {
			return Audio{}, err
		}

		offset := time.Duration(index) * c.chunkLength
		// the extension keeps a.mp4 and a.mov apart in a shared scratch dir
		filename := filepath.Join(scratchDir, fmt.Sprintf("%s.%d.wav", base, index))

		args := c.trimArgs(inputPath, filename, offset, offset+c.chunkLength)
		if _, err := c.executor.Execute(ctx, c.ffmpegPath, args...); err != nil {
			return Audio{}, fmt.Errorf("ffmpeg extract chunk %d: %w", index, err)
		}

		probed, err := c.probeDuration(ctx, filename)
		if err != nil {
			return Audio{}, fmt.Errorf("probe chunk %d: %w", index, err)
		}
		if probed == 0 {
			c.logger.Debug(ctx, "Chunk %d of %s is empty, stopping", index, name)
			_ = os.Remove(filename)
			break
		}

		audio.Chunks = append(audio.Chunks, Chunk{
			Path:     filename,
			Index:    index,
			Offset:   offset,
			Duration: c.chunkDuration(ctx, filename, probed),
		})
	}

	c.logger.Info(ctx, "Extracted %d chunks from %s", len(audio.Chunks), base)
	return audio, nil
}

// trimArgs builds the ffmpeg arguments extracting [start, end) of the audio
// stream. Extra arguments are placed verbatim before the output file.
func (c *implChunker) trimArgs(inputPath, outputPath string, start, end time.Duration) []string {
	args := ffmpeg.Input(inputPath).
		Audio().
		Filter("atrim", ffmpeg.Args{}, ffmpeg.KwArgs{
			"start": formatSeconds(start),
			"end":   formatSeconds(end),
		}).
		Output(outputPath).
		OverWriteOutput().
		GetArgs()

	return insertBefore(args, outputPath, c.extraArgs)
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%g", d.Seconds())
}

// insertBefore splices extra in front of the last occurrence of target.
func insertBefore(args []string, target string, extra []string) []string {
	if len(extra) == 0 {
		return args
	}
	for i := len(args) - 1; i >= 0; i-- {
		if args[i] != target {
			continue
		}
		out := make([]string, 0, len(args)+len(extra))
		out = append(out, args[:i]...)
		out = append(out, extra...)
		return append(out, args[i:]...)
	}
	return append(args, extra...)
}
