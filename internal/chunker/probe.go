package chunker

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-audio/wav"
)

// zeroDurationSentinel is what ffprobe prints for a slice with no samples.
const zeroDurationSentinel = "N/A"

// probeDuration asks ffprobe for the container duration in seconds.
// Output containing the sentinel counts as zero; so does a parsed 0.
func (c *implChunker) probeDuration(ctx context.Context, path string) (float64, error) {
	out, runErr := c.executor.CombinedOutput(ctx, c.ffprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	return parseProbeOutput(out, runErr)
}

func parseProbeOutput(out string, runErr error) (float64, error) {
	if strings.Contains(out, zeroDurationSentinel) {
		return 0, nil
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		if runErr != nil {
			return 0, fmt.Errorf("ffprobe: %w", runErr)
		}
		return 0, fmt.Errorf("unexpected ffprobe output %q: %w", strings.TrimSpace(out), err)
	}
	return seconds, nil
}

// chunkDuration prefers the WAV header; the probed value is the fallback.
func (c *implChunker) chunkDuration(ctx context.Context, path string, probed float64) time.Duration {
	d, err := wavDuration(path)
	if err != nil {
		c.logger.Debug(ctx, "Reading WAV header of %s failed, using ffprobe duration: %v", path, err)
		return time.Duration(probed * float64(time.Second))
	}
	return d
}

func wavDuration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return 0, fmt.Errorf("not a valid wav file")
	}
	if err := dec.FwdToPCM(); err != nil {
		return 0, fmt.Errorf("seek to pcm: %w", err)
	}

	bytesPerSec := int64(dec.SampleRate) * int64(dec.NumChans) * int64(dec.BitDepth/8)
	if bytesPerSec == 0 {
		return 0, fmt.Errorf("wav header has no byte rate")
	}
	return time.Duration(float64(dec.PCMLen()) / float64(bytesPerSec) * float64(time.Second)), nil
}
