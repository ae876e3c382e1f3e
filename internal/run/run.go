package run

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const (
	// TimestampLayout names run directories (YYYYmmddHHMMSS).
	TimestampLayout = "20060102150405"
	scratchDirName  = "tmp"
)

// Run owns the timestamped output directory and the scratch directory of
// one invocation.
type Run struct {
	ID         string
	StartedAt  time.Time
	Dir        string
	ScratchDir string
}

// New creates <outputRoot>/<timestamp>. The output root is created when
// missing; the timestamped directory itself must not exist yet.
func New(outputRoot string, now time.Time) (*Run, error) {
	if err := os.MkdirAll(outputRoot, 0755); err != nil {
		return nil, fmt.Errorf("create output root %s: %w", outputRoot, err)
	}

	dir := filepath.Join(outputRoot, now.Format(TimestampLayout))
	if err := os.Mkdir(dir, 0755); err != nil {
		return nil, fmt.Errorf("create run directory: %w", err)
	}

	return &Run{
		ID:         uuid.NewString(),
		StartedAt:  now,
		Dir:        dir,
		ScratchDir: filepath.Join(dir, scratchDirName),
	}, nil
}

// PrepareScratch creates an empty scratch directory, discarding any
// leftover one.
func (r *Run) PrepareScratch() error {
	if err := os.RemoveAll(r.ScratchDir); err != nil {
		return fmt.Errorf("remove stale scratch: %w", err)
	}
	if err := os.Mkdir(r.ScratchDir, 0755); err != nil {
		return fmt.Errorf("create scratch: %w", err)
	}
	return nil
}

// Cleanup removes the scratch directory. Calling it more than once is fine.
func (r *Run) Cleanup() error {
	if err := os.RemoveAll(r.ScratchDir); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove scratch: %w", err)
	}
	return nil
}

// OutputPath returns the text file for the input named name.
func (r *Run) OutputPath(name string) string {
	return filepath.Join(r.Dir, name+".txt")
}
