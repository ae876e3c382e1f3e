package run

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewCreatesTimestampedDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "output")
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)

	r, err := New(root, now)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	want := filepath.Join(root, "20240309140507")
	if r.Dir != want {
		t.Errorf("Dir = %q, want %q", r.Dir, want)
	}
	if fi, err := os.Stat(want); err != nil || !fi.IsDir() {
		t.Fatalf("run directory not created: %v", err)
	}
	if r.ID == "" {
		t.Error("run ID is empty")
	}

	entries, _ := os.ReadDir(root)
	if len(entries) != 1 {
		t.Errorf("output root has %d entries, want exactly 1", len(entries))
	}
}

func TestNewRefusesExistingDir(t *testing.T) {
	root := t.TempDir()
	now := time.Now()

	if _, err := New(root, now); err != nil {
		t.Fatalf("first New() error = %v", err)
	}
	if _, err := New(root, now); err == nil {
		t.Error("second New() in the same second should fail")
	}
}

func TestScratchLifecycle(t *testing.T) {
	r, err := New(t.TempDir(), time.Now())
	if err != nil {
		t.Fatal(err)
	}

	if err := os.MkdirAll(r.ScratchDir, 0755); err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(r.ScratchDir, "stale.wav")
	if err := os.WriteFile(stale, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := r.PrepareScratch(); err != nil {
		t.Fatalf("PrepareScratch() error = %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale scratch content survived PrepareScratch")
	}

	if err := r.Cleanup(); err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}
	if _, err := os.Stat(r.ScratchDir); !os.IsNotExist(err) {
		t.Error("scratch directory survived Cleanup")
	}
	if err := r.Cleanup(); err != nil {
		t.Errorf("second Cleanup() error = %v", err)
	}
}

func TestOutputPath(t *testing.T) {
	r := &Run{Dir: "/out/20240101000000"}
	if got := r.OutputPath("meeting"); got != filepath.Join("/out/20240101000000", "meeting.txt") {
		t.Errorf("OutputPath() = %q", got)
	}
}
