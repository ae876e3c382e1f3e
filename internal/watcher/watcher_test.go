package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/secretary/internal/logger"
)

func TestIsVideoFile(t *testing.T) {
	tests := map[string]bool{
		"talk.mp4":        true,
		"TALK.MOV":        true,
		"clip.webm":       true,
		"notes.txt":       false,
		"audio.wav":       false,
		"no-extension":    false,
		"dir/meeting.mkv": true,
	}
	for path, want := range tests {
		if got := isVideoFile(path); got != want {
			t.Errorf("isVideoFile(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestStartDispatchesNewVideos(t *testing.T) {
	dir := t.TempDir()
	got := make(chan string, 4)

	w, err := New(dir, func(ctx context.Context, path string) error {
		got <- filepath.Base(path)
		return nil
	}, logger.Nop(), 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()
	w.(*implWatcher).settleDelay = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// give the watcher a moment to enter its loop
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "new.mp4"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-got:
		if name != "new.mp4" {
			t.Errorf("handler got %q, want new.mp4", name)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Start() = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not return after cancel")
	}
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), nil, logger.Nop(), 1)
	if err == nil {
		t.Fatal("New() should fail for a missing directory")
	}
}
