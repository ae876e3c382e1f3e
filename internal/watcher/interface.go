package watcher

import "context"

// Watcher hands videos appearing in the input directory to a handler
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one newly created video file
type EventHandler func(ctx context.Context, videoPath string) error
