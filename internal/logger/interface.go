package logger

import "context"

// Logger defines the leveled, printf-style logging used across the pipeline
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})

	// WithField returns a Logger that tags every entry with key=value
	WithField(key string, value interface{}) Logger
}
