package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type implLogger struct {
	entry *logrus.Entry
}

// Options configures the logrus backend.
type Options struct {
	Level  string
	Format string // text or json
	File   string // optional rotating log file, written in addition to stderr
}

// New creates a new Logger instance writing text to stderr
func New(level string) Logger {
	return NewWithOptions(Options{Level: level})
}

// NewWithOptions creates a Logger with the given format and outputs
func NewWithOptions(opts Options) Logger {
	base := logrus.New()

	switch strings.ToLower(opts.Format) {
	case "json":
		base.SetFormatter(&logrus.JSONFormatter{})
	default:
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if lvl, err := logrus.ParseLevel(strings.ToLower(opts.Level)); err == nil {
		base.SetLevel(lvl)
	} else {
		base.SetLevel(logrus.InfoLevel)
	}

	var out io.Writer = os.Stderr
	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    20, // megabytes
			MaxBackups: 3,
			MaxAge:     30,
		}
		out = io.MultiWriter(os.Stderr, rotator)
	}
	base.SetOutput(out)

	return &implLogger{entry: logrus.NewEntry(base)}
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.entry.WithContext(ctx).Debugf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.entry.WithContext(ctx).Infof(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.entry.WithContext(ctx).Warnf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.entry.WithContext(ctx).Errorf(msg, args...)
}

func (l *implLogger) WithField(key string, value interface{}) Logger {
	return &implLogger{entry: l.entry.WithField(key, value)}
}

type nopLogger struct{}

// Nop returns a Logger that discards everything
func Nop() Logger { return nopLogger{} }

func (nopLogger) Debug(context.Context, string, ...interface{}) {}
func (nopLogger) Info(context.Context, string, ...interface{})  {}
func (nopLogger) Warn(context.Context, string, ...interface{})  {}
func (nopLogger) Error(context.Context, string, ...interface{}) {}
func (n nopLogger) WithField(string, interface{}) Logger        { return n }
