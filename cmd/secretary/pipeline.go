package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nguyentantai21042004/secretary/internal/chunker"
	"github.com/nguyentantai21042004/secretary/internal/config"
	"github.com/nguyentantai21042004/secretary/internal/logger"
	"github.com/nguyentantai21042004/secretary/internal/processor"
	"github.com/nguyentantai21042004/secretary/internal/run"
	"github.com/nguyentantai21042004/secretary/internal/segmenter"
	"github.com/nguyentantai21042004/secretary/internal/transcriber"
	"github.com/nguyentantai21042004/secretary/internal/watcher"
	"github.com/nguyentantai21042004/secretary/pkg/executor"
	"github.com/spf13/cobra"
)

type cliFlags struct {
	input      string
	output     string
	configPath string
	backend    string
	language   string
	noProgress bool
}

// resolve drops path flags left at their defaults so a config file can
// still set them.
func (f *cliFlags) resolve(cmd *cobra.Command) *cliFlags {
	out := *f
	if fl := cmd.Flag("input"); fl != nil && !fl.Changed {
		out.input = ""
	}
	if fl := cmd.Flag("output"); fl != nil && !fl.Changed {
		out.output = ""
	}
	return &out
}

// session is everything one invocation needs, with the run directory
// already created and its scratch directory prepared.
type session struct {
	cfg  *config.Config
	log  logger.Logger
	run  *run.Run
	proc processor.Processor
}

func setup(flags *cliFlags) (*session, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Apply(config.Overrides{
		Input:      flags.input,
		Output:     flags.output,
		Backend:    flags.backend,
		Language:   flags.language,
		NoProgress: flags.noProgress,
	}); err != nil {
		return nil, err
	}
	if err := cfg.RequireAPIKeys(); err != nil {
		return nil, err
	}

	log := logger.NewWithOptions(logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})

	// Build collaborators first so a misconfiguration leaves no empty run directory
	ch, err := chunker.New(cfg.Transcoder, executor.New(), log)
	if err != nil {
		return nil, err
	}
	tr, err := transcriber.New(cfg.Transcriber, log)
	if err != nil {
		return nil, err
	}
	seg, err := segmenter.New(cfg.Segmenter)
	if err != nil {
		return nil, err
	}

	r, err := run.New(cfg.Paths.Output, time.Now())
	if err != nil {
		return nil, err
	}
	if err := r.PrepareScratch(); err != nil {
		return nil, err
	}

	proc := processor.New(cfg, r, processor.Dependencies{
		Chunker:     ch,
		Transcriber: tr,
		Segmenter:   seg,
		Logger:      log,
		Progress:    os.Stderr,
	})

	return &session{cfg: cfg, log: log, run: r, proc: proc}, nil
}

func (s *session) cleanup(ctx context.Context) {
	if err := s.run.Cleanup(); err != nil {
		s.log.Warn(ctx, "Failed to remove scratch directory: %v", err)
	}
}

func (s *session) banner(ctx context.Context, mode string) {
	s.log.Info(ctx, "========================================")
	s.log.Info(ctx, "secretary %s (%s)", version, mode)
	s.log.Info(ctx, "Input: %s", s.cfg.Paths.Input)
	s.log.Info(ctx, "Output: %s", s.run.Dir)
	s.log.Info(ctx, "Backend: %s (%s, %s)", s.cfg.Transcriber.Backend, s.cfg.Transcriber.Model, s.cfg.Transcriber.Language)
	s.log.Info(ctx, "Chunk length: %ds", s.cfg.Transcoder.ChunkSeconds)
	s.log.Info(ctx, "========================================")
}

func runBatch(flags *cliFlags) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s, err := setup(flags)
	if err != nil {
		return err
	}
	return s.batch(ctx)
}

// batch processes the input directory once. The scratch directory is
// removed on every return path, including cancellation.
func (s *session) batch(ctx context.Context) error {
	defer s.cleanup(ctx)

	s.banner(ctx, "batch")
	if err := s.proc.ProcessAll(ctx, s.cfg.Paths.Input); err != nil {
		return err
	}

	s.log.Info(ctx, "Transcripts written to %s", s.run.Dir)
	return nil
}

func runWatch(flags *cliFlags) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s, err := setup(flags)
	if err != nil {
		return err
	}
	defer s.cleanup(ctx)

	s.banner(ctx, "watch")

	// Create watcher before the initial pass so files dropped meanwhile are not missed
	w, err := watcher.New(s.cfg.Paths.Input, s.proc.ProcessFile, s.log, s.cfg.Watch.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	if err := s.proc.ProcessAll(ctx, s.cfg.Paths.Input); err != nil {
		return err
	}

	s.log.Info(ctx, "Watching %s, press Ctrl+C to stop", s.cfg.Paths.Input)
	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	s.log.Info(ctx, "Shutdown complete, transcripts in %s", s.run.Dir)
	return nil
}
