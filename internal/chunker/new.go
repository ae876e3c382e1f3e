package chunker

import (
	"fmt"
	"time"

	"github.com/google/shlex"
	"github.com/nguyentantai21042004/secretary/internal/config"
	"github.com/nguyentantai21042004/secretary/internal/logger"
	"github.com/nguyentantai21042004/secretary/pkg/executor"
)

type implChunker struct {
	ffmpegPath  string
	ffprobePath string
	chunkLength time.Duration
	extraArgs   []string
	executor    executor.Executor
	logger      logger.Logger
}

// New creates a Chunker driving ffmpeg/ffprobe through exec
func New(cfg config.TranscoderConfig, exec executor.Executor, log logger.Logger) (Chunker, error) {
	extra, err := shlex.Split(cfg.ExtraArgs)
	if err != nil {
		return nil, fmt.Errorf("parse transcoder.extra_args: %w", err)
	}

	seconds := cfg.ChunkSeconds
	if seconds <= 0 {
		seconds = 60
	}

	return &implChunker{
		ffmpegPath:  cfg.FFmpegPath,
		ffprobePath: cfg.FFprobePath,
		chunkLength: time.Duration(seconds) * time.Second,
		extraArgs:   extra,
		executor:    exec,
		logger:      log,
	}, nil
}
