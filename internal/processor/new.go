package processor

import (
	"io"
	"sync"

	"github.com/nguyentantai21042004/secretary/internal/chunker"
	"github.com/nguyentantai21042004/secretary/internal/config"
	"github.com/nguyentantai21042004/secretary/internal/logger"
	"github.com/nguyentantai21042004/secretary/internal/run"
	"github.com/nguyentantai21042004/secretary/internal/segmenter"
	"github.com/nguyentantai21042004/secretary/internal/transcriber"
)

// Dependencies are the external collaborators of a Processor
type Dependencies struct {
	Chunker     chunker.Chunker
	Transcriber transcriber.Transcriber
	Segmenter   segmenter.Segmenter
	Logger      logger.Logger
	// Progress receives progress bars; nil disables them
	Progress io.Writer
}

type implProcessor struct {
	cfg         *config.Config
	run         *run.Run
	chunker     chunker.Chunker
	transcriber transcriber.Transcriber
	segmenter   segmenter.Segmenter
	logger      logger.Logger
	progress    io.Writer

	mu          sync.Mutex
	outputLocks map[string]*sync.Mutex
}

// New creates a new Processor writing into r
func New(cfg *config.Config, r *run.Run, deps Dependencies) Processor {
	progress := deps.Progress
	if progress == nil || !cfg.UI.Progress {
		progress = io.Discard
	}

	return &implProcessor{
		cfg:         cfg,
		run:         r,
		chunker:     deps.Chunker,
		transcriber: deps.Transcriber,
		segmenter:   deps.Segmenter,
		logger:      deps.Logger.WithField("run", r.ID),
		progress:    progress,
		outputLocks: make(map[string]*sync.Mutex),
	}
}

// lockOutput serializes inputs that share a transcript file, such as
// a.mp4 and a.mov in watch mode. The returned func releases the lock.
func (p *implProcessor) lockOutput(path string) func() {
	p.mu.Lock()
	l, ok := p.outputLocks[path]
	if !ok {
		l = &sync.Mutex{}
		p.outputLocks[path] = l
	}
	p.mu.Unlock()

	l.Lock()
	return l.Unlock
}
