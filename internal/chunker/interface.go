package chunker

import (
	"context"
	"time"
)

// Chunk is one fixed-length audio slice extracted from a source file
type Chunk struct {
	Path     string
	Index    int
	Offset   time.Duration
	Duration time.Duration
}

// Audio groups the chunks of one input, in offset order
type Audio struct {
	Name   string
	Chunks []Chunk
}

// Chunker splits media files into audio chunks
type Chunker interface {
	Split(ctx context.Context, inputPath, scratchDir string) (Audio, error)
}
