package processor

import "context"

// Processor defines the interface for transcript processing operations
type Processor interface {
	// ProcessAll processes every input file in dir, in name order
	ProcessAll(ctx context.Context, dir string) error
	// ProcessFile chunks, transcribes and segments one input file
	ProcessFile(ctx context.Context, path string) error
}
