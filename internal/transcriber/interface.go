package transcriber

import (
	"context"
	"errors"
)

// ErrNoSpeech is returned when the backend recognized nothing in a chunk.
var ErrNoSpeech = errors.New("no speech recognized")

// Transcriber converts one audio file into recognized text
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
