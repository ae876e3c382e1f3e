package segmenter

import "strings"

// Segmenter splits recognized text into sentences
type Segmenter interface {
	Segment(text string) []string
}

// Join re-joins sentences one per line.
func Join(sentences []string) string {
	return strings.Join(sentences, "\n")
}
