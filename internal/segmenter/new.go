package segmenter

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences/english"
	"github.com/nguyentantai21042004/secretary/internal/config"
)

// New builds the segmenter for cfg.Mode: auto, punkt, cjk or none
func New(cfg config.SegmenterConfig) (Segmenter, error) {
	var s Segmenter
	switch strings.ToLower(cfg.Mode) {
	case "none":
		s = passthrough{}
	case "cjk":
		s = cjkSegmenter{}
	case "punkt":
		p, err := newPunkt()
		if err != nil {
			return nil, err
		}
		s = p
	case "auto", "":
		p, err := newPunkt()
		if err != nil {
			return nil, err
		}
		s = autoSegmenter{cjk: cjkSegmenter{}, latin: p}
	default:
		return nil, fmt.Errorf("unknown segmenter mode: %s", cfg.Mode)
	}

	if cfg.StripSpaces {
		s = spaceStripper{next: s}
	}
	return s, nil
}

func newPunkt() (*punktSegmenter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("load punkt model: %w", err)
	}
	return &punktSegmenter{tokenizer: tokenizer}, nil
}
