package segmenter

import (
	"strings"
	"unicode"

	"github.com/neurosnap/sentences"
)

type punktSegmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

func (p *punktSegmenter) Segment(text string) []string {
	var out []string
	for _, s := range p.tokenizer.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// cjkSegmenter breaks after full-width and ASCII sentence terminators.
// Closing brackets and quotes directly after a terminator stay with it.
type cjkSegmenter struct{}

func (cjkSegmenter) Segment(text string) []string {
	var (
		out []string
		cur strings.Builder
	)
	flush := func() {
		if t := strings.TrimSpace(cur.String()); t != "" {
			out = append(out, t)
		}
		cur.Reset()
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\n' {
			flush()
			continue
		}
		cur.WriteRune(r)
		if !isTerminator(r) {
			continue
		}
		for i+1 < len(runes) && (isTerminator(runes[i+1]) || isCloser(runes[i+1])) {
			i++
			cur.WriteRune(runes[i])
		}
		flush()
	}
	flush()
	return out
}

func isTerminator(r rune) bool {
	switch r {
	case '。', '！', '？', '．', '!', '?':
		return true
	}
	return false
}

func isCloser(r rune) bool {
	switch r {
	case '」', '』', '）', ')', '”', '"', '】':
		return true
	}
	return false
}

// autoSegmenter routes Japanese/Chinese text to the rule splitter.
type autoSegmenter struct {
	cjk   Segmenter
	latin Segmenter
}

func (a autoSegmenter) Segment(text string) []string {
	if containsCJK(text) {
		return a.cjk.Segment(text)
	}
	return a.latin.Segment(text)
}

func containsCJK(text string) bool {
	for _, r := range text {
		if unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana) {
			return true
		}
	}
	return false
}

type passthrough struct{}

func (passthrough) Segment(text string) []string {
	if t := strings.TrimSpace(text); t != "" {
		return []string{t}
	}
	return nil
}

// spaceStripper drops ASCII spaces recognizers insert between Japanese words.
type spaceStripper struct {
	next Segmenter
}

func (s spaceStripper) Segment(text string) []string {
	return s.next.Segment(strings.ReplaceAll(text, " ", ""))
}
