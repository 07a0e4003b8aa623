package textutil

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"plagcheck/internal/segment"
)

// Tokenizer splits raw text into semantic tokens. Alphanumeric runs outside the
// CJK block become single lowercase tokens, runs of Chinese characters are
// re-segmented into words, and everything else acts as a separator.
type Tokenizer struct {
	seg segment.Segmenter
}

// NewTokenizer returns a tokenizer that re-segments CJK runs with seg.
func NewTokenizer(seg segment.Segmenter) (*Tokenizer, error) {
	if seg == nil {
		return nil, errors.New("tokenizer requires a segmenter")
	}
	return &Tokenizer{seg: seg}, nil
}

// Tokenize returns the token sequence of text in document order. Empty and
// whitespace-only tokens never appear in the result.
func (t *Tokenizer) Tokenize(text string) []string {
	if text == "" {
		return nil
	}
	return t.resegment(splitScripts(text))
}

// splitScripts performs the first pass: every Chinese rune is its own token and
// contiguous alphanumeric runs are merged and lowercased.
func splitScripts(text string) []string {
	caser := cases.Lower(language.Und)
	tokens := make([]string, 0, len(text)/2+1)
	var word strings.Builder
	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, word.String())
			word.Reset()
		}
	}
	for _, r := range text {
		switch {
		case IsChinese(r):
			flush()
			tokens = append(tokens, string(r))
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			word.WriteString(caser.String(string(r)))
		default:
			flush()
		}
	}
	flush()
	return tokens
}

// resegment joins consecutive Chinese tokens and replaces each run with the
// segmenter's words, leaving other tokens untouched.
func (t *Tokenizer) resegment(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	var run strings.Builder
	flushRun := func() {
		if run.Len() == 0 {
			return
		}
		for _, w := range t.seg.Segment(run.String()) {
			if strings.TrimSpace(w) != "" {
				out = append(out, w)
			}
		}
		run.Reset()
	}
	for _, tok := range tokens {
		if containsChinese(tok) {
			run.WriteString(tok)
			continue
		}
		flushRun()
		if strings.TrimSpace(tok) != "" {
			out = append(out, tok)
		}
	}
	flushRun()
	return out
}
