package segment

import (
	"fmt"
	"strings"

	"plagcheck/internal/services"
)

// Backend names accepted by New.
const (
	BackendGSE   = "gse"
	BackendRunes = "runes"
)

// Segmenter splits a run of contiguous CJK characters into an ordered,
// non-overlapping sequence of words.
type Segmenter interface {
	Segment(text string) []string
}

// Func adapts a plain function to the Segmenter interface.
type Func func(text string) []string

// Segment calls f.
func (f Func) Segment(text string) []string {
	return f(text)
}

// Runes emits every rune as its own token.
type Runes struct{}

// Segment splits text into single-rune tokens.
func (Runes) Segment(text string) []string {
	if text == "" {
		return nil
	}
	out := make([]string, 0, len(text)/3+1)
	for _, r := range text {
		out = append(out, string(r))
	}
	return out
}

// New constructs the named backend. Dictionary paths only apply to gse; when
// empty the embedded simplified-Chinese dictionary is loaded.
func New(backend string, dictPaths []string) (Segmenter, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendGSE:
		return NewGSE(dictPaths...)
	case BackendRunes:
		return Runes{}, nil
	default:
		return nil, services.Wrap(services.ErrConfiguration, "segment", "new",
			fmt.Sprintf("unsupported backend %q", backend), nil)
	}
}
