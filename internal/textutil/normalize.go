package textutil

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const (
	asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	cjkPunctuation   = "！？。，、；：“”‘’（）【】《》"
)

var punctuationSet = buildRuneSet(asciiPunctuation + cjkPunctuation)

func buildRuneSet(chars string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return set
}

// IsPunctuation reports whether r belongs to the fixed punctuation set removed
// by Normalize.
func IsPunctuation(r rune) bool {
	_, ok := punctuationSet[r]
	return ok
}

// isSpace matches Unicode white space plus the ASCII information separators
// (U+001C..U+001F), which regular-expression \s also treats as space.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Normalize strips punctuation and whitespace from text, keeping every other
// rune in its original order and case. The result feeds edit-distance scoring.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	strip := runes.Remove(runes.Predicate(func(r rune) bool {
		return IsPunctuation(r) || isSpace(r)
	}))
	out, _, err := transform.String(strip, text)
	if err != nil {
		return removeSlow(text)
	}
	return out
}

func removeSlow(text string) string {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		if IsPunctuation(r) || isSpace(r) {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
