package textutil

// runeSegmenter splits a CJK run into single characters.
type runeSegmenter struct{}

func (runeSegmenter) Segment(text string) []string {
	out := make([]string, 0, len(text))
	for _, r := range text {
		out = append(out, string(r))
	}
	return out
}

// wholeSegmenter returns the run unchanged as one word.
type wholeSegmenter struct {
	calls []string
}

func (w *wholeSegmenter) Segment(text string) []string {
	w.calls = append(w.calls, text)
	return []string{text}
}
