package document

import (
	"plagcheck/internal/services"
	"plagcheck/internal/textutil"
)

// Tokenizer splits text into comparison tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Prepared is the engine-ready form of a document.
type Prepared struct {
	Tokens     []string
	Normalized string
}

// Prepare tokenizes text and builds its normalized string. Text that yields
// no tokens or an empty normalized string (for example punctuation only) is
// rejected with ErrNoContent.
func Prepare(tok Tokenizer, text string) (Prepared, error) {
	p := Prepared{
		Tokens:     tok.Tokenize(text),
		Normalized: textutil.Normalize(text),
	}
	if len(p.Tokens) == 0 || p.Normalized == "" {
		return Prepared{}, services.Wrap(services.ErrValidation, "document", "prepare",
			"text has no comparable content after preprocessing", ErrNoContent)
	}
	return p, nil
}
