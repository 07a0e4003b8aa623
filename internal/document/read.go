package document

import (
	"errors"
	"fmt"
	"strings"

	"plagcheck/internal/fileutil"
	"plagcheck/internal/services"
)

// Document is a decoded input file.
type Document struct {
	Path     string
	Text     string
	Encoding string
	Size     int64
	SHA256   string
}

// Read loads and decodes path without a size cap.
func Read(path string) (Document, error) {
	return ReadLimit(path, 0)
}

// ReadLimit loads and decodes path, refusing files larger than maxBytes
// (no cap when maxBytes <= 0). Surrounding whitespace is trimmed from the
// text; a whitespace-only file yields ErrBlank.
func ReadLimit(path string, maxBytes int64) (Document, error) {
	data, err := fileutil.ReadFileLimited(path, maxBytes)
	if err != nil {
		if errors.Is(err, fileutil.ErrLimitExceeded) {
			return Document{}, services.Wrap(services.ErrValidation, "document", "read", path, ErrTooLarge)
		}
		return Document{}, services.Wrap(services.ErrIO, "document", "read", path, err)
	}

	text, encodingName, err := Decode(data)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Document{}, services.Wrap(services.ErrValidation, "document", "read",
			fmt.Sprintf("%s contains only whitespace", path), ErrBlank)
	}
	return Document{
		Path:     path,
		Text:     text,
		Encoding: encodingName,
		Size:     int64(len(data)),
		SHA256:   fileutil.Digest(data),
	}, nil
}
