package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/sys/unix"

	"plagcheck/internal/config"
	"plagcheck/internal/services"
)

// DefaultMaxBytes is the default input size cap.
const DefaultMaxBytes int64 = 100 << 20

// ValidatePath checks that path names a readable, non-empty regular file of at
// most maxBytes (no cap when maxBytes <= 0) and returns the expanded absolute
// path. label names the document in error messages, e.g. "original".
func ValidatePath(path, label string, maxBytes int64) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", services.Wrap(services.ErrValidation, "document", "validate",
			label+" path is empty", ErrEmptyPath)
	}
	expanded, err := config.ExpandPath(strings.TrimSpace(path))
	if err != nil {
		return "", services.Wrap(services.ErrValidation, "document", "validate",
			fmt.Sprintf("expand %s path %q", label, path), err)
	}

	info, err := os.Stat(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", services.Wrap(services.ErrNotFound, "document", "validate",
				fmt.Sprintf("%s file does not exist: %s", label, expanded), ErrNotFound)
		}
		return "", services.Wrap(services.ErrIO, "document", "validate",
			fmt.Sprintf("stat %s file %s", label, expanded), err)
	}
	if !info.Mode().IsRegular() {
		return "", services.Wrap(services.ErrValidation, "document", "validate",
			fmt.Sprintf("%s path is not a regular file: %s", label, expanded), ErrNotRegular)
	}
	if err := unix.Access(expanded, unix.R_OK); err != nil {
		return "", services.Wrap(services.ErrPermission, "document", "validate",
			fmt.Sprintf("no read permission for %s file: %s", label, expanded), ErrUnreadable)
	}
	if info.Size() == 0 {
		return "", services.Wrap(services.ErrValidation, "document", "validate",
			fmt.Sprintf("%s file is empty: %s", label, expanded), ErrEmptyFile)
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		return "", services.Wrap(services.ErrValidation, "document", "validate",
			fmt.Sprintf("%s file is %s, larger than the %s limit: %s",
				label, humanize.IBytes(uint64(info.Size())), humanize.IBytes(uint64(maxBytes)), expanded),
			ErrTooLarge)
	}
	return expanded, nil
}
