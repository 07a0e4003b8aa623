package document

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/sys/unix"

	"plagcheck/internal/fileutil"
	"plagcheck/internal/services"
)

// LockFileName is the advisory lock taken in a result directory while a
// result is written.
const LockFileName = ".plagcheck.lock"

const lockRetryDelay = 25 * time.Millisecond

// FormatPercent renders percent with two decimals, the result file format.
func FormatPercent(percent float64) string {
	return strconv.FormatFloat(percent, 'f', 2, 64)
}

// CheckResultPath prepares the directory of a result path and verifies the
// result can be written: the directory is created when missing, and an
// existing result file must be writable.
func CheckResultPath(path string) error {
	if path == "" {
		return services.Wrap(services.ErrValidation, "document", "check result", "result path is empty", ErrEmptyPath)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return services.Wrap(services.ErrIO, "document", "check result",
			fmt.Sprintf("create output directory %s", dir), err)
	}
	info, err := os.Stat(path)
	switch {
	case err == nil:
		if info.IsDir() {
			return services.Wrap(services.ErrValidation, "document", "check result",
				fmt.Sprintf("result path is a directory: %s", path), ErrNotRegular)
		}
		if err := unix.Access(path, unix.W_OK); err != nil {
			return services.Wrap(services.ErrPermission, "document", "check result",
				fmt.Sprintf("no write permission for result file: %s", path), ErrNotWritable)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return services.Wrap(services.ErrIO, "document", "check result", path, err)
	}
	if err := unix.Access(dir, unix.W_OK); err != nil {
		return services.Wrap(services.ErrPermission, "document", "check result",
			fmt.Sprintf("no write permission for output directory: %s", dir), ErrNotWritable)
	}
	return nil
}

// WriteResult writes percent, formatted with two decimals and no trailing
// newline, to path. Writers to the same directory are serialized by an
// advisory lock and the file is replaced atomically.
func WriteResult(ctx context.Context, path string, percent float64) error {
	if err := CheckResultPath(path); err != nil {
		return err
	}
	dir := filepath.Dir(path)

	lock := flock.New(filepath.Join(dir, LockFileName))
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return services.Wrap(services.ErrIO, "document", "write result",
			fmt.Sprintf("lock output directory %s", dir), err)
	}
	if !locked {
		return services.Wrap(services.ErrIO, "document", "write result",
			fmt.Sprintf("output directory %s is locked", dir), nil)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := fileutil.WriteFileAtomic(path, []byte(FormatPercent(percent)), mode); err != nil {
		return services.Wrap(services.ErrIO, "document", "write result", path, err)
	}
	return nil
}
