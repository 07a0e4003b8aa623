package preflight

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sys/unix"

	"plagcheck/internal/config"
	"plagcheck/internal/document"
	"plagcheck/internal/segment"
	"plagcheck/internal/thesaurus"
)

// CheckConfig reports whether the loaded configuration validates.
func CheckConfig(cfg *config.Config) Result {
	const name = "Configuration"
	if err := cfg.Validate(); err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	return Result{Name: name, Passed: true, Detail: "valid"}
}

// CheckSegmenter verifies that the configured segmentation backend loads.
func CheckSegmenter(cfg *config.Config) Result {
	const name = "Segmenter"
	start := time.Now()
	seg, err := segment.New(cfg.Segmenter.Backend, cfg.Segmenter.Dictionaries)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", cfg.Segmenter.Backend, err)}
	}
	if len(seg.Segment("自然语言")) == 0 {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: produced no words)", cfg.Segmenter.Backend)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (loaded in %s)", cfg.Segmenter.Backend, time.Since(start).Round(time.Millisecond))}
}

// CheckDictionaries verifies each user dictionary is a readable file.
func CheckDictionaries(paths []string) []Result {
	results := make([]Result, 0, len(paths))
	for _, p := range paths {
		results = append(results, checkReadableFile("Dictionary "+filepath.Base(p), p))
	}
	return results
}

// CheckThesaurus verifies that the configured synonym table loads.
func CheckThesaurus(ctx context.Context, cfg *config.Config) Result {
	const name = "Thesaurus"
	if cfg.Thesaurus.Disabled {
		return Result{Name: name, Passed: true, Detail: "Disabled"}
	}
	src := thesaurus.Source{Path: cfg.Thesaurus.Path, SQLitePath: cfg.Thesaurus.SQLitePath}
	table, err := thesaurus.Load(ctx, src)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", src.Describe(), err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d terms)", src.Describe(), table.Len())}
}

// CheckLogDirectory verifies the log directory, creating it when missing.
func CheckLogDirectory(path string) Result {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return Result{Name: "Log directory", Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	return CheckDirectoryAccess("Log directory", path)
}

// CheckInputFile reports whether path is acceptable as a comparison input.
func CheckInputFile(name, path string, maxBytes int64) Result {
	expanded, err := document.ValidatePath(path, name, maxBytes)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	info, err := os.Stat(expanded)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", expanded, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s)", expanded, humanize.IBytes(uint64(info.Size())))}
}

// CheckOutputPath reports whether a result file can be written at path. The
// directory is not created.
func CheckOutputPath(name, path string) Result {
	expanded, err := config.ExpandPath(path)
	if err != nil || expanded == "" {
		return Result{Name: name, Detail: fmt.Sprintf("%q (error: invalid path)", path)}
	}
	info, err := os.Stat(expanded)
	switch {
	case err == nil && info.IsDir():
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", expanded)}
	case err == nil:
		if err := unix.Access(expanded, unix.W_OK); err != nil {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: not writable: %v)", expanded, err)}
		}
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (will overwrite)", expanded)}
	case !errors.Is(err, os.ErrNotExist):
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", expanded, err)}
	}

	dir := nearestExisting(filepath.Dir(expanded))
	check := CheckDirectoryAccess(name, dir)
	if !check.Passed {
		return check
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (will create)", expanded)}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

func checkReadableFile(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.Mode().IsRegular() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a regular file)", path)}
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not readable: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s)", path, humanize.IBytes(uint64(info.Size())))}
}

// nearestExisting walks up from dir to the first directory that exists.
func nearestExisting(dir string) string {
	for {
		if _, err := os.Stat(dir); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
