package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"plagcheck/internal/services"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestValidatePath(t *testing.T) {
	dir := t.TempDir()
	ok := writeFile(t, dir, "orig.txt", []byte("今天是星期天"))
	empty := writeFile(t, dir, "empty.txt", nil)
	big := writeFile(t, dir, "big.txt", []byte(strings.Repeat("x", 2048)))

	tests := []struct {
		name     string
		path     string
		maxBytes int64
		sentinel error
		marker   error
	}{
		{"empty path", "  ", DefaultMaxBytes, ErrEmptyPath, services.ErrValidation},
		{"missing", filepath.Join(dir, "missing.txt"), DefaultMaxBytes, ErrNotFound, services.ErrNotFound},
		{"directory", dir, DefaultMaxBytes, ErrNotRegular, services.ErrValidation},
		{"empty file", empty, DefaultMaxBytes, ErrEmptyFile, services.ErrValidation},
		{"too large", big, 1024, ErrTooLarge, services.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidatePath(tt.path, "original", tt.maxBytes)
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("expected %v, got %v", tt.sentinel, err)
			}
			if !errors.Is(err, tt.marker) {
				t.Fatalf("expected marker %v, got %v", tt.marker, err)
			}
			if !strings.Contains(err.Error(), "original") && tt.sentinel != ErrEmptyPath {
				t.Fatalf("expected label in message: %v", err)
			}
		})
	}

	got, err := ValidatePath(ok, "original", DefaultMaxBytes)
	if err != nil {
		t.Fatalf("ValidatePath returned error: %v", err)
	}
	if got != ok {
		t.Fatalf("ValidatePath = %q, want %q", got, ok)
	}

	if _, err := ValidatePath(big, "original", 0); err != nil {
		t.Fatalf("expected no cap with maxBytes 0, got %v", err)
	}
}

func TestValidatePathTooLargeMessage(t *testing.T) {
	big := writeFile(t, t.TempDir(), "big.txt", []byte(strings.Repeat("x", 3*1024)))
	_, err := ValidatePath(big, "candidate", 2*1024)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "3.0 KiB") || !strings.Contains(err.Error(), "2.0 KiB") {
		t.Fatalf("expected humanized sizes in %q", err.Error())
	}
}

func TestValidatePathExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, home, "doc.txt", []byte("text"))

	got, err := ValidatePath("~/doc.txt", "original", DefaultMaxBytes)
	if err != nil {
		t.Fatalf("ValidatePath returned error: %v", err)
	}
	if got != filepath.Join(home, "doc.txt") {
		t.Fatalf("ValidatePath = %q", got)
	}
}

func TestValidatePathUnreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission checks")
	}
	path := writeFile(t, t.TempDir(), "secret.txt", []byte("text"))
	if err := os.Chmod(path, 0o200); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	_, err := ValidatePath(path, "original", DefaultMaxBytes)
	if !errors.Is(err, ErrUnreadable) || !errors.Is(err, services.ErrPermission) {
		t.Fatalf("expected unreadable permission error, got %v", err)
	}
}
