package batch

import (
	"errors"
	"path/filepath"
	"testing"

	"plagcheck/internal/services"
	"plagcheck/internal/testsupport"
)

func TestParseManifestResolvesPaths(t *testing.T) {
	base := t.TempDir()
	abs := filepath.Join(t.TempDir(), "elsewhere.txt")
	data := []byte(`
output_dir = "results"

[[pair]]
original = "docs/orig.txt"
candidate = "docs/orig_add.txt"

[[pair]]
original = "docs/orig.txt"
candidate = "` + abs + `"
result = "custom/out.txt"

[[pair]]
original = "other/orig.txt"
candidate = "other/orig_add.txt"
`)
	m, err := ParseManifest(data, base)
	if err != nil {
		t.Fatalf("ParseManifest returned error: %v", err)
	}
	if m.OutputDir != filepath.Join(base, "results") {
		t.Fatalf("output dir = %q", m.OutputDir)
	}
	tests := []struct {
		original, candidate, result string
	}{
		{filepath.Join(base, "docs/orig.txt"), filepath.Join(base, "docs/orig_add.txt"), filepath.Join(base, "results", "orig_vs_orig_add.txt")},
		{filepath.Join(base, "docs/orig.txt"), abs, filepath.Join(base, "custom/out.txt")},
		{filepath.Join(base, "other/orig.txt"), filepath.Join(base, "other/orig_add.txt"), filepath.Join(base, "results", "orig_vs_orig_add_2.txt")},
	}
	for i, tt := range tests {
		got := m.Pairs[i]
		if got.Original != tt.original || got.Candidate != tt.candidate || got.Result != tt.result {
			t.Fatalf("pair %d = %+v, want %+v", i+1, got, tt)
		}
	}
}

func TestParseManifestDefaultsOutputDir(t *testing.T) {
	base := t.TempDir()
	m, err := ParseManifest([]byte("[[pair]]\noriginal = \"a.txt\"\ncandidate = \"b.txt\"\n"), base)
	if err != nil {
		t.Fatalf("ParseManifest returned error: %v", err)
	}
	if m.Pairs[0].Result != filepath.Join(base, "a_vs_b.txt") {
		t.Fatalf("result = %q", m.Pairs[0].Result)
	}
}

func TestParseManifestRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no pairs", "output_dir = \"x\"\n"},
		{"unknown key", "[[pair]]\noriginal = \"a\"\ncandidate = \"b\"\nweight = 1\n"},
		{"missing candidate", "[[pair]]\noriginal = \"a\"\n"},
		{"invalid toml", "[[pair]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.data), t.TempDir())
			if !errors.Is(err, services.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteText(t, filepath.Join(dir, "batch.toml"), "[[pair]]\noriginal = \"a.txt\"\ncandidate = \"b.txt\"\n")
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	if m.Pairs[0].Original != filepath.Join(dir, "a.txt") {
		t.Fatalf("original = %q", m.Pairs[0].Original)
	}

	if _, err := LoadManifest(filepath.Join(dir, "missing.toml")); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
