package preflight

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"plagcheck/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckInputFile(t *testing.T) {
	dir := t.TempDir()
	ok := testsupport.WriteText(t, filepath.Join(dir, "orig.txt"), "今天是星期天")
	empty := testsupport.WriteText(t, filepath.Join(dir, "empty.txt"), "")

	if r := CheckInputFile("original", ok, 0); !r.Passed || !strings.Contains(r.Detail, "18 B") {
		t.Fatalf("expected pass with size, got %+v", r)
	}
	if r := CheckInputFile("original", empty, 0); r.Passed || !strings.Contains(r.Detail, "empty") {
		t.Fatalf("expected empty-file failure, got %+v", r)
	}
	if r := CheckInputFile("candidate", filepath.Join(dir, "missing.txt"), 0); r.Passed {
		t.Fatalf("expected missing-file failure, got %+v", r)
	}
}

func TestCheckOutputPath(t *testing.T) {
	dir := t.TempDir()
	existing := testsupport.WriteText(t, filepath.Join(dir, "result.txt"), "10.00")

	tests := []struct {
		name   string
		path   string
		passed bool
		detail string
	}{
		{"new file", filepath.Join(dir, "new.txt"), true, "will create"},
		{"nested new file", filepath.Join(dir, "a", "b", "new.txt"), true, "will create"},
		{"existing file", existing, true, "will overwrite"},
		{"directory", dir, false, "is a directory"},
		{"under a file", filepath.Join(existing, "x.txt"), false, "not a directory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CheckOutputPath("result", tt.path)
			if r.Passed != tt.passed || !strings.Contains(r.Detail, tt.detail) {
				t.Fatalf("CheckOutputPath(%s) = %+v", tt.path, r)
			}
		})
	}
	if _, err := os.Stat(filepath.Join(dir, "a")); !os.IsNotExist(err) {
		t.Fatal("expected CheckOutputPath not to create directories")
	}
}

func TestCheckThesaurus(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if r := CheckThesaurus(context.Background(), cfg); !r.Passed || !strings.Contains(r.Detail, "embedded") {
		t.Fatalf("expected embedded thesaurus, got %+v", r)
	}

	cfg = testsupport.NewConfig(t, testsupport.WithoutThesaurus())
	if r := CheckThesaurus(context.Background(), cfg); !r.Passed || r.Detail != "Disabled" {
		t.Fatalf("expected disabled, got %+v", r)
	}

	cfg = testsupport.NewConfig(t, testsupport.WithThesaurusFile("[[group]]\nwords = [\"快\", \"迅速\"]\n"))
	if r := CheckThesaurus(context.Background(), cfg); !r.Passed || !strings.Contains(r.Detail, "2 terms") {
		t.Fatalf("expected two terms, got %+v", r)
	}

	cfg = testsupport.NewConfig(t, testsupport.WithThesaurusFile("not = [valid"))
	if r := CheckThesaurus(context.Background(), cfg); r.Passed {
		t.Fatalf("expected invalid thesaurus to fail, got %+v", r)
	}
}

func TestCheckDictionaries(t *testing.T) {
	dir := t.TempDir()
	dict := testsupport.WriteText(t, filepath.Join(dir, "user.txt"), "自然语言 10 n\n")
	results := CheckDictionaries([]string{dict, filepath.Join(dir, "missing.txt")})
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !results[0].Passed || results[0].Name != "Dictionary user.txt" {
		t.Fatalf("unexpected first result %+v", results[0])
	}
	if results[1].Passed {
		t.Fatalf("expected missing dictionary to fail, got %+v", results[1])
	}
}

func TestRunAll(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithLogDir())
	results := RunAll(context.Background(), cfg)
	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Name)
	}
	if got := strings.Join(names, ","); got != "Configuration,Segmenter,Thesaurus,Log directory" {
		t.Fatalf("unexpected checks %s", got)
	}
	if !AllPassed(results) {
		t.Fatalf("expected all checks to pass, got %+v", results)
	}
	if RunAll(context.Background(), nil) != nil {
		t.Fatal("expected nil results for nil config")
	}
}

func TestAllPassed(t *testing.T) {
	if !AllPassed(nil) {
		t.Fatal("expected empty results to pass")
	}
	if AllPassed([]Result{{Passed: true}, {Passed: false}}) {
		t.Fatal("expected failure to be reported")
	}
}
