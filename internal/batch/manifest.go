package batch

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"plagcheck/internal/checker"
	"plagcheck/internal/config"
	"plagcheck/internal/services"
	"plagcheck/internal/textutil"
)

// Manifest lists the pairs of a batch.
//
//	output_dir = "results"
//
//	[[pair]]
//	original = "orig.txt"
//	candidate = "orig_add.txt"
//	result = "orig_add.result.txt"
type Manifest struct {
	OutputDir string            `toml:"output_dir"`
	Pairs     []checker.Request `toml:"pair"`
}

// LoadManifest reads the manifest at path. Relative document paths resolve
// against the manifest directory. Pairs without a result path are written to
// OutputDir (default: the manifest directory) as "<original>_vs_<candidate>.txt".
func LoadManifest(path string) (Manifest, error) {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return Manifest{}, services.Wrap(services.ErrValidation, "batch", "load manifest", "expand path", err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return Manifest{}, services.Wrap(services.ErrNotFound, "batch", "load manifest", expanded, err)
		}
		return Manifest{}, services.Wrap(services.ErrIO, "batch", "load manifest", expanded, err)
	}
	m, err := ParseManifest(data, filepath.Dir(expanded))
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: %w", expanded, err)
	}
	return m, nil
}

// ParseManifest decodes manifest data, resolving relative paths against baseDir.
func ParseManifest(data []byte, baseDir string) (Manifest, error) {
	var m Manifest
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return Manifest{}, services.Wrap(services.ErrValidation, "batch", "parse manifest", "", err)
	}
	if len(m.Pairs) == 0 {
		return Manifest{}, services.Wrap(services.ErrValidation, "batch", "parse manifest", "manifest lists no [[pair]] entries", nil)
	}

	m.OutputDir = resolve(baseDir, m.OutputDir)
	if m.OutputDir == "" {
		m.OutputDir = baseDir
	}
	used := make(map[string]int, len(m.Pairs))
	for i := range m.Pairs {
		p := &m.Pairs[i]
		if strings.TrimSpace(p.Original) == "" || strings.TrimSpace(p.Candidate) == "" {
			return Manifest{}, services.Wrap(services.ErrValidation, "batch", "parse manifest",
				fmt.Sprintf("pair %d needs both original and candidate", i+1), nil)
		}
		p.Original = resolve(baseDir, p.Original)
		p.Candidate = resolve(baseDir, p.Candidate)
		if strings.TrimSpace(p.Result) != "" {
			p.Result = resolve(baseDir, p.Result)
			continue
		}
		stem := textutil.PairStem(p.Original, p.Candidate)
		used[stem]++
		if n := used[stem]; n > 1 {
			stem = fmt.Sprintf("%s_%d", stem, n)
		}
		p.Result = filepath.Join(m.OutputDir, stem+".txt")
	}
	return m, nil
}

func resolve(baseDir, p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	p = os.ExpandEnv(p)
	if strings.HasPrefix(p, "~") {
		if expanded, err := config.ExpandPath(p); err == nil {
			return expanded
		}
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(baseDir, p)
}
