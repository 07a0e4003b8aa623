package thesaurus

import (
	"context"
	"strings"
)

// Source selects where a thesaurus is loaded from. SQLitePath wins over Path;
// with neither set the embedded default is used.
type Source struct {
	Path       string
	SQLitePath string
}

// Load resolves src into a table.
func Load(ctx context.Context, src Source) (*Table, error) {
	if p := strings.TrimSpace(src.SQLitePath); p != "" {
		return LoadSQLite(ctx, p)
	}
	if p := strings.TrimSpace(src.Path); p != "" {
		return LoadFile(p)
	}
	return Default(), nil
}

// Describe returns a short label for src suitable for logs.
func (src Source) Describe() string {
	switch {
	case strings.TrimSpace(src.SQLitePath) != "":
		return "sqlite:" + strings.TrimSpace(src.SQLitePath)
	case strings.TrimSpace(src.Path) != "":
		return "toml:" + strings.TrimSpace(src.Path)
	default:
		return "embedded"
	}
}
