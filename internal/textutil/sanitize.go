package textutil

import (
	"path/filepath"
	"strings"
)

// fileNameReplacer replaces filesystem-unsafe characters with safe alternatives.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName replaces filesystem-unsafe characters in a filename.
// Slashes, backslashes, colons, and asterisks become dashes; other unsafe
// characters are removed. The result is trimmed of leading/trailing whitespace.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return strings.TrimSpace(fileNameReplacer.Replace(name))
}

// PairStem derives a file stem naming a comparison of two documents, e.g.
// "orig_vs_orig_add" for orig.txt and orig_add.txt.
func PairStem(originalPath, candidatePath string) string {
	stem := func(p string) string {
		base := filepath.Base(strings.TrimSpace(p))
		base = strings.TrimSuffix(base, filepath.Ext(base))
		base = SanitizeFileName(base)
		if base == "" || base == "." {
			return "unknown"
		}
		return base
	}
	return stem(originalPath) + "_vs_" + stem(candidatePath)
}
