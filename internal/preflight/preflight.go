package preflight

import (
	"context"

	"plagcheck/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// RunAll executes all applicable preflight checks for the given config.
// Checks are only run when the corresponding feature is configured.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{CheckConfig(cfg)}
	results = append(results, CheckSegmenter(cfg))
	if len(cfg.Segmenter.Dictionaries) > 0 {
		results = append(results, CheckDictionaries(cfg.Segmenter.Dictionaries)...)
	}
	results = append(results, CheckThesaurus(ctx, cfg))

	if cfg.Logging.Dir != "" {
		results = append(results, CheckLogDirectory(cfg.Logging.Dir))
	}
	return results
}

// AllPassed reports whether every result passed.
func AllPassed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
