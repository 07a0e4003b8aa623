package testsupport

import (
	"path/filepath"
	"testing"

	"plagcheck/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a per-test temp directory. It uses the
// rune segmenter so results do not depend on the embedded dictionary, keeps
// the embedded thesaurus, and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	cfgVal.Segmenter.Backend = "runes"
	cfgVal.Batch.Workers = 2
	cfgVal.Logging.Level = "debug"

	builder := &configBuilder{
		t:       t,
		baseDir: t.TempDir(),
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return builder.cfg
}

// WithGSE switches the test config to the dictionary segmenter.
func WithGSE() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Segmenter.Backend = "gse"
	}
}

// WithWeights overrides the engine fusion weights.
func WithWeights(frequency, cosine, editDistance float64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Engine.FrequencyWeight = frequency
		b.cfg.Engine.CosineWeight = cosine
		b.cfg.Engine.EditDistanceWeight = editDistance
	}
}

// WithThesaurusFile writes contents as a TOML thesaurus and points the config
// at it.
func WithThesaurusFile(contents string) ConfigOption {
	return func(b *configBuilder) {
		path := filepath.Join(b.baseDir, "thesaurus.toml")
		WriteText(b.t, path, contents)
		b.cfg.Thesaurus.Path = path
	}
}

// WithMaxFileMiB overrides the input size cap.
func WithMaxFileMiB(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Input.MaxFileMiB = n
	}
}

// WithLogDir enables file logging under the test temp directory.
func WithLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Dir = filepath.Join(b.baseDir, "logs")
	}
}

// WithoutThesaurus disables synonym expansion.
func WithoutThesaurus() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Thesaurus.Disabled = true
	}
}
