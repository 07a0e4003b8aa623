package checker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"plagcheck/internal/config"
	"plagcheck/internal/document"
	"plagcheck/internal/logging"
	"plagcheck/internal/segment"
	"plagcheck/internal/services"
	"plagcheck/internal/similarity"
	"plagcheck/internal/textutil"
	"plagcheck/internal/thesaurus"
)

// Checker compares document pairs. It is safe for concurrent use.
type Checker struct {
	tokenizer document.Tokenizer
	engine    *similarity.Engine
	maxBytes  int64
	logger    *slog.Logger
	newID     func() string
	sources   Sources
}

// Sources describes where the checker's segmentation and synonym data came
// from, for diagnostics.
type Sources struct {
	Segmenter string `json:"segmenter"`
	Thesaurus string `json:"thesaurus"`
}

// Option customizes a Checker.
type Option func(*Checker)

// WithMaxBytes caps accepted input size. Values <= 0 disable the cap.
func WithMaxBytes(n int64) Option {
	return func(c *Checker) { c.maxBytes = n }
}

// WithLogger sets the checker logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithIDGenerator replaces the UUID correlation ID generator.
func WithIDGenerator(fn func() string) Option {
	return func(c *Checker) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// WithSources records the data sources reported by Sources.
func WithSources(src Sources) Option {
	return func(c *Checker) { c.sources = src }
}

// New assembles a checker from its collaborators.
func New(tok document.Tokenizer, engine *similarity.Engine, opts ...Option) *Checker {
	c := &Checker{
		tokenizer: tok,
		engine:    engine,
		maxBytes:  document.DefaultMaxBytes,
		logger:    logging.NewNop(),
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.NewComponentLogger(c.logger, "checker")
	return c
}

// FromConfig builds the segmenter, thesaurus, and engine described by cfg.
func FromConfig(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Checker, error) {
	if cfg == nil {
		return nil, services.Wrap(services.ErrConfiguration, "checker", "init", "config is nil", nil)
	}
	seg, err := segment.New(cfg.Segmenter.Backend, cfg.Segmenter.Dictionaries)
	if err != nil {
		return nil, err
	}
	tok, err := textutil.NewTokenizer(seg)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "checker", "init", "tokenizer", err)
	}

	var lookup thesaurus.Lookup = thesaurus.Identity{}
	thesaurusLabel := "disabled"
	if !cfg.Thesaurus.Disabled {
		src := thesaurus.Source{Path: cfg.Thesaurus.Path, SQLitePath: cfg.Thesaurus.SQLitePath}
		table, err := thesaurus.Load(ctx, src)
		if err != nil {
			return nil, err
		}
		lookup = table
		thesaurusLabel = src.Describe()
	}

	weights := WeightsFromConfig(cfg)
	engine, err := similarity.NewEngine(lookup, similarity.WithWeights(weights), similarity.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return New(tok, engine,
		WithMaxBytes(cfg.MaxFileBytes()),
		WithLogger(logger),
		WithSources(Sources{Segmenter: cfg.Segmenter.Backend, Thesaurus: thesaurusLabel}),
	), nil
}

// WeightsFromConfig maps the [engine] section onto a fusion policy.
func WeightsFromConfig(cfg *config.Config) similarity.Weights {
	return similarity.Weights{
		Frequency:    cfg.Engine.FrequencyWeight,
		Cosine:       cfg.Engine.CosineWeight,
		EditDistance: cfg.Engine.EditDistanceWeight,
	}
}

// Sources reports where segmentation and synonym data came from.
func (c *Checker) Sources() Sources {
	return c.sources
}

// Weights returns the engine's fusion policy.
func (c *Checker) Weights() similarity.Weights {
	return c.engine.Weights()
}

// Tokenize exposes the checker's tokenizer.
func (c *Checker) Tokenize(text string) []string {
	return c.tokenizer.Tokenize(text)
}

// Request names the files of one comparison. Result may be empty to skip
// writing a result file.
type Request struct {
	Original  string `json:"original" toml:"original"`
	Candidate string `json:"candidate" toml:"candidate"`
	Result    string `json:"result,omitempty" toml:"result"`
}

// DocumentSummary describes one side of a finished comparison.
type DocumentSummary struct {
	Path             string `json:"path"`
	Encoding         string `json:"encoding"`
	SizeBytes        int64  `json:"size_bytes"`
	SHA256           string `json:"sha256"`
	Tokens           int    `json:"tokens"`
	NormalizedLength int    `json:"normalized_length"`
}

// Report is the outcome of Run.
type Report struct {
	ComparisonID string            `json:"comparison_id"`
	Original     DocumentSummary   `json:"original"`
	Candidate    DocumentSummary   `json:"candidate"`
	ResultPath   string            `json:"result_path,omitempty"`
	Similarity   similarity.Result `json:"similarity"`
	Percent      float64           `json:"percent"`
	Elapsed      time.Duration     `json:"elapsed_ns"`
}

// Run validates, loads, scores, and optionally writes the result of req.
func (c *Checker) Run(ctx context.Context, req Request) (Report, error) {
	start := time.Now()
	id := c.newID()
	ctx = services.WithComparisonID(ctx, id)
	logger := logging.WithContext(ctx, c.logger)

	originalPath, err := document.ValidatePath(req.Original, "original", c.maxBytes)
	if err != nil {
		return Report{}, err
	}
	candidatePath, err := document.ValidatePath(req.Candidate, "candidate", c.maxBytes)
	if err != nil {
		return Report{}, err
	}
	resultPath := ""
	if req.Result != "" {
		if resultPath, err = config.ExpandPath(req.Result); err != nil {
			return Report{}, services.Wrap(services.ErrValidation, "checker", "run", "expand result path", err)
		}
		if err := document.CheckResultPath(resultPath); err != nil {
			return Report{}, err
		}
	}

	original, err := document.ReadLimit(originalPath, c.maxBytes)
	if err != nil {
		return Report{}, fmt.Errorf("original: %w", err)
	}
	candidate, err := document.ReadLimit(candidatePath, c.maxBytes)
	if err != nil {
		return Report{}, fmt.Errorf("candidate: %w", err)
	}
	logger.Debug("documents loaded",
		logging.String("original", original.Path),
		logging.String("original_encoding", original.Encoding),
		logging.String("candidate", candidate.Path),
		logging.String("candidate_encoding", candidate.Encoding),
	)

	res, origPrep, candPrep, err := c.compare(ctx, original.Text, candidate.Text)
	if err != nil {
		return Report{}, err
	}
	percent := res.Percent()

	if resultPath != "" {
		if err := document.WriteResult(ctx, resultPath, percent); err != nil {
			return Report{}, err
		}
	}

	report := Report{
		ComparisonID: id,
		Original:     summarize(original, origPrep),
		Candidate:    summarize(candidate, candPrep),
		ResultPath:   resultPath,
		Similarity:   res,
		Percent:      percent,
		Elapsed:      time.Since(start),
	}
	logger.Info("comparison completed",
		logging.Float64("similarity_percent", percent),
		logging.String("original", original.Path),
		logging.String("candidate", candidate.Path),
		logging.String("result", resultPath),
		logging.Duration("elapsed", report.Elapsed),
	)
	return report, nil
}

// Compare scores two in-memory texts.
func (c *Checker) Compare(ctx context.Context, originalText, candidateText string) (similarity.Result, error) {
	res, _, _, err := c.compare(ctx, originalText, candidateText)
	return res, err
}

func (c *Checker) compare(ctx context.Context, originalText, candidateText string) (similarity.Result, document.Prepared, document.Prepared, error) {
	origPrep, err := document.Prepare(c.tokenizer, originalText)
	if err != nil {
		return similarity.Result{}, document.Prepared{}, document.Prepared{}, fmt.Errorf("original: %w", err)
	}
	candPrep, err := document.Prepare(c.tokenizer, candidateText)
	if err != nil {
		return similarity.Result{}, document.Prepared{}, document.Prepared{}, fmt.Errorf("candidate: %w", err)
	}
	res, err := c.engine.Compare(ctx, similarity.Input{
		OriginalTokens:      origPrep.Tokens,
		CandidateTokens:     candPrep.Tokens,
		OriginalNormalized:  origPrep.Normalized,
		CandidateNormalized: candPrep.Normalized,
	})
	if err != nil {
		return similarity.Result{}, document.Prepared{}, document.Prepared{}, err
	}
	return res, origPrep, candPrep, nil
}

func summarize(doc document.Document, prep document.Prepared) DocumentSummary {
	return DocumentSummary{
		Path:             doc.Path,
		Encoding:         doc.Encoding,
		SizeBytes:        doc.Size,
		SHA256:           doc.SHA256,
		Tokens:           len(prep.Tokens),
		NormalizedLength: len([]rune(prep.Normalized)),
	}
}
