package similarity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"plagcheck/internal/logging"
	"plagcheck/internal/services"
	"plagcheck/internal/thesaurus"
)

// ErrEmptyInput reports a comparison with an empty token sequence or
// normalized string on either side.
var ErrEmptyInput = errors.New("empty comparison input")

// Input carries the preprocessed form of both documents.
type Input struct {
	OriginalTokens      []string
	CandidateTokens     []string
	OriginalNormalized  string
	CandidateNormalized string
}

// Result holds the component scores and their fusion.
type Result struct {
	Frequency    float64 `json:"frequency"`
	Cosine       float64 `json:"cosine"`
	EditDistance float64 `json:"edit_distance"`
	Combined     float64 `json:"combined"`
	Weights      Weights `json:"weights"`
}

// Percent returns the combined score as a percentage rounded to two decimals.
func (r Result) Percent() float64 {
	return math.Round(r.Combined*100*100) / 100
}

// Engine compares preprocessed documents.
type Engine struct {
	lookup  thesaurus.Lookup
	weights Weights
	logger  *slog.Logger
}

// Option customizes an Engine.
type Option func(*Engine)

// WithWeights overrides the default equal-weight fusion policy.
func WithWeights(w Weights) Option {
	return func(e *Engine) {
		e.weights = w
	}
}

// WithLogger sets the logger used for per-comparison debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine constructs an engine around lookup. A nil lookup disables synonym
// expansion.
func NewEngine(lookup thesaurus.Lookup, opts ...Option) (*Engine, error) {
	if lookup == nil {
		lookup = thesaurus.Identity{}
	}
	e := &Engine{
		lookup:  lookup,
		weights: EqualWeights(),
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.weights.Validate(); err != nil {
		return nil, err
	}
	e.logger = logging.NewComponentLogger(e.logger, "similarity")
	return e, nil
}

// Weights returns the engine's fusion policy.
func (e *Engine) Weights() Weights {
	return e.weights
}

// Compare scores in. Empty input is rejected with ErrEmptyInput rather than
// scored as zero.
func (e *Engine) Compare(ctx context.Context, in Input) (Result, error) {
	if err := validateInput(in); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	res := Result{
		Frequency: FrequencyMatch(in.OriginalTokens, in.CandidateTokens),
		Cosine:    Cosine(in.OriginalTokens, in.CandidateTokens, e.lookup),
		Weights:   e.weights,
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	res.EditDistance = EditDistance(in.OriginalNormalized, in.CandidateNormalized)
	res.Combined = Combine(res.Frequency, res.Cosine, res.EditDistance, e.weights)

	logging.WithContext(ctx, e.logger).Debug("comparison scored",
		logging.Args(
			logging.Float64("frequency", res.Frequency),
			logging.Float64("cosine", res.Cosine),
			logging.Float64("edit_distance", res.EditDistance),
			logging.Float64("combined", res.Combined),
			logging.Int("original_tokens", len(in.OriginalTokens)),
			logging.Int("candidate_tokens", len(in.CandidateTokens)),
		)...,
	)
	return res, nil
}

func validateInput(in Input) error {
	var missing string
	switch {
	case len(in.OriginalTokens) == 0:
		missing = "original token sequence"
	case len(in.CandidateTokens) == 0:
		missing = "candidate token sequence"
	case in.OriginalNormalized == "":
		missing = "original normalized text"
	case in.CandidateNormalized == "":
		missing = "candidate normalized text"
	default:
		return nil
	}
	return services.Wrap(services.ErrValidation, "similarity", "compare",
		fmt.Sprintf("%s is empty", missing), ErrEmptyInput)
}
