package batch

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"plagcheck/internal/checker"
	"plagcheck/internal/logging"
	"plagcheck/internal/services"
)

// Comparer runs a single comparison. *checker.Checker satisfies it.
type Comparer interface {
	Run(ctx context.Context, req checker.Request) (checker.Report, error)
}

// Outcome is the result of one pair.
type Outcome struct {
	Pair     int             `json:"pair"`
	Request  checker.Request `json:"request"`
	Report   checker.Report  `json:"report,omitzero"`
	Err      error           `json:"-"`
	Error    string          `json:"error,omitempty"`
	Category string          `json:"error_category,omitempty"`
}

// OK reports whether the pair completed.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Summary aggregates a finished batch.
type Summary struct {
	Outcomes  []Outcome     `json:"outcomes"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Elapsed   time.Duration `json:"elapsed_ns"`
}

// Runner executes pairs on a bounded pool.
type Runner struct {
	comparer Comparer
	workers  int
	logger   *slog.Logger
	progress *logging.ProgressSampler
}

// NewRunner constructs a runner with the given worker count (minimum 1).
func NewRunner(comparer Comparer, workers int, logger *slog.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		comparer: comparer,
		workers:  workers,
		logger:   logging.NewComponentLogger(logger, "batch"),
		progress: logging.NewProgressSampler(10),
	}
}

// Run compares every pair and returns outcomes in input order. Once ctx is
// canceled, pairs that have not started fail with the context error.
func (r *Runner) Run(ctx context.Context, pairs []checker.Request) Summary {
	start := time.Now()
	outcomes := make([]Outcome, len(pairs))
	total := len(pairs)
	var done atomic.Int64
	r.progress.Reset()

	r.logger.Info("batch started",
		logging.Int("pairs", total),
		logging.Int("workers", r.workers),
	)

	var g errgroup.Group
	g.SetLimit(r.workers)
	for i, req := range pairs {
		g.Go(func() error {
			pairCtx := services.WithPair(ctx, i+1)
			out := Outcome{Pair: i + 1, Request: req}
			if err := ctx.Err(); err != nil {
				out.Err = err
			} else {
				out.Report, out.Err = r.comparer.Run(pairCtx, req)
			}
			if out.Err != nil {
				out.Error = out.Err.Error()
				out.Category = services.Category(out.Err)
				logging.ErrorWithContext(logging.WithContext(pairCtx, r.logger), "pair failed", "pair_failed", out.Err,
					logging.String("original", req.Original),
					logging.String("candidate", req.Candidate),
				)
			}
			outcomes[i] = out

			finished := done.Add(1)
			percent := float64(finished) * 100 / float64(total)
			if r.progress.ShouldLog(percent) {
				r.logger.Info("batch progress",
					logging.Float64("progress_percent", percent),
					logging.Int64("completed", finished),
					logging.Int("pairs", total),
				)
			}
			return nil
		})
	}
	_ = g.Wait()

	summary := Summary{Outcomes: outcomes, Elapsed: time.Since(start)}
	for _, o := range outcomes {
		if o.OK() {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}
	r.logger.Info("batch completed",
		logging.Int("succeeded", summary.Succeeded),
		logging.Int("failed", summary.Failed),
		logging.Duration("elapsed", summary.Elapsed),
	)
	return summary
}
