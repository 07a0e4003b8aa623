package batch

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"plagcheck/internal/checker"
	"plagcheck/internal/logging"
	"plagcheck/internal/services"
	"plagcheck/internal/testsupport"
)

type fakeComparer struct {
	mu       sync.Mutex
	active   int
	peak     int
	pairs    []int
	failures map[string]error
	calls    atomic.Int64
}

func (f *fakeComparer) Run(ctx context.Context, req checker.Request) (checker.Report, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.active++
	if f.active > f.peak {
		f.peak = f.active
	}
	if pair, ok := services.PairFromContext(ctx); ok {
		f.pairs = append(f.pairs, pair)
	}
	f.mu.Unlock()

	time.Sleep(5 * time.Millisecond)

	f.mu.Lock()
	f.active--
	f.mu.Unlock()
	if err := f.failures[req.Original]; err != nil {
		return checker.Report{}, err
	}
	return checker.Report{ComparisonID: req.Original, Percent: 50}, nil
}

func requests(names ...string) []checker.Request {
	out := make([]checker.Request, 0, len(names))
	for _, n := range names {
		out = append(out, checker.Request{Original: n, Candidate: n + "-cand"})
	}
	return out
}

func TestRunnerKeepsOrderAndIsolatesFailures(t *testing.T) {
	boom := services.Wrap(services.ErrNotFound, "document", "validate", "missing", nil)
	fake := &fakeComparer{failures: map[string]error{"b": boom}}
	r := NewRunner(fake, 2, logging.NewNop())

	summary := r.Run(context.Background(), requests("a", "b", "c", "d", "e"))

	if summary.Succeeded != 4 || summary.Failed != 1 {
		t.Fatalf("succeeded=%d failed=%d", summary.Succeeded, summary.Failed)
	}
	for i, o := range summary.Outcomes {
		if o.Pair != i+1 {
			t.Fatalf("outcome %d has pair %d", i, o.Pair)
		}
		if want := []string{"a", "b", "c", "d", "e"}[i]; o.Request.Original != want {
			t.Fatalf("outcome %d original = %q, want %q", i, o.Request.Original, want)
		}
	}
	failed := summary.Outcomes[1]
	if failed.OK() || !errors.Is(failed.Err, services.ErrNotFound) || failed.Category != "not_found" || failed.Error == "" {
		t.Fatalf("unexpected failed outcome %+v", failed)
	}
	if summary.Outcomes[4].Report.ComparisonID != "e" {
		t.Fatalf("unexpected report %+v", summary.Outcomes[4].Report)
	}
	if fake.peak > 2 {
		t.Fatalf("peak concurrency %d exceeds worker limit", fake.peak)
	}
	if len(fake.pairs) != 5 {
		t.Fatalf("expected pair index in every context, got %v", fake.pairs)
	}
}

func TestRunnerCanceledContext(t *testing.T) {
	fake := &fakeComparer{}
	r := NewRunner(fake, 1, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary := r.Run(ctx, requests("a", "b"))
	if summary.Failed != 2 {
		t.Fatalf("expected every pair to fail, got %+v", summary)
	}
	if fake.calls.Load() != 0 {
		t.Fatalf("expected no comparisons after cancel, got %d", fake.calls.Load())
	}
	if !errors.Is(summary.Outcomes[0].Err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", summary.Outcomes[0].Err)
	}
}

func TestRunnerWithChecker(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithoutThesaurus())
	c, err := checker.FromConfig(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	dir := t.TempDir()
	testsupport.WriteText(t, filepath.Join(dir, "orig.txt"), "a b c d")
	testsupport.WriteText(t, filepath.Join(dir, "copy.txt"), "a b c d")
	testsupport.WriteText(t, filepath.Join(dir, "edit.txt"), "a b c e")
	manifest := testsupport.WriteText(t, filepath.Join(dir, "batch.toml"), `
output_dir = "out"

[[pair]]
original = "orig.txt"
candidate = "copy.txt"

[[pair]]
original = "orig.txt"
candidate = "edit.txt"

[[pair]]
original = "orig.txt"
candidate = "missing.txt"
`)
	m, err := LoadManifest(manifest)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}

	summary := NewRunner(c, cfg.Batch.Workers, logging.NewNop()).Run(context.Background(), m.Pairs)
	if summary.Succeeded != 2 || summary.Failed != 1 {
		t.Fatalf("succeeded=%d failed=%d", summary.Succeeded, summary.Failed)
	}
	if got := testsupport.ReadText(t, filepath.Join(dir, "out", "orig_vs_copy.txt")); got != "100.00" {
		t.Fatalf("copy result = %q", got)
	}
	if got := testsupport.ReadText(t, filepath.Join(dir, "out", "orig_vs_edit.txt")); got != "75.00" {
		t.Fatalf("edit result = %q", got)
	}
	if summary.Outcomes[2].Category != "not_found" {
		t.Fatalf("missing pair category = %q", summary.Outcomes[2].Category)
	}
}
