package similarity

import (
	"context"
	"errors"
	"testing"

	"plagcheck/internal/services"
	"plagcheck/internal/thesaurus"
)

func TestEngineCompareIdenticalInputs(t *testing.T) {
	engine, err := NewEngine(thesaurus.Default())
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}
	tokens := []string{"我们", "研究", "中文", "分词"}
	res, err := engine.Compare(context.Background(), Input{
		OriginalTokens:      tokens,
		CandidateTokens:     tokens,
		OriginalNormalized:  "我们研究中文分词",
		CandidateNormalized: "我们研究中文分词",
	})
	if err != nil {
		t.Fatalf("Compare returned error: %v", err)
	}
	if res.Frequency != 1 || res.Cosine != 1 || res.EditDistance != 1 {
		t.Fatalf("expected all component scores to be 1, got %+v", res)
	}
	if !approxEqual(res.Combined, 1) {
		t.Fatalf("Combined = %v, want 1", res.Combined)
	}
	if res.Percent() != 100 {
		t.Fatalf("Percent = %v, want 100", res.Percent())
	}
}

func TestEngineCompareNearDuplicate(t *testing.T) {
	engine, err := NewEngine(thesaurus.Default())
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}
	res, err := engine.Compare(context.Background(), Input{
		OriginalTokens:      []string{"这", "是", "第一个", "文本"},
		CandidateTokens:     []string{"这", "是", "第二个", "文本"},
		OriginalNormalized:  "这是第一个文本",
		CandidateNormalized: "这是第二个文本",
	})
	if err != nil {
		t.Fatalf("Compare returned error: %v", err)
	}
	if !approxEqual(res.Frequency, 0.75) {
		t.Fatalf("Frequency = %v, want 0.75", res.Frequency)
	}
	if !approxEqual(res.Cosine, 0.75) {
		t.Fatalf("Cosine = %v, want 0.75", res.Cosine)
	}
	if !approxEqual(res.EditDistance, 1-1.0/7) {
		t.Fatalf("EditDistance = %v, want 6/7", res.EditDistance)
	}
	if res.Combined < 0.7 || res.Combined > 1 {
		t.Fatalf("Combined = %v, want near-duplicate score >= 0.7", res.Combined)
	}
	want := (res.Frequency + res.Cosine + res.EditDistance) / 3
	if !approxEqual(res.Combined, want) {
		t.Fatalf("Combined = %v, want mean %v", res.Combined, want)
	}
}

func TestEngineCompareRejectsEmptyInput(t *testing.T) {
	engine, err := NewEngine(nil)
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}
	full := Input{
		OriginalTokens:      []string{"a"},
		CandidateTokens:     []string{"a"},
		OriginalNormalized:  "a",
		CandidateNormalized: "a",
	}
	cases := map[string]func(Input) Input{
		"original tokens":      func(in Input) Input { in.OriginalTokens = nil; return in },
		"candidate tokens":     func(in Input) Input { in.CandidateTokens = []string{}; return in },
		"original normalized":  func(in Input) Input { in.OriginalNormalized = ""; return in },
		"candidate normalized": func(in Input) Input { in.CandidateNormalized = ""; return in },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := engine.Compare(context.Background(), mutate(full))
			if !errors.Is(err, ErrEmptyInput) {
				t.Fatalf("expected ErrEmptyInput, got %v", err)
			}
			if !errors.Is(err, services.ErrValidation) {
				t.Fatalf("expected validation marker, got %v", err)
			}
		})
	}
}

func TestEngineCompareHonoursCancellation(t *testing.T) {
	engine, err := NewEngine(nil)
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = engine.Compare(ctx, Input{
		OriginalTokens:      []string{"a"},
		CandidateTokens:     []string{"a"},
		OriginalNormalized:  "a",
		CandidateNormalized: "a",
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestEngineWithWeights(t *testing.T) {
	engine, err := NewEngine(nil, WithWeights(Weights{EditDistance: 1}))
	if err != nil {
		t.Fatalf("NewEngine returned error: %v", err)
	}
	res, err := engine.Compare(context.Background(), Input{
		OriginalTokens:      []string{"abcde"},
		CandidateTokens:     []string{"abcxe"},
		OriginalNormalized:  "abcde",
		CandidateNormalized: "abcxe",
	})
	if err != nil {
		t.Fatalf("Compare returned error: %v", err)
	}
	if !approxEqual(res.Combined, 0.8) {
		t.Fatalf("Combined = %v, want edit distance only 0.8", res.Combined)
	}
	if res.Percent() != 80 {
		t.Fatalf("Percent = %v, want 80", res.Percent())
	}

	if _, err := NewEngine(nil, WithWeights(Weights{})); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error for zero weights, got %v", err)
	}
}

func TestResultPercentRounding(t *testing.T) {
	tests := []struct {
		combined float64
		want     float64
	}{
		{0.123456, 12.35},
		{2.0 / 3, 66.67},
		{0, 0},
		{1, 100},
	}
	for _, tt := range tests {
		if got := (Result{Combined: tt.combined}).Percent(); got != tt.want {
			t.Errorf("Percent(%v) = %v, want %v", tt.combined, got, tt.want)
		}
	}
}
