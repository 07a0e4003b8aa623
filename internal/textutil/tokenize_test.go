package textutil

import (
	"reflect"
	"strings"
	"testing"

	"plagcheck/internal/segment"
)

func TestNewTokenizerRequiresSegmenter(t *testing.T) {
	if _, err := NewTokenizer(nil); err == nil {
		t.Fatal("expected error for nil segmenter")
	}
}

func TestSplitScripts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"english", "Hello, World! 123abc", []string{"hello", "world", "123abc"}},
		{"mixed", "abc你好def", []string{"abc", "你", "好", "def"}},
		{"separators only", " ,.!? ", []string{}},
		{"cjk punctuation separates", "你好，世界", []string{"你", "好", "世", "界"}},
		{"non-han letters join words", "caféあい", []string{"caféあい"}},
		{"unicode lowercase", "ÀÉÎ Straße", []string{"àéî", "straße"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitScripts(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitScripts(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenizeIsolatesCJKRuns(t *testing.T) {
	seg := &wholeSegmenter{}
	tok, err := NewTokenizer(seg)
	if err != nil {
		t.Fatalf("NewTokenizer returned error: %v", err)
	}
	got := tok.Tokenize("abc你好def世界")
	want := []string{"abc", "你好", "def", "世界"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize() = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(seg.calls, []string{"你好", "世界"}) {
		t.Fatalf("unexpected segmenter calls: %v", seg.calls)
	}
}

func TestTokenizeSkipsSegmenterWithoutCJK(t *testing.T) {
	seg := &wholeSegmenter{}
	tok, _ := NewTokenizer(seg)
	got := tok.Tokenize("The quick brown fox.")
	want := []string{"the", "quick", "brown", "fox"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize() = %v, want %v", got, want)
	}
	if len(seg.calls) != 0 {
		t.Fatalf("segmenter should not run for text without CJK, got %v", seg.calls)
	}
}

func TestTokenizeFiltersBlankSegments(t *testing.T) {
	seg := segment.Func(func(text string) []string {
		return []string{"", text, " ", "\t"}
	})
	tok, _ := NewTokenizer(seg)
	got := tok.Tokenize("中文 english")
	want := []string{"中文", "english"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	tok, _ := NewTokenizer(runeSegmenter{})
	if got := tok.Tokenize(""); len(got) != 0 {
		t.Fatalf("expected no tokens, got %v", got)
	}
}

func TestTokenizeMixedWithDictionary(t *testing.T) {
	seg, err := segment.NewGSE()
	if err != nil {
		t.Fatalf("NewGSE returned error: %v", err)
	}
	tok, _ := NewTokenizer(seg)
	tokens := tok.Tokenize("这是一个mixed中英文test句子123")

	var sawMixed, sawTest, sawMultiCJK bool
	for _, token := range tokens {
		if strings.TrimSpace(token) == "" {
			t.Fatalf("blank token in %v", tokens)
		}
		switch token {
		case "mixed":
			sawMixed = true
		case "test":
			sawTest = true
		}
		if containsChinese(token) && len([]rune(token)) > 1 {
			sawMultiCJK = true
		}
	}
	if !sawMixed || !sawTest {
		t.Fatalf("expected lowercase english tokens in %v", tokens)
	}
	if !sawMultiCJK {
		t.Fatalf("expected a multi-character CJK word in %v", tokens)
	}
}
