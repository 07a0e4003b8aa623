package textutil

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  plain  ", "plain"},
		{"a/b\\c:d*e", "a-b-c-d-e"},
		{`what?"<>|`, "what"},
		{"论文 初稿", "论文 初稿"},
	}
	for _, tt := range tests {
		if got := SanitizeFileName(tt.in); got != tt.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPairStem(t *testing.T) {
	if got := PairStem("/data/orig.txt", "docs/orig_0.8_add.txt"); got != "orig_vs_orig_0.8_add" {
		t.Fatalf("PairStem() = %q", got)
	}
	if got := PairStem("", "b.txt"); got != "unknown_vs_b" {
		t.Fatalf("PairStem() with empty original = %q", got)
	}
}
