package thesaurus

import (
	"slices"
	"strings"
)

// Lookup resolves a token to its synonym set.
type Lookup interface {
	// Synonyms returns the token plus every synonym recorded for it, sorted
	// and deduplicated. A token without an entry yields a one-element slice.
	// Callers must not modify the returned slice.
	Synonyms(token string) []string
}

// Identity is a Lookup without synonyms.
type Identity struct{}

// Synonyms returns a slice holding only token.
func (Identity) Synonyms(token string) []string {
	return []string{token}
}

// Table is an immutable synonym table.
type Table struct {
	entries map[string][]string
}

// NewTable builds a table from symmetric synonym groups: every word of a group
// is a synonym of every other word. A word that appears in several groups gets
// the union of them. Words are trimmed and lowercased to line up with
// tokenizer output.
func NewTable(groups [][]string) *Table {
	b := newBuilder()
	for _, group := range groups {
		b.addGroup(group)
	}
	return b.build()
}

// NewTableFromEntries builds a table from directional entries: each key maps to
// the listed synonyms without implying the reverse.
func NewTableFromEntries(entries map[string][]string) *Table {
	b := newBuilder()
	for key, syns := range entries {
		b.addEntry(key, syns)
	}
	return b.build()
}

// Synonyms implements Lookup.
func (t *Table) Synonyms(token string) []string {
	if t != nil {
		if syns, ok := t.entries[token]; ok {
			return syns
		}
	}
	return []string{token}
}

// Len returns the number of tokens with an entry.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Pairs returns every (term, synonym) pair, excluding self pairs, ordered by
// term then synonym.
func (t *Table) Pairs() [][2]string {
	if t == nil {
		return nil
	}
	terms := make([]string, 0, len(t.entries))
	for term := range t.entries {
		terms = append(terms, term)
	}
	slices.Sort(terms)
	var pairs [][2]string
	for _, term := range terms {
		for _, syn := range t.entries[term] {
			if syn != term {
				pairs = append(pairs, [2]string{term, syn})
			}
		}
	}
	return pairs
}

type builder struct {
	sets map[string]map[string]struct{}
}

func newBuilder() *builder {
	return &builder{sets: make(map[string]map[string]struct{})}
}

func (b *builder) add(term, syn string) {
	set, ok := b.sets[term]
	if !ok {
		set = map[string]struct{}{term: {}}
		b.sets[term] = set
	}
	set[syn] = struct{}{}
}

func (b *builder) addGroup(group []string) {
	words := cleanWords(group)
	for _, w := range words {
		for _, other := range words {
			b.add(w, other)
		}
	}
}

func (b *builder) addEntry(key string, syns []string) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return
	}
	b.add(key, key)
	for _, syn := range cleanWords(syns) {
		b.add(key, syn)
	}
}

func (b *builder) build() *Table {
	entries := make(map[string][]string, len(b.sets))
	for term, set := range b.sets {
		if len(set) < 2 {
			continue
		}
		syns := make([]string, 0, len(set))
		for s := range set {
			syns = append(syns, s)
		}
		slices.Sort(syns)
		entries[term] = syns
	}
	return &Table{entries: entries}
}

func cleanWords(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			out = append(out, w)
		}
	}
	return out
}
