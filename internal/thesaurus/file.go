package thesaurus

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"plagcheck/internal/services"
)

//go:embed default_thesaurus.toml
var defaultThesaurus []byte

// File is the TOML representation of a thesaurus.
//
//	[[group]]
//	words = ["研究", "探究", "钻研"]
//
//	[entries]
//	ai = ["人工智能"]
type File struct {
	Groups  []Group             `toml:"group"`
	Entries map[string][]string `toml:"entries"`
}

// Group lists mutually synonymous words.
type Group struct {
	Words []string `toml:"words"`
}

// Table builds the immutable table described by the file.
func (f File) Table() *Table {
	b := newBuilder()
	for _, g := range f.Groups {
		b.addGroup(g.Words)
	}
	for key, syns := range f.Entries {
		b.addEntry(key, syns)
	}
	return b.build()
}

// Parse decodes a TOML thesaurus. Unknown keys are rejected.
func Parse(data []byte) (*Table, error) {
	var f File
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse thesaurus: %w", err)
	}
	return f.Table(), nil
}

// LoadFile reads a TOML thesaurus from path.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "thesaurus", "read", path, err)
	}
	table, err := Parse(data)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "thesaurus", "load", path, err)
	}
	return table, nil
}

// Default returns the embedded thesaurus, parsed once per process.
var Default = sync.OnceValue(func() *Table {
	table, err := Parse(defaultThesaurus)
	if err != nil {
		panic(fmt.Sprintf("embedded thesaurus is invalid: %v", err))
	}
	return table
})
