package segment

import (
	"strings"
	"sync"

	"github.com/go-ego/gse"

	"plagcheck/internal/services"
)

// GSE segments text with a gse dictionary in precise (non-exhaustive) mode.
// Cut is read-only once the dictionary is loaded, so one GSE may be shared
// across goroutines.
type GSE struct {
	seg gse.Segmenter
}

var (
	embeddedOnce sync.Once
	embedded     *GSE
	embeddedErr  error
)

// NewGSE loads the given dictionary files, or the embedded dictionary when no
// paths are provided. The embedded dictionary is loaded once per process.
func NewGSE(dictPaths ...string) (*GSE, error) {
	paths := make([]string, 0, len(dictPaths))
	for _, p := range dictPaths {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		embeddedOnce.Do(func() {
			g := &GSE{}
			if err := g.seg.LoadDictEmbed("zh"); err != nil {
				embeddedErr = services.Wrap(services.ErrConfiguration, "segment", "load embedded dictionary", "", err)
				return
			}
			embedded = g
		})
		return embedded, embeddedErr
	}

	g := &GSE{}
	if err := g.seg.LoadDict(paths...); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "segment", "load dictionary",
			strings.Join(paths, ", "), err)
	}
	return g, nil
}

// Segment cuts text into words with HMM enabled for unknown words.
func (g *GSE) Segment(text string) []string {
	if g == nil || text == "" {
		return nil
	}
	return g.seg.Cut(text, true)
}
