// Package segment provides the word-segmentation capability used to split
// runs of CJK characters into dictionary words.
//
// The Segmenter interface keeps the tokenizer independent of the backend. The
// default backend wraps github.com/go-ego/gse in precise mode with HMM
// recognition of out-of-vocabulary words; the runes backend emits one token per
// character and needs no dictionary.
package segment
