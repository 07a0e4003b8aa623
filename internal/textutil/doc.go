// Package textutil provides the text processing used by the similarity engine:
// script classification, normalization, tokenization, and term-frequency
// fingerprints.
//
// The primary use cases are:
//   - Classifying runes as Chinese (CJK Unified Ideographs, U+4E00..U+9FFF)
//   - Normalizing text for edit-distance comparison by stripping Latin and CJK
//     punctuation plus whitespace, preserving case
//   - Tokenizing mixed-script text: alphanumeric runs become lowercase tokens,
//     CJK runs are handed to a word segmenter
//   - Building synonym-expanded fingerprints and comparing them by cosine
//     similarity
//   - Sanitizing file names derived from document paths
//
// Fingerprints iterate their vocabulary in sorted order so scores are
// reproducible bit-for-bit across runs.
package textutil
