// Package similarity scores how closely a candidate document resembles an
// original.
//
// Three independent scorers each produce a value in [0,1]:
//   - FrequencyMatch: share of candidate tokens consumed one-to-one against
//     the original's token multiset. Not symmetric.
//   - Cosine: cosine of synonym-expanded term-frequency vectors. Symmetric.
//   - EditDistance: one minus the normalized rune-level Levenshtein distance of
//     the normalized strings. Symmetric.
//
// Engine fuses them with a Weights policy. The default policy is the equal
// weighted arithmetic mean; callers override it through configuration.
// Scorers are pure functions and Engine holds only immutable state, so
// comparisons may run concurrently.
package similarity
