// Package services defines shared utilities consumed by the comparison
// pipeline and the collaborators it depends on.
//
// Key responsibilities:
//   - Context helpers that stamp comparison IDs and batch positions for
//     logging.
//   - Structured error markers plus the Wrap helper that keep failure
//     classification uniform across document loading, scoring, and result
//     writing.
//
// Use these helpers when wiring new components so error handling and
// observability stay consistent.
package services
