// Package document loads the texts being compared and writes the similarity
// result.
//
// Loading is split into ValidatePath (existence, type, permission and size
// checks with one sentinel per failure), Decode (a fixed trial order of text
// encodings), and Prepare (tokens plus the normalized string fed to the
// similarity engine). WriteResult persists the two-decimal percentage with an
// atomic rename under an advisory lock so concurrent batch workers never
// interleave writes to one directory.
package document
