// Package thesaurus resolves tokens to their synonym sets.
//
// A Table is built once at process start and never mutated, so it can be
// shared by concurrent comparisons without locking. Tables load from the
// embedded default thesaurus, from a TOML file, or from a SQLite database
// produced by WriteSQLite. The database is only a lookup source; nothing is
// written to it during comparisons.
package thesaurus
