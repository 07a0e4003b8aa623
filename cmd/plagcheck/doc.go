// Package main hosts the plagcheck CLI entrypoint and command graph.
//
// The root command compares one original document with one candidate and
// writes the similarity percentage to a result file. Subcommands cover
// manifest-driven batches, tokenizer and thesaurus inspection, configuration
// scaffolding, and environment checks. Configuration resolution and logger
// setup live in the shared command context so subcommands only handle
// presentation.
//
// Keep this package lean: add new functionality to the internal packages
// first, then surface it through dedicated commands or flags here.
package main
