// Package config loads, normalizes, and validates plagcheck configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts and $VAR references), reads TOML files, and honours environment
// fallbacks such as PLAGCHECK_THESAURUS. The Config type centralizes every knob
// the CLI and batch runner need so engine weights, segmentation, thesaurus
// sources, and logging are resolved in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
