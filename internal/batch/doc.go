// Package batch compares many document pairs described by a TOML manifest.
//
// Pairs run on a bounded worker pool. A failing pair records its error on its
// Outcome and never cancels the others; outcomes are returned in manifest
// order.
package batch
