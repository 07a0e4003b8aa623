// Package preflight provides readiness checks for the files, directories and
// data sources plagcheck depends on.
//
// These checks run in two contexts:
//   - The CLI "plagcheck doctor" command calls RunAll and renders the results.
//   - Individual checks (CheckInputFile, CheckOutputPath) can be run ahead of a
//     comparison to report every problem at once instead of the first.
//
// Checks never return errors; failures are described in Result.Detail.
package preflight
