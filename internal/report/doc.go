// Package report builds the YAML report of a batch run: per pattern the
// converted source, flags, diagnostics and a content digest, and a summary.
//
// Digests are BLAKE3 over the pattern and the options that affect the
// output, so unchanged entries can be recognised across runs.
package report
