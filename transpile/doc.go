// Package transpile is the entry point of the converter: it parses a source
// pattern, converts it for a target feature level and collects the pattern
// text, the flags the target engine needs and the diagnostics of the run.
//
// Every call owns its conversion state, so calls may run concurrently.
// TranspileAll does that for a batch of patterns.
package transpile
