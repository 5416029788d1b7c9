// Package diagnostic collects the problems found while converting a pattern.
//
// Diagnostics are run-scoped values returned next to the converted pattern;
// they are never logged or stored globally, so parallel runs cannot mix them.
//
// Key capabilities:
//   - Unsupported feature warnings naming the source node and its offset
//   - Unknown property reports with "did you mean" suggestions
//   - Combining error diagnostics into a single error value
package diagnostic
