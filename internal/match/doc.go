// Package match provides loose name matching for Unicode property and class
// names, plus Levenshtein-based "did you mean" suggestions.
//
// Key functions:
//   - NormalizeName: applies UAX #44 loose matching (LM3)
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names against an unknown one
package match
