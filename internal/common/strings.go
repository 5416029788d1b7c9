package common

import "strings"

// UnknownStr is returned by String methods for values outside their enum.
const UnknownStr = "unknown"

// Quote wraps s in single quotes for use in messages, truncating long values.
func Quote(s string, limit int) string {
	if limit > 0 && len([]rune(s)) > limit {
		s = string([]rune(s)[:limit]) + "…"
	}

	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
