package strings

import (
	"strings"
)

// DefaultLogBodyMaxLen bounds how much of an upstream response body is
// written to a log line.
const DefaultLogBodyMaxLen = 200

// MinTruncateLen is the smallest maxLen Truncate honours, leaving room for
// one character plus "...".
const MinTruncateLen = 4

// Truncate flattens s to a single line and cuts it to at most maxLen runes,
// ending with "..." when anything was removed.
//
// Whitespace runs (including newlines from pretty-printed JSON) collapse to
// one space. Length is counted in runes so multi-byte characters are never
// split.
func Truncate(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}

// ForLog truncates a response body for logging with DefaultLogBodyMaxLen.
func ForLog(body []byte) string {
	return Truncate(string(body), DefaultLogBodyMaxLen)
}
