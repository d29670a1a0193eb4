package strutil

import "strings"

// NormalizeUpper trims surrounding whitespace and converts to upper case.
// Use for callsigns, ADIF tag names, and other tokens where case is not
// significant.
func NormalizeUpper(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// NormalizeLower trims surrounding whitespace and converts to lower case.
func NormalizeLower(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// FlagEquals compares an ADIF single-letter flag value (e.g. "Y", "n")
// against a sentinel, ignoring case and surrounding whitespace.
func FlagEquals(value, sentinel string) bool {
	return NormalizeUpper(value) == NormalizeUpper(sentinel)
}
