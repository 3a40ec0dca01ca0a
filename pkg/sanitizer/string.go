// Package sanitizer normalizes free-text input before validation.
package sanitizer

import "strings"

// String trims surrounding whitespace and collapses internal runs of
// whitespace to single spaces. Guest names arrive from a public form and
// regularly carry stray padding.
func String(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
