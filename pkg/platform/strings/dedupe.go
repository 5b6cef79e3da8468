// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
)

// asciiSpace is the set TrimASCII strips: ASCII whitespace and NUL.
const asciiSpace = " \t\n\v\f\r\x00"

// TrimASCII strips leading and trailing ASCII whitespace and NUL bytes.
// Unicode spaces such as U+00A0 are kept.
func TrimASCII(s string) string {
	return strings.Trim(s, asciiSpace)
}

// SplitList splits a separated setting such as "a, b,,a" into its distinct,
// trimmed, non-empty parts. Order is preserved.
func SplitList(raw, sep string) []string {
	return DedupeAndTrim(strings.Split(raw, sep))
}

// DedupeAndTrim removes duplicates and empty strings from a slice,
// trimming whitespace from each element. Order is preserved.
func DedupeAndTrim(values []string) []string {
	var result []string
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}
