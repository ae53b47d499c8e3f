package utils

import (
	"strings"
)

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// EqualFoldTrim compares a and b case-insensitively ignoring outer whitespace.
func EqualFoldTrim(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// ContainsFold reports whether needle is a case-insensitive substring of any
// of the values. An empty needle matches everything.
func ContainsFold(needle string, values ...string) bool {
	n := strings.ToLower(strings.TrimSpace(needle))
	if n == "" {
		return true
	}
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), n) {
			return true
		}
	}
	return false
}

// NullIfEmpty helps store optional strings as JSON null.
func NullIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
