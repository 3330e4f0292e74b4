// Package validation holds the field-level rule helpers shared by the form
// validators. The rules are deliberately loose: the backend performs its own
// strict validation, this layer only catches obvious user mistakes early.
package validation

import (
	"strings"
	"unicode"
)

// DigitCount returns the number of decimal digit runes in s.
func DigitCount(s string) int {
	count := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			count++
		}
	}
	return count
}

// IsAllDigits reports whether s is non-empty and composed entirely of
// decimal digit runes.
func IsAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// LooksLikeEmail applies the minimal plausibility check used by the form:
// the address must contain both an '@' and a '.'.
func LooksLikeEmail(s string) bool {
	return strings.ContainsRune(s, '@') && strings.ContainsRune(s, '.')
}

// Capitalize upper-cases the first rune and lower-cases the rest, matching
// how sentiment labels are rendered to the user.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Truncate returns at most n leading runes of s.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
