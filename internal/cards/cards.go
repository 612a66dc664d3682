// Package cards holds the card number helpers shared by the HTTP handlers and
// the client-facing formatting rules.
package cards

import "strings"

// Length is the number of alphanumeric characters in a well-formed card number.
const Length = 16

// Normalize strips everything but letters and digits and upper-cases the rest,
// so "abcd 1234-efgh 5678" and "ABCD1234EFGH5678" store identically.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - ('a' - 'A'))
		}
	}
	return b.String()
}

// Valid reports whether s normalizes to exactly Length characters.
func Valid(s string) bool {
	return len(Normalize(s)) == Length
}

// Format renders a card number in display form: normalized and grouped into
// blocks of four, e.g. "ABCD 1234 EFGH 5678".
func Format(s string) string {
	n := Normalize(s)
	if n == "" {
		return ""
	}

	var parts []string
	for i := 0; i < len(n); i += 4 {
		end := i + 4
		if end > len(n) {
			end = len(n)
		}
		parts = append(parts, n[i:end])
	}
	return strings.Join(parts, " ")
}
