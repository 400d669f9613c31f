package maplinks

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// This file contains an optional helper for pre-processing search text.
// Builders never normalize input on their own; callers who want stable,
// accent-free queries (for deduplication or logging) can run them through
// NormalizeQuery first.

// NormalizeQuery returns a standardized form of a search query:
// 1. Diacritical marks are removed (e.g. "Wrocław" becomes "Wroclaw").
// 2. The result is lowercased and trimmed of surrounding whitespace.
func NormalizeQuery(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("input string is not valid UTF-8")
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(result)), nil
}
