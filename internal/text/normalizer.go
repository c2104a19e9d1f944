package text

import (
	"regexp"
	"strings"
)

var (
	// Characters allowed through normalization: CJK ideographs (including
	// Ext-A, compatibility ideographs, vertical/compat forms and squared
	// characters), Latin letters and digits, whitespace, the full-width
	// punctuation used on the source site, and printable ASCII.
	unsafeRe = regexp.MustCompile(`[^\p{Han}\s\x{3300}-\x{33FF}\x{FE30}-\x{FE4F}，。！？；：“”‘’（）【】《》、!-~]`)

	// Full-width sentence punctuation, with any surrounding or interior
	// whitespace, collapses to a single canonical full-width comma. The
	// pattern must absorb whitespace between punctuation runs too, or a
	// second pass would collapse the commas it just produced.
	cjkPunctRe = regexp.MustCompile(`\s*[，。！？；：](?:\s*[，。！？；：])*\s*`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize cleans a piece of scraped text for indexing: characters outside
// the safe set become spaces, full-width sentence punctuation is canonicalised,
// and whitespace runs collapse to a single space. Normalize is idempotent.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = unsafeRe.ReplaceAllString(s, " ")
	s = cjkPunctRe.ReplaceAllString(s, "，")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// TruncateRunes cuts s at n runes. The cut never splits a multi-byte
// character; strings at or under the limit come back unchanged.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// Ellipsize truncates s to n runes, appending an ellipsis marker when
// something was actually cut.
func Ellipsize(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
