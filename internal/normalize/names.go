package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var multiSpace = regexp.MustCompile(`\s+`)

// stripAccents returns a fresh transformer; a transform.Chain holds buffers
// and must not be shared between goroutines.
func stripAccents() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// NormalizeName collapses whitespace and trims the input.
// Returns nil if the input is nil or the result is empty.
func NormalizeName(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	s = multiSpace.ReplaceAllString(s, " ")
	return &s
}

// FoldName produces the search key for a company name: accents removed,
// uppercased, whitespace collapsed. "Padaria  São João ltda" -> "PADARIA SAO JOAO LTDA".
func FoldName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	folded, _, err := transform.String(stripAccents(), s)
	if err != nil {
		folded = s
	}
	folded = strings.ToUpper(folded)
	return multiSpace.ReplaceAllString(folded, " ")
}
