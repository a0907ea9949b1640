package authors

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	dashRunsRe = regexp.MustCompile(`-{2,}`)
	urlSafeRe  = regexp.MustCompile(`[^0-9a-z-]`)

	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// MakeURLFromName derives a URL fragment from an author name: lowercase,
// diacritics stripped, spaces turned into dashes and everything else outside
// [0-9a-z-] removed. "José Ñandú" becomes "jose-nandu".
func MakeURLFromName(name string) string {
	s := strings.ToLower(name)
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}
	s = strings.ReplaceAll(s, " ", "-")
	s = dashRunsRe.ReplaceAllString(s, "-")
	return urlSafeRe.ReplaceAllString(s, "")
}
