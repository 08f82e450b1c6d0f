package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var slugInvalidChars = regexp.MustCompile("[^a-z0-9]+")

// GenerateSlug turns a user-supplied name into a filesystem and URL safe
// identifier: diacritics folded, lowercased, runs of non-alphanumerics
// collapsed into single hyphens.
func GenerateSlug(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	text, _, _ = transform.String(t, text)

	text = strings.ToLower(text)
	text = slugInvalidChars.ReplaceAllString(text, "-")
	text = strings.Trim(text, "-")

	return text
}
