// Package turkish provides diacritic folding for Turkish text.
//
// Folding maps the six Turkish letters to their ASCII equivalents and
// then lower-cases with ordinary (non-locale-sensitive) case folding,
// so a name containing a Turkish letter compares equal to its ASCII
// spelling. The dotted/dotless I distinction is handled by explicit
// mappings: both İ and ı end up as plain "i".
package turkish

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fold maps Turkish letters to ASCII. Upper-case forms fold to
// upper-case ASCII; the final lowering happens afterwards.
var fold = map[rune]rune{
	'ç': 'c', 'Ç': 'C',
	'ğ': 'g', 'Ğ': 'G',
	'ı': 'i', 'İ': 'I',
	'ö': 'o', 'Ö': 'O',
	'ş': 's', 'Ş': 'S',
	'ü': 'u', 'Ü': 'U',
}

// stripAccents removes combining marks left by other Latin diacritics,
// such as the circumflexed loanword vowels â, î, û.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize folds a string to its canonical comparison form: Turkish
// letters replaced with ASCII equivalents, remaining Latin diacritics
// stripped, and the result lower-cased. It is deterministic and
// idempotent; malformed input degrades to the empty string.
func Normalize(s string) string {
	if s == "" || !utf8.ValidString(s) {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if folded, ok := fold[r]; ok {
			b.WriteRune(folded)
		} else {
			b.WriteRune(r)
		}
	}

	out, _, err := transform.String(stripAccents, b.String())
	if err != nil {
		out = b.String()
	}
	return strings.ToLower(out)
}
