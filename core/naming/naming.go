package naming

import (
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// digitLetters is the substitution table for digits in family identifiers.
var digitLetters = [10]rune{'s', 'l', 'a', 't', 'e', 'x', 'i', 'c', 'o', 'n'}

// ReplaceDigits replaces every ASCII digit in s by its cipher letter.
// Other runes are left untouched.
func ReplaceDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return digitLetters[r-'0']
		}
		return r
	}, s)
}

// GlyphName converts a raw glyph identifier into a kebab-cased name.
// Diacritics are folded, camel-case humps and letter/digit transitions become
// word boundaries, and every rune other than an ASCII letter or digit acts as a
// separator.
//
// GlyphName is idempotent: GlyphName(GlyphName(x)) == GlyphName(x).
func GlyphName(raw string) string {
	if raw == "" {
		return ""
	}
	s := separate(fold(raw))
	return tidy(strcase.ToKebab(s))
}

// FamilyIdentifier converts a prefix (or prefix plus variant key) into a
// lowerCamel identifier consisting of ASCII letters only.
// Digits are substituted for letters across the whole input before case
// conversion, so "fa6-brands" yields "faiBrands".
func FamilyIdentifier(raw string) string {
	if raw == "" {
		return ""
	}
	s := separate(fold(ReplaceDigits(raw)))
	s = strcase.ToLowerCamel(s)
	return strings.Map(func(r rune) rune {
		if isASCIILetter(r) {
			return r
		}
		return -1
	}, s)
}

// folding removes combining marks after canonical decomposition.
var folding = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func fold(s string) string {
	folded, _, err := transform.String(folding, s)
	if err != nil {
		return s
	}
	return folded
}

// separate keeps ASCII letters and digits, preserving case, and turns every
// other rune into a single '-'.
func separate(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	dash := false
	for _, r := range s {
		if isASCIILetter(r) || isASCIIDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// tidy lower-cases s, splits letter/digit transitions, collapses runs of '-'
// and trims leading and trailing '-'.
func tidy(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	var prev rune
	for _, r := range strings.ToLower(s) {
		switch {
		case isASCIILetter(r) || isASCIIDigit(r):
			if prev != 0 && prev != '-' && isASCIIDigit(prev) != isASCIIDigit(r) {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			prev = r
		default:
			if prev != 0 && prev != '-' {
				b.WriteByte('-')
				prev = '-'
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
