// Package naming derives the file and type names of a generated project
// from the name the user typed.
package naming

import (
	"strings"
	"unicode"
)

// Separator joins the words of a kebab-case name.
const Separator = '-'

// ToKebab lower-cases s and splits its words with Separator.
// A word starts at every uppercase letter and after every rune that is
// neither a letter nor a digit (spaces, underscores, dots, existing dashes).
// Uppercase letters with no lowercase form are treated as separators.
// Runs of separators collapse into one and the result never starts or ends
// with a separator, so ToKebab(ToKebab(s)) == ToKebab(s).
func ToKebab(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	pending := false
	for _, r := range s {
		lower := unicode.ToLower(r)
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r),
			// uppercase letters without a lowercase form, e.g. 'ϒ'
			unicode.IsUpper(lower):
			pending = b.Len() > 0
			continue
		case unicode.IsUpper(r) && b.Len() > 0:
			pending = true
		}
		if pending {
			b.WriteRune(Separator)
			pending = false
		}
		b.WriteRune(lower)
	}
	return b.String()
}

// KebabToPascal upper-cases the first rune of every kebab-case segment,
// lower-cases the rest and drops the separators. Leading runes that cannot
// start an identifier are skipped.
func KebabToPascal(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	upper := true
	for _, r := range s {
		if r == Separator {
			upper = true
			continue
		}
		if b.Len() == 0 && !unicode.IsLetter(r) {
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Identifier returns the kebab-case and PascalCase forms of name.
func Identifier(name string) (kebab, pascal string) {
	kebab = ToKebab(name)
	return kebab, KebabToPascal(kebab)
}
