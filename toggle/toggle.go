// Package toggle swaps the particle spellings は/わ and へ/え in an already
// converted reading. Both toggles are their own inverse.
package toggle

import (
	"strings"
	"unicode/utf8"
)

// WaHa swaps every は with わ and every わ with は.
func WaHa(text string) string {
	return swap(text, 'は', 'わ')
}

// HeE swaps every へ with え and every え with へ.
func HeE(text string) string {
	return swap(text, 'へ', 'え')
}

// swap copies bytes it does not recognise, invalid UTF-8 included, so a
// second pass always restores the input exactly.
func swap(text string, a, b rune) string {
	var out strings.Builder
	out.Grow(len(text))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch r {
		case a:
			out.WriteRune(b)
		case b:
			out.WriteRune(a)
		default:
			out.WriteString(text[i : i+size])
		}
		i += size
	}
	return out.String()
}
