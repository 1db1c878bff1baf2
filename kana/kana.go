// Package kana classifies code points by script and normalizes katakana to
// hiragana. Every function here is total: unknown input is passed through.
package kana

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Class is the script class of a single code point.
type Class int

const (
	Japanese Class = iota
	Latin
	Katakana
	Youon
	Sokuon
	Space
)

func (c Class) String() string {
	switch c {
	case Latin:
		return "latin"
	case Katakana:
		return "katakana"
	case Youon:
		return "youon"
	case Sokuon:
		return "sokuon"
	case Space:
		return "space"
	default:
		return "japanese"
	}
}

const longVowelMark = 'ー'

var hiraganaYouon = map[rune]bool{
	'ぁ': true, 'ぃ': true, 'ぅ': true, 'ぇ': true, 'ぉ': true,
	'ゃ': true, 'ゅ': true, 'ょ': true, 'ゎ': true,
}

var katakanaYouon = map[rune]bool{
	'ァ': true, 'ィ': true, 'ゥ': true, 'ェ': true, 'ォ': true,
	'ャ': true, 'ュ': true, 'ョ': true, 'ヮ': true,
	'ｧ': true, 'ｨ': true, 'ｩ': true, 'ｪ': true, 'ｫ': true,
	'ｬ': true, 'ｭ': true, 'ｮ': true,
}

// Classify returns the class of r. Sokuon wins over katakana, so 'ッ' is
// Sokuon even though it is also part of a katakana run (see IsKatakana).
func Classify(r rune) Class {
	switch {
	case IsSokuon(r):
		return Sokuon
	case hiraganaYouon[r]:
		return Youon
	case IsKatakana(r):
		return Katakana
	case IsLatin(r):
		return Latin
	case unicode.IsSpace(r):
		return Space
	default:
		return Japanese
	}
}

// IsSokuon reports whether r is the small tsu in either syllabary.
func IsSokuon(r rune) bool {
	return r == 'っ' || r == 'ッ' || r == 'ｯ'
}

// IsYouon reports whether r is a small vowel or glide that folds into the
// preceding syllable, in hiragana or katakana.
func IsYouon(r rune) bool {
	return hiraganaYouon[r] || katakanaYouon[r]
}

// IsKatakana reports whether r belongs in a katakana run: the katakana
// script (small forms, sokuon and half-width forms included) plus the
// long-vowel marks.
func IsKatakana(r rune) bool {
	return unicode.Is(unicode.Katakana, r) || r == longVowelMark || r == 'ｰ'
}

// IsLatin reports whether r can be part of a Latin word: [A-Za-z0-9'-].
func IsLatin(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '\'' || r == '-':
		return true
	}
	return false
}

func IsKanji(r rune) bool {
	return unicode.Is(unicode.Han, r)
}

// IsKana returns true if rune is Hiragana or Katakana
func IsKana(r rune) bool {
	return unicode.Is(unicode.Hiragana, r) || IsKatakana(r)
}

// ToHiragana maps a katakana rune to its hiragana counterpart. The long-vowel
// mark, ヷ-ヺ and anything outside the katakana syllabary come back unchanged.
func ToHiragana(r rune) rune {
	switch {
	case r >= 'ァ' && r <= 'ヶ':
		return r - 0x60
	case r == 'ヽ' || r == 'ヾ':
		return r - 0x60
	}
	return r
}

// KatakanaToHiragana converts every katakana rune in s to hiragana. Bytes
// that are not valid UTF-8 are copied through as they are.
func KatakanaToHiragana(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			b.WriteString(s[i : i+size])
		} else {
			b.WriteRune(ToHiragana(r))
		}
		i += size
	}
	return b.String()
}

// isFullWidthLatin matches the full-width forms of [A-Za-z0-9'-].
func isFullWidthLatin(r rune) bool {
	switch {
	case r >= 'Ａ' && r <= 'Ｚ', r >= 'ａ' && r <= 'ｚ', r >= '０' && r <= '９':
		return true
	}
	return r == '＇' || r == '－'
}

// isHalfWidthKatakana matches U+FF66..U+FF9F, voicing marks included.
func isHalfWidthKatakana(r rune) bool {
	return r >= 'ｦ' && r <= '\uff9f'
}

// newWidthFolder returns a fresh chain; transform chains hold state and are
// not safe to share. Half-width katakana goes through NFKC so ｶﾞ composes to
// ガ instead of leaving a spacing ゛ as width.Widen would.
func newWidthFolder() transform.Transformer {
	return transform.Chain(
		runes.If(runes.Predicate(isFullWidthLatin), width.Narrow, nil),
		runes.If(runes.Predicate(isHalfWidthKatakana), norm.NFKC, nil),
	)
}

// FoldWidth narrows full-width Latin letters, digits, apostrophe and hyphen
// and widens half-width katakana, so that "ＤＴＭ" scans as Latin and "ｶﾀｶﾅ"
// as katakana. Every other code point, full-width punctuation included, is
// left alone.
func FoldWidth(s string) string {
	out, _, err := transform.String(newWidthFolder(), s)
	if err != nil {
		return s
	}
	return out
}
