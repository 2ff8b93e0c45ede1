package tokenizer

import "unicode"

// IsNumber reports whether s is non-empty and every rune is numeric.
func IsNumber(s string) bool {
	return allRunes(s, unicode.IsNumber)
}

// IsWord reports whether s is non-empty and every rune is alphabetic.
func IsWord(s string) bool {
	return allRunes(s, isAlpha)
}

// IsAlphanumeric reports whether s is non-empty and every rune is alphabetic or numeric.
func IsAlphanumeric(s string) bool {
	return allRunes(s, isAlnum)
}

// isAlpha follows the Unicode Alphabetic property: letters, letter
// numbers and the Other_Alphabetic marks such as Devanagari vowel signs.
func isAlpha(r rune) bool {
	return unicode.IsLetter(r) ||
		unicode.Is(unicode.Nl, r) ||
		unicode.Is(unicode.Other_Alphabetic, r)
}

func isAlnum(r rune) bool {
	return isAlpha(r) || unicode.IsNumber(r)
}

func allRunes(s string, pred func(rune) bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}
