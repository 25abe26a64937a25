package canon

import "unicode/utf8"

// Char is a single character. Plain runes are int32 and encode as
// numbers; Char encodes as the character itself.
type Char rune

// DefaultChar is the result of parsing text that is not one character.
const DefaultChar Char = ' '

func FormatChar(c Char) string {
	return string(rune(c))
}

func ParseChar(s string) Char {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || n != len(s) || (r == utf8.RuneError && n == 1) {
		return DefaultChar
	}
	return Char(r)
}
