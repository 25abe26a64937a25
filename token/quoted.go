package token

import (
	"strings"
)

// Quote returns s in double quotes. With escapes set, every character
// of the escape table is written as a backslash pair; otherwise s is
// copied as is.
func Quote(s string, escapes bool) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(DoubleQuote)
	if escapes {
		writeEscaped(&b, s)
	} else {
		b.WriteString(s)
	}
	b.WriteByte(DoubleQuote)
	return b.String()
}

func writeEscaped(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if l, ok := EscapeByte(c); ok {
			b.WriteByte(Escape)
			b.WriteByte(l)
			continue
		}
		b.WriteByte(c)
	}
}

// Escaped returns s with escape pairs substituted, without quotes.
func Escaped(s string) string {
	var b strings.Builder
	writeEscaped(&b, s)
	return b.String()
}

// Unquote translates the escape pairs of body, the text between the
// quotes of a quoted string. An unknown escape letter is kept along
// with its backslash. A trailing lone backslash is kept too.
func Unquote(body string, escapes bool) string {
	if !escapes || strings.IndexByte(body, Escape) < 0 {
		return body
	}
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != Escape || i == len(body)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		if u, ok := UnescapeByte(body[i]); ok {
			b.WriteByte(u)
			continue
		}
		b.WriteByte(Escape)
		b.WriteByte(body[i])
	}
	return b.String()
}
