package token

// Grammar symbols.
const (
	DoubleQuote = '"'
	Escape      = '\\'
	CommentLead = "//"
	Assign      = ' '
	Indent      = '\t'
	ObjectStart = '{'
	ObjectEnd   = '}'
	CondStart   = '['
	CondEnd     = ']'
)

// escapeLetters maps a character to the letter that follows the backslash in
// its escaped form.
var escapeLetters = map[byte]byte{
	'\n': 'n',
	'\t': 't',
	'\v': 'v',
	'\b': 'b',
	'\r': 'r',
	'\f': 'f',
	'\a': 'a',
	'\\': '\\',
	'?':  '?',
	'\'': '\'',
	'"':  '"',
}

var unescapes = func() map[byte]byte {
	m := make(map[byte]byte, len(escapeLetters))
	for c, l := range escapeLetters {
		m[l] = c
	}
	return m
}()

// EscapeByte returns the escape letter of c.
func EscapeByte(c byte) (byte, bool) {
	l, ok := escapeLetters[c]
	return l, ok
}

// UnescapeByte returns the character denoted by the escape letter l.
func UnescapeByte(l byte) (byte, bool) {
	c, ok := unescapes[l]
	return c, ok
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// isLiteralEnd reports whether c terminates a bare word.
func isLiteralEnd(c byte) bool {
	switch c {
	case DoubleQuote, ObjectStart, ObjectEnd, CondStart:
		return true
	}
	return isSpace(c)
}
