package token

type TokenType int

const (
	TString TokenType = iota
	TLiteral
	TLCurl
	TRCurl
	TComment
	TCond
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TString:  "TString",
		TLiteral: "TLiteral",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TComment: "TComment",
		TCond:    "TCond",
	}[t]
	if ok {
		return s
	}
	return "<unknown token type>"
}

// IsText reports whether t carries a key or value.
func (t TokenType) IsText() bool {
	return t == TString || t == TLiteral
}

type Token struct {
	Type TokenType
	Pos  Pos
	// Value is the payload: the unquoted and unescaped text of a string,
	// the comment text after "//", or the expression inside "[...]".
	Value string
}
