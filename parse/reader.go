package parse

import (
	"io"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/settings"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/token"
)

type State int

const (
	StateStart State = iota
	StateProperty
	StateObject
	StateComment
	StateConditional
	StateFinished
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StateProperty:
		return "Property"
	case StateObject:
		return "Object"
	case StateComment:
		return "Comment"
	case StateConditional:
		return "Conditional"
	case StateFinished:
		return "Finished"
	case StateClosed:
		return "Closed"
	}
	return "<unknown state>"
}

// Reader is a pull tokenizer. Each call to ReadToken advances by one
// token; State and Value describe the token just read:
//
//	StateProperty     a key or scalar value; Value is its text
//	StateObject       "{" or "}"
//	StateComment      Value is the text after "//"
//	StateConditional  Value is the text inside "[...]"
//	StateFinished     input is exhausted
//
// A Reader is not safe for concurrent use.
type Reader struct {
	src   io.Reader
	tk    *token.Tokenizer
	state State
	tok   *token.Token
}

func NewReader(r io.Reader, s settings.Settings) *Reader {
	return &Reader{
		src: r,
		tk:  token.NewTokenizer(r, token.TokenSettings(s)),
	}
}

// ReadToken advances to the next token. It returns false at the end of
// input and on error.
func (r *Reader) ReadToken() (bool, error) {
	switch r.state {
	case StateClosed:
		return false, ErrClosed
	case StateFinished:
		return false, nil
	}
	tok, err := r.tk.Next()
	if err == io.EOF {
		r.state = StateFinished
		r.tok = nil
		return false, nil
	}
	if err != nil {
		return false, err
	}
	r.tok = tok
	switch tok.Type {
	case token.TString, token.TLiteral:
		r.state = StateProperty
	case token.TLCurl, token.TRCurl:
		r.state = StateObject
	case token.TComment:
		r.state = StateComment
	case token.TCond:
		r.state = StateConditional
	}
	return true, nil
}

func (r *Reader) State() State { return r.state }

// Value returns the payload of the current token.
func (r *Reader) Value() string {
	if r.tok == nil {
		return ""
	}
	return r.tok.Value
}

// Token returns the current token, or nil before the first and after
// the last.
func (r *Reader) Token() *token.Token { return r.tok }

// Pos returns the position of the current token, or of the end of the
// input once finished.
func (r *Reader) Pos() token.Pos {
	if r.tok == nil {
		return r.tk.Pos()
	}
	return r.tok.Pos
}

// Close ends reading. The underlying reader is closed if it is an
// io.Closer.
func (r *Reader) Close() error {
	if r.state == StateClosed {
		return nil
	}
	r.state = StateClosed
	r.tok = nil
	if c, ok := r.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
