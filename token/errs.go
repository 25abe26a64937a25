package token

import (
	"errors"
	"fmt"
)

// ErrMalformed is wrapped by every lexical and structural error.
var ErrMalformed = errors.New("malformed input")

var (
	ErrUnterminated = fmt.Errorf("%w: incomplete data", ErrMalformed)
	ErrTokenSize    = fmt.Errorf("%w: token too large", ErrMalformed)
	ErrUnexpected   = fmt.Errorf("%w: unexpected character", ErrMalformed)
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func NewTokenizeErr(e error, p Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: p}
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func UnexpectedErr(what string, p Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %s", ErrUnexpected, what), p)
}
