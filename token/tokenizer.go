package token

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tokenizer reads tokens from a stream. It is not safe for concurrent
// use.
type Tokenizer struct {
	r     *bufio.Reader
	opt   tokenOpts
	pos   Pos
	buf   []byte
	lower cases.Caser
	err   error
	bom   bool
}

func NewTokenizer(r io.Reader, opts ...TokenOpt) *Tokenizer {
	opt := tokenOpts{}
	for _, o := range opts {
		o(&opt)
	}
	t := &Tokenizer{
		r:   bufio.NewReader(r),
		opt: opt,
		pos: Pos{Line: 1, Col: 1},
	}
	if opt.lowercase {
		t.lower = cases.Lower(language.Und)
	}
	return t
}

func NewTokenizerBytes(d []byte, opts ...TokenOpt) *Tokenizer {
	return NewTokenizer(bytes.NewReader(d), opts...)
}

// Tokenize returns all tokens of d.
func Tokenize(d []byte, opts ...TokenOpt) ([]Token, error) {
	t := NewTokenizerBytes(d, opts...)
	var res []Token
	for {
		tok, err := t.Next()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, *tok)
	}
}

// Pos returns the position of the next unread byte.
func (t *Tokenizer) Pos() Pos {
	return t.pos
}

func (t *Tokenizer) readByte() (byte, error) {
	c, err := t.r.ReadByte()
	if err != nil {
		return 0, err
	}
	t.pos.advance(c)
	return c, nil
}

func (t *Tokenizer) peekByte() (byte, error) {
	d, err := t.r.Peek(1)
	if err != nil {
		return 0, err
	}
	return d[0], nil
}

// Next returns the next token, or io.EOF after the last one. Once Next
// has returned an error it returns the same error on every later call.
func (t *Tokenizer) Next() (*Token, error) {
	if t.err != nil {
		return nil, t.err
	}
	tok, err := t.next()
	if err != nil {
		t.err = err
		return nil, err
	}
	return tok, nil
}

func (t *Tokenizer) next() (*Token, error) {
	if err := t.skipBOM(); err != nil {
		return nil, err
	}
	if err := t.skipSpace(); err != nil {
		return nil, err
	}
	start := t.pos
	c, err := t.readByte()
	if err != nil {
		return nil, err
	}
	switch c {
	case ObjectStart:
		return &Token{Type: TLCurl, Pos: start, Value: "{"}, nil
	case ObjectEnd:
		return &Token{Type: TRCurl, Pos: start, Value: "}"}, nil
	case DoubleQuote:
		return t.quoted(start)
	case CondStart:
		return t.cond(start)
	case '/':
		n, err := t.peekByte()
		if err != nil || n != '/' {
			return nil, UnexpectedErr("'/'", start)
		}
		t.readByte()
		return t.comment(start)
	}
	return t.literal(start, c)
}

func (t *Tokenizer) skipBOM() error {
	if t.bom {
		return nil
	}
	t.bom = true
	d, err := t.r.Peek(3)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if len(d) == 3 && d[0] == 0xEF && d[1] == 0xBB && d[2] == 0xBF {
		t.r.Discard(3)
		t.pos.Offset += 3
	}
	return nil
}

func (t *Tokenizer) skipSpace() error {
	for {
		c, err := t.peekByte()
		if err != nil {
			return err
		}
		if !isSpace(c) {
			return nil
		}
		t.readByte()
	}
}

func (t *Tokenizer) add(c byte, start Pos) error {
	if t.opt.maxSize > 0 && len(t.buf) >= t.opt.maxSize {
		return NewTokenizeErr(fmt.Errorf("%w: more than %d bytes", ErrTokenSize, t.opt.maxSize), start)
	}
	t.buf = append(t.buf, c)
	return nil
}

func (t *Tokenizer) text() string {
	s := string(t.buf)
	if t.opt.lowercase {
		s = t.lower.String(s)
	}
	return s
}

func (t *Tokenizer) quoted(start Pos) (*Token, error) {
	t.buf = t.buf[:0]
	for {
		c, err := t.readByte()
		if err == io.EOF {
			return nil, NewTokenizeErr(fmt.Errorf("%w: unterminated quoted string", ErrUnterminated), start)
		}
		if err != nil {
			return nil, err
		}
		switch {
		case c == DoubleQuote:
			return &Token{Type: TString, Pos: start, Value: t.text()}, nil
		case c == Escape && t.opt.escapes:
			l, err := t.readByte()
			if err == io.EOF {
				return nil, NewTokenizeErr(fmt.Errorf("%w: unterminated escape", ErrUnterminated), start)
			}
			if err != nil {
				return nil, err
			}
			if u, ok := UnescapeByte(l); ok {
				c = u
			} else {
				if err := t.add(Escape, start); err != nil {
					return nil, err
				}
				c = l
			}
		}
		if err := t.add(c, start); err != nil {
			return nil, err
		}
	}
}

func (t *Tokenizer) literal(start Pos, first byte) (*Token, error) {
	t.buf = t.buf[:0]
	if err := t.add(first, start); err != nil {
		return nil, err
	}
	for {
		c, err := t.peekByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if isLiteralEnd(c) {
			break
		}
		t.readByte()
		if err := t.add(c, start); err != nil {
			return nil, err
		}
	}
	return &Token{Type: TLiteral, Pos: start, Value: t.text()}, nil
}

func (t *Tokenizer) comment(start Pos) (*Token, error) {
	t.buf = t.buf[:0]
	for {
		c, err := t.readByte()
		if err == io.EOF || c == '\n' {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := t.add(c, start); err != nil {
			return nil, err
		}
	}
	if n := len(t.buf); n > 0 && t.buf[n-1] == '\r' {
		t.buf = t.buf[:n-1]
	}
	return &Token{Type: TComment, Pos: start, Value: string(t.buf)}, nil
}

func (t *Tokenizer) cond(start Pos) (*Token, error) {
	t.buf = t.buf[:0]
	for {
		c, err := t.readByte()
		if err == io.EOF || c == '\n' {
			return nil, NewTokenizeErr(fmt.Errorf("%w: unterminated conditional", ErrUnterminated), start)
		}
		if err != nil {
			return nil, err
		}
		if c == CondEnd {
			return &Token{Type: TCond, Pos: start, Value: string(t.buf)}, nil
		}
		if err := t.add(c, start); err != nil {
			return nil, err
		}
	}
}
