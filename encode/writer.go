package encode

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/ir"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/token"
)

type EncState struct {
	escapes  bool
	comments bool
	closer   bool

	Color func(ir.Type, ColorAttr, string) string
}

type writeState int

const (
	stateStart writeState = iota
	stateKey
	stateValue
	stateObjectStart
	stateObjectEnd
	stateComment
	stateFinished
	stateClosed
)

// Writer emits tokens one at a time, inserting the separators and
// indentation between them. It is not safe for concurrent use.
type Writer struct {
	dst   io.Writer
	w     *bufio.Writer
	es    *EncState
	state writeState
	depth int
}

func NewWriter(w io.Writer, opts ...EncodeOption) *Writer {
	es := &EncState{comments: true}
	for _, opt := range opts {
		opt(es)
	}
	return &Writer{
		dst: w,
		w:   bufio.NewWriter(w),
		es:  es,
	}
}

// Depth returns the number of open objects.
func (w *Writer) Depth() int { return w.depth }

// autoComplete writes what must precede a token of kind next and moves
// to that state.
func (w *Writer) autoComplete(next writeState) error {
	if w.state == stateClosed {
		return ErrClosed
	}
	prev := w.state
	w.state = next
	if prev == stateStart {
		return nil
	}
	switch next {
	case stateValue:
		return w.w.WriteByte(token.Assign)
	case stateKey, stateObjectStart, stateObjectEnd, stateComment:
		if err := w.w.WriteByte('\n'); err != nil {
			return err
		}
		_, err := w.w.WriteString(strings.Repeat(string(rune(token.Indent)), w.depth))
		return err
	}
	return nil
}

func (w *Writer) color(t ir.Type, a ColorAttr, s string) string {
	if w.es.Color == nil {
		return s
	}
	return w.es.Color(t, a, s)
}

func (w *Writer) quote(s string) string {
	return token.Quote(s, w.es.escapes)
}

func (w *Writer) WriteKey(key string) error {
	if err := w.autoComplete(stateKey); err != nil {
		return err
	}
	_, err := w.w.WriteString(w.color(ir.PropertyType, KeyColor, w.quote(key)))
	return err
}

func (w *Writer) WriteValue(v string) error {
	if err := w.autoComplete(stateValue); err != nil {
		return err
	}
	_, err := w.w.WriteString(w.color(ir.ValueType, ValueColor, w.quote(v)))
	return err
}

// writeBareValue writes an anonymous scalar inside an object, as a key
// heading an empty table.
func (w *Writer) writeBareValue(v string) error {
	if err := w.autoComplete(stateKey); err != nil {
		return err
	}
	if _, err := w.w.WriteString(w.color(ir.ValueType, KeyColor, w.quote(v))); err != nil {
		return err
	}
	if err := w.WriteObjectStart(); err != nil {
		return err
	}
	return w.WriteObjectEnd()
}

func (w *Writer) WriteObjectStart() error {
	if err := w.autoComplete(stateObjectStart); err != nil {
		return err
	}
	w.depth++
	_, err := w.w.WriteString(w.color(ir.ObjectType, SepColor, string(rune(token.ObjectStart))))
	return err
}

func (w *Writer) WriteObjectEnd() error {
	if w.state == stateClosed {
		return ErrClosed
	}
	if w.depth == 0 {
		return fmt.Errorf("%w: unbalanced end of object", ErrEncoding)
	}
	w.depth--
	if err := w.autoComplete(stateObjectEnd); err != nil {
		return err
	}
	if _, err := w.w.WriteString(w.color(ir.ObjectType, SepColor, string(rune(token.ObjectEnd)))); err != nil {
		return err
	}
	if w.depth == 0 {
		w.state = stateFinished
		return w.w.WriteByte('\n')
	}
	return nil
}

func (w *Writer) WriteComment(text string) error {
	if err := w.autoComplete(stateComment); err != nil {
		return err
	}
	_, err := w.w.WriteString(w.color(ir.CommentType, CommentColor, token.CommentLead+text))
	return err
}

func (w *Writer) Flush() error {
	if w.state == stateClosed {
		return ErrClosed
	}
	return w.w.Flush()
}

// Close flushes buffered output. With EncodeCloser set it also closes
// the destination. Writing after Close returns ErrClosed.
func (w *Writer) Close() error {
	if w.state == stateClosed {
		return nil
	}
	err := w.w.Flush()
	w.state = stateClosed
	if c, ok := w.dst.(io.Closer); ok && w.es.closer {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
