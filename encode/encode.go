package encode

import (
	"fmt"
	"io"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/ir"
)

// Encode writes node to w. A property is written as its key followed by
// its value, an object as a braced table. Scalar values that appear
// directly inside an object have no key; they are written as a key
// heading an empty table.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	ew := NewWriter(w, opts...)
	if err := ew.Encode(node); err != nil {
		return err
	}
	return ew.Flush()
}

// Encode writes node at the current position of w.
func (w *Writer) Encode(node *ir.Node) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	switch node.Type {
	case ir.ValueType:
		return w.WriteValue(node.String)
	case ir.CommentType:
		if !w.es.comments {
			return nil
		}
		return w.WriteComment(node.String)
	case ir.PropertyType:
		return w.encodeProperty(node)
	case ir.ObjectType:
		return w.encodeObject(node)
	}
	return fmt.Errorf("%w: unknown node type %s", ErrEncoding, node.Type)
}

func (w *Writer) encodeProperty(node *ir.Node) error {
	if err := w.WriteKey(node.Key); err != nil {
		return err
	}
	v := node.Value
	if v == nil {
		return fmt.Errorf("%w: property %q: %w", ErrEncoding, node.Key, ir.ErrNilValue)
	}
	switch v.Type {
	case ir.ValueType:
		return w.WriteValue(v.String)
	case ir.ObjectType:
		return w.encodeObject(v)
	}
	return fmt.Errorf("%w: property %q has a %s value", ErrEncoding, node.Key, v.Type)
}

func (w *Writer) encodeObject(node *ir.Node) error {
	if err := w.WriteObjectStart(); err != nil {
		return err
	}
	for _, c := range node.Values {
		if c == nil {
			return fmt.Errorf("%w: nil child", ErrEncoding)
		}
		if c.Type == ir.ValueType {
			if err := w.writeBareValue(c.String); err != nil {
				return err
			}
			continue
		}
		if err := w.Encode(c); err != nil {
			return err
		}
	}
	return w.WriteObjectEnd()
}
