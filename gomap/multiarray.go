package gomap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/ir"
)

func (m *mapper) multiArray(a MultiArray, depth int) (*ir.Node, error) {
	shape := a.Shape()
	if len(shape) == 0 {
		return nil, m.errorf(ErrShape, "rank 0 array")
	}
	for _, e := range shape {
		if e < 0 {
			return nil, m.errorf(ErrShape, "negative extent in %v", shape)
		}
	}
	if len(shape) == 1 {
		return m.sequence(rankOne{a, shape[0]}, depth)
	}
	ranks, err := m.rank(a, shape, nil, depth)
	if err != nil {
		return nil, err
	}
	return ir.FromValues(ir.FromString(EncodeShape(shape)), ir.Prop(RanksKey, ranks)), nil
}

// rank returns the table of the sub-array at prefix.
func (m *mapper) rank(a MultiArray, shape, prefix []int, depth int) (*ir.Node, error) {
	d := len(prefix)
	res := &ir.Node{Type: ir.ObjectType, Values: make([]*ir.Node, 0, shape[d])}
	idx := append(prefix, 0)
	for i := range shape[d] {
		idx[d] = i
		if d == len(shape)-1 {
			if err := m.appendElement(res, indexName(idx), a.At(idx), depth); err != nil {
				return nil, err
			}
			continue
		}
		sub, err := m.rank(a, shape, idx, depth)
		if err != nil {
			return nil, err
		}
		if err := res.Append(ir.Prop(RankKey, sub)); err != nil {
			return nil, err
		}
	}
	return res, nil
}

type rankOne struct {
	a MultiArray
	n int
}

func (r rankOne) Len() int     { return r.n }
func (r rankOne) At(i int) any { return r.a.At([]int{i}) }

func indexName(idx []int) string {
	parts := make([]string, len(idx))
	for i, x := range idx {
		parts[i] = strconv.Itoa(x)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// EncodeShape returns the extents of shape joined by spaces.
func EncodeShape(shape []int) string {
	parts := make([]string, len(shape))
	for i, e := range shape {
		parts[i] = strconv.Itoa(e)
	}
	return strings.Join(parts, " ")
}

// DecodeShape parses the text written by EncodeShape.
func DecodeShape(s string) ([]int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, &ShapeError{Message: fmt.Sprintf("empty shape %q", s)}
	}
	res := make([]int, len(fields))
	for i, f := range fields {
		e, err := strconv.Atoi(f)
		if err != nil || e < 0 {
			return nil, &ShapeError{Message: fmt.Sprintf("bad extent %q", f)}
		}
		res[i] = e
	}
	return res, nil
}

// DecodeMultiArray reads back the projection of a multi-array of rank 2
// or more. n is the object, or a property holding it. The tree may come
// from the mapper or from parsing its text, where an anonymous value is
// read back as a key with an empty table; both forms are accepted. The
// table keys are matched without regard to case.
// Elements are returned in row-major order: leaves as values, composite
// elements as the properties holding them.
func DecodeMultiArray(n *ir.Node) ([]int, []*ir.Node, error) {
	if n != nil && n.Type == ir.PropertyType {
		n = n.Value
	}
	if n == nil || n.Type != ir.ObjectType {
		return nil, nil, &ShapeError{Message: "not an object"}
	}
	children := significant(n)
	if len(children) != 2 {
		return nil, nil, &ShapeError{Message: fmt.Sprintf("expected shape and ranks, got %d children", len(children))}
	}
	text, ok := leafText(children[0])
	if !ok {
		return nil, nil, &ShapeError{Message: "missing shape"}
	}
	shape, err := DecodeShape(text)
	if err != nil {
		return nil, nil, err
	}
	if len(shape) < 2 {
		return nil, nil, &ShapeError{Message: fmt.Sprintf("rank %d", len(shape))}
	}
	ranks := children[1]
	if !isTable(ranks, RanksKey) {
		return nil, nil, &ShapeError{Message: "missing " + RanksKey}
	}
	d := &shapeDecoder{shape: shape}
	if err := d.decode(ranks.Value, nil); err != nil {
		return nil, nil, err
	}
	return shape, d.elems, nil
}

type shapeDecoder struct {
	shape []int
	elems []*ir.Node
}

func (d *shapeDecoder) decode(n *ir.Node, prefix []int) error {
	dim := len(prefix)
	children := significant(n)
	if len(children) != d.shape[dim] {
		return &ShapeError{
			Path:    indexName(prefix),
			Message: fmt.Sprintf("dimension %d has %d entries, want %d", dim, len(children), d.shape[dim]),
		}
	}
	for i, c := range children {
		if dim == len(d.shape)-1 {
			if text, ok := leafText(c); ok {
				d.elems = append(d.elems, ir.FromString(text))
			} else {
				d.elems = append(d.elems, c)
			}
			continue
		}
		sub := append(prefix, i)
		if !isTable(c, RankKey) {
			return &ShapeError{Path: indexName(sub), Message: "missing " + RankKey}
		}
		if err := d.decode(c.Value, sub); err != nil {
			return err
		}
	}
	return nil
}

func isTable(n *ir.Node, key string) bool {
	return n.Type == ir.PropertyType && strings.EqualFold(n.Key, key) && n.Value != nil && n.Value.Type == ir.ObjectType
}

// significant returns the children of n other than comments.
func significant(n *ir.Node) []*ir.Node {
	res := make([]*ir.Node, 0, len(n.Values))
	for _, c := range n.Values {
		if c.Type != ir.CommentType {
			res = append(res, c)
		}
	}
	return res
}

// leafText returns the text of an anonymous value, in either its tree or
// its re-parsed form.
func leafText(n *ir.Node) (string, bool) {
	switch n.Type {
	case ir.ValueType:
		return n.String, true
	case ir.PropertyType:
		if v := n.Value; v != nil && v.Type == ir.ObjectType && len(v.Values) == 0 {
			return n.Key, true
		}
	}
	return "", false
}
