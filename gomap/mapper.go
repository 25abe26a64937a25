package gomap

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/canon"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/debug"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/encode"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/ir"
)

// Key names of the tables holding the elements of a multi-array.
const (
	RanksKey = "//uRanks"
	RankKey  = "//uRank"
)

// ToIR converts v to a property keyed by the type name of v. A token
// that is already a property is returned as a copy.
func ToIR(v any, opts ...MapOption) (*ir.Node, error) {
	m := &mapper{cfg: newMapConfig(opts...)}
	kind, x := classify(v)
	if kind == TokenKind {
		if n := x.(*ir.Node); n.Type == ir.PropertyType {
			return n.Clone(), nil
		}
	}
	res, err := m.project(kind, x, v, 0)
	if err != nil {
		return nil, err
	}
	return ir.Prop(TypeName(v), res), nil
}

// ToValueIR converts v without the enclosing property.
func ToValueIR(v any, opts ...MapOption) (*ir.Node, error) {
	m := &mapper{cfg: newMapConfig(opts...)}
	kind, x := classify(v)
	return m.project(kind, x, v, 0)
}

// ToKV converts v to text with ToIR and the writer.
func ToKV(v any, encOpts []encode.EncodeOption, opts ...MapOption) ([]byte, error) {
	node, err := ToIR(v, opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := encode.Encode(node, &buf, encOpts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type mapper struct {
	cfg  *mapConfig
	path []string
}

func (m *mapper) fieldPath() string {
	return strings.Join(m.path, ".")
}

func (m *mapper) errorf(err error, format string, args ...any) error {
	return &MarshalError{
		FieldPath: m.fieldPath(),
		Message:   fmt.Sprintf(format, args...),
		Err:       err,
	}
}

func (m *mapper) logf(kind Kind, v any) {
	if m.cfg.logf != nil {
		m.cfg.logf("map %s %s (%s)\n", m.fieldPath(), kind, TypeName(v))
	}
	if debug.Map() {
		debug.Logf("map %s %s (%T)\n", m.fieldPath(), kind, v)
	}
}

func (m *mapper) push(name string) { m.path = append(m.path, name) }
func (m *mapper) pop()             { m.path = m.path[:len(m.path)-1] }

// project returns the value or object v projects to. x is the
// capability returned by classify for v.
func (m *mapper) project(kind Kind, x, v any, depth int) (*ir.Node, error) {
	switch kind {
	case NullKind:
		return ir.FromString(canon.Null), nil
	case ScalarKind:
		return ir.FromString(x.(string)), nil
	case TokenKind:
		n := x.(*ir.Node).Clone()
		if n.Type == ir.ValueType || n.Type == ir.ObjectType {
			return n, nil
		}
		return ir.FromValues(n), nil
	case UnsupportedKind:
		return nil, m.errorf(ErrUnsupported, "unsupported value of type %T", v)
	}
	if depth >= m.cfg.maxDepth {
		return nil, m.errorf(ErrDepth, "maximum depth exceeded")
	}
	m.logf(kind, v)
	switch kind {
	case RecordKind:
		return m.record(x.(Record), depth+1)
	case SequenceKind:
		return m.sequence(x.(Sequence), depth+1)
	case MappingKind:
		return m.mapping(x.(Mapping), depth+1)
	case MultiArrayKind:
		return m.multiArray(x.(MultiArray), depth+1)
	}
	return nil, m.errorf(ErrUnsupported, "unknown kind %d", kind)
}

// element returns the child for v inside a sequence or mapping: an
// anonymous value for leaves, a property keyed by type name otherwise.
func (m *mapper) element(v any, depth int) (*ir.Node, error) {
	kind, x := classify(v)
	res, err := m.project(kind, x, v, depth)
	if err != nil {
		return nil, err
	}
	if kind.IsLeaf() {
		return res, nil
	}
	return ir.Prop(TypeName(v), res), nil
}

func (m *mapper) record(r Record, depth int) (*ir.Node, error) {
	fields := r.KVFields()
	res := ir.FromValues()
	for _, f := range fields {
		m.push(f.Name)
		kind, x := classify(f.Value)
		val, err := m.project(kind, x, f.Value, depth)
		if err != nil {
			m.pop()
			return nil, err
		}
		m.pop()
		key := f.Name
		if !kind.IsLeaf() && kind != TokenKind {
			key = f.TypeName
			if key == "" {
				key = TypeName(f.Value)
			}
		}
		if err := res.Append(ir.Prop(key, val)); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (m *mapper) sequence(s Sequence, depth int) (*ir.Node, error) {
	n := s.Len()
	res := &ir.Node{Type: ir.ObjectType, Values: make([]*ir.Node, 0, n)}
	for i := range n {
		if err := m.appendElement(res, "["+strconv.Itoa(i)+"]", s.At(i), depth); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (m *mapper) appendElement(dst *ir.Node, name string, v any, depth int) error {
	m.push(name)
	defer m.pop()
	c, err := m.element(v, depth)
	if err != nil {
		return err
	}
	return dst.Append(c)
}

func (m *mapper) mapping(mp Mapping, depth int) (*ir.Node, error) {
	n := mp.Len()
	res := &ir.Node{Type: ir.ObjectType, Values: make([]*ir.Node, 0, n)}
	for i := range n {
		k, v := mp.Entry(i)
		entry, err := m.entry(i, k, v, depth)
		if err != nil {
			return nil, err
		}
		if err := res.Append(entry); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (m *mapper) entry(i int, k, v any, depth int) (*ir.Node, error) {
	m.push("[" + strconv.Itoa(i) + "]")
	defer m.pop()
	body := ir.FromValues()
	kind, x := classify(k)
	var key string
	switch {
	case kind.IsLeaf():
		key, _ = x.(string)
		if kind == NullKind {
			key = canon.Null
		}
	default:
		key = TypeName(k)
		kn, err := m.project(kind, x, k, depth)
		if err != nil {
			return nil, err
		}
		if err := body.Append(ir.Prop(key, kn)); err != nil {
			return nil, err
		}
	}
	val, err := m.element(v, depth)
	if err != nil {
		return nil, err
	}
	if err := body.Append(val); err != nil {
		return nil, err
	}
	return ir.Prop(key, body), nil
}
