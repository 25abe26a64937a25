package gomap

import (
	"time"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/canon"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/ir"
)

type Kind int

const (
	UnsupportedKind Kind = iota
	NullKind
	ScalarKind
	RecordKind
	SequenceKind
	MappingKind
	MultiArrayKind
	TokenKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case ScalarKind:
		return "scalar"
	case RecordKind:
		return "record"
	case SequenceKind:
		return "sequence"
	case MappingKind:
		return "mapping"
	case MultiArrayKind:
		return "multiarray"
	case TokenKind:
		return "token"
	default:
		return "unsupported"
	}
}

// IsLeaf reports whether values of kind k project to a single value.
func (k Kind) IsLeaf() bool { return k == NullKind || k == ScalarKind }

// Scalar is implemented by types with their own canonical text.
type Scalar interface {
	KVScalar() string
}

// TypeNamer overrides the name a value is keyed by.
type TypeNamer interface {
	KVTypeName() string
}

// Field describes one member of a record.
type Field struct {
	Name string
	// TypeName, when set, replaces the type name of Value as the key of
	// a composite member.
	TypeName string
	Value    any
}

// Record is implemented by types serialized member by member.
type Record interface {
	KVFields() []Field
}

type Sequence interface {
	Len() int
	At(i int) any
}

type Mapping interface {
	Len() int
	Entry(i int) (key, value any)
}

// MultiArray is a rectangular array of rank Len(Shape()), indexed in
// row-major order.
type MultiArray interface {
	Shape() []int
	At(idx []int) any
}

// Nullable is implemented by pointer types that can report a nil
// receiver. A nil Nullable projects as Null instead of having its other
// methods called.
type Nullable interface {
	KVIsNil() bool
}

// KindOf returns the capability through which v is projected.
func KindOf(v any) Kind {
	k, _ := classify(v)
	return k
}

// classify returns the kind of v together with the value that carries
// the capability: the canonical text for scalars, the converted
// container for the builtin slices and maps.
func classify(v any) (Kind, any) {
	switch x := v.(type) {
	case nil:
		return NullKind, nil
	case *ir.Node:
		if x == nil {
			return NullKind, nil
		}
		return TokenKind, x
	case Nullable:
		if x.KVIsNil() {
			return NullKind, nil
		}
	}
	if x, ok := v.(Scalar); ok {
		return ScalarKind, x.KVScalar()
	}
	d, isNil := deref(v)
	if isNil {
		return NullKind, nil
	}
	if s, ok := scalarText(d); ok {
		return ScalarKind, s
	}
	switch x := v.(type) {
	case MultiArray:
		return MultiArrayKind, x
	case Sequence:
		return SequenceKind, x
	case Mapping:
		return MappingKind, x
	case Record:
		return RecordKind, x
	case []any:
		return SequenceKind, Slice[any](x)
	case []string:
		return SequenceKind, Slice[string](x)
	case []int:
		return SequenceKind, Slice[int](x)
	case []int64:
		return SequenceKind, Slice[int64](x)
	case []float64:
		return SequenceKind, Slice[float64](x)
	case []bool:
		return SequenceKind, Slice[bool](x)
	case []int32:
		return SequenceKind, Slice[int32](x)
	case []uint32:
		return SequenceKind, Slice[uint32](x)
	case []float32:
		return SequenceKind, Slice[float32](x)
	case map[string]any:
		return MappingKind, SortedMap(x)
	case map[string]string:
		return MappingKind, SortedMap(x)
	case map[string]int:
		return MappingKind, SortedMap(x)
	case map[string]int64:
		return MappingKind, SortedMap(x)
	case map[string]float64:
		return MappingKind, SortedMap(x)
	case map[string]bool:
		return MappingKind, SortedMap(x)
	}
	return UnsupportedKind, nil
}

// deref follows pointers to the basic scalar types.
func deref(v any) (any, bool) {
	switch x := v.(type) {
	case *string:
		return ptrVal(x)
	case *bool:
		return ptrVal(x)
	case *int:
		return ptrVal(x)
	case *int8:
		return ptrVal(x)
	case *int16:
		return ptrVal(x)
	case *int32:
		return ptrVal(x)
	case *int64:
		return ptrVal(x)
	case *uint:
		return ptrVal(x)
	case *uint8:
		return ptrVal(x)
	case *uint16:
		return ptrVal(x)
	case *uint32:
		return ptrVal(x)
	case *uint64:
		return ptrVal(x)
	case *float32:
		return ptrVal(x)
	case *float64:
		return ptrVal(x)
	case *canon.Char:
		return ptrVal(x)
	case *canon.Decimal:
		return ptrVal(x)
	case *time.Time:
		return ptrVal(x)
	}
	return v, false
}

func ptrVal[T any](p *T) (any, bool) {
	if p == nil {
		return nil, true
	}
	return *p, false
}

// scalarText is canon.Format restricted to non-nil values. A
// TextMarshaler that fails is not a scalar.
func scalarText(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	return canon.Format(v)
}
