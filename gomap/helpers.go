package gomap

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// Slice adapts a Go slice to Sequence.
type Slice[T any] []T

func (s Slice[T]) Len() int     { return len(s) }
func (s Slice[T]) At(i int) any { return s[i] }

// SliceOf converts any slice type to a Slice of its elements.
func SliceOf[S ~[]T, T any](s S) Slice[T] { return Slice[T](s) }

// Optional returns p, or an untyped nil when p is nil, so that a nil
// optional member projects as Null.
func Optional[T any](p *T) any {
	if p == nil {
		return nil
	}
	return p
}

// OrderedMap is a Mapping that keeps insertion order.
type OrderedMap[K comparable, V any] struct {
	keys []K
	vals map[K]V
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{vals: map[K]V{}}
}

// Set adds or replaces the value of k. A replaced key keeps its
// position.
func (m *OrderedMap[K, V]) Set(k K, v V) {
	if _, ok := m.vals[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.vals[k] = v
}

func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.vals[k]
	return v, ok
}

func (m *OrderedMap[K, V]) Keys() []K { return slices.Clone(m.keys) }

func (m *OrderedMap[K, V]) KVIsNil() bool { return m == nil }

func (m *OrderedMap[K, V]) Len() int { return len(m.keys) }

func (m *OrderedMap[K, V]) Entry(i int) (any, any) {
	k := m.keys[i]
	return k, m.vals[k]
}

// SortedMap returns the entries of m as a Mapping ordered by key.
func SortedMap[K cmp.Ordered, V any](m map[K]V) *OrderedMap[K, V] {
	res := NewOrderedMap[K, V]()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		res.Set(k, m[k])
	}
	return res
}

// Grid is a rank 2 MultiArray. Its column count is the length of the
// first row; rows shorter than that hold Null in the missing cells.
type Grid[T any] [][]T

func (g Grid[T]) Shape() []int {
	if len(g) == 0 {
		return []int{0, 0}
	}
	return []int{len(g), len(g[0])}
}

func (g Grid[T]) At(idx []int) any {
	row := g[idx[0]]
	if idx[1] >= len(row) {
		return nil
	}
	return row[idx[1]]
}

// Array is a MultiArray of any rank over a flat slice in row-major
// order.
type Array[T any] struct {
	shape []int
	data  []T
}

// NewArray returns an array of the given shape backed by flat, whose
// length must be the product of the extents.
func NewArray[T any](shape []int, flat []T) (*Array[T], error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("%w: rank 0", ErrShape)
	}
	n := 1
	for _, e := range shape {
		if e < 0 {
			return nil, fmt.Errorf("%w: negative extent %d", ErrShape, e)
		}
		n *= e
	}
	if n != len(flat) {
		return nil, fmt.Errorf("%w: %v holds %d elements, got %d", ErrShape, shape, n, len(flat))
	}
	return &Array[T]{shape: slices.Clone(shape), data: flat}, nil
}

func (a *Array[T]) KVIsNil() bool { return a == nil }

func (a *Array[T]) Shape() []int { return slices.Clone(a.shape) }

func (a *Array[T]) At(idx []int) any {
	return a.data[a.offset(idx)]
}

// Flat returns the backing slice.
func (a *Array[T]) Flat() []T { return a.data }

func (a *Array[T]) offset(idx []int) int {
	off := 0
	for i, e := range a.shape {
		off = off*e + idx[i]
	}
	return off
}
