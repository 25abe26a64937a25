package ir

import (
	"fmt"
	"iter"
)

// Len returns the number of children of an object, or 0 for any other
// node.
func (y *Node) Len() int {
	if y.Type != ObjectType {
		return 0
	}
	return len(y.Values)
}

// Index returns the i'th child of an object, or nil if there is none.
func (y *Node) Index(i int) *Node {
	if y.Type != ObjectType || i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

func (y *Node) lookupProp(key string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	for _, c := range y.Values {
		if c.Type == PropertyType && c.Key == key {
			return c
		}
	}
	return nil
}

// Get returns the value of the first property with the given key, or
// nil.
func (y *Node) Get(key string) *Node {
	p := y.lookupProp(key)
	if p == nil {
		return nil
	}
	return p.Value
}

func (y *Node) Lookup(key string) (*Node, bool) {
	v := y.Get(key)
	return v, v != nil
}

func (y *Node) Has(key string) bool {
	return y.lookupProp(key) != nil
}

// Set assigns v to the first property with the given key, or appends a
// new property when there is none. A nil v is stored as an empty
// value.
func (y *Node) Set(key string, v *Node) error {
	if y.Type != ObjectType {
		return fmt.Errorf("%w: set %q on %s", ErrNotObject, key, y.Type)
	}
	if v == nil {
		v = Empty()
	}
	if p := y.lookupProp(key); p != nil {
		v.Parent = p
		v.ParentIndex = 0
		p.Value = v
		return nil
	}
	y.append(Prop(key, v))
	return nil
}

// Append adds child at the end of the object.
func (y *Node) Append(child *Node) error {
	if y.Type != ObjectType {
		return fmt.Errorf("%w: append to %s", ErrNotObject, y.Type)
	}
	if child == nil {
		return ErrNilValue
	}
	y.append(child)
	return nil
}

func (y *Node) append(child *Node) {
	child.Parent = y
	child.ParentIndex = len(y.Values)
	y.Values = append(y.Values, child)
}

// Insert places child at position i, shifting later children.
func (y *Node) Insert(i int, child *Node) error {
	if y.Type != ObjectType {
		return fmt.Errorf("%w: insert into %s", ErrNotObject, y.Type)
	}
	if child == nil {
		return ErrNilValue
	}
	if i < 0 || i > len(y.Values) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrIndex, i, len(y.Values))
	}
	y.Values = append(y.Values, nil)
	copy(y.Values[i+1:], y.Values[i:])
	y.Values[i] = child
	child.Parent = y
	y.reindex(i)
	return nil
}

// Remove drops every property with the given key and returns how many
// were removed.
func (y *Node) Remove(key string) int {
	if y.Type != ObjectType {
		return 0
	}
	n := 0
	j := 0
	for _, c := range y.Values {
		if c.Type == PropertyType && c.Key == key {
			c.Parent = nil
			n++
			continue
		}
		y.Values[j] = c
		j++
	}
	clear(y.Values[j:])
	y.Values = y.Values[:j]
	y.reindex(0)
	return n
}

func (y *Node) RemoveAt(i int) error {
	if y.Type != ObjectType {
		return fmt.Errorf("%w: remove from %s", ErrNotObject, y.Type)
	}
	if i < 0 || i >= len(y.Values) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndex, i, len(y.Values))
	}
	y.Values[i].Parent = nil
	y.Values = append(y.Values[:i], y.Values[i+1:]...)
	y.reindex(i)
	return nil
}

func (y *Node) reindex(from int) {
	for i := from; i < len(y.Values); i++ {
		y.Values[i].ParentIndex = i
	}
}

// Properties iterates over the key and value of each property child of
// an object, in order. Other children are skipped.
func (y *Node) Properties() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		if y.Type != ObjectType {
			return
		}
		for _, c := range y.Values {
			if c.Type != PropertyType {
				continue
			}
			if !yield(c.Key, c.Value) {
				return
			}
		}
	}
}

// Keys returns the key of each property child, duplicates included.
func (y *Node) Keys() []string {
	var res []string
	for k := range y.Properties() {
		res = append(res, k)
	}
	return res
}

// MergeFrom copies the properties of src into y. A key that y already
// has is overwritten when replace is set; otherwise the property is
// appended, possibly as a duplicate.
func (y *Node) MergeFrom(src *Node, replace bool) error {
	if y.Type != ObjectType {
		return fmt.Errorf("%w: merge into %s", ErrNotObject, y.Type)
	}
	if src == nil {
		return nil
	}
	if src.Type != ObjectType {
		return fmt.Errorf("%w: merge from %s", ErrNotObject, src.Type)
	}
	for k, v := range src.Properties() {
		if replace && y.Has(k) {
			if err := y.Set(k, v.Clone()); err != nil {
				return err
			}
			continue
		}
		y.append(Prop(k, v.Clone()))
	}
	return nil
}

// GetPath follows keys from y through nested objects. A property is
// looked through to its value. It returns nil when a key is missing.
func (y *Node) GetPath(keys ...string) *Node {
	n := y
	for _, k := range keys {
		if n.Type == PropertyType {
			n = n.Value
		}
		if n == nil {
			return nil
		}
		n = n.Get(k)
		if n == nil {
			return nil
		}
	}
	return n
}
