package ir

import (
	"fmt"
	"maps"
	"slices"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int

	// Key and Value are set on properties.
	Key   string
	Value *Node

	// Values holds the children of an object.
	Values []*Node

	// String is the payload of a value or comment.
	String string
}

func FromString(v string) *Node {
	return &Node{Type: ValueType, String: v}
}

// Empty returns the empty value, which stands in for a missing
// property value.
func Empty() *Node {
	return FromString("")
}

func FromComment(text string) *Node {
	return &Node{Type: CommentType, String: text}
}

// NewProperty returns a property binding key to v.
func NewProperty(key string, v *Node) (*Node, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: key %q", ErrNilValue, key)
	}
	res := &Node{Type: PropertyType, Key: key}
	v.Parent = res
	v.ParentIndex = 0
	res.Value = v
	return res, nil
}

// Prop is like NewProperty but panics when v is nil.
func Prop(key string, v *Node) *Node {
	res, err := NewProperty(key, v)
	if err != nil {
		panic(err)
	}
	return res
}

// FromValues returns an object holding children in order. Nil children
// are replaced by empty values.
func FromValues(children ...*Node) *Node {
	res := &Node{Type: ObjectType, Values: make([]*Node, len(children))}
	for i, c := range children {
		if c == nil {
			c = Empty()
		}
		c.Parent = res
		c.ParentIndex = i
		res.Values[i] = c
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	props := make([]*Node, len(kvs))
	for i := range kvs {
		v := kvs[i].Val
		if v == nil {
			v = Empty()
		}
		props[i] = Prop(kvs[i].Key, v)
	}
	return FromValues(props...)
}

// FromMap returns an object with one property per entry of m, in key
// order.
func FromMap(m map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(m))
	kvs := make([]KeyVal, len(keys))
	for i, k := range keys {
		kvs[i] = KeyVal{Key: k, Val: m[k]}
	}
	return FromKeyVals(kvs)
}

// ToMap returns the first value of each key in the object y.
func ToMap(y *Node) map[string]*Node {
	if y.Type != ObjectType {
		return nil
	}
	res := map[string]*Node{}
	for k, v := range y.Properties() {
		if _, ok := res[k]; !ok {
			res[k] = v
		}
	}
	return res
}

func (y *Node) IsValue() bool    { return y.Type == ValueType }
func (y *Node) IsComment() bool  { return y.Type == CommentType }
func (y *Node) IsProperty() bool { return y.Type == PropertyType }
func (y *Node) IsObject() bool   { return y.Type == ObjectType }

// Clone returns a deep copy of y. The copy has no parent.
func (y *Node) Clone() *Node {
	res := y.cloneTo(&Node{})
	res.Parent = nil
	res.ParentIndex = 0
	return res
}

func (y *Node) cloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.Key = y.Key
	dst.String = y.String
	if y.Value != nil {
		dst.Value = y.Value.cloneTo(&Node{})
		dst.Value.Parent = dst
		dst.Value.ParentIndex = 0
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			c := yv.cloneTo(&Node{})
			c.Parent = dst
			c.ParentIndex = i
			dst.Values[i] = c
		}
	}
	return dst
}

// Visit calls f on y and its descendants, before (isPost false) and
// after (isPost true) the children. Children are skipped when the
// pre-order call returns false.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range y.children() {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) children() []*Node {
	switch y.Type {
	case PropertyType:
		if y.Value == nil {
			return nil
		}
		return []*Node{y.Value}
	case ObjectType:
		return y.Values
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Prev returns the previous sibling of y within an object, or nil.
func (y *Node) Prev() *Node {
	return y.sibling(-1)
}

// Next returns the next sibling of y within an object, or nil.
func (y *Node) Next() *Node {
	return y.sibling(1)
}

func (y *Node) sibling(d int) *Node {
	p := y.Parent
	if p == nil || p.Type != ObjectType {
		return nil
	}
	i := y.ParentIndex + d
	if i < 0 || i >= len(p.Values) {
		return nil
	}
	return p.Values[i]
}

// Path returns the keys of the properties from the root to y.
func (y *Node) Path() []string {
	var res []string
	for n := y; n != nil; n = n.Parent {
		if n.Type == PropertyType {
			res = append(res, n.Key)
		}
	}
	slices.Reverse(res)
	return res
}
