package ir

import "fmt"

type Type int

const (
	ValueType Type = iota
	CommentType
	PropertyType
	ObjectType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ValueType:    "Value",
		CommentType:  "Comment",
		PropertyType: "Property",
		ObjectType:   "Object",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Value":    ValueType,
		"Comment":  CommentType,
		"Property": PropertyType,
		"Object":   ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		ValueType,
		CommentType,
		PropertyType,
		ObjectType,
	}
}

func (t Type) IsLeaf() bool {
	return t == ValueType || t == CommentType
}
