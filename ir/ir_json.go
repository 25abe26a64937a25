package ir

import (
	"encoding/json"
	"fmt"
)

type irBase struct {
	Type   Type    `json:"type"`
	Key    *string `json:"key,omitempty"`
	Value  *Node   `json:"value,omitempty"`
	Values []*Node `json:"values,omitempty"`
	String *string `json:"string,omitempty"`
}

func (y *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{Type: y.Type}
	switch y.Type {
	case ValueType, CommentType:
		base.String = &y.String
	case PropertyType:
		base.Key = &y.Key
		base.Value = y.Value
	case ObjectType:
		base.Values = y.Values
		if base.Values == nil {
			base.Values = []*Node{}
		}
	}
	return json.Marshal(base)
}

func (y *Node) UnmarshalJSON(d []byte) error {
	tmp := &irBase{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	*y = Node{Type: tmp.Type}
	switch y.Type {
	case ValueType, CommentType:
		if tmp.String != nil {
			y.String = *tmp.String
		}
	case PropertyType:
		if tmp.Key != nil {
			y.Key = *tmp.Key
		}
		if tmp.Value == nil {
			return fmt.Errorf("%w: key %q", ErrNilValue, y.Key)
		}
		y.Value = tmp.Value
		y.Value.Parent = y
	case ObjectType:
		y.Values = tmp.Values
		for i, v := range y.Values {
			if v == nil {
				return fmt.Errorf("%w: nil child %d", ErrType, i)
			}
			v.Parent = y
			v.ParentIndex = i
		}
	default:
		return fmt.Errorf("%w: %d", ErrType, y.Type)
	}
	return nil
}
