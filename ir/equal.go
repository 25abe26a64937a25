package ir

// Equal reports whether a and b are structurally equal: the same kind
// at every position, equal keys and payloads, and objects with pairwise
// equal children in the same order. Navigation links are ignored.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case ValueType, CommentType:
		return a.String == b.String
	case PropertyType:
		return a.Key == b.Key && Equal(a.Value, b.Value)
	case ObjectType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// StripComments returns a copy of y without comment nodes.
func StripComments(y *Node) *Node {
	res := y.Clone()
	res.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost || n.Type != ObjectType {
			return true, nil
		}
		j := 0
		for _, c := range n.Values {
			if c.Type == CommentType {
				continue
			}
			n.Values[j] = c
			j++
		}
		clear(n.Values[j:])
		n.Values = n.Values[:j]
		n.reindex(0)
		return true, nil
	})
	return res
}
