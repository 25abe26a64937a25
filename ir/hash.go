package ir

import (
	"encoding/binary"
	"hash/maphash"
)

var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node, stable for the life of the
// process. Equal nodes have equal hashes.
// It panics if y is nil.
func (y *Node) Hash() uint64 {
	if y == nil {
		panic("ir: Hash called on nil node")
	}
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(byte(y.Type))

	var b [8]byte
	switch y.Type {
	case ValueType, CommentType:
		h.WriteString(y.String)
	case PropertyType:
		h.WriteString(y.Key)
		h.WriteByte(0)
		if y.Value != nil {
			binary.LittleEndian.PutUint64(b[:], y.Value.Hash())
			h.Write(b[:])
		}
	case ObjectType:
		for _, c := range y.Values {
			binary.LittleEndian.PutUint64(b[:], c.Hash())
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
