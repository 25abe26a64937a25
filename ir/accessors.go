package ir

import (
	"time"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/canon"
)

// leaf returns the payload a typed accessor reads: the text of a value,
// or of a property's value.
func (y *Node) leaf() string {
	n := y
	if n.Type == PropertyType && n.Value != nil {
		n = n.Value
	}
	if n.Type != ValueType {
		return ""
	}
	return n.String
}

func (y *Node) AsString() string { return y.leaf() }

// IsNull reports whether the leaf holds the null encoding.
func (y *Node) IsNull() bool { return y.leaf() == canon.Null }

func (y *Node) AsBool() bool { return canon.ParseBool(y.leaf()) }

func (y *Node) AsInt() int       { return canon.ParseInt[int](y.leaf()) }
func (y *Node) AsInt8() int8     { return canon.ParseInt8(y.leaf()) }
func (y *Node) AsInt16() int16   { return canon.ParseInt16(y.leaf()) }
func (y *Node) AsInt32() int32   { return canon.ParseInt32(y.leaf()) }
func (y *Node) AsInt64() int64   { return canon.ParseInt64(y.leaf()) }
func (y *Node) AsUint() uint     { return canon.ParseUint[uint](y.leaf()) }
func (y *Node) AsUint8() uint8   { return canon.ParseUint8(y.leaf()) }
func (y *Node) AsUint16() uint16 { return canon.ParseUint16(y.leaf()) }
func (y *Node) AsUint32() uint32 { return canon.ParseUint32(y.leaf()) }
func (y *Node) AsUint64() uint64 { return canon.ParseUint64(y.leaf()) }

func (y *Node) AsFloat32() float32 { return canon.ParseFloat32(y.leaf()) }
func (y *Node) AsFloat64() float64 { return canon.ParseFloat64(y.leaf()) }

func (y *Node) AsDecimal() canon.Decimal { return canon.ParseDecimal(y.leaf()) }
func (y *Node) AsTime() time.Time        { return canon.ParseTime(y.leaf()) }
func (y *Node) AsChar() canon.Char       { return canon.ParseChar(y.leaf()) }
