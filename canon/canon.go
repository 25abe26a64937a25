package canon

import (
	"encoding"
	"time"
)

// Null is the encoding of an absent value.
const Null = "Null"

// Enum is implemented by enumerated types. The canonical form of an
// enum is its underlying integer.
type Enum interface {
	EnumValue() int64
}

// Format returns the canonical form of v and whether v is a primitive.
func Format(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return Null, true
	case string:
		return x, true
	case bool:
		return FormatBool(x), true
	case int:
		return FormatInt(x), true
	case int8:
		return FormatInt(x), true
	case int16:
		return FormatInt(x), true
	case int32:
		return FormatInt(x), true
	case int64:
		return FormatInt(x), true
	case uint:
		return FormatUint(x), true
	case uint8:
		return FormatUint(x), true
	case uint16:
		return FormatUint(x), true
	case uint32:
		return FormatUint(x), true
	case uint64:
		return FormatUint(x), true
	case uintptr:
		return FormatUint(x), true
	case float32:
		return FormatFloat32(x), true
	case float64:
		return FormatFloat64(x), true
	case Char:
		return FormatChar(x), true
	case Decimal:
		return x.String(), true
	case *Decimal:
		if x == nil {
			return Null, true
		}
		return x.String(), true
	case time.Time:
		return FormatTime(x), true
	case Enum:
		return FormatEnum(x), true
	case encoding.TextMarshaler:
		d, err := x.MarshalText()
		if err != nil {
			return "", false
		}
		return string(d), true
	}
	return "", false
}
