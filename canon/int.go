package canon

import (
	"strconv"
	"strings"
)

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

func FormatInt[T Signed](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

func FormatUint[T Unsigned](v T) string {
	return strconv.FormatUint(uint64(v), 10)
}

// FormatEnum returns the integer text of e.
func FormatEnum(e Enum) string {
	return strconv.FormatInt(e.EnumValue(), 10)
}

// ParseInt parses base 10 text surrounded by optional white space.
// Text that is malformed or out of range for T yields 0.
func ParseInt[T Signed](s string) T {
	x, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	v := T(x)
	if int64(v) != x {
		return 0
	}
	return v
}

// ParseUint is the unsigned form of [ParseInt].
func ParseUint[T Unsigned](s string) T {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "+")
	x, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	v := T(x)
	if uint64(v) != x {
		return 0
	}
	return v
}

func ParseInt64(s string) int64 { return ParseInt[int64](s) }
func ParseInt32(s string) int32 { return ParseInt[int32](s) }
func ParseInt16(s string) int16 { return ParseInt[int16](s) }
func ParseInt8(s string) int8   { return ParseInt[int8](s) }

func ParseUint64(s string) uint64 { return ParseUint[uint64](s) }
func ParseUint32(s string) uint32 { return ParseUint[uint32](s) }
func ParseUint16(s string) uint16 { return ParseUint[uint16](s) }
func ParseUint8(s string) uint8   { return ParseUint[uint8](s) }
