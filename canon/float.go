package canon

import (
	"math"
	"strconv"
	"strings"
)

const (
	NaN         = "NaN"
	Infinity    = "Infinity"
	NegInfinity = "-Infinity"

	// MaxFloat64Text and MinFloat64Text are the exact encodings of the
	// largest and smallest finite doubles.
	MaxFloat64Text = "1.7976931348623157E+308"
	MinFloat64Text = "-1.7976931348623157E+308"
)

func FormatFloat32(f float32) string {
	if s, ok := special(float64(f)); ok {
		return s
	}
	return upperExp(strconv.FormatFloat(float64(f), 'g', 9, 32))
}

func FormatFloat64(f float64) string {
	if s, ok := special(f); ok {
		return s
	}
	return upperExp(strconv.FormatFloat(f, 'g', 17, 64))
}

func special(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return NaN, true
	case math.IsInf(f, 1):
		return Infinity, true
	case math.IsInf(f, -1):
		return NegInfinity, true
	}
	return "", false
}

func upperExp(s string) string {
	return strings.Replace(s, "e", "E", 1)
}

func ParseFloat32(s string) float32 {
	return float32(parseFloat(s, 32))
}

func ParseFloat64(s string) float64 {
	switch strings.TrimSpace(s) {
	case MaxFloat64Text:
		return math.MaxFloat64
	case MinFloat64Text:
		return -math.MaxFloat64
	}
	return parseFloat(s, 64)
}

func parseFloat(s string, bits int) float64 {
	s = strings.TrimSpace(s)
	switch s {
	case NaN:
		return math.NaN()
	case Infinity:
		return math.Inf(1)
	case NegInfinity:
		return math.Inf(-1)
	}
	s, ok := plainNumber(s)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(s, bits)
	if err != nil {
		return 0
	}
	return f
}

// plainNumber checks that s only uses sign, digit, point, exponent and
// thousands separator characters and drops the separators. strconv
// accepts more than we want: hex floats, underscores, "inf".
func plainNumber(s string) (string, bool) {
	var b strings.Builder
	intPart := true
	digits := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			if intPart {
				digits++
			}
		case c == ',':
			if !intPart || digits == 0 {
				return "", false
			}
			continue
		case c == '.', c == 'e', c == 'E':
			intPart = false
		case c == '+', c == '-':
		default:
			return "", false
		}
		b.WriteByte(c)
	}
	return b.String(), b.Len() > 0
}
