package canon

import (
	"strconv"
	"strings"
)

// MaxDecimalDigits bounds the significant digits of a Decimal.
const MaxDecimalDigits = 29

// Decimal is an exact base 10 number. It keeps its digits as text so
// that the scale of the input (trailing fractional zeros included)
// survives a round trip.
type Decimal struct {
	Neg  bool
	Int  string // digits left of '.', no leading zeros
	Frac string // digits right of '.', may be empty
}

// String returns the invariant decimal text of d.
func (d Decimal) String() string {
	var b strings.Builder
	if d.Neg && !d.IsZero() {
		b.WriteByte('-')
	}
	if d.Int == "" {
		b.WriteByte('0')
	} else {
		b.WriteString(d.Int)
	}
	if d.Frac != "" {
		b.WriteByte('.')
		b.WriteString(d.Frac)
	}
	return b.String()
}

func (d Decimal) IsZero() bool {
	return strings.Trim(d.Int, "0") == "" && strings.Trim(d.Frac, "0") == ""
}

func (d Decimal) Float64() float64 {
	f, _ := strconv.ParseFloat(d.String(), 64)
	return f
}

func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Decimal) UnmarshalText(text []byte) error {
	*d = ParseDecimal(string(text))
	return nil
}

// ParseDecimal parses [sign] digits [. digits] [e [sign] digits].
// Malformed text, or text with more than MaxDecimalDigits significant
// digits, yields the zero Decimal.
func ParseDecimal(s string) Decimal {
	d, ok := parseDecimal(strings.TrimSpace(s))
	if !ok {
		return Decimal{}
	}
	return d
}

func parseDecimal(s string) (Decimal, bool) {
	var d Decimal
	if s == "" {
		return d, false
	}
	switch s[0] {
	case '-':
		d.Neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	mant, exp := s, 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mant = s[:i]
		e, err := strconv.Atoi(s[i+1:])
		if err != nil {
			return d, false
		}
		exp = e
	}
	intPart, frac, _ := strings.Cut(mant, ".")
	intPart = strings.ReplaceAll(intPart, ",", "")
	if intPart == "" && frac == "" {
		return d, false
	}
	if !allDigits(intPart) || !allDigits(frac) {
		return d, false
	}
	digits := intPart + frac
	if exp > MaxDecimalDigits+len(digits) || exp < -(MaxDecimalDigits+len(digits)) {
		return Decimal{}, false
	}
	// point is the position of the decimal point within digits.
	switch point := len(intPart) + exp; {
	case point > len(digits):
		intPart, frac = digits+strings.Repeat("0", point-len(digits)), ""
	case point < 0:
		intPart, frac = "", strings.Repeat("0", -point)+digits
	default:
		intPart, frac = digits[:point], digits[point:]
	}
	intPart = strings.TrimLeft(intPart, "0")
	if len(intPart)+len(frac) > MaxDecimalDigits {
		return Decimal{}, false
	}
	d.Int = intPart
	d.Frac = frac
	return d, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
