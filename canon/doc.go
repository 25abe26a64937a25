// Package canon implements the canonical text form of primitive values.
//
// Every primitive has exactly one encoding, independent of locale:
//
//	bool        "1" or "0"
//	integers    base 10
//	float32     9 significant digits, "NaN", "Infinity", "-Infinity"
//	float64     17 significant digits, same special forms
//	Decimal     plain decimal text
//	enums       the underlying integer
//	time.Time   RFC 3339 with nanoseconds
//	nil         "Null"
//
// Parsing is lenient: malformed text yields the zero value of the target
// type instead of an error.  Producers of this format are known to emit
// slightly broken numbers and such input must still load.
package canon
