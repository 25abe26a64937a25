package gomap

import (
	"fmt"
	"strings"
)

// TypeName returns the name v is keyed by when it is not a scalar: the
// result of KVTypeName when v implements TypeNamer, otherwise its
// dynamic Go type without package qualifiers or a leading pointer. A
// nil Nullable is always named by its Go type.
func TypeName(v any) string {
	if n, ok := v.(Nullable); ok && n.KVIsNil() {
		return stripQualifiers(strings.TrimLeft(fmt.Sprintf("%T", v), "*"))
	}
	if tn, ok := v.(TypeNamer); ok {
		return tn.KVTypeName()
	}
	return stripQualifiers(strings.TrimLeft(fmt.Sprintf("%T", v), "*"))
}

// stripQualifiers removes the package path from every type name in a
// %T rendering, including type arguments: "gomap.Slice[main.Point]"
// becomes "Slice[Point]".
func stripQualifiers(t string) string {
	var b strings.Builder
	start := 0
	flush := func(end int) {
		seg := t[start:end]
		if strings.HasPrefix(seg, "...") {
			b.WriteString("...")
			seg = seg[3:]
		}
		if i := strings.LastIndexByte(seg, '.'); i >= 0 {
			seg = seg[i+1:]
		}
		b.WriteString(seg)
	}
	for i := 0; i < len(t); i++ {
		switch t[i] {
		case '[', ']', '*', ',', ' ', '(', ')', '{', '}', ';':
			flush(i)
			b.WriteByte(t[i])
			start = i + 1
		}
	}
	flush(len(t))
	return b.String()
}
