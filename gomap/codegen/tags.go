package codegen

import (
	"fmt"
	"reflect"
	"strings"
)

// TagKey is the struct tag consulted for field options.
const TagKey = "kv"

type fieldTag struct {
	name     string
	skip     bool
	typeName string
}

// parseFieldTag reads the kv entry of a raw struct tag, which includes
// the back quotes when it comes from the AST.
func parseFieldTag(raw string) (fieldTag, error) {
	var res fieldTag
	raw = strings.Trim(raw, "`")
	tag, ok := reflect.StructTag(raw).Lookup(TagKey)
	if !ok {
		return res, nil
	}
	if tag == "-" {
		res.skip = true
		return res, nil
	}
	parts := strings.Split(tag, ",")
	res.name = strings.TrimSpace(parts[0])
	for _, p := range parts[1:] {
		p = strings.TrimSpace(p)
		k, v, _ := strings.Cut(p, "=")
		switch k {
		case "type":
			if v == "" {
				return res, fmt.Errorf("empty type in tag %q", tag)
			}
			res.typeName = v
		case "":
		default:
			return res, fmt.Errorf("unknown option %q in tag %q", k, tag)
		}
	}
	return res, nil
}
