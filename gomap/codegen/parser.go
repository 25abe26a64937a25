package codegen

import (
	"fmt"
	"go/ast"
	"strings"
)

// Marker selects a struct for generation when it appears in its doc
// comment.
const Marker = "//kv:record"

// ExtractStructs returns the marked structs of file in source order.
func ExtractStructs(file *ast.File) ([]*StructInfo, error) {
	var res []*StructInfo
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok || typeSpec.TypeParams != nil {
				continue
			}
			st, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				continue
			}
			doc := typeSpec.Doc
			if doc == nil && len(genDecl.Specs) == 1 {
				doc = genDecl.Doc
			}
			name, marked := marker(doc)
			if !marked {
				continue
			}
			info := &StructInfo{Name: typeSpec.Name.Name, TypeName: name}
			if info.TypeName == "" {
				info.TypeName = info.Name
			}
			fields, err := extractFields(st)
			if err != nil {
				return nil, fmt.Errorf("struct %s: %w", info.Name, err)
			}
			info.Fields = fields
			res = append(res, info)
		}
	}
	return res, nil
}

// marker reports whether doc holds the marker line, and the name given
// with it.
func marker(doc *ast.CommentGroup) (string, bool) {
	if doc == nil {
		return "", false
	}
	for _, c := range doc.List {
		rest, ok := strings.CutPrefix(c.Text, Marker)
		if !ok {
			continue
		}
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			continue
		}
		for _, f := range strings.Fields(rest) {
			if v, ok := strings.CutPrefix(f, "name="); ok {
				return v, true
			}
		}
		return "", true
	}
	return "", false
}

func extractFields(st *ast.StructType) ([]FieldInfo, error) {
	var res []FieldInfo
	for _, f := range st.Fields.List {
		if len(f.Names) == 0 {
			continue
		}
		var tag fieldTag
		if f.Tag != nil {
			var err error
			tag, err = parseFieldTag(f.Tag.Value)
			if err != nil {
				return nil, err
			}
		}
		if tag.skip {
			continue
		}
		for _, id := range f.Names {
			if !id.IsExported() {
				continue
			}
			fi := FieldInfo{GoName: id.Name, Name: id.Name, TypeName: tag.typeName, Wrap: wrapOf(f.Type)}
			if tag.name != "" {
				if len(f.Names) > 1 {
					return nil, fmt.Errorf("tag name %q on %d fields", tag.name, len(f.Names))
				}
				fi.Name = tag.name
			}
			res = append(res, fi)
		}
	}
	return res, nil
}
