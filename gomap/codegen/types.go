package codegen

import (
	"go/ast"
	"path/filepath"
)

// StructInfo describes a struct selected for generation.
type StructInfo struct {
	Name     string // Go type name
	TypeName string // name the record is keyed by
	Fields   []FieldInfo
}

// FieldInfo describes one generated member.
type FieldInfo struct {
	GoName   string
	Name     string
	TypeName string
	Wrap     Wrap
}

// Wrap says how a field is converted before the mapper sees it.
type Wrap int

const (
	WrapNone    Wrap = iota
	WrapPointer      // nil becomes Null
	WrapSlice        // gomap.SliceOf
	WrapArray        // gomap.SliceOf over the whole array
	WrapMap          // gomap.SortedMap
)

// wrapOf returns the conversion for a field of type expr.
func wrapOf(expr ast.Expr) Wrap {
	switch x := expr.(type) {
	case *ast.ParenExpr:
		return wrapOf(x.X)
	case *ast.StarExpr:
		return WrapPointer
	case *ast.ArrayType:
		if x.Len == nil {
			return WrapSlice
		}
		return WrapArray
	case *ast.MapType:
		return WrapMap
	}
	return WrapNone
}

// value returns the expression passed as the field's Value.
func (f FieldInfo) value() string {
	sel := "x." + f.GoName
	switch f.Wrap {
	case WrapPointer:
		return "gomap.Optional(" + sel + ")"
	case WrapSlice:
		return "gomap.SliceOf(" + sel + ")"
	case WrapArray:
		return "gomap.SliceOf(" + sel + "[:])"
	case WrapMap:
		return "gomap.SortedMap(" + sel + ")"
	}
	return sel
}

// PackageInfo holds the records found in one package.
type PackageInfo struct {
	Path    string
	Name    string
	Dir     string
	Structs []*StructInfo
}

// OutputFile returns the default path of the generated file.
func (p *PackageInfo) OutputFile() string {
	return filepath.Join(p.Dir, p.Name+GeneratedSuffix)
}

// GeneratedSuffix ends the name of every generated file.
const GeneratedSuffix = "_kv_gen.go"
