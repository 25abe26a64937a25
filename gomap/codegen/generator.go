package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"strconv"
)

const gomapImport = "github.com/DeadZoneLuna/WwisePCKUnpacker/gomap"

// Generate returns the formatted source of the record methods of pkg.
func Generate(pkg *PackageInfo) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by kv-codegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg.Name)
	fmt.Fprintf(&buf, "import %q\n", gomapImport)
	for _, s := range pkg.Structs {
		writeStruct(&buf, s)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code for %s: %w", pkg.Path, err)
	}
	return src, nil
}

func writeStruct(buf *bytes.Buffer, s *StructInfo) {
	fmt.Fprintf(buf, "\nfunc (%s) KVTypeName() string { return %s }\n", s.Name, strconv.Quote(s.TypeName))
	fmt.Fprintf(buf, "\nfunc (x *%s) KVIsNil() bool { return x == nil }\n", s.Name)
	fmt.Fprintf(buf, "\nfunc (x %s) KVFields() []gomap.Field {\n", s.Name)
	if len(s.Fields) == 0 {
		buf.WriteString("\treturn nil\n}\n")
		return
	}
	buf.WriteString("\treturn []gomap.Field{\n")
	for _, f := range s.Fields {
		fmt.Fprintf(buf, "\t\t{Name: %s", strconv.Quote(f.Name))
		if f.TypeName != "" {
			fmt.Fprintf(buf, ", TypeName: %s", strconv.Quote(f.TypeName))
		}
		fmt.Fprintf(buf, ", Value: %s},\n", f.value())
	}
	buf.WriteString("\t}\n}\n")
}

// WriteFile generates the methods of pkg into path, or into the default
// output file when path is empty.
func WriteFile(pkg *PackageInfo, path string) (string, error) {
	src, err := Generate(pkg)
	if err != nil {
		return "", err
	}
	if path == "" {
		path = pkg.OutputFile()
	}
	if err := os.WriteFile(path, src, 0644); err != nil {
		return "", err
	}
	return path, nil
}
