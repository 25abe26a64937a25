package codegen

import (
	"errors"
	"fmt"
	"go/token"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Load loads the packages matching patterns, relative to dir, and
// extracts their records. Previously generated files are ignored.
// Packages without records are omitted.
func Load(dir string, patterns ...string) ([]*PackageInfo, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}
	fset := token.NewFileSet()
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
		Dir:  dir,
		Fset: fset,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages %v: %w", patterns, err)
	}
	var res []*PackageInfo
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			errs := make([]error, len(pkg.Errors))
			for i, e := range pkg.Errors {
				errs[i] = e
			}
			return nil, fmt.Errorf("package %s: %w", pkg.PkgPath, errors.Join(errs...))
		}
		info := &PackageInfo{Path: pkg.PkgPath, Name: pkg.Name}
		for _, file := range pkg.Syntax {
			name := fset.File(file.Pos()).Name()
			if info.Dir == "" {
				info.Dir = filepath.Dir(name)
			}
			if strings.HasSuffix(name, GeneratedSuffix) {
				continue
			}
			structs, err := ExtractStructs(file)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			info.Structs = append(info.Structs, structs...)
		}
		if len(info.Structs) > 0 {
			res = append(res, info)
		}
	}
	return res, nil
}
