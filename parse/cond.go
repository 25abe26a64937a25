package parse

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/settings"
)

// condEval evaluates conditionals such as "$WIN32", "!$X360" or
// "$OSX || $LINUX" against a platform.
type condEval struct {
	vars     map[string]bool
	programs map[string]*vm.Program
}

func newCondEval(p settings.Platform) *condEval {
	return &condEval{
		vars:     p.Vars(),
		programs: map[string]*vm.Program{},
	}
}

func (c *condEval) eval(src string) (bool, error) {
	code, names := rewriteCond(src)
	prg, ok := c.programs[code]
	if !ok {
		env := c.env(names)
		var err error
		prg, err = expr.Compile(code, expr.Env(env), expr.AsBool())
		if err != nil {
			return false, fmt.Errorf("%w [%s]: %w", ErrBadConditional, src, err)
		}
		c.programs[code] = prg
	}
	res, err := expr.Run(prg, c.env(names))
	if err != nil {
		return false, fmt.Errorf("%w [%s]: %w", ErrBadConditional, src, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w [%s]: result %v is not a boolean", ErrBadConditional, src, res)
	}
	return b, nil
}

// env returns the platform variables plus names, which are false
// unless the platform defines them.
func (c *condEval) env(names []string) map[string]any {
	res := make(map[string]any, len(c.vars)+len(names))
	for k, v := range c.vars {
		res[k] = v
	}
	for _, n := range names {
		if _, ok := res[n]; !ok {
			res[n] = false
		}
	}
	return res
}

// rewriteCond turns each "$name" into the upper case identifier NAME and
// returns the rewritten expression and the names found.
func rewriteCond(src string) (string, []string) {
	var (
		b     strings.Builder
		names []string
	)
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c != '$' {
			b.WriteByte(c)
			continue
		}
		j := i + 1
		for j < len(src) && isIdent(src[j]) {
			j++
		}
		name := strings.ToUpper(src[i+1 : j])
		if name == "" {
			b.WriteByte(c)
			continue
		}
		if name[0] >= '0' && name[0] <= '9' {
			name = "_" + name
		}
		names = append(names, name)
		b.WriteString(name)
		i = j - 1
	}
	return b.String(), names
}

func isIdent(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
