package libdiff

import (
	"strconv"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/ir"
)

type Op int

const (
	// Insert adds To as the child at the last step of the path.
	Insert Op = iota
	// Delete removes From, the child at the last step of the path.
	Delete
	// Replace substitutes To for From at the path.
	Replace
	// Edit changes the text of a value; Text holds the character diff.
	Edit
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	case Edit:
		return "edit"
	default:
		return "op(" + strconv.Itoa(int(o)) + ")"
	}
}

func (o Op) symbol() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return "~"
	}
}

// Step selects the child at Index of an object. Key is the key of that
// child, kept for display.
type Step struct {
	Key   string
	Index int
}

type Change struct {
	Op   Op
	Path []Step
	From *ir.Node
	To   *ir.Node
	Text []diffpatch.Diff
}

// PathString returns the keys of the path of c joined by '/'. Steps
// that select an anonymous value or a comment show their index.
func (c *Change) PathString() string {
	if len(c.Path) == 0 {
		return "/"
	}
	parts := make([]string, len(c.Path))
	for i, s := range c.Path {
		if s.Key == "" {
			parts[i] = "[" + strconv.Itoa(s.Index) + "]"
			continue
		}
		parts[i] = s.Key
	}
	return strings.Join(parts, "/")
}

func (c *Change) String() string {
	return c.Op.symbol() + " " + c.PathString()
}
