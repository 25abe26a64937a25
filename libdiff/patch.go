package libdiff

import (
	"errors"
	"fmt"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/ir"
)

var ErrConflict = errors.New("patch conflict")

// Apply returns a copy of doc with changes applied in order. Deleted and
// replaced nodes must match the document. Text edits are applied as
// character patches, so they survive unrelated changes to the same
// value.
func Apply(doc *ir.Node, changes []Change) (*ir.Node, error) {
	res := doc.Clone()
	dmp := diffpatch.New()
	for i := range changes {
		c := &changes[i]
		var err error
		res, err = apply(dmp, res, c)
		if err != nil {
			return nil, fmt.Errorf("change %d (%s): %w", i, c, err)
		}
	}
	return res, nil
}

func apply(dmp *diffpatch.DiffMatchPatch, root *ir.Node, c *Change) (*ir.Node, error) {
	if c.Op == Edit {
		target, err := walk(root, c.Path)
		if err != nil {
			return nil, err
		}
		return root, editValue(dmp, target, c)
	}
	if len(c.Path) == 0 {
		if c.Op != Replace {
			return nil, fmt.Errorf("%w: %s at the root", ErrConflict, c.Op)
		}
		if !ir.Equal(root, c.From) {
			return nil, fmt.Errorf("%w: root differs", ErrConflict)
		}
		return c.To.Clone(), nil
	}
	n, err := walk(root, c.Path[:len(c.Path)-1])
	if err != nil {
		return nil, err
	}
	parent, err := objectOf(n)
	if err != nil {
		return nil, err
	}
	i := c.Path[len(c.Path)-1].Index
	switch c.Op {
	case Insert:
		return root, parent.Insert(i, c.To.Clone())
	case Delete, Replace:
		if i < 0 || i >= len(parent.Values) {
			return nil, fmt.Errorf("%w: no child %d", ErrConflict, i)
		}
		if !ir.Equal(parent.Values[i], c.From) {
			return nil, fmt.Errorf("%w: child %d differs", ErrConflict, i)
		}
		if err := parent.RemoveAt(i); err != nil {
			return nil, err
		}
		if c.Op == Delete {
			return root, nil
		}
		return root, parent.Insert(i, c.To.Clone())
	}
	return nil, fmt.Errorf("unknown op %s", c.Op)
}

// walk follows path from n, looking through properties to their values.
func walk(n *ir.Node, path []Step) (*ir.Node, error) {
	for _, s := range path {
		obj, err := objectOf(n)
		if err != nil {
			return nil, err
		}
		if s.Index < 0 || s.Index >= len(obj.Values) {
			return nil, fmt.Errorf("%w: no child %d", ErrConflict, s.Index)
		}
		n = obj.Values[s.Index]
	}
	return n, nil
}

func objectOf(n *ir.Node) (*ir.Node, error) {
	if n.Type == ir.PropertyType {
		n = n.Value
	}
	if n == nil || n.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: not an object", ErrConflict)
	}
	return n, nil
}

func editValue(dmp *diffpatch.DiffMatchPatch, prop *ir.Node, c *Change) error {
	if prop.Type != ir.PropertyType || prop.Value == nil || prop.Value.Type != ir.ValueType {
		return fmt.Errorf("%w: edit of a %s", ErrConflict, prop.Type)
	}
	patches := dmp.PatchMake(dmp.DiffText1(c.Text), c.Text)
	text, applied := dmp.PatchApply(patches, prop.Value.String)
	for _, ok := range applied {
		if !ok {
			return fmt.Errorf("%w: text of %q", ErrConflict, prop.Key)
		}
	}
	prop.Value.String = text
	return nil
}
