package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/ir"
)

// Diff returns the changes that turn from into to. It returns nil when
// the trees are equal.
func Diff(from, to *ir.Node) []Change {
	d := &differ{dmp: diffpatch.New()}
	d.node(nil, from, to)
	return d.changes
}

type differ struct {
	dmp     *diffpatch.DiffMatchPatch
	changes []Change
}

func (d *differ) add(c Change) {
	d.changes = append(d.changes, c)
}

func (d *differ) node(path []Step, from, to *ir.Node) {
	if ir.Equal(from, to) {
		return
	}
	if from == nil || to == nil || from.Type != to.Type {
		d.add(Change{Op: Replace, Path: clonePath(path), From: from, To: to})
		return
	}
	switch from.Type {
	case ir.PropertyType:
		if from.Key != to.Key {
			d.add(Change{Op: Replace, Path: clonePath(path), From: from, To: to})
			return
		}
		fv, tv := from.Value, to.Value
		if fv != nil && tv != nil && fv.Type == ir.ValueType && tv.Type == ir.ValueType {
			d.add(Change{Op: Edit, Path: clonePath(path), From: from, To: to, Text: d.text(fv.String, tv.String)})
			return
		}
		if fv != nil && tv != nil && fv.Type == ir.ObjectType && tv.Type == ir.ObjectType {
			d.object(path, fv, tv)
			return
		}
		d.add(Change{Op: Replace, Path: clonePath(path), From: from, To: to})
	case ir.ObjectType:
		d.object(path, from, to)
	default:
		d.add(Change{Op: Replace, Path: clonePath(path), From: from, To: to})
	}
}

func (d *differ) text(from, to string) []diffpatch.Diff {
	diffs := d.dmp.DiffMain(from, to, false)
	return d.dmp.DiffCleanupSemantic(diffs)
}

// object aligns the children of two objects by identity, encoding each
// distinct identity as a rune so that the character diff computes the
// alignment.
func (d *differ) object(path []Step, from, to *ir.Node) {
	ids := map[string]rune{}
	fromRunes := childRunes(ids, from)
	toRunes := childRunes(ids, to)
	diffs := d.dmp.DiffMainRunes(fromRunes, toRunes, false)
	fi, ti, pos := 0, 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				c := from.Values[fi]
				d.add(Change{Op: Delete, Path: appendStep(path, c, pos), From: c})
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				c := to.Values[ti]
				d.add(Change{Op: Insert, Path: appendStep(path, c, pos), To: c})
				ti++
				pos++
			}
		case diffpatch.DiffEqual:
			for range n {
				fc, tc := from.Values[fi], to.Values[ti]
				d.node(appendStep(path, fc, pos), fc, tc)
				fi++
				ti++
				pos++
			}
		}
	}
}

func childRunes(ids map[string]rune, obj *ir.Node) []rune {
	rs := make([]rune, len(obj.Values))
	for i, c := range obj.Values {
		id := identity(c)
		r, ok := ids[id]
		if !ok {
			// skip the surrogate range, which does not survive the
			// rune to string conversions of the differ.
			r = rune(len(ids))
			if r >= 0xd800 {
				r += 0x800
			}
			ids[id] = r
		}
		rs[i] = r
	}
	return rs
}

// identity is what must match for two children to be aligned. Values
// and comments match on their text, properties on their key.
func identity(c *ir.Node) string {
	switch c.Type {
	case ir.PropertyType:
		return "p" + c.Key
	case ir.ValueType:
		return "v" + c.String
	case ir.CommentType:
		return "c" + c.String
	default:
		return "o"
	}
}

func appendStep(path []Step, c *ir.Node, i int) []Step {
	res := make([]Step, len(path), len(path)+1)
	copy(res, path)
	key := ""
	if c.Type == ir.PropertyType {
		key = c.Key
	}
	return append(res, Step{Key: key, Index: i})
}

func clonePath(path []Step) []Step {
	if path == nil {
		return nil
	}
	return append([]Step(nil), path...)
}
