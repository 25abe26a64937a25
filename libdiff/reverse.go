package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Reverse returns the changes that undo changes.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i := range changes {
		c := changes[len(changes)-1-i]
		r := Change{Op: c.Op, Path: clonePath(c.Path), From: c.To, To: c.From}
		switch c.Op {
		case Insert:
			r.Op = Delete
		case Delete:
			r.Op = Insert
		case Edit:
			r.Text = make([]diffpatch.Diff, len(c.Text))
			for j, d := range c.Text {
				switch d.Type {
				case diffpatch.DiffInsert:
					d.Type = diffpatch.DiffDelete
				case diffpatch.DiffDelete:
					d.Type = diffpatch.DiffInsert
				}
				r.Text[j] = d
			}
		}
		res[i] = r
	}
	return res
}
