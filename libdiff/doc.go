// Package libdiff computes structural differences between KeyValues
// trees.
//
// # Usage
//
//	// Compute the changes from one tree to another
//	changes := libdiff.Diff(oldNode, newNode)
//
//	// Apply them
//	patched, err := libdiff.Apply(oldNode, changes)
//
//	// And undo them
//	orig, err := libdiff.Apply(patched, libdiff.Reverse(changes))
//
// Children of an object are aligned as a sequence, so duplicate keys and
// order changes are represented faithfully. Each change addresses its
// target by child indices, which are valid when the changes are applied
// in order.
package libdiff
