// Package ir provides the token tree of a KeyValues document.
//
// # Overview
//
// A document is a tree of [Node] values. Every node is one of four
// kinds, selected by its Type:
//
//   - ValueType: a scalar string payload
//   - CommentType: the text following "//" on a line
//   - PropertyType: a key with exactly one child, its value
//   - ObjectType: an ordered list of children, usually properties
//
// The tree is a recursive tagged union: which fields of a Node are
// meaningful depends on its Type.  Values and comments use String,
// properties use Key and Value, objects use Values.
//
// # Objects
//
// Objects keep their children in insertion order, and that order is
// what the writer emits.  Keyed access ([Node.Get], [Node.Set]) looks at
// property children only and always resolves to the first property with
// the given key.  Duplicate keys are allowed; later duplicates are only
// reachable by position.
//
// # Navigation
//
// Parent and ParentIndex link a node to its container.  They never own
// anything and are maintained by the constructors and object methods in
// this package.  A tree built by hand with struct literals may leave
// them unset; nothing in encoding or equality depends on them.
//
// # Leaf values
//
// Leaves hold text.  The As* accessors read that text as a typed value
// using the canonical encodings of package canon, returning the zero
// value for text that does not parse.
package ir
