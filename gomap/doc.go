// Package gomap projects Go values onto KeyValues trees.
//
// A value takes part in the projection through one of a closed set of
// capabilities, decided by [KindOf]:
//
//   - Null: nil, nil pointers to primitives, and values implementing
//     [Nullable] that report nil, written as the text "Null". Records
//     wrap optional pointer members with [Optional].
//   - Scalar: primitives with a canonical text form (see package canon),
//     and types implementing [Scalar], [canon.Enum] or
//     encoding.TextMarshaler.
//   - Record: types implementing [Record], whose members are listed in
//     declaration order. The kv-codegen command generates these methods
//     from struct declarations.
//   - Sequence, Mapping, MultiArray: containers, see [Sequence],
//     [Mapping] and [MultiArray].
//   - Token: an *ir.Node, which is copied into the result.
//
// There is no reflection: a type that implements none of the
// capabilities is rejected with a [*MarshalError].
//
// Each composite becomes an object. A scalar member of a record is
// written under the member name; any other member is written under the
// type name of its value. Scalar elements of sequences are anonymous
// values, other elements are keyed by their type name. A mapping entry
// is a property keyed by the canonical text of its key (or the key's
// type name for composite keys) holding the value. Multi-dimensional
// arrays record their shape as the first child, followed by nested
// "//uRanks" and "//uRank" tables; see [DecodeMultiArray].
package gomap
