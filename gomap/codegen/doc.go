// Package codegen generates record methods for Go structs.
//
// A struct is selected by a "//kv:record" line in its doc comment,
// optionally followed by "name=TypeName" to set the name it is keyed by.
// For each selected struct the generator writes KVTypeName and KVFields
// methods into <package>_kv_gen.go, so that gomap can project values of
// the type without reflection.
//
// Exported fields are listed in declaration order. The kv struct tag
// adjusts a field:
//
//	Name  string `kv:"name"`        // written as "name"
//	Cache []byte `kv:"-"`           // skipped
//	Pos   Point  `kv:",type=Where"` // composite keyed by "Where"
//
// Embedded fields are skipped. Pointer, slice, array and map fields are
// passed through gomap.Optional, gomap.SliceOf and gomap.SortedMap, and
// each record gets a KVIsNil method so that a nil *T projects as Null.
package codegen
