// Package encode writes token trees as KeyValues text.
//
// Output is deterministic: keys and values are double quoted, each key,
// brace and comment starts a new line indented with one tab per level,
// and a scalar value follows its key after a single space.
//
//	"root"
//	{
//		"name" "value"
//		"table"
//		{
//			"x" "1"
//		}
//	}
//
// [Writer] is the streaming form used by the object mapper; [Encode]
// walks a tree and drives a Writer.
package encode
