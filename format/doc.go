// Package format names the output formats of the kv command: KeyValues
// text, the JSON form of a tree, and the same form as YAML.
package format
