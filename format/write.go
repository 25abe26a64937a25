package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/encode"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/ir"
)

// Write writes node to w in format f. The kv format uses encOpts; the
// others write the JSON form of the tree, indented.
func Write(w io.Writer, node *ir.Node, f Format, encOpts ...encode.EncodeOption) error {
	switch f {
	case KVFormat:
		if err := encode.Encode(node, w, encOpts...); err != nil {
			return err
		}
		if node.Type == ir.ObjectType || (node.Type == ir.PropertyType && node.Value != nil && node.Value.Type == ir.ObjectType) {
			return nil
		}
		_, err := io.WriteString(w, "\n")
		return err
	case JSONFormat:
		d, err := json.MarshalIndent(node, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(d, '\n'))
		return err
	case YAMLFormat:
		d, err := json.Marshal(node)
		if err != nil {
			return err
		}
		y, err := yaml.JSONToYAML(d)
		if err != nil {
			return err
		}
		_, err = w.Write(y)
		return err
	}
	return fmt.Errorf("%w: %d", ErrBadFormat, f)
}

// Read decodes the JSON or YAML form of a tree.
func Read(d []byte, f Format) (*ir.Node, error) {
	switch f {
	case JSONFormat:
	case YAMLFormat:
		j, err := yaml.YAMLToJSON(d)
		if err != nil {
			return nil, err
		}
		d = j
	default:
		return nil, fmt.Errorf("%w: %s has no JSON form", ErrBadFormat, f)
	}
	node := &ir.Node{}
	if err := json.NewDecoder(bytes.NewReader(d)).Decode(node); err != nil {
		return nil, err
	}
	return node, nil
}
