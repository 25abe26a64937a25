package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/encode"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/ir"
)

// KV wraps a node so that %s and %v print it in text form.
type KV struct{ *ir.Node }

func (k KV) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(k.Node, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", k.Node)
	}
	return buf.String()
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = KV{x}.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
