package libdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/encode"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/ir"
)

type writeOpts struct {
	color   bool
	encOpts []encode.EncodeOption
}

type WriteOption func(*writeOpts)

// WriteColor renders removals in red and additions in green.
func WriteColor(v bool) WriteOption {
	return func(o *writeOpts) { o.color = v }
}

// WriteEncodeOptions sets the options used to render nodes.
func WriteEncodeOptions(opts ...encode.EncodeOption) WriteOption {
	return func(o *writeOpts) { o.encOpts = opts }
}

// Write renders changes to w, one per line. Multi-line nodes continue on
// indented lines.
//
//	- path: removed
//	+ path: added
//	~ path: replaced -> replacement
//	~ path: "text [-old-]{+new+}"
func Write(w io.Writer, changes []Change, opts ...WriteOption) error {
	o := &writeOpts{}
	for _, opt := range opts {
		opt(o)
	}
	red, green := fmt.Sprint, fmt.Sprint
	if o.color {
		red = color.New(color.FgRed).SprintFunc()
		green = color.New(color.FgGreen).SprintFunc()
	}
	for i := range changes {
		c := &changes[i]
		var line string
		switch c.Op {
		case Insert:
			line = green("+ "+c.PathString()+": ") + o.node(c.To)
		case Delete:
			line = red("- "+c.PathString()+": ") + o.node(c.From)
		case Replace:
			line = "~ " + c.PathString() + ": " + red(o.node(c.From)) + " -> " + green(o.node(c.To))
		case Edit:
			line = "~ " + c.PathString() + ": " + o.text(c.Text)
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (o *writeOpts) node(n *ir.Node) string {
	if n == nil {
		return "<nil>"
	}
	s, err := encodeString(n, o.encOpts)
	if err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", n)
	}
	return strings.ReplaceAll(s, "\n", "\n    ")
}

func encodeString(n *ir.Node, opts []encode.EncodeOption) (string, error) {
	var buf strings.Builder
	if err := encode.Encode(n, &buf, opts...); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

func (o *writeOpts) text(diffs []diffpatch.Diff) string {
	if o.color {
		return `"` + diffpatch.New().DiffPrettyText(diffs) + `"`
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		case diffpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		}
	}
	b.WriteByte('"')
	return b.String()
}
