package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/ir"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	KeyColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	colors.Map[Colorable{Type: ir.CommentType, Attr: CommentColor}] = color.BlueString
	colors.Map[Colorable{Type: ir.PropertyType, Attr: KeyColor}] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[Colorable{Type: ir.ValueType, Attr: ValueColor}] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[Colorable{Type: ir.ValueType, Attr: KeyColor}] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[Colorable{Type: ir.ObjectType, Attr: SepColor}] = color.RGB(196, 128, 128).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
