package gomap

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/canon"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/encode"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/ir"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/parse"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/settings"
)

type point struct{ X, Y int }

func (p point) KVFields() []Field {
	return []Field{{Name: "X", Value: p.X}, {Name: "Y", Value: p.Y}}
}

type line struct {
	A, B point
	Name string
	Tag  *string
}

func (l line) KVFields() []Field {
	return []Field{
		{Name: "A", Value: l.A},
		{Name: "B", TypeName: "End", Value: l.B},
		{Name: "Name", Value: l.Name},
		{Name: "Tag", Value: l.Tag},
	}
}

type named struct{}

func (named) KVTypeName() string { return "Renamed" }
func (named) KVFields() []Field  { return nil }

type cyc struct{ next *cyc }

func (c *cyc) KVIsNil() bool     { return c == nil }
func (c *cyc) KVFields() []Field { return []Field{{Name: "Next", Value: c.next}} }

type outer struct{ In *point }

func (o outer) KVFields() []Field {
	return []Field{{Name: "In", Value: Optional(o.In)}}
}

// track has the methods kv-codegen writes for its field types.
type track struct {
	Points  []point
	Weights map[string]int
	Next    *track
}

func (x *track) KVIsNil() bool { return x == nil }

func (x track) KVFields() []Field {
	return []Field{
		{Name: "Points", Value: SliceOf(x.Points)},
		{Name: "Weights", Value: SortedMap(x.Weights)},
		{Name: "Next", Value: Optional(x.Next)},
	}
}

type level int

func (l level) EnumValue() int64 { return int64(l) }

func v(s string) *ir.Node { return ir.FromString(s) }

func obj(children ...*ir.Node) *ir.Node { return ir.FromValues(children...) }

func pointIR(x, y string) *ir.Node {
	return obj(ir.Prop("X", v(x)), ir.Prop("Y", v(y)))
}

type mapTest struct {
	name string
	in   any
	want *ir.Node
}

func TestToValueIR(t *testing.T) {
	three := 3
	ordered := NewOrderedMap[point, string]()
	ordered.Set(point{1, 2}, "p")
	tests := []mapTest{
		{name: "int", in: 5, want: v("5")},
		{name: "bool", in: true, want: v("1")},
		{name: "float", in: 1.5, want: v("1.5")},
		{name: "string", in: "a b", want: v("a b")},
		{name: "char", in: canon.Char('x'), want: v("x")},
		{name: "enum", in: level(7), want: v("7")},
		{name: "nil", in: nil, want: v("Null")},
		{name: "nil pointer", in: (*int)(nil), want: v("Null")},
		{name: "pointer", in: &three, want: v("3")},
		{name: "record", in: point{1, 2}, want: pointIR("1", "2")},
		{
			name: "nested record",
			in:   line{A: point{1, 2}, B: point{3, 4}, Name: "n"},
			want: obj(
				ir.Prop("point", pointIR("1", "2")),
				ir.Prop("End", pointIR("3", "4")),
				ir.Prop("Name", v("n")),
				ir.Prop("Tag", v("Null")),
			),
		},
		{name: "ints", in: []int{1, 2}, want: obj(v("1"), v("2"))},
		{
			name: "records",
			in:   Slice[point]{{1, 2}},
			want: obj(ir.Prop("point", pointIR("1", "2"))),
		},
		{
			name: "dict",
			in:   map[string]any{"b": 2, "a": 1},
			want: obj(
				ir.Prop("a", obj(v("1"))),
				ir.Prop("b", obj(v("2"))),
			),
		},
		{
			name: "composite key",
			in:   ordered,
			want: obj(ir.Prop("point", obj(
				ir.Prop("point", pointIR("1", "2")),
				v("p"),
			))),
		},
		{
			name: "grid",
			in:   Grid[int]{{1, 2, 3}, {4, 5, 6}},
			want: obj(
				v("2 3"),
				ir.Prop(RanksKey, obj(
					ir.Prop(RankKey, obj(v("1"), v("2"), v("3"))),
					ir.Prop(RankKey, obj(v("4"), v("5"), v("6"))),
				)),
			),
		},
		{
			name: "rank one array",
			in:   mustArray(t, []int{2}, []string{"a", "b"}),
			want: obj(v("a"), v("b")),
		},
		{
			name: "nil optional record",
			in:   outer{},
			want: obj(ir.Prop("In", v("Null"))),
		},
		{
			name: "optional record",
			in:   outer{In: &point{1, 2}},
			want: obj(ir.Prop("point", pointIR("1", "2"))),
		},
		{name: "nil ordered map", in: (*OrderedMap[string, int])(nil), want: v("Null")},
		{name: "nil array", in: (*Array[int])(nil), want: v("Null")},
		{name: "nil nullable record", in: (*cyc)(nil), want: v("Null")},
		{name: "nullable chain", in: &cyc{}, want: obj(ir.Prop("Next", v("Null")))},
		{
			name: "int map",
			in:   map[string]int{"b": 2, "a": 1},
			want: obj(
				ir.Prop("a", obj(v("1"))),
				ir.Prop("b", obj(v("2"))),
			),
		},
		{
			name: "record collections",
			in:   track{Points: []point{{1, 2}}, Weights: map[string]int{"w": 3}},
			want: obj(
				ir.Prop("Slice[point]", obj(ir.Prop("point", pointIR("1", "2")))),
				ir.Prop("OrderedMap[string,int]", obj(ir.Prop("w", obj(v("3"))))),
				ir.Prop("Next", v("Null")),
			),
		},
		{
			name: "token",
			in:   ir.Prop("k", v("x")),
			want: obj(ir.Prop("k", v("x"))),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToValueIR(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(tc.want, got) {
				t.Errorf("want\n%s\ngot\n%s", encode.MustString(tc.want), encode.MustString(got))
			}
		})
	}
}

func mustArray[T any](t *testing.T, shape []int, flat []T) *Array[T] {
	t.Helper()
	a, err := NewArray(shape, flat)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestToIR(t *testing.T) {
	got, err := ToIR(point{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	want := ir.Prop("point", pointIR("1", "2"))
	if !ir.Equal(want, got) {
		t.Errorf("got %s", encode.MustString(got))
	}
	tok := ir.Prop("k", v("x"))
	got, err = ToIR(tok)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(tok, got) || got == tok {
		t.Errorf("expected a copy of the token, got %s", encode.MustString(got))
	}
}

func TestMultiArrayRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		in    MultiArray
		shape []int
		elems []string
	}{
		{
			name:  "grid",
			in:    Grid[int]{{1, 2, 3}, {4, 5, 6}},
			shape: []int{2, 3},
			elems: []string{"1", "2", "3", "4", "5", "6"},
		},
		{
			name:  "rank 3",
			in:    mustArray(t, []int{2, 1, 2}, []float64{1, 2, 3, 4}),
			shape: []int{2, 1, 2},
			elems: []string{"1", "2", "3", "4"},
		},
		{
			name:  "ragged",
			in:    Grid[string]{{"a", "b"}, {"c"}},
			shape: []int{2, 2},
			elems: []string{"a", "b", "c", "Null"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			node, err := ToIR(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			reparsed, err := parse.Parse([]byte(encode.MustString(node)), parse.WithSettings(settings.Default()))
			if err != nil {
				t.Fatal(err)
			}
			for _, n := range []*ir.Node{node, reparsed} {
				shape, elems, err := DecodeMultiArray(n)
				if err != nil {
					t.Fatal(err)
				}
				if diff := cmp.Diff(tc.shape, shape); diff != "" {
					t.Errorf("shape (-want +got):\n%s", diff)
				}
				got := make([]string, len(elems))
				for i, e := range elems {
					got[i] = e.String
				}
				if diff := cmp.Diff(tc.elems, got); diff != "" {
					t.Errorf("elements (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestDecodeMultiArrayErrors(t *testing.T) {
	bad := []*ir.Node{
		nil,
		v("2 3"),
		obj(v("2 3")),
		obj(v("x y"), ir.Prop(RanksKey, obj())),
		obj(v("2"), ir.Prop(RanksKey, obj(v("1"), v("2")))),
		obj(v("2 1"), ir.Prop(RanksKey, obj(ir.Prop(RankKey, obj(v("1")))))),
		obj(v("1 1"), ir.Prop("other", obj(ir.Prop(RankKey, obj(v("1")))))),
	}
	for i, n := range bad {
		if _, _, err := DecodeMultiArray(n); !errors.Is(err, ErrShape) {
			t.Errorf("%d: expected ErrShape, got %v", i, err)
		}
	}
}

func TestDecodeShape(t *testing.T) {
	got, err := DecodeShape(" 4  5 6 ")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{4, 5, 6}, got); diff != "" {
		t.Error(diff)
	}
	for _, s := range []string{"", "1 -2", "a"} {
		if _, err := DecodeShape(s); !errors.Is(err, ErrShape) {
			t.Errorf("%q: expected ErrShape, got %v", s, err)
		}
	}
}

func TestMapErrors(t *testing.T) {
	c := &cyc{}
	c.next = c
	tests := []struct {
		name string
		in   any
		opts []MapOption
		err  error
		path string
	}{
		{name: "unsupported", in: struct{}{}, err: ErrUnsupported},
		{
			name: "unsupported member",
			in:   Slice[any]{1, struct{}{}},
			err:  ErrUnsupported,
			path: "[1]",
		},
		{name: "cycle", in: c, err: ErrDepth},
		{name: "shallow", in: line{}, opts: []MapOption{MaxDepth(1)}, err: ErrDepth, path: "A"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ToIR(tc.in, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
			var me *MarshalError
			if !errors.As(err, &me) {
				t.Fatalf("expected *MarshalError, got %T", err)
			}
			if tc.path != "" && me.FieldPath != tc.path {
				t.Errorf("path %q, want %q", me.FieldPath, tc.path)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		in   any
		want Kind
	}{
		{nil, NullKind},
		{(*ir.Node)(nil), NullKind},
		{(*OrderedMap[string, int])(nil), NullKind},
		{(*cyc)(nil), NullKind},
		{map[string]int{}, MappingKind},
		{[]float32{}, SequenceKind},
		{"s", ScalarKind},
		{canon.Decimal{Int: "1"}, ScalarKind},
		{point{}, RecordKind},
		{[]string{}, SequenceKind},
		{map[string]string{}, MappingKind},
		{Grid[int]{}, MultiArrayKind},
		{ir.Empty(), TokenKind},
		{struct{}{}, UnsupportedKind},
	}
	for _, tc := range tests {
		if got := KindOf(tc.in); got != tc.want {
			t.Errorf("KindOf(%#v) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{point{}, "point"},
		{&point{}, "point"},
		{[]int{}, "[]int"},
		{Slice[point]{}, "Slice[point]"},
		{map[string]*point{}, "map[string]*point"},
		{named{}, "Renamed"},
		{(*track)(nil), "track"},
	}
	for _, tc := range tests {
		if got := TypeName(tc.in); got != tc.want {
			t.Errorf("TypeName(%T) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestOrderedMap(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("b", 3)
	if diff := cmp.Diff([]string{"b", "a"}, m.Keys()); diff != "" {
		t.Error(diff)
	}
	if x, ok := m.Get("b"); !ok || x != 3 {
		t.Errorf("Get(b) = %d, %t", x, ok)
	}
	if _, err := NewArray([]int{2, 2}, []int{1}); !errors.Is(err, ErrShape) {
		t.Errorf("expected ErrShape, got %v", err)
	}
}

func TestWithLogger(t *testing.T) {
	var lines int
	logf := func(string, ...any) { lines++ }
	if _, err := ToIR(line{}, WithLogger(logf)); err != nil {
		t.Fatal(err)
	}
	// line and its two points
	if lines != 3 {
		t.Errorf("logged %d lines, want 3", lines)
	}
}

func TestToKV(t *testing.T) {
	d, err := ToKV(point{1, 2}, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := "\"point\"\n{\n\t\"X\" \"1\"\n\t\"Y\" \"2\"\n}\n"
	if got := string(d); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
