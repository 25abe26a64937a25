package ir

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sample() *Node {
	return Prop("root", FromValues(
		Prop("a", FromString("1")),
		FromComment(" note"),
		Prop("b", FromValues(
			Prop("c", FromString("x")),
		)),
		Prop("a", FromString("2")),
	))
}

func TestNewProperty(t *testing.T) {
	if _, err := NewProperty("k", nil); !errors.Is(err, ErrNilValue) {
		t.Fatalf("expected ErrNilValue, got %v", err)
	}
	v := FromString("v")
	p, err := NewProperty("k", v)
	if err != nil {
		t.Fatal(err)
	}
	if v.Parent != p || p.Value != v {
		t.Errorf("property not linked to its value")
	}
	defer func() {
		if recover() == nil {
			t.Errorf("Prop with nil value did not panic")
		}
	}()
	Prop("k", nil)
}

func TestObjectAccess(t *testing.T) {
	obj := sample().Value
	if got := obj.Get("a").String; got != "1" {
		t.Errorf("first match: got %q", got)
	}
	if !obj.Has("b") || obj.Has("z") {
		t.Errorf("Has")
	}
	if v, ok := obj.Lookup("z"); ok || v != nil {
		t.Errorf("Lookup of missing key")
	}
	if diff := cmp.Diff([]string{"a", "b", "a"}, obj.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if obj.Len() != 4 {
		t.Errorf("len %d", obj.Len())
	}
	if obj.Index(1).Type != CommentType || obj.Index(9) != nil {
		t.Errorf("Index")
	}

	first := obj.Index(0)
	if err := obj.Set("a", FromString("one")); err != nil {
		t.Fatal(err)
	}
	if obj.Index(0) != first || first.Value.String != "one" {
		t.Errorf("Set did not replace in place")
	}
	if obj.Index(3).Value.String != "2" {
		t.Errorf("Set touched the duplicate")
	}
	if err := obj.Set("new", nil); err != nil {
		t.Fatal(err)
	}
	if got := obj.Index(4); got.Key != "new" || !Equal(got.Value, Empty()) {
		t.Errorf("Set of new key: got %+v", got)
	}

	if n := obj.Remove("a"); n != 2 {
		t.Errorf("Remove removed %d", n)
	}
	if diff := cmp.Diff([]string{"b", "new"}, obj.Keys()); diff != "" {
		t.Errorf("keys after remove (-want +got):\n%s", diff)
	}
	for i, c := range obj.Values {
		if c.ParentIndex != i || c.Parent != obj {
			t.Errorf("child %d has parent index %d", i, c.ParentIndex)
		}
	}
	if err := obj.RemoveAt(0); err != nil {
		t.Fatal(err)
	}
	if err := obj.RemoveAt(5); !errors.Is(err, ErrIndex) {
		t.Errorf("expected ErrIndex, got %v", err)
	}
	if err := FromString("x").Set("a", Empty()); !errors.Is(err, ErrNotObject) {
		t.Errorf("expected ErrNotObject, got %v", err)
	}
}

func TestInsertAndSiblings(t *testing.T) {
	obj := FromValues(Prop("a", Empty()), Prop("c", Empty()))
	if err := obj.Insert(1, Prop("b", Empty())); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, obj.Keys()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	b := obj.Index(1)
	if b.Prev().Key != "a" || b.Next().Key != "c" {
		t.Errorf("siblings")
	}
	if obj.Index(0).Prev() != nil || obj.Index(2).Next() != nil {
		t.Errorf("edge siblings")
	}
	if err := obj.Insert(7, Empty()); !errors.Is(err, ErrIndex) {
		t.Errorf("got %v", err)
	}
}

func TestProperties(t *testing.T) {
	var got []string
	for k, v := range sample().Value.Properties() {
		got = append(got, k+"="+v.Type.String())
	}
	want := []string{"a=Value", "b=Object", "a=Value"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEqualClone(t *testing.T) {
	a := sample()
	b := a.Clone()
	if !Equal(a, b) {
		t.Fatalf("clone not equal")
	}
	if a.Hash() != b.Hash() {
		t.Errorf("equal trees hash differently")
	}
	b.Value.Get("b").Set("c", FromString("y"))
	if Equal(a, b) {
		t.Errorf("mutating the clone changed equality")
	}
	if a.Value.Get("b").Get("c").String != "x" {
		t.Errorf("clone shares nodes with source")
	}
	if Equal(FromString("x"), FromComment("x")) {
		t.Errorf("value equal to comment")
	}
	if Equal(Prop("a", Empty()), Prop("b", Empty())) {
		t.Errorf("different keys equal")
	}
	if Equal(FromValues(Prop("a", Empty())), FromValues()) {
		t.Errorf("different lengths equal")
	}
}

func TestStripComments(t *testing.T) {
	got := StripComments(sample())
	if diff := cmp.Diff([]string{"a", "b", "a"}, got.Value.Keys()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got.Value.Len() != 3 {
		t.Errorf("comment kept")
	}
}

func TestMergeFrom(t *testing.T) {
	dst := FromValues(Prop("a", FromString("1")))
	src := FromValues(Prop("a", FromString("2")), Prop("b", FromString("3")))
	if err := dst.MergeFrom(src, false); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "a", "b"}, dst.Keys()); diff != "" {
		t.Errorf("no replace (-want +got):\n%s", diff)
	}
	dst = FromValues(Prop("a", FromString("1")))
	if err := dst.MergeFrom(src, true); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, dst.Keys()); diff != "" {
		t.Errorf("replace (-want +got):\n%s", diff)
	}
	if dst.Get("a").String != "2" {
		t.Errorf("value not replaced")
	}
	if dst.Get("b") == src.Get("b") {
		t.Errorf("merge shares nodes with source")
	}
}

func TestPath(t *testing.T) {
	root := sample()
	c := root.GetPath("b", "c")
	if c == nil || c.String != "x" {
		t.Fatalf("GetPath: %v", c)
	}
	if diff := cmp.Diff([]string{"root", "b", "c"}, c.Path()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if root.GetPath("b", "zz") != nil || root.GetPath("a", "x") != nil {
		t.Errorf("missing path resolved")
	}
	if c.Root() != root {
		t.Errorf("Root")
	}
}

func TestAccessors(t *testing.T) {
	if !FromString("1").AsBool() || FromString("0").AsBool() {
		t.Errorf("AsBool")
	}
	if got := Prop("n", FromString("-12")).AsInt(); got != -12 {
		t.Errorf("AsInt through property: %d", got)
	}
	if got := FromString("300").AsUint8(); got != 0 {
		t.Errorf("AsUint8 overflow: %d", got)
	}
	if got := FromString("nope").AsFloat64(); got != 0 {
		t.Errorf("AsFloat64 lenient: %v", got)
	}
	if got := FromString("-Infinity").AsFloat32(); !math.IsInf(float64(got), -1) {
		t.Errorf("AsFloat32: %v", got)
	}
	if !FromString("Null").IsNull() {
		t.Errorf("IsNull")
	}
	if FromValues().AsString() != "" {
		t.Errorf("object leaf text")
	}
}

func TestJSON(t *testing.T) {
	in := sample()
	d, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	out := &Node{}
	if err := json.Unmarshal(d, out); err != nil {
		t.Fatal(err)
	}
	if !Equal(in, out) {
		t.Errorf("json round trip differs: %s", d)
	}
	b := out.GetPath("b")
	if b.Parent == nil || b.Parent.Key != "b" {
		t.Errorf("parent links not restored")
	}
	bad := `{"type":"Property","key":"k"}`
	if err := json.Unmarshal([]byte(bad), &Node{}); !errors.Is(err, ErrNilValue) {
		t.Errorf("expected ErrNilValue, got %v", err)
	}
}

func TestType(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Type
		if err := got.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if got != typ {
			t.Errorf("got %s want %s", got, typ)
		}
	}
	if !ValueType.IsLeaf() || ObjectType.IsLeaf() {
		t.Errorf("IsLeaf")
	}
}
