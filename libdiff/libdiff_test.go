package libdiff

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/encode"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/ir"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/parse"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/settings"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.Parse([]byte(s), parse.WithSettings(settings.Default()), parse.ParseComments(true))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

type diffTest struct {
	name     string
	from, to string
	want     []string
}

func TestDiff(t *testing.T) {
	tests := []diffTest{
		{
			name: "equal",
			from: `"r" { "a" "1" }`,
			to:   `"r" { "a" "1" }`,
		},
		{
			name: "edit",
			from: `"r" { "a" "hello world" }`,
			to:   `"r" { "a" "hello there" }`,
			want: []string{"~ a"},
		},
		{
			name: "insert and delete",
			from: `"r" { "a" "1" "b" "2" }`,
			to:   `"r" { "b" "2" "c" "3" }`,
			want: []string{"- a", "+ c"},
		},
		{
			name: "duplicates",
			from: `"r" { "k" "1" "k" "2" }`,
			to:   `"r" { "k" "1" "k" "2" "k" "3" }`,
			want: []string{"+ k"},
		},
		{
			name: "nested",
			from: `"r" { "s" { "x" "1" } }`,
			to:   `"r" { "s" { "x" "2" "y" {} } }`,
			want: []string{"~ s/x", "+ s/y"},
		},
		{
			name: "type change",
			from: `"r" { "s" "v" }`,
			to:   `"r" { "s" {} }`,
			want: []string{"~ s"},
		},
		{
			name: "renamed root",
			from: `"r" {}`,
			to:   `"q" {}`,
			want: []string{"~ /"},
		},
		{
			name: "comment",
			from: "\"r\" {\n// one\n\"a\" \"1\" }",
			to:   "\"r\" {\n// two\n\"a\" \"1\" }",
			want: []string{"- [0]", "+ [0]"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			from, to := mustParse(t, tc.from), mustParse(t, tc.to)
			changes := Diff(from, to)
			var got []string
			for i := range changes {
				got = append(got, changes[i].String())
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("(-want +got):\n%s", diff)
			}
			patched, err := Apply(from, changes)
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(to, patched) {
				t.Errorf("apply: got\n%s\nwant\n%s", encode.MustString(patched), encode.MustString(to))
			}
			back, err := Apply(patched, Reverse(changes))
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(from, back) {
				t.Errorf("reverse: got\n%s\nwant\n%s", encode.MustString(back), encode.MustString(from))
			}
		})
	}
}

func TestApplyConflict(t *testing.T) {
	from := mustParse(t, `"r" { "a" "1" "b" "2" }`)
	to := mustParse(t, `"r" { "b" "2" }`)
	changes := Diff(from, to)
	other := mustParse(t, `"r" { "z" "1" "b" "2" }`)
	if _, err := Apply(other, changes); err == nil {
		t.Error("expected a conflict")
	}
}

func TestApplyEditFuzzy(t *testing.T) {
	from := mustParse(t, `"r" { "a" "the quick brown fox" }`)
	to := mustParse(t, `"r" { "a" "the quick red fox" }`)
	doc := mustParse(t, `"r" { "a" "see the quick brown fox" }`)
	got, err := Apply(doc, Diff(from, to))
	if err != nil {
		t.Fatal(err)
	}
	if s := got.GetPath("a").AsString(); s != "see the quick red fox" {
		t.Errorf("got %q", s)
	}
}

func TestWrite(t *testing.T) {
	from := mustParse(t, `"r" { "a" "cat" "b" "1" }`)
	to := mustParse(t, `"r" { "a" "cut" "c" "2" }`)
	var buf bytes.Buffer
	if err := Write(&buf, Diff(from, to)); err != nil {
		t.Fatal(err)
	}
	want := "~ a: \"c[-a-]{+u+}t\"\n- b: \"b\" \"1\"\n+ c: \"c\" \"2\"\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
