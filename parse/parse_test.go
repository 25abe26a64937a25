package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/DeadZoneLuna/WwisePCKUnpacker/encode"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/ir"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/settings"
	"github.com/DeadZoneLuna/WwisePCKUnpacker/token"
)

type parseTest struct {
	name string
	in   string
	opts []ParseOption
	want *ir.Node
	err  error
}

func v(s string) *ir.Node { return ir.FromString(s) }

func obj(children ...*ir.Node) *ir.Node { return ir.FromValues(children...) }

func TestParse(t *testing.T) {
	literal := WithSettings(settings.Default())
	tests := []parseTest{
		{
			name: "scalar root",
			in:   `"key" "value"`,
			want: ir.Prop("key", v("value")),
		},
		{
			name: "nested",
			in: `"Root"
{
	"A" "1"
	"Sub"
	{
		"b" "two words"
	}
	"Empty" {}
}`,
			want: ir.Prop("root", obj(
				ir.Prop("a", v("1")),
				ir.Prop("sub", obj(ir.Prop("b", v("two words")))),
				ir.Prop("empty", obj()),
			)),
		},
		{
			name: "literal profile keeps case",
			in:   `"Root" { "A" "B" }`,
			opts: []ParseOption{literal},
			want: ir.Prop("Root", obj(ir.Prop("A", v("B")))),
		},
		{
			name: "comments dropped",
			in: `// header
"r"
{
	// inside
	"a" "b" // trailing
}
// footer`,
			want: ir.Prop("r", obj(ir.Prop("a", v("b")))),
		},
		{
			name: "comments kept",
			in:   "\"r\" {\n// inside\n\"a\" \"b\"\n}",
			opts: []ParseOption{ParseComments(true)},
			want: ir.Prop("r", obj(ir.FromComment(" inside"), ir.Prop("a", v("b")))),
		},
		{
			name: "duplicates kept",
			in:   `"r" { "a" "1" "a" "2" }`,
			want: ir.Prop("r", obj(ir.Prop("a", v("1")), ir.Prop("a", v("2")))),
		},
		{
			name: "bare words",
			in:   `r { a 1 "b" two }`,
			want: ir.Prop("r", obj(ir.Prop("a", v("1")), ir.Prop("b", v("two")))),
		},
		{
			name: "ignore root",
			in:   `"a" "1" "b" { "c" "2" }`,
			opts: []ParseOption{WithSettings(withIgnoreRoot(settings.Common()))},
			want: ir.Prop("", obj(ir.Prop("a", v("1")), ir.Prop("b", obj(ir.Prop("c", v("2")))))),
		},
		{
			name: "ignore root empty",
			in:   ``,
			opts: []ParseOption{WithSettings(withIgnoreRoot(settings.Common()))},
			want: ir.Prop("", obj()),
		},
		{
			name: "escapes",
			in:   `"r" { "a" "line1\nline2\"quoted\"" }`,
			want: ir.Prop("r", obj(ir.Prop("a", v("line1\nline2\"quoted\"")))),
		},
		{
			name: "missing brace",
			in:   `"key" { "nested" "value"`,
			err:  ErrParse,
		},
		{
			name: "unterminated quote",
			in:   `"key" { "nested" "val`,
			err:  token.ErrUnterminated,
		},
		{
			name: "missing value",
			in:   `"key"`,
			err:  ErrParse,
		},
		{
			name: "missing value before brace",
			in:   `"r" { "a" }`,
			err:  ErrParse,
		},
		{
			name: "stray brace",
			in:   `"r" { } }`,
			err:  ErrParse,
		},
		{
			name: "stray brace without root",
			in:   `"a" "b" }`,
			opts: []ParseOption{WithSettings(withIgnoreRoot(settings.Common()))},
			err:  ErrParse,
		},
		{
			name: "trailing property",
			in:   `"a" "b" "c" "d"`,
			err:  ErrParse,
		},
		{
			name: "anonymous object",
			in:   `"r" { { } }`,
			err:  ErrParse,
		},
		{
			name: "empty",
			in:   "// nothing here\n",
			err:  ErrParse,
		},
		{
			name: "too large",
			in:   `"r" "` + strings.Repeat("x", 100) + `"`,
			opts: []ParseOption{WithSettings(withMaxSize(settings.Common(), 10))},
			err:  token.ErrTokenSize,
		},
		{
			name: "invalid settings",
			in:   `"r" "v"`,
			opts: []ParseOption{WithSettings(withMaxSize(settings.Common(), 0))},
			err:  settings.ErrInvalid,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse([]byte(tc.in), tc.opts...)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected %v, got %v", tc.err, err)
				}
				if tc.err != settings.ErrInvalid && !errors.Is(err, token.ErrMalformed) {
					t.Errorf("%v is not a malformed input error", err)
				}
				if got != nil {
					t.Errorf("got a tree along with an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(tc.want, got) {
				t.Errorf("want\n%s\ngot\n%s", encode.MustString(tc.want), encode.MustString(got))
			}
		})
	}
}

func withIgnoreRoot(s settings.Settings) settings.Settings {
	s.IgnoreRootToken = true
	return s
}

func withMaxSize(s settings.Settings, n int) settings.Settings {
	s.MaxTokenSize = n
	return s
}

const condDoc = `"r"
{
	"all" "1"
	"win" "2" [$WINDOWS]
	"notwin" "3" [!$WINDOWS]
	"either" "4" [$OSX || $LINUX]
	"table" [$POSIX]
	{
		"x" "5"
	}
	"after" { "y" "6" } [$win32 && !$X360]
	"unknown" "7" [$PS3]
}`

func TestConditionals(t *testing.T) {
	tests := []struct {
		name     string
		platform settings.Platform
		cond     bool
		want     []string
	}{
		{"windows", settings.Windows(), true, []string{"all", "win", "after"}},
		{"linux", settings.Linux(), true, []string{"all", "notwin", "either", "table"}},
		{"osx", settings.OSX(), true, []string{"all", "notwin", "either", "table"}},
		{"disabled", settings.Linux(), false, []string{"all", "win", "notwin", "either", "table", "after", "unknown"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := settings.Common().WithPlatform(tc.platform)
			s.UseConditionals = tc.cond
			var logged []string
			got, err := Parse([]byte(condDoc), WithSettings(s), ParseLogger(func(f string, args ...any) {
				logged = append(logged, args[0].(string))
			}))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got.Value.Keys()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if len(logged)+len(tc.want) != 7 {
				t.Errorf("logged %v", logged)
			}
		})
	}
}

func TestBadConditional(t *testing.T) {
	_, err := Parse([]byte(`"r" { "a" "b" [$WIN32 &&] }`))
	if !errors.Is(err, ErrBadConditional) {
		t.Fatalf("expected ErrBadConditional, got %v", err)
	}
	_, err = Parse([]byte(`"r" { [$WIN32] "a" "b" }`))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestRewriteCond(t *testing.T) {
	code, names := rewriteCond("!$win32 || ($OSX&&$360)")
	if code != "!WIN32 || (OSX&&_360)" {
		t.Errorf("got %q", code)
	}
	if diff := cmp.Diff([]string{"WIN32", "OSX", "_360"}, names); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestReader(t *testing.T) {
	r := NewReader(strings.NewReader("\"r\" { // c\n \"a\" \"b\" [$X360] }"), settings.Common())
	type step struct {
		State State
		Value string
	}
	var got []step
	for {
		ok, err := r.ReadToken()
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		got = append(got, step{r.State(), r.Value()})
	}
	want := []step{
		{StateProperty, "r"},
		{StateObject, "{"},
		{StateComment, " c"},
		{StateProperty, "a"},
		{StateProperty, "b"},
		{StateConditional, "$X360"},
		{StateObject, "}"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if r.State() != StateFinished {
		t.Errorf("state %s", r.State())
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := r.ReadToken(); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}
