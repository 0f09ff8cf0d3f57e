package packval

import (
	"bytes"
	"io"
	"math"
	"strings"
	"testing"
)

func assertRender(t *testing.T, v Value, want string) {
	t.Helper()
	if got := v.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	var buf bytes.Buffer
	n, err := v.Fprint(&buf)
	if err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	if buf.String() != want || n != len(want) {
		t.Errorf("Fprint wrote %q (%d bytes), want %q", buf.String(), n, want)
	}
	dst := make([]byte, len(want)+8)
	if n := v.NString(dst); n != len(want) || string(dst[:n]) != want {
		t.Errorf("NString wrote %q (%d), want %q", dst[:n], n, want)
	}
}

func TestRenderScalars(t *testing.T) {
	assertRender(t, Null, "null")
	assertRender(t, Bool(true), "true")
	assertRender(t, Bool(false), "false")
	assertRender(t, Int(0), "0")
	assertRender(t, Int(-42), "-42")
	assertRender(t, Int(math.MinInt64), "-9223372036854775808")
	assertRender(t, Float(4.2), "4.2")
	assertRender(t, Float(-0.5), "-0.5")
	assertRender(t, Identity(42), "42")
}

func TestRenderStrings(t *testing.T) {
	assertRender(t, String(""), `""`)
	assertRender(t, String("hello"), `"hello"`)
	// Only quotes and backslashes are escaped.
	assertRender(t, String(`a"b\c`), `"a\"b\\c"`)
	assertRender(t, String("tab\tkept"), "\"tab\tkept\"")
}

func TestRenderContainers(t *testing.T) {
	assertRender(t, List(nil), "[]")
	assertRender(t, List([]Value{Int(1), String("x"), Null}), `[1,"x",null]`)
	assertRender(t, mustMap(t, nil), "{}")
	assertRender(t, mustMap(t, []MapEntry{
		MapKV("a", Int(1)),
		MapKV("b", String("y")),
	}), `{a:1,b:"y"}`)
	assertRender(t, List([]Value{List([]Value{Int(1)})}), "[[1]]")
}

func TestRenderComposites(t *testing.T) {
	props := mustMap(t, []MapEntry{MapKV("name", String("Ada"))})
	node, err := Node(Identity(1), List([]Value{String("Person"), String("Dev")}), props)
	if err != nil {
		t.Fatalf("Node: %v", err)
	}
	assertRender(t, node, `(:Person:Dev{name:"Ada"})`)

	rel, err := Relationship(Identity(9), Identity(1), Identity(2), String("KNOWS"), mustMap(t, nil))
	if err != nil {
		t.Fatalf("Relationship: %v", err)
	}
	assertRender(t, rel, "[:KNOWS{}]")

	unbound, err := UnboundRelationship(Identity(9), String("KNOWS"), mustMap(t, nil))
	if err != nil {
		t.Fatalf("UnboundRelationship: %v", err)
	}
	assertRender(t, unbound, "[:KNOWS{}]")

	assertRender(t, Struct(0x66, []Value{Int(1), String("two")}), `struct<0x66>(1,"two")`)
	assertRender(t, Struct(0xAB, nil), "struct<0xAB>()")
}

func TestRenderPath(t *testing.T) {
	n0 := testNode(t, 0, "A")
	n1 := testNode(t, 1, "B")
	n2 := testNode(t, 2, "C")
	r0 := testRel(t, 10, 0, 1, "X")
	r1 := testRel(t, 11, 2, 1, "Y")

	path, err := Path(
		List([]Value{n0, n1, n2}),
		List([]Value{r0, r1}),
		List([]Value{Int(1), Int(1), Int(-2), Int(2)}),
	)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	assertRender(t, path, "(:A{})-[:X{}]->(:B{})<-[:Y{}]-(:C{})")

	single, err := Path(List([]Value{n0}), List(nil), List(nil))
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	assertRender(t, single, "(:A{})")
}

func TestNStringTruncation(t *testing.T) {
	v := String("hello world")
	want := `"hello world"`

	// A short buffer still reports the full required length.
	short := make([]byte, 5)
	if n := v.NString(short); n != len(want) {
		t.Errorf("NString(short) = %d, want %d", n, len(want))
	}
	if string(short) != want[:5] {
		t.Errorf("truncated content = %q, want %q", short, want[:5])
	}

	// A zero-length buffer measures without writing.
	if n := v.NString(nil); n != len(want) {
		t.Errorf("NString(nil) = %d, want %d", n, len(want))
	}

	// Exact fit.
	exact := make([]byte, len(want))
	if n := v.NString(exact); n != len(want) || string(exact) != want {
		t.Errorf("NString(exact) = %q (%d)", exact, n)
	}
}

func TestRuneString(t *testing.T) {
	buf := make([]rune, 16)
	cases := []struct {
		v    Value
		want string
	}{
		{Null, "null"},
		{Bool(false), "false"},
		{Int(-7), "-7"},
		{Float(2.5), "2.5"},
		{Identity(3), "3"},
	}
	for _, c := range cases {
		n := c.v.RuneString(buf)
		if n != len(c.want) || string(buf[:n]) != c.want {
			t.Errorf("RuneString(%v) = %q (%d), want %q", c.v, string(buf[:n]), n, c.want)
		}
	}

	// Truncated output still reports the full length.
	tiny := make([]rune, 2)
	if n := Bool(false).RuneString(tiny); n != 5 || string(tiny) != "fa" {
		t.Errorf("truncated RuneString = %q (%d)", string(tiny), n)
	}

	// Non-scalar values have no wide rendering.
	for _, v := range []Value{String("x"), List(nil), mustMap(t, nil), Struct(0x66, nil)} {
		if n := v.RuneString(buf); n != -1 {
			t.Errorf("RuneString(%v) = %d, want -1", v.Type(), n)
		}
	}
}

type failWriter struct{ limit int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.limit <= 0 {
		return 0, io.ErrClosedPipe
	}
	if len(p) > w.limit {
		n := w.limit
		w.limit = 0
		return n, io.ErrClosedPipe
	}
	w.limit -= len(p)
	return len(p), nil
}

func TestFprintWriteError(t *testing.T) {
	v := List([]Value{String("hello"), String("world")})
	n, err := v.Fprint(&failWriter{limit: 4})
	if err == nil {
		t.Fatal("Fprint to a failing writer must return the error")
	}
	if n > 4 {
		t.Errorf("Fprint reported %d bytes past the writer's capacity", n)
	}
}

func TestStringerIntegration(t *testing.T) {
	// Value satisfies fmt.Stringer, so %v and %s format through it.
	got := strings.TrimSpace(List([]Value{Int(1)}).String())
	if got != "[1]" {
		t.Errorf("Stringer output = %q", got)
	}
}
