package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/michaelmacinnis/jasper/internal/reader/token"
	"github.com/michaelmacinnis/jasper/internal/type/loc"
)

func TestBarewords(t *testing.T) {
	h := setup(t, "Barewords")

	h.scan("foo 42 'quoted &rest",
		h.bareword("foo"),
		h.space(1),
		h.bareword("42"),
		h.space(1),
		h.bareword("'quoted"),
		h.space(1),
		h.bareword("&rest"),
		nil,
	)
}

func TestDoubleQuoted(t *testing.T) {
	h := setup(t, "DoubleQuoted")

	h.scan(`(puts "hello (world)")`,
		h.literal("("),
		h.bareword("puts"),
		h.space(1),
		h.other(token.DoubleQuoted, `"hello (world)"`),
		h.literal(")"),
		nil,
	)
}

func TestEmptyInput(t *testing.T) {
	h := setup(t, "EmptyInput")

	h.scan("   \t\n  ", nil)
}

func TestEmptyString(t *testing.T) {
	h := setup(t, "EmptyString")

	h.scan(`""`,
		h.other(token.DoubleQuoted, `""`),
		nil,
	)
}

func TestNestedLists(t *testing.T) {
	h := setup(t, "NestedLists")

	h.scan("((a)(b))",
		h.literal("("),
		h.literal("("),
		h.bareword("a"),
		h.literal(")"),
		h.literal("("),
		h.bareword("b"),
		h.literal(")"),
		h.literal(")"),
		nil,
	)
}

func TestParensDelimitBarewords(t *testing.T) {
	h := setup(t, "ParensDelimitBarewords")

	h.scan("(+ 1 2)",
		h.literal("("),
		h.bareword("+"),
		h.space(1),
		h.bareword("1"),
		h.space(1),
		h.bareword("2"),
		h.literal(")"),
		nil,
	)
}

func TestSourceLocations(t *testing.T) {
	l := New("test")
	l.Scan("(a\n  b)")

	got := []loc.T{}
	for _, tok := range l.Tokens() {
		got = append(got, tok.Source())
	}

	want := []loc.T{
		{Char: 1, Line: 1, Name: "test"},
		{Char: 2, Line: 1, Name: "test"},
		{Char: 3, Line: 2, Name: "test"},
		{Char: 4, Line: 2, Name: "test"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("locations mismatch (-want +got):\n%s", diff)
	}
}

func TestScanAppends(t *testing.T) {
	l := New("test")

	l.Scan("(a")

	if n := len(l.Tokens()); n != 2 {
		t.Fatalf("Expected 2 tokens; got %d", n)
	}

	l.Scan(" b)")

	values := []string{}
	for _, tok := range l.Tokens() {
		values = append(values, tok.Value())
	}

	if diff := cmp.Diff([]string{"b", ")"}, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestUnterminatedQuote(t *testing.T) {
	h := setup(t, "UnterminatedQuote")

	h.scan(`"abc def`,
		h.bareword(`"abc`),
		h.space(1),
		h.bareword("def"),
		nil,
	)
}

func TestQuoteEndsAtNewline(t *testing.T) {
	l := New("QuoteEndsAtNewline")
	l.Scan("\"abc\ndef\" \"g h\"")

	var values []string
	for _, tk := range l.Tokens() {
		values = append(values, tk.Value())
	}

	if diff := cmp.Diff([]string{`"abc`, `def"`, `"g h"`}, values); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

type harness struct {
	index  int
	lexer  *T
	source loc.T
	t      *testing.T
}

var skip = token.New(token.Error, "", loc.T{}) //nolint:gochecknoglobals

func setup(t *testing.T, label string) *harness {
	return &harness{
		index: 1,
		lexer: New(label),
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		t: t,
	}
}

func (h *harness) bareword(s string) *token.T {
	return h.other(token.Bareword, s)
}

func (h *harness) expect(tokens ...*token.T) {
	h.t.Helper()

	for _, e := range tokens {
		if e == skip {
			continue
		}

		a := h.lexer.Token()

		switch {
		case a == e:
			continue
		case a == nil:
			h.t.Fatalf("Expected %v but there are no tokens", e)
		case e == nil:
			h.t.Fatalf("Expected no tokens; got %v", a)
		case *a != *e:
			h.t.Fatalf("Expected %v; got %v", e, a)
		}
	}
}

func (h *harness) literal(s string) *token.T {
	return h.other(token.Class(s[0]), s)
}

func (h *harness) other(id token.Class, s string) *token.T {
	h.source.Char = h.index
	h.index += len([]rune(s))

	return token.New(id, s, h.source)
}

func (h *harness) scan(s string, tokens ...*token.T) {
	h.t.Helper()

	h.lexer.Scan(s)
	h.expect(tokens...)
}

func (h *harness) space(n int) *token.T {
	h.index += n
	return skip
}
