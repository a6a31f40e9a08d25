// Released under an MIT license. See LICENSE.

package task

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/michaelmacinnis/jasper/internal/common/failure"
	"github.com/michaelmacinnis/jasper/internal/interface/cell"
	"github.com/michaelmacinnis/jasper/internal/interface/literal"
	"github.com/michaelmacinnis/jasper/internal/reader"
	"github.com/michaelmacinnis/jasper/internal/type/env"
	"github.com/michaelmacinnis/jasper/internal/type/num"
)

type fixture struct {
	output *bytes.Buffer
	root   *env.T
	task   *T
}

func setup(log *zap.SugaredLogger) *fixture {
	f := &fixture{
		output: &bytes.Buffer{},
		root:   env.New(nil),
	}

	Install(f.root)

	f.task = New(f.root, f.output, log)

	return f
}

func (f *fixture) run(text string) (cell.T, error) {
	forms, err := reader.Read("test", text)
	if err != nil {
		return nil, err
	}

	return f.task.EvalSequence(forms, f.root)
}

func evaluate(t *testing.T, text string) string {
	t.Helper()

	v, err := setup(nil).run(text)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", text, err)
	}

	return literal.String(v)
}

func fails(t *testing.T, text string, expected error) {
	t.Helper()

	_, err := setup(nil).run(text)
	if !errors.Is(err, expected) {
		t.Fatalf("%s: expected %v, got %v", text, expected, err)
	}
}

func TestLiterals(t *testing.T) {
	tests := []struct{ text, want string }{
		{``, `null`},
		{`()`, `null`},
		{`42`, `42`},
		{`-5`, `-5`},
		{`+5`, `5`},
		{`.5`, `0.5`},
		{`-.5`, `-0.5`},
		{`1e3`, `1000`},
		{`0x10`, `16`},
		{`"hi"`, `"hi"`},
		{`"a\tb"`, `"a\tb"`},
		{`""`, `""`},
		{`true`, `true`},
		{`false`, `false`},
		{`null`, `null`},
		{`undefined`, `undefined`},
		{`'foo`, `"foo"`},
		{`1 2 3`, `3`},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, evaluate(t, tt.text)); diff != "" {
			t.Errorf("%s: (-want +got):\n%s", tt.text, diff)
		}
	}
}

func TestNumberValue(t *testing.T) {
	v, err := setup(nil).run(`42`)
	if err != nil {
		t.Fatal(err)
	}

	if !v.Equal(num.New(42)) {
		t.Fatalf("expected 42, got %s", literal.String(v))
	}
}

func TestApplication(t *testing.T) {
	tests := []struct{ text, want string }{
		{`(+ 1 2)`, `3`},
		{`(+ "a" 1 "b")`, `"a1b"`},
		{`(+)`, `0`},
		{`(* 2 3 4)`, `24`},
		{`(/ 12 2 3)`, `2`},
		{`(/ 4)`, `0.25`},
		{`((+ 1 2))`, `3`},
		{`(((lambda (x) (lambda (y) (+ x y))) 5) 3)`, `8`},
		{`(progn 1 2 3)`, `3`},
		{`(progn)`, `null`},
		{`(list 1 (+ 1 1) "x")`, `(1 2 "x")`},
		{`(cons 1 (list 2 3))`, `(1 2 3)`},
		{`(cons 1 null)`, `(1)`},
		{`(car (list 1 2))`, `1`},
		{`(cdr (list 1 2))`, `(2)`},
		{`(car (list))`, `undefined`},
		{`(cdr (list))`, `()`},
		{`(append (list 1) null (list 2 3))`, `(1 2 3)`},
		{`(empty? (list))`, `true`},
		{`(empty? "")`, `true`},
		{`(empty? null)`, `true`},
		{`(empty? (list 1))`, `false`},
		{`(== null undefined)`, `true`},
		{`(== (list 1 "a") (list 1 "a"))`, `true`},
		{`(== 1 1 2)`, `false`},
		{`(< 1 2 3)`, `true`},
		{`(< 1 3 2)`, `false`},
		{`(<= 2 2)`, `true`},
		{`(> "b" "a")`, `true`},
		{`(>= 1 2)`, `false`},
		{`(<= (/ 0 0) 1)`, `false`},
		{`(> (/ 0 0) 1)`, `false`},
		{`(== 'a "a")`, `true`},
		{`(< 'a 'b)`, `true`},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, evaluate(t, tt.text)); diff != "" {
			t.Errorf("%s: (-want +got):\n%s", tt.text, diff)
		}
	}
}

// Subtraction folds from the left. With one argument it negates.
func TestSubtraction(t *testing.T) {
	tests := []struct{ text, want string }{
		{`(- 10 3 2)`, `5`},
		{`(- 10 3)`, `7`},
		{`(- 5)`, `-5`},
		{`(-)`, `0`},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, evaluate(t, tt.text)); diff != "" {
			t.Errorf("%s: (-want +got):\n%s", tt.text, diff)
		}
	}
}

func TestRestParameter(t *testing.T) {
	tests := []struct{ text, want string }{
		{`((lambda (a &rest r) r) 1 2 3)`, `(2 3)`},
		{`((lambda (a &rest r) r) 1)`, `()`},
		{`(= f (lambda (&rest r) r)) (f)`, `()`},
		{`((lambda (a b) b) 1)`, `undefined`},
		{`((lambda (a) a) 1 2)`, `1`},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, evaluate(t, tt.text)); diff != "" {
			t.Errorf("%s: (-want +got):\n%s", tt.text, diff)
		}
	}
}

func TestParameterShape(t *testing.T) {
	fails(t, `(lambda (a &rest) a)`, failure.ErrArityOrShape)
	fails(t, `(lambda (&rest a b) a)`, failure.ErrArityOrShape)
	fails(t, `(lambda (&rest &rest) 1)`, failure.ErrArityOrShape)
	fails(t, `(defmacro m (a &rest &rest) 1)`, failure.ErrArityOrShape)
	fails(t, `(lambda ((a)) a)`, failure.ErrArityOrShape)
	fails(t, `(lambda x x)`, failure.ErrArityOrShape)
	fails(t, `(lambda)`, failure.ErrArityOrShape)
}

func TestSpecialFormLaziness(t *testing.T) {
	tests := []struct{ text, want string }{
		{`(if false (undefined-fn) 7)`, `7`},
		{`(if true 7 (undefined-fn))`, `7`},
		{`(if false 7)`, `null`},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, evaluate(t, tt.text)); diff != "" {
			t.Errorf("%s: (-want +got):\n%s", tt.text, diff)
		}
	}
}

func TestTruthiness(t *testing.T) {
	tests := []struct{ text, want string }{
		{`(if (list) 1 2)`, `1`},
		{`(if "" 1 2)`, `2`},
		{`(if "x" 1 2)`, `1`},
		{`(if 0 1 2)`, `2`},
		{`(if null 1 2)`, `2`},
		{`(if undefined 1 2)`, `2`},
		{`(if + 1 2)`, `1`},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, evaluate(t, tt.text)); diff != "" {
			t.Errorf("%s: (-want +got):\n%s", tt.text, diff)
		}
	}
}

func TestMacro(t *testing.T) {
	tests := []struct{ text, want string }{
		{`(defmacro m () (list '+ 1 2)) (m)`, `3`},
		{`(defmacro swap (a b) (list b a)) (swap 1 -)`, `-1`},
		{`(defmacro m () (list '= 'y 5)) (m) y`, `5`},
		{`(defmacro m () 1)`, `null`},
		{`(defmacro m (x) (if (== x 'a) 1 2)) (m a)`, `1`},
		{`(defmacro m (x) (if (== x 'a) 1 2)) (m b)`, `2`},
		{`(defmacro m (x) (list '+ 1 (if (== (car x) 'b) 10 20))) (m (b c))`, `11`},
		{`(defmacro m (x) (if (== x "a") 1 2)) (m a)`, `1`},
		{`(defmacro m (x y) (if (< x y) 'true 'false)) (m a b)`, `true`},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, evaluate(t, tt.text)); diff != "" {
			t.Errorf("%s: (-want +got):\n%s", tt.text, diff)
		}
	}
}

func TestAssignOrDefine(t *testing.T) {
	tests := []struct{ text, want string }{
		{`(= x 1)`, `undefined`},
		{`(= x 1) (= f (lambda () (= x 2) x)) (f)`, `2`},
		{`(= x 1) (= f (lambda () (= x 2))) (f) x`, `1`},
		{`(= x 1) (= f (lambda () (set! x 2))) (f) x`, `2`},
		{`(set! x 4)`, `4`},
		{`(set! x 4) x`, `4`},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, evaluate(t, tt.text)); diff != "" {
			t.Errorf("%s: (-want +got):\n%s", tt.text, diff)
		}
	}

	// With nothing to mutate, set! binds in the innermost scope.
	fails(t, `(= f (lambda () (set! z 3))) (f) z`, failure.ErrUndefinedSymbol)
}

func TestClosures(t *testing.T) {
	text := `
(= counter (lambda ()
  (= n 0)
  (lambda () (set! n (+ n 1)))))
(= a (counter))
(= b (counter))
(a)
(a)
(b)
(list (a) (b))
`
	if diff := cmp.Diff(`(3 2)`, evaluate(t, text)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLexicalScope(t *testing.T) {
	text := `
(= x 1)
(= get (lambda () x))
(= shadow (lambda (x) (get)))
(shadow 2)
`
	if diff := cmp.Diff(`1`, evaluate(t, text)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestErrors(t *testing.T) {
	fails(t, `nope`, failure.ErrUndefinedSymbol)
	fails(t, `(nope 1)`, failure.ErrUndefinedForm)
	fails(t, `(1 2)`, failure.ErrNotProcedure)
	fails(t, `(= x 1) (x)`, failure.ErrNotProcedure)
	fails(t, `1abc`, failure.ErrMalformedLiteral)
	fails(t, `(+ 1`, failure.ErrUnterminatedForm)
	fails(t, `)`, failure.ErrUnexpectedClose)
	fails(t, `(if)`, failure.ErrArityOrShape)
	fails(t, `(if 1 2 3 4)`, failure.ErrArityOrShape)
	fails(t, `(car 1)`, failure.ErrWrongType)
	fails(t, `(+ 1 (list))`, failure.ErrWrongType)
	fails(t, `(< 1 "a")`, failure.ErrWrongType)
	fails(t, `(= (x) 2)`, failure.ErrArityOrShape)
}

func TestDepthLimit(t *testing.T) {
	f := setup(nil)
	f.task.SetDepth(100)

	_, err := f.run(`(= f (lambda (n) (f n))) (f 1)`)
	if !errors.Is(err, failure.ErrStackExhausted) {
		t.Fatalf("expected %v, got %v", failure.ErrStackExhausted, err)
	}

	// The depth counter unwinds after a failure.
	v, err := f.run(`(+ 1 2)`)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(`3`, literal.String(v)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestPuts(t *testing.T) {
	f := setup(nil)

	v, err := f.run(`(puts "hello" 3 (list 1 "a"))`)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff("hello 3 (1 \"a\")\n", f.output.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(`undefined`, literal.String(v)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestHost(t *testing.T) {
	f := setup(nil)

	var passed []cell.T

	f.task.SetHost("answer", func(args []cell.T) (cell.T, error) {
		passed = args

		return num.New(42), nil
	})

	v, err := f.run(`(js "answer" 1 2)`)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(`42`, literal.String(v)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	if len(passed) != 2 {
		t.Errorf("expected 2 arguments, got %d", len(passed))
	}

	v, err = f.run(`(= inc (host "(lambda (n) (+ n 1))")) (inc 1)`)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(`2`, literal.String(v)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestGensym(t *testing.T) {
	v := evaluate(t, `(gensym "tmp")`)
	if !strings.HasPrefix(v, `"tmp-`) {
		t.Errorf("expected a tmp- prefix, got %s", v)
	}

	if diff := cmp.Diff(`false`, evaluate(t, `(== (gensym) (gensym))`)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestTracing(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	f := setup(zap.New(core).Sugar())

	if _, err := f.run(`(+ 1 2)`); err != nil {
		t.Fatal(err)
	}

	if logs.Len() != 0 {
		t.Fatalf("expected no entries while debug is off, got %d", logs.Len())
	}

	f.task.SetDebug(true)

	if _, err := f.run(`(+ 1 2) (debug "x")`); err != nil {
		t.Fatal(err)
	}

	funcalls := logs.FilterMessage("funcall").AllUntimed()
	if len(funcalls) != 2 {
		t.Fatalf("expected 2 funcall entries, got %d", len(funcalls))
	}

	ctx := funcalls[0].ContextMap()
	if diff := cmp.Diff(map[string]interface{}{"name": "+", "args": "1 2"}, ctx); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	if logs.FilterMessage("result").Len() != 2 {
		t.Errorf("expected 2 result entries")
	}

	if logs.FilterMessage("debug").Len() != 1 {
		t.Errorf("expected 1 debug entry")
	}
}
