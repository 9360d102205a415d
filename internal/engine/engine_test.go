// Released under an MIT license. See LICENSE.

package engine

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/michaelmacinnis/lox/internal/common/type/num"
	"github.com/michaelmacinnis/lox/internal/diag"
	"github.com/michaelmacinnis/lox/internal/reader"
	"github.com/michaelmacinnis/lox/internal/system/clock"
)

type harness struct {
	errs    *bytes.Buffer
	out     *bytes.Buffer
	session *T
	t       *testing.T
}

func setup(t *testing.T, options ...Option) *harness {
	h := &harness{
		errs: &bytes.Buffer{},
		out:  &bytes.Buffer{},
		t:    t,
	}

	options = append([]Option{
		WithLog(diag.NewLog(h.errs)),
		WithOutput(h.out),
		WithClock(func() float64 { return 42 }),
	}, options...)

	h.session = New(options...)

	return h
}

// run executes s and checks its status and output.
func (h *harness) run(s string, status Status, output string) {
	h.t.Helper()

	h.out.Reset()
	h.errs.Reset()

	if got := h.session.Run("test", s); got != status {
		h.t.Fatalf("running %q: got status %d, want %d\n%s", s, got, status, h.errs.String())
	}

	if h.out.String() != output {
		h.t.Fatalf("running %q: got output %q, want %q", s, h.out.String(), output)
	}
}

// kind returns the kind of the last diagnostic reported.
func (h *harness) kind() diag.Kind {
	h.t.Helper()

	all := h.session.Log().All()
	if len(all) == 0 {
		h.t.Fatal("expected a diagnostic")
	}

	return all[len(all)-1].Kind
}

func TestArithmetic(t *testing.T) {
	h := setup(t)

	h.run("print 1 + 2 * 3;", Success, "7\n")
	h.run("print (1 + 2) * 3;", Success, "9\n")
	h.run("print 6 / 3;", Success, "2\n")
	h.run("print 7 / 2;", Success, "3.5\n")
	h.run("print -(2 - 5);", Success, "3\n")
	h.run("print 0.1 + 0.2;", Success, "0.30000000000000004\n")
}

func TestStrings(t *testing.T) {
	h := setup(t)

	h.run(`print "foo" + "bar";`, Success, "foobar\n")

	h.run(`print "foo" + 1;`, RuntimeError, "")

	if h.kind() != diag.NonNumericOperand {
		t.Fatalf("expected a non-numeric operand error, got %v", h.kind())
	}

	h.run(`print "a" < "b";`, RuntimeError, "")
	h.run(`print -"a";`, RuntimeError, "")
}

func TestDivisionByZero(t *testing.T) {
	h := setup(t)

	for _, s := range []string{"print 1 / 0;", "print 0 / 5;"} {
		h.run(s, RuntimeError, "")

		if h.kind() != diag.DivisionByZero {
			t.Fatalf("%s: expected division by zero, got %v", s, h.kind())
		}
	}

	want := "test:1:9: runtime error at '/': division by zero\n"
	if h.errs.String() != want {
		t.Fatalf("got %q, want %q", h.errs.String(), want)
	}
}

func TestTruthiness(t *testing.T) {
	h := setup(t)

	h.run(`
if nil do: print "t"; else: print "f";
if false do: print "t"; else: print "f";
if 0 do: print "t"; else: print "f";
if "" do: print "t"; else: print "f";
if true do: print "t"; else: print "f";
print !nil;
print !0;
`, Success, "f\nf\nt\nt\nt\ntrue\nfalse\n")
}

func TestEquality(t *testing.T) {
	h := setup(t)

	h.run(`
print nil == nil;
print nil == false;
print 1 == 1;
print 1 == "1";
print "a" == "a";
print true != false;
print clock == clock;
print clock == println;
`, Success, "true\nfalse\ntrue\nfalse\ntrue\ntrue\ntrue\nfalse\n")
}

func TestLogical(t *testing.T) {
	h := setup(t)

	h.run(`
print nil or "default";
print "first" or "second";
print nil and "unreached";
print 1 and 2;
`, Success, "default\nfirst\nnil\n2\n")

	// The right operand is not evaluated when the left decides.
	h.run("print true or undefined; print false and undefined;", Success, "true\nfalse\n")
}

func TestShadowing(t *testing.T) {
	h := setup(t)

	h.run("let mut a = 1; { let mut a = 2; a = 3; } print a;", Success, "1\n")
}

func TestClosuresCaptureByReference(t *testing.T) {
	h := setup(t)

	h.run(`
fn make() {
	let mut i = 0;
	fn inc() {
		i = i + 1;
		print i;
	}
	return inc;
}
let counter = make();
counter();
counter();
`, Success, "1\n2\n")
}

func TestClosuresAreLexical(t *testing.T) {
	h := setup(t)

	h.run(`
let a = "global";
{
	fn show() {
		print a;
	}
	show();
	let a = "block";
	show();
}
`, Success, "global\nglobal\n")
}

func TestSelfReferentialInitializer(t *testing.T) {
	h := setup(t)

	h.run(`print "before"; { let a = a; }`, StaticError, "")

	if h.kind() != diag.SelfReference {
		t.Fatalf("expected a self reference error, got %v", h.kind())
	}
}

func TestMutability(t *testing.T) {
	h := setup(t)

	h.run("let a = 1; a = 2;", RuntimeError, "")

	if h.kind() != diag.ImmutableAssignment {
		t.Fatalf("expected an immutable assignment error, got %v", h.kind())
	}

	h.run("let mut b = 1; b = 2; print b;", Success, "2\n")
	h.run("let c; c = 1;", RuntimeError, "")
	h.run("fn f(p) { p = 1; } f(0);", RuntimeError, "")
	h.run("clock = 1;", RuntimeError, "")
}

func TestUndefinedVariable(t *testing.T) {
	h := setup(t)

	h.run("print missing;", RuntimeError, "")

	if h.kind() != diag.UndefinedVariable {
		t.Fatalf("expected an undefined variable error, got %v", h.kind())
	}

	h.run("missing = 1;", RuntimeError, "")

	want := "test:1:1: runtime error at 'missing': undefined variable 'missing'\n"
	if h.errs.String() != want {
		t.Fatalf("got %q, want %q", h.errs.String(), want)
	}
}

func TestArity(t *testing.T) {
	h := setup(t)

	h.run(`fn f() { print "called"; } f(1);`, RuntimeError, "")

	if h.kind() != diag.WrongArity {
		t.Fatalf("expected a wrong arity error, got %v", h.kind())
	}

	want := "test:1:31: runtime error at ')': expected 0 arguments but got 1\n"
	if h.errs.String() != want {
		t.Fatalf("got %q, want %q", h.errs.String(), want)
	}

	h.run("println();", RuntimeError, "")
}

func TestNotCallable(t *testing.T) {
	h := setup(t)

	h.run(`"text"();`, RuntimeError, "")

	if h.kind() != diag.NotCallable {
		t.Fatalf("expected a not callable error, got %v", h.kind())
	}
}

func TestArgumentsEvaluateLeftToRight(t *testing.T) {
	h := setup(t)

	h.run(`
fn trace(v) { print v; return v; }
fn add(a, b, c) { return a + b + c; }
print add(trace(1), trace(2), trace(3));
`, Success, "1\n2\n3\n6\n")
}

func TestReturn(t *testing.T) {
	h := setup(t)

	h.run(`
fn first(n) {
	let mut i = 0;
	while true {
		if i == n {
			return i;
		}
		i++;
	}
}
fn nothing() { }
fn early() { return; print "unreached"; }
print first(3);
print nothing();
print early();
`, Success, "3\nnil\nnil\n")
}

func TestRecursion(t *testing.T) {
	h := setup(t)

	h.run(`
fn fib(n) {
	if n < 2 do: return n;
	return fib(n - 1) + fib(n - 2);
}
print fib(15);
`, Success, "610\n")
}

func TestLoops(t *testing.T) {
	h := setup(t)

	h.run("for (let mut i = 0; i < 3; i++) print i;", Success, "0\n1\n2\n")
	h.run("let mut j = 3; while j > 0 j--; print j;", Success, "0\n")
}

func TestRuntimeErrorStopsRun(t *testing.T) {
	h := setup(t)

	h.run(`print "a"; print 1 / 0; print "b";`, RuntimeError, "a\n")

	// The session is still usable and its env was restored.
	h.run(`fn f() { let x = 1; return x / 0; } f();`, RuntimeError, "")
	h.run(`let y = 2; print y;`, Success, "2\n")

	if h.session.current != h.session.Globals() {
		t.Fatal("expected the current env to be restored to the global env")
	}
}

func TestStaticErrorsSuppressExecution(t *testing.T) {
	h := setup(t)

	h.run(`print "side effect"; print (;`, StaticError, "")
	h.run(`print "side effect"; return;`, StaticError, "")
	h.run(`print "side effect"; #`, StaticError, "")
}

func TestStackOverflow(t *testing.T) {
	h := setup(t, WithMaxDepth(100))

	h.run("fn f(n) { return f(n + 1); } f(0);", FatalError, "")

	if h.kind() != diag.StackOverflow {
		t.Fatalf("expected a stack overflow, got %v", h.kind())
	}

	if !strings.Contains(h.errs.String(), "fatal error") {
		t.Fatalf("expected a fatal error, got %q", h.errs.String())
	}

	if h.session.depth != 0 {
		t.Fatalf("expected call depth to unwind, got %d", h.session.depth)
	}

	h.run("fn g(n) { if n == 0 do: return 0; return g(n - 1); } print g(99);", Success, "0\n")
}

func TestNatives(t *testing.T) {
	h := setup(t)

	h.run("println(1); println(nil); println(println);", Success, "1\nnil\n<native code>\n")
	h.run("print clock();", Success, "42\n")
	h.run("fn f() { } print f;", Success, "<function>\n")

	h.run("print MAX_NUMBER;", Success, num.To(num.New(math.MaxFloat64)).String()+"\n")
	h.run("MAX_NUMBER = 1;", RuntimeError, "")
}

func TestClockAdvances(t *testing.T) {
	h := setup(t, WithClock(clock.Seconds))

	h.run("let a = clock(); let b = clock(); print b >= a; print a > 0;", Success, "true\ntrue\n")
	h.run("print clock;", Success, "<native code>\n")
}

func TestScope(t *testing.T) {
	h := setup(t)

	h.run(`
fn f(b, a) {
	let c = true;
	scope(1);
}
f(1, "two");
`, Success, "[DEBUG] [0] a = two\n[DEBUG] [0] b = 1\n[DEBUG] [0] c = true\n")

	h.run(`{ let x = 1; { let y = 2; scope(2); } }`, Success,
		"[DEBUG] [0] y = 2\n[DEBUG] [1] x = 1\n")
}

func TestInteractiveDisplay(t *testing.T) {
	h := setup(t, Interactive(true))

	h.run("1 + 1;", Success, "2\n")
	h.run("nil;", Success, "")
	h.run(`let a = "x"; a;`, Success, "x\n")
	h.run("print 3;", Success, "3\n")

	quiet := setup(t, Interactive(true), WithDisplay(false))
	quiet.run("1 + 1;", Success, "")

	batch := setup(t)
	batch.run("1 + 1;", Success, "")
}

func TestInteractiveKeepsResolution(t *testing.T) {
	h := setup(t, Interactive(true))

	h.run("fn make() { let mut n = 0; fn next() { n++; return n; } return next; }", Success, "")
	h.run("let next = make();", Success, "")
	h.run("next();", Success, "1\n")
	h.run("next();", Success, "2\n")
}

func TestDeterminism(t *testing.T) {
	program := `
fn fib(n) { if n < 2 do: return n; return fib(n - 1) + fib(n - 2); }
for (let mut i = 0; i < 10; i++) println(fib(i));
print "done";
`

	a := setup(t)
	b := setup(t)

	if a.session.Run("test", program) != Success || b.session.Run("test", program) != Success {
		t.Fatalf("unexpected failure:\n%s%s", a.errs.String(), b.errs.String())
	}

	if a.out.String() != b.out.String() || a.out.Len() == 0 {
		t.Fatalf("outputs differ:\n%s\n%s", a.out.String(), b.out.String())
	}
}

func TestLogHoldsLastRun(t *testing.T) {
	h := setup(t)

	h.run("print missing;", RuntimeError, "")
	h.run("print 1 / 0;", RuntimeError, "")

	all := h.session.Log().All()
	if len(all) != 1 || all[0].Kind != diag.DivisionByZero {
		t.Fatalf("expected only the last run's diagnostic, got %v", all)
	}

	h.run("print 1;", Success, "1\n")

	if h.session.Log().Count() != 0 {
		t.Fatalf("expected a clean log after a clean run, got %v", h.session.Log().All())
	}
}

func TestNilLog(t *testing.T) {
	out := &bytes.Buffer{}
	s := New(WithLog(nil), WithOutput(out))

	if s.Run("test", "print x;") != RuntimeError || s.Run("test", "print (;") != StaticError {
		t.Fatal("a session without a log should still report its status")
	}

	if s.Run("test", "print 2;") != Success || out.String() != "2\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	a := setup(t)
	b := setup(t)

	a.run("let shared = 1;", Success, "")
	b.run("print shared;", RuntimeError, "")
}

func TestUnsupportedAtRuntime(t *testing.T) {
	// The resolver rejects these, but the evaluator must not crash if asked.
	h := setup(t)

	program := reader.Read("test", "a.b;", h.session.Log())

	err := h.session.Interpret(program)

	var e *Error
	if !errors.As(err, &e) || e.Kind != diag.Unsupported {
		t.Fatalf("expected an unsupported error, got %v", err)
	}
}

func TestErrorStrings(t *testing.T) {
	h := setup(t)

	h.run("print 1 / 0;", RuntimeError, "")

	d := h.session.Log().All()[0]

	e := &Error{Kind: d.Kind, Message: d.Message}
	if e.Error() != "runtime error: division by zero" {
		t.Fatalf("unexpected error text %q", e.Error())
	}

	f := &Fatal{Kind: diag.StackOverflow, Message: "stack overflow"}
	if f.Error() != "fatal error: stack overflow" {
		t.Fatalf("unexpected fault text %q", f.Error())
	}
}
