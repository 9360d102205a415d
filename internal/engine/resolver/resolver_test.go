// Released under an MIT license. See LICENSE.

package resolver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/michaelmacinnis/lox/internal/ast"
	"github.com/michaelmacinnis/lox/internal/diag"
	"github.com/michaelmacinnis/lox/internal/reader"
)

func resolve(t *testing.T, s string) ([]ast.Stmt, Locals, string) {
	t.Helper()

	out := &bytes.Buffer{}
	log := diag.NewLog(out)

	program := reader.Read("test", s, log)
	if log.Count() != 0 {
		t.Fatalf("unexpected syntax errors:\n%s", out.String())
	}

	return program, Resolve(program, log), out.String()
}

// distances returns the distance of each resolved variable reference in
// source order, or -1 for globals.
func distances(program []ast.Stmt, locals Locals) map[string][]int {
	found := map[string][]int{}

	record := func(e ast.Expr, name string) {
		d, ok := locals[e]
		if !ok {
			d = -1
		}

		found[name] = append(found[name], d)
	}

	var expression func(ast.Expr)
	var statement func(ast.Stmt)

	expression = func(e ast.Expr) {
		switch e := e.(type) {
		case *ast.Assign:
			expression(e.Value)
			record(e, "="+e.Name.Value())
		case *ast.Binary:
			expression(e.Left)
			expression(e.Right)
		case *ast.Call:
			expression(e.Callee)

			for _, a := range e.Arguments {
				expression(a)
			}
		case *ast.Grouping:
			expression(e.Expression)
		case *ast.Logical:
			expression(e.Left)
			expression(e.Right)
		case *ast.Unary:
			expression(e.Right)
		case *ast.Variable:
			record(e, e.Name.Value())
		}
	}

	statement = func(s ast.Stmt) {
		switch s := s.(type) {
		case *ast.Block:
			for _, st := range s.Statements {
				statement(st)
			}
		case *ast.ExpressionStmt:
			expression(s.Expression)
		case *ast.Function:
			for _, st := range s.Body {
				statement(st)
			}
		case *ast.If:
			expression(s.Condition)
			statement(s.Then)

			if s.Else != nil {
				statement(s.Else)
			}
		case *ast.Let:
			if s.Initializer != nil {
				expression(s.Initializer)
			}
		case *ast.Print:
			expression(s.Expression)
		case *ast.Return:
			if s.Value != nil {
				expression(s.Value)
			}
		case *ast.While:
			expression(s.Condition)
			statement(s.Body)
		}
	}

	for _, s := range program {
		statement(s)
	}

	return found
}

func same(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func TestDistances(t *testing.T) {
	program, locals, out := resolve(t, `
let g = 1;
{
	let mut a = g;
	{
		let b = a;
		a = b;
	}
	fn f(p) {
		return p + a + g;
	}
}
print g;
`)
	if out != "" {
		t.Fatalf("unexpected diagnostics:\n%s", out)
	}

	want := map[string][]int{
		"g":  {-1, -1, -1},
		"a":  {1, 1},
		"b":  {0},
		"=a": {1},
		"p":  {0},
	}

	got := distances(program, locals)

	for k, v := range want {
		if !same(got[k], v) {
			t.Errorf("%s: got %v, want %v", k, got[k], v)
		}
	}
}

func TestIdenticalReferencesAreDistinct(t *testing.T) {
	program, locals, _ := resolve(t, "{ let x = 1; print x; { print x; } }")

	got := distances(program, locals)
	if !same(got["x"], []int{0, 1}) {
		t.Fatalf("got %v, want [0 1]", got["x"])
	}
}

func TestTopLevelIsGlobal(t *testing.T) {
	_, locals, out := resolve(t, "fn f() { return g(); } fn g() { return 1; } let a = 1; let a = 2;")
	if out != "" {
		t.Fatalf("top-level redeclaration and forward references are allowed:\n%s", out)
	}

	if len(locals) != 0 {
		t.Fatalf("expected no local references, got %d", len(locals))
	}
}

func TestRecursiveLocalFunction(t *testing.T) {
	program, locals, out := resolve(t, "{ fn f(n) { return f(n); } }")
	if out != "" {
		t.Fatalf("unexpected diagnostics:\n%s", out)
	}

	got := distances(program, locals)
	if !same(got["f"], []int{1}) {
		t.Fatalf("got %v, want [1]", got["f"])
	}
}

func TestProblems(t *testing.T) {
	tests := []struct {
		source   string
		expected []string
	}{
		{
			"{ let a = a; }",
			[]string{"test:1:11: error at 'a': can't read local variable in its own initializer"},
		},
		{
			"{ let a = 1; let a = 2; }",
			[]string{"test:1:18: error at 'a': a variable with this name is already declared in this scope"},
		},
		{
			"fn f(a, a) { }",
			[]string{"test:1:9: error at 'a': a variable with this name is already declared in this scope"},
		},
		{
			"return 1;",
			[]string{"test:1:1: error at 'return': can't return from top-level code"},
		},
		{
			"{ let a = a; } return;",
			[]string{
				"test:1:11: error at 'a': can't read local variable in its own initializer",
				"test:1:16: error at 'return': can't return from top-level code",
			},
		},
		{
			"class A { }",
			[]string{"test:1:7: error at 'A': classes are not supported"},
		},
		{
			"print self;",
			[]string{"test:1:7: error at 'self': 'self' is not supported"},
		},
		{
			"a.b = 1;",
			[]string{"test:1:3: error at 'b': property assignment is not supported"},
		},
	}

	for _, tc := range tests {
		_, _, out := resolve(t, tc.source)

		want := strings.Join(tc.expected, "\n") + "\n"
		if out != want {
			t.Errorf("resolving %q:\nexpected %q\nactual   %q", tc.source, want, out)
		}
	}
}

func TestMerge(t *testing.T) {
	a := Locals{}
	b := Locals{&ast.Variable{}: 2}

	a.Merge(b)

	if len(a) != 1 {
		t.Fatalf("expected one entry after merging, got %d", len(a))
	}
}
