// Released under an MIT license. See LICENSE.

// Package resolver binds each variable reference to the scope that declares it.
//
// The resolver walks a program once, before it is evaluated, and records
// how many scopes separate each local reference from its declaration.
// References that are not found in any enclosing scope are left out of the
// table and looked up in the global environment at run time.
package resolver

import (
	"github.com/michaelmacinnis/lox/internal/ast"
	"github.com/michaelmacinnis/lox/internal/common/struct/token"
	"github.com/michaelmacinnis/lox/internal/diag"
)

// Locals maps a reference (*ast.Variable or *ast.Assign) to its scope distance.
type Locals map[ast.Expr]int

// Merge copies every entry in other into l.
func (l Locals) Merge(other Locals) {
	for k, v := range other {
		l[k] = v
	}
}

// T holds the state of the resolver.
type T struct {
	functions int               // Depth of function bodies being resolved.
	locals    Locals            // Distances found so far.
	log       *diag.Log         // Where problems are reported.
	scopes    []map[string]bool // Innermost last. True once a name is defined.
}

type resolver = T

// New creates a new resolver that reports problems to log.
func New(log *diag.Log) *T {
	return &T{
		locals: Locals{},
		log:    log,
	}
}

// Resolve is a convenience function that resolves program in one step.
func Resolve(program []ast.Stmt, log *diag.Log) Locals {
	r := New(log)

	r.Statements(program)

	return r.Locals()
}

// Locals returns the resolution table built so far.
func (r *resolver) Locals() Locals {
	return r.locals
}

// Statements resolves each statement in ss.
func (r *resolver) Statements(ss []ast.Stmt) {
	for _, s := range ss {
		r.statement(s)
	}
}

func (r *resolver) begin() {
	r.scopes = append(r.scopes, map[string]bool{})
}

func (r *resolver) declare(name *token.T) {
	if len(r.scopes) == 0 {
		return
	}

	scope := r.scopes[len(r.scopes)-1]

	if _, ok := scope[name.Value()]; ok {
		r.error(diag.DuplicateDeclaration, name,
			"a variable with this name is already declared in this scope")
	}

	scope[name.Value()] = false
}

func (r *resolver) define(name *token.T) {
	if len(r.scopes) == 0 {
		return
	}

	r.scopes[len(r.scopes)-1][name.Value()] = true
}

func (r *resolver) end() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *resolver) error(k diag.Kind, t *token.T, message string) {
	r.log.Report(diag.At(k, t, message))
}

func (r *resolver) expression(e ast.Expr) {
	switch e := e.(type) {
	case *ast.Assign:
		r.expression(e.Value)
		r.local(e, e.Name)

	case *ast.Binary:
		r.expression(e.Left)
		r.expression(e.Right)

	case *ast.Call:
		r.expression(e.Callee)

		for _, a := range e.Arguments {
			r.expression(a)
		}

	case *ast.Get:
		r.error(diag.Unsupported, e.Name, "property access is not supported")
		r.expression(e.Object)

	case *ast.Grouping:
		r.expression(e.Expression)

	case *ast.Literal:

	case *ast.Logical:
		r.expression(e.Left)
		r.expression(e.Right)

	case *ast.Self:
		r.error(diag.Unsupported, e.Keyword, "'self' is not supported")

	case *ast.Set:
		r.error(diag.Unsupported, e.Name, "property assignment is not supported")
		r.expression(e.Value)
		r.expression(e.Object)

	case *ast.Super:
		r.error(diag.Unsupported, e.Keyword, "'super' is not supported")

	case *ast.Unary:
		r.expression(e.Right)

	case *ast.Variable:
		if len(r.scopes) > 0 {
			defined, ok := r.scopes[len(r.scopes)-1][e.Name.Value()]
			if ok && !defined {
				r.error(diag.SelfReference, e.Name,
					"can't read local variable in its own initializer")
			}
		}

		r.local(e, e.Name)
	}
}

func (r *resolver) function(f *ast.Function) {
	r.functions++

	r.begin()

	for _, p := range f.Params {
		r.declare(p)
		r.define(p)
	}

	r.Statements(f.Body)

	r.end()

	r.functions--
}

func (r *resolver) local(e ast.Expr, name *token.T) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Value()]; ok {
			r.locals[e] = len(r.scopes) - 1 - i

			return
		}
	}
}

func (r *resolver) statement(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.Block:
		r.begin()
		r.Statements(s.Statements)
		r.end()

	case *ast.Class:
		r.error(diag.Unsupported, s.Name, "classes are not supported")

	case *ast.ExpressionStmt:
		r.expression(s.Expression)

	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name)

		r.function(s)

	case *ast.If:
		r.expression(s.Condition)
		r.statement(s.Then)

		if s.Else != nil {
			r.statement(s.Else)
		}

	case *ast.Let:
		r.declare(s.Name)

		if s.Initializer != nil {
			r.expression(s.Initializer)
		}

		r.define(s.Name)

	case *ast.Print:
		r.expression(s.Expression)

	case *ast.Return:
		if r.functions == 0 {
			r.error(diag.ReturnOutsideFunction, s.Keyword, "can't return from top-level code")
		}

		if s.Value != nil {
			r.expression(s.Value)
		}

	case *ast.While:
		r.expression(s.Condition)
		r.statement(s.Body)
	}
}
