// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/michaelmacinnis/lox/internal/ast"
	"github.com/michaelmacinnis/lox/internal/common/interface/cell"
	"github.com/michaelmacinnis/lox/internal/common/interface/truth"
	"github.com/michaelmacinnis/lox/internal/common/struct/slot"
	"github.com/michaelmacinnis/lox/internal/common/struct/token"
	"github.com/michaelmacinnis/lox/internal/common/type/boolean"
	"github.com/michaelmacinnis/lox/internal/common/type/null"
	"github.com/michaelmacinnis/lox/internal/common/type/num"
	"github.com/michaelmacinnis/lox/internal/common/type/str"
	"github.com/michaelmacinnis/lox/internal/common/validate"
	"github.com/michaelmacinnis/lox/internal/diag"
)

func (s *engine) evaluate(e ast.Expr) (cell.I, error) {
	switch e := e.(type) {
	case *ast.Assign:
		v, err := s.evaluate(e.Value)
		if err != nil {
			return nil, err
		}

		return v, s.assign(e, e.Name, v)

	case *ast.Binary:
		l, err := s.evaluate(e.Left)
		if err != nil {
			return nil, err
		}

		r, err := s.evaluate(e.Right)
		if err != nil {
			return nil, err
		}

		return binary(e.Operator, l, r)

	case *ast.Call:
		return s.call(e)

	case *ast.Grouping:
		return s.evaluate(e.Expression)

	case *ast.Literal:
		return e.Value, nil

	case *ast.Logical:
		l, err := s.evaluate(e.Left)
		if err != nil {
			return nil, err
		}

		if truth.Value(l) == e.Operator.Is(token.Or) {
			return l, nil
		}

		return s.evaluate(e.Right)

	case *ast.Unary:
		r, err := s.evaluate(e.Right)
		if err != nil {
			return nil, err
		}

		if e.Operator.Is('!') {
			return boolean.Bool(!truth.Value(r)), nil
		}

		if !num.Is(r) {
			return nil, fault(diag.NonNumericOperand, e.Operator, "operand must be a number")
		}

		return num.New(-num.To(r).Float64()), nil

	case *ast.Variable:
		if sl := s.resolve(e, e.Name); sl != nil {
			return sl.Get(), nil
		}

		return nil, undefined(e.Name)

	case *ast.Get:
		return nil, fault(diag.Unsupported, e.Name, "property access is not supported")

	case *ast.Self:
		return nil, fault(diag.Unsupported, e.Keyword, "'self' is not supported")

	case *ast.Set:
		return nil, fault(diag.Unsupported, e.Name, "property assignment is not supported")

	case *ast.Super:
		return nil, fault(diag.Unsupported, e.Keyword, "'super' is not supported")
	}

	panic("unexpected expression")
}

func (s *engine) assign(e ast.Expr, name *token.T, v cell.I) error {
	sl := s.resolve(e, name)
	if sl == nil {
		return undefined(name)
	}

	if !sl.Set(v) {
		return fault(diag.ImmutableAssignment, name,
			"can't assign to immutable variable '%s'", name.Value())
	}

	return nil
}

func (s *engine) call(e *ast.Call) (cell.I, error) {
	callee, err := s.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]cell.I, 0, len(e.Arguments))

	for _, a := range e.Arguments {
		v, err := s.evaluate(a)
		if err != nil {
			return nil, err
		}

		args = append(args, v)
	}

	f, ok := callee.(Callable)
	if !ok {
		return nil, fault(diag.NotCallable, e.Paren, "can only call functions")
	}

	if err := validate.Fixed(args, f.Arity()); err != nil {
		return nil, fault(diag.WrongArity, e.Paren, "%s", err.Error())
	}

	if s.depth >= s.maxDepth {
		return nil, &Fatal{Kind: diag.StackOverflow, Message: "stack overflow", Token: e.Paren}
	}

	s.depth++

	defer func() {
		s.depth--
	}()

	return f.Call(s, args)
}

// resolve finds the slot for the reference e, using the resolution table
// when e is local and the global env otherwise.
func (s *engine) resolve(e ast.Expr, name *token.T) *slot.T {
	if d, ok := s.locals[e]; ok {
		return s.current.Ancestor(d).Lookup(name.Value())
	}

	return s.globals.Lookup(name.Value())
}

func binary(operator *token.T, l, r cell.I) (cell.I, error) {
	switch operator.Class() {
	case token.EqualEqual:
		return boolean.Bool(equal(l, r)), nil
	case token.BangEqual:
		return boolean.Bool(!equal(l, r)), nil
	case '+':
		if str.Is(l) && str.Is(r) {
			return str.New(str.To(l).String() + str.To(r).String()), nil
		}

		if !num.Is(l) || !num.Is(r) {
			return nil, fault(diag.NonNumericOperand, operator,
				"operands must be two numbers or two strings")
		}
	}

	if !num.Is(l) || !num.Is(r) {
		return nil, fault(diag.NonNumericOperand, operator, "operands must be numbers")
	}

	a := num.To(l).Float64()
	b := num.To(r).Float64()

	switch operator.Class() {
	case '+':
		return num.New(a + b), nil
	case '-':
		return num.New(a - b), nil
	case '*':
		return num.New(a * b), nil
	case '/':
		if a == 0 || b == 0 {
			return nil, fault(diag.DivisionByZero, operator, "division by zero")
		}

		return num.New(a / b), nil
	case '>':
		return boolean.Bool(a > b), nil
	case token.GreaterEqual:
		return boolean.Bool(a >= b), nil
	case '<':
		return boolean.Bool(a < b), nil
	case token.LessEqual:
		return boolean.Bool(a <= b), nil
	}

	panic("unexpected operator " + operator.Value())
}

// equal compares values. Nil only equals nil and values of different kinds
// are never equal.
func equal(l, r cell.I) bool {
	if null.Is(l) {
		return null.Is(r)
	}

	return l.Equal(r)
}

func undefined(name *token.T) error {
	return fault(diag.UndefinedVariable, name, "undefined variable '%s'", name.Value())
}
