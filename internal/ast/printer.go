// Released under an MIT license. See LICENSE.

package ast

import (
	"strings"

	"github.com/michaelmacinnis/lox/internal/common/interface/literal"
)

// String returns a parenthesized, prefix representation of the node n,
// which must be an Expr or a Stmt. Useful for debugging and testing.
func String(n interface{}) string {
	var b strings.Builder

	switch n := n.(type) {
	case Expr:
		expression(&b, n)
	case Stmt:
		statement(&b, n)
	default:
		panic("not a syntax tree node")
	}

	return b.String()
}

func expression(b *strings.Builder, e Expr) {
	switch e := e.(type) {
	case *Assign:
		parenthesize(b, "= "+e.Name.Value(), e.Value)
	case *Binary:
		parenthesize(b, e.Operator.Value(), e.Left, e.Right)
	case *Call:
		parenthesize(b, "call", append([]Expr{e.Callee}, e.Arguments...)...)
	case *Get:
		parenthesize(b, "."+e.Name.Value(), e.Object)
	case *Grouping:
		parenthesize(b, "group", e.Expression)
	case *Literal:
		b.WriteString(literal.String(e.Value))
	case *Logical:
		parenthesize(b, e.Operator.Value(), e.Left, e.Right)
	case *Self:
		b.WriteString("self")
	case *Set:
		parenthesize(b, "= ."+e.Name.Value(), e.Object, e.Value)
	case *Super:
		b.WriteString("super." + e.Method.Value())
	case *Unary:
		parenthesize(b, e.Operator.Value(), e.Right)
	case *Variable:
		b.WriteString(e.Name.Value())
	}
}

func parenthesize(b *strings.Builder, head string, es ...Expr) {
	b.WriteString("(" + head)

	for _, e := range es {
		b.WriteByte(' ')
		expression(b, e)
	}

	b.WriteByte(')')
}

func statement(b *strings.Builder, s Stmt) {
	switch s := s.(type) {
	case *Block:
		b.WriteString("(block")
		statements(b, s.Statements)
		b.WriteByte(')')
	case *Class:
		b.WriteString("(class " + s.Name.Value())

		for _, m := range s.Methods {
			b.WriteByte(' ')
			statement(b, m)
		}

		b.WriteByte(')')
	case *ExpressionStmt:
		parenthesize(b, ";", s.Expression)
	case *Function:
		names := make([]string, len(s.Params))
		for i, p := range s.Params {
			names[i] = p.Value()
		}

		b.WriteString("(fn " + s.Name.Value() + " (" + strings.Join(names, " ") + ")")
		statements(b, s.Body)
		b.WriteByte(')')
	case *If:
		b.WriteString("(if ")
		expression(b, s.Condition)
		b.WriteByte(' ')
		statement(b, s.Then)

		if s.Else != nil {
			b.WriteByte(' ')
			statement(b, s.Else)
		}

		b.WriteByte(')')
	case *Let:
		head := "let "
		if s.Mutable {
			head += "mut "
		}

		if s.Initializer == nil {
			b.WriteString("(" + head + s.Name.Value() + ")")
		} else {
			parenthesize(b, head+s.Name.Value(), s.Initializer)
		}
	case *Print:
		parenthesize(b, "print", s.Expression)
	case *Return:
		if s.Value == nil {
			b.WriteString("(return)")
		} else {
			parenthesize(b, "return", s.Value)
		}
	case *While:
		b.WriteString("(while ")
		expression(b, s.Condition)
		b.WriteByte(' ')
		statement(b, s.Body)
		b.WriteByte(')')
	}
}

func statements(b *strings.Builder, ss []Stmt) {
	for _, s := range ss {
		b.WriteByte(' ')
		statement(b, s)
	}
}
