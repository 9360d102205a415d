// Released under an MIT license. See LICENSE.

// Package ast defines lox's syntax tree.
//
// There are two closed families of nodes, expressions and statements. Nodes
// are created once by the parser and never copied; the resolver's table is
// keyed by node pointer so two identical references are distinct entries.
package ast

import (
	"github.com/michaelmacinnis/lox/internal/common/interface/cell"
	"github.com/michaelmacinnis/lox/internal/common/struct/token"
)

// Expr is an expression node.
type Expr interface {
	expr()
}

// Stmt is a statement node.
type Stmt interface {
	stmt()
}

// Expressions.

// Assign is `name = value`.
type Assign struct {
	Name  *token.T
	Value Expr
}

// Binary is `left operator right` for arithmetic, comparison and equality.
type Binary struct {
	Left     Expr
	Operator *token.T
	Right    Expr
}

// Call is `callee(arguments...)`. Paren is the closing parenthesis.
type Call struct {
	Callee    Expr
	Paren     *token.T
	Arguments []Expr
}

// Get is `object.name`. Parsed but never evaluated.
type Get struct {
	Object Expr
	Name   *token.T
}

// Grouping is a parenthesized expression.
type Grouping struct {
	Expression Expr
}

// Literal is a nil, boolean, number or string constant.
type Literal struct {
	Value cell.I
}

// Logical is `left and right` or `left or right`.
type Logical struct {
	Left     Expr
	Operator *token.T
	Right    Expr
}

// Self is `self`. Parsed but never evaluated.
type Self struct {
	Keyword *token.T
}

// Set is `object.name = value`. Parsed but never evaluated.
type Set struct {
	Object Expr
	Name   *token.T
	Value  Expr
}

// Super is `super.method`. Parsed but never evaluated.
type Super struct {
	Keyword *token.T
	Method  *token.T
}

// Unary is `!right` or `-right`.
type Unary struct {
	Operator *token.T
	Right    Expr
}

// Variable is a reference to a name.
type Variable struct {
	Name *token.T
}

func (*Assign) expr()   {}
func (*Binary) expr()   {}
func (*Call) expr()     {}
func (*Get) expr()      {}
func (*Grouping) expr() {}
func (*Literal) expr()  {}
func (*Logical) expr()  {}
func (*Self) expr()     {}
func (*Set) expr()      {}
func (*Super) expr()    {}
func (*Unary) expr()    {}
func (*Variable) expr() {}

// Statements.

// Block is `{ statements... }`.
type Block struct {
	Statements []Stmt
}

// Class is `class Name { methods... }`. Parsed but never executed.
type Class struct {
	Name    *token.T
	Methods []*Function
}

// ExpressionStmt is an expression evaluated for its side effects.
type ExpressionStmt struct {
	Expression Expr
}

// Function is `fn name(params...) { body... }`.
type Function struct {
	Name   *token.T
	Params []*token.T
	Body   []Stmt
}

// If is either `if cond { ... } else { ... }` or `if cond do: ... else: ...`.
// Else is nil when there is no else branch.
type If struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

// Let is `let [mut] name [= initializer];`. Initializer may be nil.
type Let struct {
	Name        *token.T
	Mutable     bool
	Initializer Expr
}

// Print is `print expression;`.
type Print struct {
	Expression Expr
}

// Return is `return [value];`. Value may be nil.
type Return struct {
	Keyword *token.T
	Value   Expr
}

// While is `while condition body`. For loops are rewritten as while loops.
type While struct {
	Condition Expr
	Body      Stmt
}

func (*Block) stmt()          {}
func (*Class) stmt()          {}
func (*ExpressionStmt) stmt() {}
func (*Function) stmt()       {}
func (*If) stmt()             {}
func (*Let) stmt()            {}
func (*Print) stmt()          {}
func (*Return) stmt()         {}
func (*While) stmt()          {}
