// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the lox language.
package parser

import (
	"strconv"

	"github.com/michaelmacinnis/lox/internal/ast"
	"github.com/michaelmacinnis/lox/internal/common/struct/token"
	"github.com/michaelmacinnis/lox/internal/common/type/boolean"
	"github.com/michaelmacinnis/lox/internal/common/type/null"
	"github.com/michaelmacinnis/lox/internal/common/type/num"
	"github.com/michaelmacinnis/lox/internal/diag"
)

// MaxArguments is the most parameters a function may declare or arguments a call may pass.
const MaxArguments = 255

// T holds the state of the parser.
type T struct {
	ahead    int             // Lookahead count.
	item     func() *token.T // Function to call to get another token.
	log      *diag.Log       // Where problems are reported.
	previous *token.T        // Most recently consumed token.
	token    *token.T        // Token lookahead.
}

// failure is panicked, after the problem has been reported, to unwind to
// the nearest declaration.
type failure struct{}

// New creates a new parser.
// It connects a producer of tokens with a diagnostic log.
func New(item func() *token.T, log *diag.Log) *T {
	return &T{item: item, log: log}
}

// Parse consumes tokens until EOF and returns the program's statements.
// Statements with syntax errors are reported and omitted.
func (p *T) Parse() []ast.Stmt {
	program := []ast.Stmt{}

	for !p.peek().Is(token.EOF) {
		if s := p.declaration(); s != nil {
			program = append(program, s)
		}
	}

	return program
}

func (p *T) advance() *token.T {
	t := p.peek()
	if !t.Is(token.EOF) {
		p.ahead = 0
		p.token = nil
	}

	p.previous = t

	return t
}

func (p *T) check(cs ...token.Class) bool {
	return p.peek().Is(cs...)
}

func (p *T) error(k diag.Kind, t *token.T, message string) {
	p.log.Report(diag.At(k, t, message))
}

func (p *T) expect(c token.Class, message string) *token.T {
	if p.check(c) {
		return p.advance()
	}

	p.fail(p.peek(), message)

	return nil
}

func (p *T) fail(t *token.T, message string) {
	p.error(diag.InvalidSyntax, t, message)

	panic(failure{})
}

func (p *T) match(cs ...token.Class) bool {
	if p.check(cs...) {
		p.advance()

		return true
	}

	return false
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

// synchronize discards tokens until the start of what looks like the next statement.
func (p *T) synchronize() {
	p.advance()

	for !p.check(token.EOF) {
		if p.previous.Is(';') {
			return
		}

		if p.check(
			token.Klass, token.Fn, token.Let, token.For,
			token.If, token.While, token.Print, token.Return,
		) {
			return
		}

		p.advance()
	}
}

// Declarations.

// <declaration> ::= <class> | <function> | <let> | <statement> .
func (p *T) declaration() (s ast.Stmt) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if _, ok := r.(failure); !ok {
			panic(r)
		}

		p.synchronize()

		s = nil
	}()

	switch {
	case p.match(token.Klass):
		return p.class()
	case p.match(token.Fn):
		return p.function("function")
	case p.match(token.Let):
		return p.let()
	}

	return p.statement()
}

// <class> ::= 'class' Identifier '{' <function>* '}' .
func (p *T) class() ast.Stmt {
	name := p.expect(token.Identifier, "expected class name")

	p.expect('{', "expected '{' before class body")

	methods := []*ast.Function{}
	for !p.check('}', token.EOF) {
		methods = append(methods, p.function("method"))
	}

	p.expect('}', "expected '}' after class body")

	return &ast.Class{Name: name, Methods: methods}
}

// <function> ::= Identifier '(' <parameters>? ')' <block> .
func (p *T) function(kind string) *ast.Function {
	name := p.expect(token.Identifier, "expected "+kind+" name")

	p.expect('(', "expected '(' after "+kind+" name")

	params := []*token.T{}
	if !p.check(')') {
		for {
			if len(params) >= MaxArguments {
				p.error(diag.TooManyArguments, p.peek(),
					"can't have more than "+strconv.Itoa(MaxArguments)+" parameters")
			}

			params = append(params, p.expect(token.Identifier, "expected parameter name"))

			if !p.match(',') {
				break
			}
		}
	}

	p.expect(')', "expected ')' after parameters")
	p.expect('{', "expected '{' before "+kind+" body")

	return &ast.Function{Name: name, Params: params, Body: p.block()}
}

// <let> ::= 'let' 'mut'? Identifier ('=' <expression>)? ';' .
func (p *T) let() ast.Stmt {
	mutable := p.match(token.Mut)

	name := p.expect(token.Identifier, "expected variable name")

	var initializer ast.Expr
	if p.match('=') {
		initializer = p.expression()
	}

	p.expect(';', "expected ';' after variable declaration")

	return &ast.Let{Name: name, Mutable: mutable, Initializer: initializer}
}

// Statements.

// <statement> ::= <for> | <if> | <print> | <return> | <while> | <block> | <expressionStatement> .
func (p *T) statement() ast.Stmt {
	switch {
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.Return):
		return p.returnStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match('{'):
		return &ast.Block{Statements: p.block()}
	}

	return p.expressionStatement()
}

// <block> ::= '{' <declaration>* '}' .
// The opening brace has already been consumed.
func (p *T) block() []ast.Stmt {
	statements := []ast.Stmt{}

	for !p.check('}', token.EOF) {
		if s := p.declaration(); s != nil {
			statements = append(statements, s)
		}
	}

	p.expect('}', "expected '}' after block")

	return statements
}

// <expressionStatement> ::= <expression> ';' .
func (p *T) expressionStatement() ast.Stmt {
	first := p.peek()

	e := p.expression()

	if v, ok := e.(*ast.Variable); ok && v.Name.Value() == "var" {
		p.fail(first, "unknown keyword 'var', did you mean 'let'?")
	}

	p.expect(';', "expected ';' after expression")

	return &ast.ExpressionStmt{Expression: e}
}

// <for> ::= 'for' '(' (<let> | <expressionStatement> | ';') <expression>? ';' <expression>? ')' <statement> ';'? .
//
// A for loop is rewritten as an equivalent while loop inside a block:
//
//	{ initializer; while condition { body; increment; } }
func (p *T) forStatement() ast.Stmt {
	p.expect('(', "expected '(' after 'for'")

	var initializer ast.Stmt

	switch {
	case p.match(';'):
	case p.match(token.Let):
		initializer = p.let()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(';') {
		condition = p.expression()
	}

	p.expect(';', "expected ';' after loop condition")

	var increment ast.Expr
	if !p.check(')') {
		increment = p.expression()
	}

	p.expect(')', "expected ')' after for clauses")

	body := p.statement()

	if increment != nil {
		body = &ast.Block{Statements: []ast.Stmt{
			body,
			&ast.ExpressionStmt{Expression: increment},
		}}
	}

	if condition == nil {
		condition = &ast.Literal{Value: boolean.True}
	}

	body = &ast.While{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.Block{Statements: []ast.Stmt{initializer, body}}
	}

	p.match(';')

	return body
}

// <if> ::= 'if' <expression> 'do' ':' <statement> ('else' ':' <statement>)?
//        | 'if' <expression> <block> ('else' (<if> | <block>))? .
func (p *T) ifStatement() ast.Stmt {
	condition := p.expression()

	if p.match(token.Do) {
		p.expect(':', "expected ':' after 'do'")

		s := &ast.If{Condition: condition, Then: p.statement()}

		if p.match(token.Else) {
			p.expect(':', "expected ':' after 'else'")

			s.Else = p.statement()
		}

		return s
	}

	p.expect('{', "expected '{' or 'do:' after if condition")

	s := &ast.If{Condition: condition, Then: &ast.Block{Statements: p.block()}}

	if p.match(token.Else) {
		switch {
		case p.match(token.If):
			s.Else = p.ifStatement()
		case p.match('{'):
			s.Else = &ast.Block{Statements: p.block()}
		default:
			p.fail(p.peek(), "expected '{' or 'if' after 'else'")
		}
	}

	return s
}

// <print> ::= 'print' <expression> ';' .
func (p *T) printStatement() ast.Stmt {
	e := p.expression()

	p.expect(';', "expected ';' after value")

	return &ast.Print{Expression: e}
}

// <return> ::= 'return' <expression>? ';' .
func (p *T) returnStatement() ast.Stmt {
	keyword := p.previous

	var value ast.Expr
	if !p.check(';') {
		value = p.expression()
	}

	p.expect(';', "expected ';' after return value")

	return &ast.Return{Keyword: keyword, Value: value}
}

// <while> ::= 'while' <expression> <statement> .
func (p *T) whileStatement() ast.Stmt {
	condition := p.expression()

	return &ast.While{Condition: condition, Body: p.statement()}
}

// Expressions, lowest precedence first.

// <expression> ::= <assignment> .
func (p *T) expression() ast.Expr {
	return p.assignment()
}

// <assignment> ::= (<call> '.')? Identifier '=' <assignment> | <or> .
func (p *T) assignment() ast.Expr {
	e := p.or()

	if p.match('=') {
		equals := p.previous
		value := p.assignment()

		switch target := e.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}
		}

		p.error(diag.InvalidAssignmentTarget, equals, "invalid assignment target")
	}

	return e
}

// <or> ::= <and> ('or' <and>)* .
func (p *T) or() ast.Expr {
	e := p.and()

	for p.match(token.Or) {
		operator := p.previous
		e = &ast.Logical{Left: e, Operator: operator, Right: p.and()}
	}

	return e
}

// <and> ::= <equality> ('and' <equality>)* .
func (p *T) and() ast.Expr {
	e := p.equality()

	for p.match(token.And) {
		operator := p.previous
		e = &ast.Logical{Left: e, Operator: operator, Right: p.equality()}
	}

	return e
}

// <equality> ::= <comparison> (('!=' | '==') <comparison>)* .
func (p *T) equality() ast.Expr {
	e := p.comparison()

	for p.match(token.BangEqual, token.EqualEqual) {
		operator := p.previous
		e = &ast.Binary{Left: e, Operator: operator, Right: p.comparison()}
	}

	return e
}

// <comparison> ::= <term> (('>' | '>=' | '<' | '<=') <term>)* .
func (p *T) comparison() ast.Expr {
	e := p.term()

	for p.match('>', token.GreaterEqual, '<', token.LessEqual) {
		operator := p.previous
		e = &ast.Binary{Left: e, Operator: operator, Right: p.term()}
	}

	return e
}

// <term> ::= <factor> (('-' | '+') <factor>)* | Identifier ('++' | '--') .
//
// The increment shorthand x++ is rewritten as x = x + 1. The two operator
// characters must be adjacent so that a - -b is still a subtraction.
func (p *T) term() ast.Expr {
	e := p.factor()

	for p.match('-', '+') {
		operator := p.previous

		if next := p.peek(); next.Is(operator.Class()) && adjacent(operator, next) {
			p.advance()

			v, ok := e.(*ast.Variable)
			if !ok {
				p.error(diag.InvalidAssignmentTarget, operator, "invalid increment target")
				panic(failure{})
			}

			one := &ast.Literal{Value: num.New(1)}

			return &ast.Assign{
				Name:  v.Name,
				Value: &ast.Binary{Left: e, Operator: operator, Right: one},
			}
		}

		e = &ast.Binary{Left: e, Operator: operator, Right: p.factor()}
	}

	return e
}

// <factor> ::= <unary> (('/' | '*') <unary>)* .
func (p *T) factor() ast.Expr {
	e := p.unary()

	for p.match('/', '*') {
		operator := p.previous
		e = &ast.Binary{Left: e, Operator: operator, Right: p.unary()}
	}

	return e
}

// <unary> ::= ('!' | '-') <unary> | <call> .
func (p *T) unary() ast.Expr {
	if p.match('!', '-') {
		operator := p.previous

		return &ast.Unary{Operator: operator, Right: p.unary()}
	}

	return p.call()
}

// <call> ::= <primary> ('(' <arguments>? ')' | '.' Identifier)* .
func (p *T) call() ast.Expr {
	e := p.primary()

	for {
		switch {
		case p.match('('):
			e = p.finishCall(e)
		case p.match('.'):
			name := p.expect(token.Identifier, "expected property name after '.'")
			e = &ast.Get{Object: e, Name: name}
		default:
			return e
		}
	}
}

// <arguments> ::= <expression> (',' <expression>)* .
func (p *T) finishCall(callee ast.Expr) ast.Expr {
	arguments := []ast.Expr{}

	if !p.check(')') {
		for {
			if len(arguments) >= MaxArguments {
				p.error(diag.TooManyArguments, p.peek(),
					"can't have more than "+strconv.Itoa(MaxArguments)+" arguments")
			}

			arguments = append(arguments, p.expression())

			if !p.match(',') {
				break
			}
		}
	}

	paren := p.expect(')', "expected ')' after arguments")

	return &ast.Call{Callee: callee, Paren: paren, Arguments: arguments}
}

// <primary> ::= 'true' | 'false' | 'nil' | Number | String | Identifier
//             | 'self' | 'super' '.' Identifier | '(' <expression> ')' .
func (p *T) primary() ast.Expr {
	switch {
	case p.match(token.False):
		return &ast.Literal{Value: boolean.False}
	case p.match(token.True):
		return &ast.Literal{Value: boolean.True}
	case p.match(token.Nil):
		return &ast.Literal{Value: null.Nil}
	case p.match(token.Number, token.String):
		return &ast.Literal{Value: p.previous.Literal()}
	case p.match(token.Identifier):
		return &ast.Variable{Name: p.previous}
	case p.match(token.Self):
		return &ast.Self{Keyword: p.previous}
	case p.match(token.Super):
		keyword := p.previous

		p.expect('.', "expected '.' after 'super'")

		method := p.expect(token.Identifier, "expected superclass method name")

		return &ast.Super{Keyword: keyword, Method: method}
	case p.match('('):
		e := p.expression()

		p.expect(')', "expected ')' after expression")

		return &ast.Grouping{Expression: e}
	}

	p.fail(p.peek(), "expected expression")

	return nil
}

func adjacent(a, b *token.T) bool {
	x, y := a.Source(), b.Source()

	return x.Name == y.Name && x.Line == y.Line && x.Char+1 == y.Char
}
