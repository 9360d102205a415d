// Released under an MIT license. See LICENSE.

// Package reader connects the lox lexer and parser.
package reader

import (
	"github.com/michaelmacinnis/lox/internal/ast"
	"github.com/michaelmacinnis/lox/internal/diag"
	"github.com/michaelmacinnis/lox/internal/reader/lexer"
	"github.com/michaelmacinnis/lox/internal/reader/parser"
)

// T (reader) encapsulates the lox lexer and parser.
type T struct {
	p *parser.T
	s *lexer.T
}

type reader = T

// New creates a new reader for the source text labelled name.
// Problems are reported to log.
func New(name, text string, log *diag.Log) *T {
	s := lexer.New(name, text, log)

	return &T{
		p: parser.New(s.Token, log),
		s: s,
	}
}

// Read is a convenience function that parses text in one step.
func Read(name, text string, log *diag.Log) []ast.Stmt {
	return New(name, text, log).Program()
}

// Lexer returns the reader's internal lexer.T.
func (r *reader) Lexer() *lexer.T {
	return r.s
}

// Parser returns the reader's internal parser.T.
func (r *reader) Parser() *parser.T {
	return r.p
}

// Program parses the remaining text and returns its statements.
func (r *reader) Program() []ast.Stmt {
	return r.p.Parse()
}
