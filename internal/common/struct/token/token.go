// Released under an MIT license. See LICENSE.

// Package token is shared by the lox lexer and parser.
package token

import (
	"strconv"
	"unicode"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/lox/internal/common/interface/cell"
	"github.com/michaelmacinnis/lox/internal/common/struct/loc"
)

// Class is a token's type. Single character tokens use the character itself.
type Class rune

// T (token) is a lexical item returned by the scanner.
type T struct {
	class   Class
	literal cell.I
	source  *loc.T
	value   string
}

type token = T

// Token classes.
const (
	EOF Class = iota

	BangEqual Class = unicode.MaxRune + iota
	EqualEqual
	GreaterEqual
	LessEqual

	Identifier
	Number
	String

	And
	Klass
	Do
	Else
	False
	Fn
	For
	If
	Let
	Mut
	Nil
	Or
	Print
	Return
	Self
	Super
	True
	While
)

//nolint:gochecknoglobals
var (
	keywords = map[string]Class{
		"and":    And,
		"class":  Klass,
		"do":     Do,
		"else":   Else,
		"false":  False,
		"fn":     Fn,
		"for":    For,
		"if":     If,
		"let":    Let,
		"mut":    Mut,
		"nil":    Nil,
		"or":     Or,
		"print":  Print,
		"return": Return,
		"self":   Self,
		"super":  Super,
		"true":   True,
		"while":  While,
	}

	names = map[Class]string{
		EOF:          "EOF",
		BangEqual:    "BangEqual",
		EqualEqual:   "EqualEqual",
		GreaterEqual: "GreaterEqual",
		LessEqual:    "LessEqual",
		Identifier:   "Identifier",
		Number:       "Number",
		String:       "String",
	}
)

func init() { //nolint:gochecknoinits
	for k, c := range keywords {
		names[c] = k
	}
}

// Keyword returns the class for the reserved word s, if s is one.
func Keyword(s string) (Class, bool) {
	c, ok := keywords[s]

	return c, ok
}

// New creates a new token.
func New(class Class, value string, literal cell.I, source *loc.T) *token {
	return &token{
		class:   class,
		literal: literal,
		source:  source,
		value:   value,
	}
}

// String returns a string representation of Class. Useful for debugging.
func (c Class) String() string {
	if s, ok := names[c]; ok {
		return s
	}

	return strconv.QuoteRune(rune(c))
}

// Class returns the token's class.
func (t *token) Class() Class {
	return t.class
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// Literal returns the number or string value of a literal token, or nil.
func (t *token) Literal() cell.I {
	return t.literal
}

// Source returns the source location for this token.
func (t *token) Source() *loc.T {
	return t.source
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return t.source.String() + " " + t.class.String() + " " +
		adapted.CanonicalString(t.value)
}

// Value returns the token's lexeme.
func (t *token) Value() string {
	return t.value
}
