// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the lox language.
//
// The lox lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"strconv"
	"unicode/utf8"

	"github.com/michaelmacinnis/lox/internal/common/interface/cell"
	"github.com/michaelmacinnis/lox/internal/common/struct/loc"
	"github.com/michaelmacinnis/lox/internal/common/struct/token"
	"github.com/michaelmacinnis/lox/internal/common/type/num"
	"github.com/michaelmacinnis/lox/internal/common/type/str"
	"github.com/michaelmacinnis/lox/internal/diag"
)

// T holds the state of the scanner.
type T struct {
	bytes string     // Buffer being scanned.
	first int        // Index of the current token's first byte.
	index int        // Index of the current byte.
	last  *token.T   // The EOF token, once emitted.
	log   *diag.Log  // Where problems are reported.
	queue []*token.T // Tokens emitted but not yet returned.
	state action     // Current action.

	source loc.T // Location of the current byte.
	start  loc.T // Location of the current token's first byte.
}

// New creates a new T for text. Label can be a file name or other identifier.
func New(label, text string, log *diag.Log) *T {
	l := &T{
		bytes: text,
		log:   log,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.start = l.source
	l.state = startState

	return l
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token. Once the end of the input has been
// reached every call returns the same EOF token.
func (l *T) Token() *token.T {
	for len(l.queue) == 0 {
		if l.state == nil {
			return l.last
		}

		l.state = l.state(l)
	}

	t := l.queue[0]
	l.queue = l.queue[1:]

	return t
}

// Tokens scans the remaining input and returns every token up to and including EOF.
func (l *T) Tokens() []*token.T {
	ts := []*token.T{}

	for {
		t := l.Token()
		ts = append(ts, t)

		if t.Is(token.EOF) {
			return ts
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		l.source.Line++
		l.source.Char = 1
	} else {
		l.source.Char++
	}

	l.index += w
}

func (l *T) emit(c token.Class, literal cell.I) {
	source := l.start

	t := token.New(c, l.Text(), literal, &source)
	if c == token.EOF {
		l.last = t
	}

	l.queue = append(l.queue, t)
	l.skip()
}

func (l *T) next() rune {
	r, w := l.peek()
	if w > 0 {
		l.accept(r, w)
	}

	return r
}

func (l *T) peek() (rune, int) {
	return l.peekAt(l.index)
}

func (l *T) peekAt(i int) (rune, int) {
	r, w := rune(eof), 0
	if i < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[i:])
	}

	return r, w
}

func (l *T) report(k diag.Kind, message string) {
	l.log.Report(diag.New(k, l.start, message))
}

func (l *T) skip() {
	l.first = l.index
	l.start = l.source
}

// T states.

func afterSlash(l *T) action {
	r, w := l.peek()

	switch r {
	case '/':
		l.accept(r, w)
		return skipLineComment
	case '*':
		l.accept(r, w)
		return skipBlockComment
	}

	l.emit('/', nil)

	return startState
}

func either(l *T, second rune, two, one token.Class) action {
	r, w := l.peek()
	if r == second {
		l.accept(r, w)
		l.emit(two, nil)
	} else {
		l.emit(one, nil)
	}

	return startState
}

func scanIdentifier(l *T) action {
	for {
		r, w := l.peek()
		if !isAlphaNumeric(r) {
			break
		}

		l.accept(r, w)
	}

	c, ok := token.Keyword(l.Text())
	if !ok {
		c = token.Identifier
	}

	l.emit(c, nil)

	return startState
}

func scanNumber(l *T) action {
	digits(l)

	if r, w := l.peek(); r == '.' {
		if d, _ := l.peekAt(l.index + w); isDigit(d) {
			l.accept(r, w)
			digits(l)
		}
	}

	n, err := num.Parse(l.Text())
	if err != nil {
		// Only reachable for literals too large for a float64.
		l.report(diag.InvalidSyntax, "invalid number "+strconv.Quote(l.Text()))
		l.skip()

		return startState
	}

	l.emit(token.Number, n)

	return startState
}

func scanString(l *T) action {
	for {
		switch l.next() {
		case eof:
			l.report(diag.UnterminatedString, "unterminated string")
			l.skip()

			return startState
		case '"':
			s := l.Text()
			l.emit(token.String, str.New(s[1:len(s)-1]))

			return startState
		}
	}
}

func skipBlockComment(l *T) action {
	for depth := 1; depth > 0; {
		switch l.next() {
		case eof:
			l.report(diag.UnterminatedComment, "unterminated comment")
			l.skip()
			l.emit(token.EOF, nil)

			return nil
		case '/':
			if r, w := l.peek(); r == '*' {
				l.accept(r, w)
				depth++
			}
		case '*':
			if r, w := l.peek(); r == '/' {
				l.accept(r, w)
				depth--
			}
		}
	}

	l.skip()

	return startState
}

func skipLineComment(l *T) action {
	for {
		r, w := l.peek()
		if r == eof || r == '\n' {
			l.skip()
			return startState
		}

		l.accept(r, w)
	}
}

func startState(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			l.emit(token.EOF, nil)
			return nil
		case '\t', '\n', '\r', ' ':
			l.skip()
			continue
		case '(', ')', '{', '}', ',', '.', '-', '+', ':', ';', '*':
			l.emit(token.Class(r), nil)
			return startState
		case '!':
			return either(l, '=', token.BangEqual, '!')
		case '=':
			return either(l, '=', token.EqualEqual, '=')
		case '<':
			return either(l, '=', token.LessEqual, '<')
		case '>':
			return either(l, '=', token.GreaterEqual, '>')
		case '/':
			return afterSlash
		case '"':
			return scanString
		}

		if isDigit(r) {
			return scanNumber
		}

		if isAlpha(r) {
			return scanIdentifier
		}

		l.report(diag.UnexpectedCharacter, "unexpected character "+strconv.QuoteRune(r))
		l.skip()
	}
}

// Helper functions.

func digits(l *T) {
	for {
		r, w := l.peek()
		if !isDigit(r) {
			return
		}

		l.accept(r, w)
	}
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '$'
}

func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
