// Released under an MIT license. See LICENSE.

// Package diag provides lox's diagnostics: what went wrong, where, and in which phase.
package diag

import (
	"fmt"
	"io"

	"github.com/michaelmacinnis/lox/internal/common/struct/loc"
	"github.com/michaelmacinnis/lox/internal/common/struct/token"
)

// Phase identifies the pass that detected a problem.
type Phase int

// Phases, in pipeline order.
const (
	Lexical Phase = iota
	Syntax
	Resolution
	Runtime
	Fatal
)

// Kind identifies a specific problem.
type Kind int

// Kinds of problems.
const (
	UnexpectedCharacter Kind = iota
	UnterminatedString
	UnterminatedComment

	InvalidSyntax
	InvalidAssignmentTarget
	TooManyArguments
	Unsupported

	SelfReference
	DuplicateDeclaration
	ReturnOutsideFunction

	UndefinedVariable
	ImmutableAssignment
	WrongArity
	NotCallable
	NonNumericOperand
	DivisionByZero

	StackOverflow
	HostFailure
)

//nolint:gochecknoglobals
var kinds = map[Kind]struct {
	name  string
	phase Phase
}{
	UnexpectedCharacter:     {"unexpected character", Lexical},
	UnterminatedString:      {"unterminated string", Lexical},
	UnterminatedComment:     {"unterminated comment", Lexical},
	InvalidSyntax:           {"invalid syntax", Syntax},
	InvalidAssignmentTarget: {"invalid assignment target", Syntax},
	TooManyArguments:        {"too many arguments", Syntax},
	Unsupported:             {"unsupported", Resolution},
	SelfReference:           {"self-referential initializer", Resolution},
	DuplicateDeclaration:    {"duplicate declaration", Resolution},
	ReturnOutsideFunction:   {"return outside function", Resolution},
	UndefinedVariable:       {"undefined variable", Runtime},
	ImmutableAssignment:     {"immutable assignment", Runtime},
	WrongArity:              {"wrong arity", Runtime},
	NotCallable:             {"not callable", Runtime},
	NonNumericOperand:       {"non-numeric operand", Runtime},
	DivisionByZero:          {"division by zero", Runtime},
	StackOverflow:           {"stack overflow", Fatal},
	HostFailure:             {"host failure", Fatal},
}

// Phase returns the phase that reports problems of kind k.
func (k Kind) Phase() Phase {
	return kinds[k].phase
}

// String returns a short description of the kind k.
func (k Kind) String() string {
	if v, ok := kinds[k]; ok {
		return v.name
	}

	return fmt.Sprintf("kind(%d)", int(k))
}

// Static returns true if the phase p runs before evaluation.
func (p Phase) Static() bool {
	return p < Runtime
}

// T (diagnostic) is a single reported problem.
type T struct {
	Kind    Kind
	Message string
	Source  loc.T
	Where   string // Offending lexeme, "end" or empty.
}

type diagnostic = T

// At creates a diagnostic located at the token t.
func At(k Kind, t *token.T, message string) T {
	d := T{Kind: k, Message: message}

	if t == nil {
		return d
	}

	if s := t.Source(); s != nil {
		d.Source = *s
	}

	if t.Is(token.EOF) {
		d.Where = "end"
	} else {
		d.Where = "'" + t.Value() + "'"
	}

	return d
}

// New creates a diagnostic at source with no offending lexeme.
func New(k Kind, source loc.T, message string) T {
	return T{Kind: k, Message: message, Source: source}
}

// String formats the diagnostic d for display.
func (d *diagnostic) String() string {
	label := "error"

	switch d.Kind.Phase() {
	case Runtime:
		label = "runtime error"
	case Fatal:
		label = "fatal error"
	case Lexical, Syntax, Resolution:
	}

	if d.Where != "" {
		label += " at " + d.Where
	}

	if d.Source.Line == 0 {
		return label + ": " + d.Message
	}

	return d.Source.String() + ": " + label + ": " + d.Message
}

// Log accumulates diagnostics, writing each one as it is reported.
// A nil *Log discards everything reported to it.
type Log struct {
	all []T
	err error
	w   io.Writer
}

// NewLog creates a log that writes to w. A nil w discards output.
func NewLog(w io.Writer) *Log {
	if w == nil {
		w = io.Discard
	}

	return &Log{w: w}
}

// All returns every diagnostic reported to the log l since it was last cleared.
func (l *Log) All() []T {
	if l == nil {
		return nil
	}

	return l.all
}

// Clear forgets the diagnostics reported so far. Output already written is unaffected.
func (l *Log) Clear() {
	if l != nil {
		l.all = nil
	}
}

// Count returns the number of diagnostics reported to the log l since it was last cleared.
func (l *Log) Count() int {
	if l == nil {
		return 0
	}

	return len(l.all)
}

// Err returns the first error encountered writing a diagnostic, if any.
func (l *Log) Err() error {
	if l == nil {
		return nil
	}

	return l.err
}

// Report records the diagnostic d and writes it out.
func (l *Log) Report(d T) {
	if l == nil {
		return
	}

	l.all = append(l.all, d)

	if _, err := fmt.Fprintln(l.w, d.String()); err != nil && l.err == nil {
		l.err = err
	}
}

// Since returns the diagnostics reported after the first n.
func (l *Log) Since(n int) []T {
	if n >= l.Count() {
		return nil
	}

	return l.all[n:]
}
