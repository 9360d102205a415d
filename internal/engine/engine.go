// Released under an MIT license. See LICENSE.

// Package engine provides a tree-walking evaluator for parsed lox code.
//
// A session owns the global env and the resolution table. Sessions share
// nothing, so several can run side by side, but each one must be used by a
// single goroutine.
package engine

import (
	"errors"
	"io"

	"github.com/michaelmacinnis/lox/internal/ast"
	"github.com/michaelmacinnis/lox/internal/common/type/env"
	"github.com/michaelmacinnis/lox/internal/diag"
	"github.com/michaelmacinnis/lox/internal/engine/resolver"
	"github.com/michaelmacinnis/lox/internal/reader"
	"github.com/michaelmacinnis/lox/internal/system/clock"
)

// DefaultMaxDepth is the default limit on nested calls.
const DefaultMaxDepth = 16384

// Status describes how a run ended.
type Status int

// Run outcomes, in increasing order of severity.
const (
	Success Status = iota
	StaticError
	RuntimeError
	FatalError
)

// T (engine) is an interpreter session.
type T struct {
	clock       func() float64
	current     *env.T
	depth       int
	display     bool
	globals     *env.T
	interactive bool
	locals      resolver.Locals
	log         *diag.Log
	maxDepth    int
	stdout      io.Writer
}

type engine = T

// Option configures a session.
type Option func(*T)

// Interactive sets whether the session displays the value of each
// top-level expression statement.
func Interactive(on bool) Option {
	return func(s *T) {
		s.interactive = on
	}
}

// WithClock replaces the session's time source.
func WithClock(f func() float64) Option {
	return func(s *T) {
		s.clock = f
	}
}

// WithDisplay sets whether an interactive session displays results. It
// has no effect on a session that is not interactive.
func WithDisplay(on bool) Option {
	return func(s *T) {
		s.display = on
	}
}

// WithLog sets where diagnostics are reported. A nil log discards them.
func WithLog(l *diag.Log) Option {
	return func(s *T) {
		if l == nil {
			l = diag.NewLog(nil)
		}

		s.log = l
	}
}

// WithMaxDepth sets the limit on nested calls. Values below one are ignored.
func WithMaxDepth(n int) Option {
	return func(s *T) {
		if n > 0 {
			s.maxDepth = n
		}
	}
}

// WithOutput sets where program output is written.
func WithOutput(w io.Writer) Option {
	return func(s *T) {
		s.stdout = w
	}
}

// New creates a new session with the builtins bound in its global env.
func New(options ...Option) *T {
	globals := env.New(nil)

	s := &T{
		clock:    clock.Seconds,
		current:  globals,
		display:  true,
		globals:  globals,
		locals:   resolver.Locals{},
		log:      diag.NewLog(nil),
		maxDepth: DefaultMaxDepth,
		stdout:   io.Discard,
	}

	for _, o := range options {
		o(s)
	}

	for k, b := range Builtins() {
		globals.Define(k, b, false)
	}

	for k, v := range Constants() {
		globals.Define(k, v, false)
	}

	return s
}

// Globals returns the session's global env.
func (s *engine) Globals() *env.T {
	return s.globals
}

// Log returns the session's diagnostic log. It holds the diagnostics from
// the most recent run.
func (s *engine) Log() *diag.Log {
	return s.log
}

// Run reads, resolves and evaluates text. Label names the source in diagnostics.
// Nothing is evaluated if any problem is found before evaluation.
func (s *engine) Run(label, text string) Status {
	s.log.Clear()

	n := s.log.Count()

	program := reader.Read(label, text, s.log)
	if s.log.Count() > n {
		return StaticError
	}

	locals := resolver.Resolve(program, s.log)
	if s.log.Count() > n {
		return StaticError
	}

	s.locals.Merge(locals)

	return s.report(s.Interpret(program))
}

// Interpret evaluates program. The program must already have been resolved
// and its resolution table merged into the session.
func (s *engine) Interpret(program []ast.Stmt) error {
	for _, st := range program {
		if err := s.topLevel(st); err != nil {
			return err
		}
	}

	return nil
}

func (s *engine) report(err error) Status {
	if err == nil {
		return Success
	}

	var f *Fatal
	if errors.As(err, &f) {
		s.log.Report(f.Diagnostic())

		return FatalError
	}

	var e *Error
	if errors.As(err, &e) {
		s.log.Report(e.Diagnostic())

		return RuntimeError
	}

	// Failures writing output surface here.
	s.log.Report(diag.T{Kind: diag.HostFailure, Message: err.Error()})

	return FatalError
}
