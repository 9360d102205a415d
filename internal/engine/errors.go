// Released under an MIT license. See LICENSE.

package engine

import (
	"fmt"

	"github.com/michaelmacinnis/lox/internal/common/struct/token"
	"github.com/michaelmacinnis/lox/internal/diag"
)

// Error is a runtime error raised by lox code. It stops the current run.
type Error struct {
	Kind    diag.Kind
	Message string
	Token   *token.T
}

// Fatal is a host fault, such as exhausting the call stack. It is never
// reported as an ordinary runtime error.
type Fatal struct {
	Kind    diag.Kind
	Message string
	Token   *token.T
}

func fault(k diag.Kind, t *token.T, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, args...), Token: t}
}

// Diagnostic returns the diagnostic form of the error e.
func (e *Error) Diagnostic() diag.T {
	return diag.At(e.Kind, e.Token, e.Message)
}

func (e *Error) Error() string {
	d := e.Diagnostic()

	return d.String()
}

// Diagnostic returns the diagnostic form of the fault f.
func (f *Fatal) Diagnostic() diag.T {
	return diag.At(f.Kind, f.Token, f.Message)
}

func (f *Fatal) Error() string {
	d := f.Diagnostic()

	return d.String()
}
