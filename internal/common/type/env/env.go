// Released under an MIT license. See LICENSE.

// Package env provides lox's environment type: one frame in a chain of scopes.
//
// Frames are shared, never copied. A closure keeps the frame it was created
// in, and with it every enclosing frame, alive for as long as it is reachable.
package env

import (
	"sort"

	"github.com/michaelmacinnis/lox/internal/common/interface/cell"
	"github.com/michaelmacinnis/lox/internal/common/struct/slot"
)

// T (env) maps names to slots and links to the enclosing env.
type T struct {
	previous *T
	values   map[string]*slot.T
}

type env = T

// New creates a new env enclosed by previous. The global env has no previous.
func New(previous *T) *T {
	return &env{
		previous: previous,
		values:   map[string]*slot.T{},
	}
}

// Ancestor returns the env distance links out from e.
// It returns nil if the chain is shorter than distance.
func (e *env) Ancestor(distance int) *T {
	for ; e != nil && distance > 0; distance-- {
		e = e.previous
	}

	return e
}

// Define binds the name k to the cell v in the env e. An existing binding
// for k in e is replaced.
func (e *env) Define(k string, v cell.I, mutable bool) {
	e.values[k] = slot.New(v, mutable)
}

// Enclosing returns the enclosing env.
func (e *env) Enclosing() *T {
	return e.previous
}

// Lookup retrieves the slot for the name k in the env e only.
func (e *env) Lookup(k string) *slot.T {
	if e == nil {
		return nil
	}

	return e.values[k]
}

// Names returns the names bound in the env e, sorted.
func (e *env) Names() []string {
	ks := make([]string, 0, len(e.values))
	for k := range e.values {
		ks = append(ks, k)
	}

	sort.Strings(ks)

	return ks
}
