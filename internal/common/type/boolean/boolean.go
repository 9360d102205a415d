// Released under an MIT license. See LICENSE.

// Package boolean provides lox's true and false.
//
// There are exactly two boolean cells. Comparison operators and the !
// operator always return one of them, so identity and equality agree.
package boolean

import (
	"github.com/michaelmacinnis/lox/internal/common"
	"github.com/michaelmacinnis/lox/internal/common/interface/cell"
	"github.com/michaelmacinnis/lox/internal/common/interface/literal"
	"github.com/michaelmacinnis/lox/internal/common/interface/truth"
)

const name = "boolean"

// T (boolean) is the type of the true and false literals.
type T bool

type boolean = T

//nolint:gochecknoglobals
var (
	False = constant(false)
	True  = constant(true)
)

// Bool returns the boolean cell for the Go bool b.
func Bool(b bool) cell.I {
	if b {
		return True
	}

	return False
}

// Bool returns the truth value of b. Only False is false.
func (b *boolean) Bool() bool {
	return bool(*b)
}

// Equal returns true if c is the same boolean as b.
func (b *boolean) Equal(c cell.I) bool {
	return Is(c) && b.Bool() == To(c).Bool()
}

// Literal returns the keyword that produces b in lox source.
func (b *boolean) Literal() string {
	return b.String()
}

// Name returns "boolean".
func (b *boolean) Name() string {
	return name
}

// String returns "true" or "false", as print displays it.
func (b *boolean) String() string {
	if b.Bool() {
		return "true"
	}

	return "false"
}

func constant(v bool) *boolean {
	b := boolean(v)

	return &b
}

// Is returns true if c is a boolean.
func Is(c cell.I) bool {
	_, ok := c.(*boolean)
	return ok
}

// To returns c as a boolean. It panics if c is some other kind of value.
func To(c cell.I) *T {
	if b, ok := c.(*boolean); ok {
		return b
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t boolean

	_ = cell.I(&t)
	_ = literal.I(&t)
	_ = common.Stringer(&t)
	_ = truth.I(&t)
}
