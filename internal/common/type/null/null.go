// Released under an MIT license. See LICENSE.

// Package null provides lox's nil value.
package null

import (
	"github.com/michaelmacinnis/lox/internal/common"
	"github.com/michaelmacinnis/lox/internal/common/interface/cell"
	"github.com/michaelmacinnis/lox/internal/common/interface/literal"
	"github.com/michaelmacinnis/lox/internal/common/interface/truth"
)

const name = "nil"

// T (null) is the type of the absent value. There is exactly one.
type T struct{}

type null = T

//nolint:gochecknoglobals
var (
	// Nil is the only value of type null.
	Nil cell.I = &null{}
)

// Bool returns the boolean value of nil, which is always false.
func (*null) Bool() bool {
	return false
}

// Equal returns true if c is also nil.
func (n *null) Equal(c cell.I) bool {
	return Is(c)
}

// Literal returns the literal representation of nil.
func (*null) Literal() string {
	return name
}

// Name returns the type name for nil.
func (*null) Name() string {
	return name
}

// String returns the display text for nil.
func (*null) String() string {
	return name
}

// Is returns true if c is nil. A Go nil cell is treated as lox nil.
func Is(c cell.I) bool {
	if c == nil {
		return true
	}

	_, ok := c.(*null)

	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t null

	// The null type is a cell.
	_ = cell.I(&t)

	// The null type has a literal representation.
	_ = literal.I(&t)

	// The null type is a stringer.
	_ = common.Stringer(&t)

	// The null type has a truth value.
	_ = truth.I(&t)
}
