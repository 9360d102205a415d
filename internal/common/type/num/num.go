// Released under an MIT license. See LICENSE.

// Package num provides lox's number type.
package num

import (
	"math"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/lox/internal/common"
	"github.com/michaelmacinnis/lox/internal/common/interface/cell"
	"github.com/michaelmacinnis/lox/internal/common/interface/literal"
	"github.com/michaelmacinnis/lox/internal/common/interface/truth"
)

const (
	name = "number"

	// Above this magnitude numbers are displayed in scientific notation.
	exponential = 1e21
)

// T (num) wraps Go's float64 type.
type T float64

type num = T

// New creates a new num cell from the float64 v.
func New(v float64) cell.I {
	n := num(v)

	return &n
}

// Parse creates a new num cell from the decimal text s.
func Parse(s string) (cell.I, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}

	return New(v), nil
}

// Bool returns the boolean value of the num n. Zero is true.
func (n *num) Bool() bool {
	return true
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.Float64() == To(c).Float64()
}

// Float64 returns the value of the num n as a float64.
func (n *num) Float64() float64 {
	return float64(*n)
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// String returns the text of the num n. Integral values have no fractional part.
func (n *num) String() string {
	v := n.Float64()

	format := byte('f')
	if math.IsInf(v, 0) || math.IsNaN(v) || math.Abs(v) >= exponential {
		format = 'g'
	}

	return strings.TrimSuffix(strconv.FormatFloat(v, format, -1, 64), ".0")
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*num)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*num); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)

	// The num type has a truth value.
	_ = truth.I(&t)
}
