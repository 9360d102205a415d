// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/michaelmacinnis/lox/internal/ast"
	"github.com/michaelmacinnis/lox/internal/common"
	"github.com/michaelmacinnis/lox/internal/common/interface/cell"
	"github.com/michaelmacinnis/lox/internal/common/type/env"
	"github.com/michaelmacinnis/lox/internal/common/type/null"
)

// Callable is a lox value that can be invoked.
type Callable interface {
	cell.I
	Arity() int
	Call(s *T, args []cell.I) (cell.I, error)
}

// Builtin is a function implemented in Go.
type Builtin struct {
	arity int
	fn    func(s *T, args []cell.I) (cell.I, error)
}

// Arity returns the number of arguments the builtin b expects.
func (b *Builtin) Arity() int {
	return b.arity
}

// Call invokes the builtin b. Arity has already been checked.
func (b *Builtin) Call(s *T, args []cell.I) (cell.I, error) {
	return b.fn(s, args)
}

// Equal returns true if the cell c is the same builtin as b.
func (b *Builtin) Equal(c cell.I) bool {
	o, ok := c.(*Builtin)
	return ok && o == b
}

// Name returns the name of the builtin type.
func (*Builtin) Name() string {
	return "builtin"
}

func (*Builtin) String() string {
	return "<native code>"
}

// Closure is a user-defined function and the env it was defined in.
type Closure struct {
	decl  *ast.Function
	scope *env.T
}

// Arity returns the number of parameters declared by the closure c.
func (c *Closure) Arity() int {
	return len(c.decl.Params)
}

// Call binds args to the closure's parameters in a new env enclosed by
// the env where the closure was defined, and then runs its body.
func (c *Closure) Call(s *T, args []cell.I) (cell.I, error) {
	frame := env.New(c.scope)

	for i, p := range c.decl.Params {
		frame.Define(p.Value(), args[i], false)
	}

	r, err := s.block(c.decl.Body, frame)
	if err != nil {
		return nil, err
	}

	if r != nil {
		return r.value, nil
	}

	return null.Nil, nil
}

// Equal returns true if the cell o is the same closure as c.
func (c *Closure) Equal(o cell.I) bool {
	p, ok := o.(*Closure)
	return ok && p == c
}

// Name returns the name of the closure type.
func (*Closure) Name() string {
	return "function"
}

func (*Closure) String() string {
	return "<function>"
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	var b Builtin

	// The builtin type is callable.
	_ = Callable(&b)

	// The builtin type is a stringer.
	_ = common.Stringer(&b)

	var c Closure

	// The closure type is callable.
	_ = Callable(&c)

	// The closure type is a stringer.
	_ = common.Stringer(&c)
}
