// Released under an MIT license. See LICENSE.

// Package slot provides lox's variable type: a value and whether it may be reassigned.
package slot

import (
	"github.com/michaelmacinnis/lox/internal/common/interface/cell"
)

// T (slot) holds a cell value.
type T struct {
	c       cell.I
	mutable bool
}

type slot = T

// New creates a new slot with the cell c.
func New(c cell.I, mutable bool) *slot {
	return &slot{c: c, mutable: mutable}
}

// Get returns the cell in slot s.
func (s *slot) Get() cell.I {
	return s.c
}

// Mutable returns true if the cell in slot s can be replaced.
func (s *slot) Mutable() bool {
	return s.mutable
}

// Set replaces the cell in slot s with the cell c. It returns false,
// leaving the slot unchanged, if the slot is immutable.
func (s *slot) Set(c cell.I) bool {
	if !s.mutable {
		return false
	}

	s.c = c

	return true
}
