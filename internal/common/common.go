// Released under an MIT license. See LICENSE.

// Package common defines common interfaces and the canonical display form of values.
package common

import (
	"fmt"

	"github.com/michaelmacinnis/lox/internal/common/interface/cell"
)

type Stringer = fmt.Stringer

// String returns the display string for a cell. This is the form used by
// print statements, the println builtin and the REPL.
func String(c cell.I) string {
	b, ok := c.(Stringer)
	if !ok {
		panic(c.Name() + " cannot be used in a string context")
	}

	return b.String()
}
